package shaderdef

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Parse parses a shader definition from bytes.
func Parse(data []byte, opt *ParseOptions) (*Definition, error) {
	return Decode(bytes.NewReader(data), opt)
}

// Decode parses a shader definition from reader.
func Decode(r io.Reader, opt *ParseOptions) (*Definition, error) {
	popt := opt.normalize()
	p := newParser(r, popt)
	return p.parseDefinition()
}

// DecodeFile parses a shader definition from a file.
func DecodeFile(path string, opt *ParseOptions) (*Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b, opt)
}

// parser represents a parser for the shader definition file.
type parser struct {
	l   *lexer       // Lexer for the shader definition file
	buf token        // Buffered token
	has bool         // Has buffered token
	opt ParseOptions // Options for the parser
}

// newParser creates a new parser for the shader definition file.
func newParser(r io.Reader, opt ParseOptions) *parser {
	return &parser{l: newLexer(r, opt), opt: opt}
}

// next returns the next token from the shader definition file.
func (p *parser) next() (token, error) {
	if p.has {
		p.has = false
		return p.buf, nil
	}

	return p.l.next()
}

// peek returns the next token from the shader definition file without
// consuming it.
func (p *parser) peek() (token, error) {
	if p.has {
		return p.buf, nil
	}

	tok, err := p.l.next()
	if err != nil {
		return tok, err
	}

	p.buf = tok
	p.has = true
	return tok, nil
}

// parseDefinition parses the whole definition record.
func (p *parser) parseDefinition() (*Definition, error) {
	open, err := p.expect(tokLParen)
	if err != nil {
		return nil, err
	}

	d := &Definition{}
	err = p.parseFields(func(name token) error {
		switch name.Lit {
		case "name":
			s, err := p.parseStringValue()
			if err != nil {
				return err
			}
			d.Name = s
			return nil

		case "resources":
			return p.parseList(func() error {
				res, err := p.parseResource()
				if err != nil {
					return err
				}
				d.Resources = append(d.Resources, res)
				return nil
			})

		case "disabled_passes":
			return p.parseList(func() error {
				s, err := p.parseStringValue()
				if err != nil {
					return err
				}
				d.DisabledPasses = append(d.DisabledPasses, s)
				return nil
			})

		case "passes":
			return p.parseList(func() error {
				pass, err := p.parsePass()
				if err != nil {
					return err
				}
				d.Passes = append(d.Passes, pass)
				return nil
			})

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return nil, err
	}

	if tok, err := p.next(); err != nil {
		return nil, err
	} else if tok.Type != tokEOF {
		return nil, p.errorf(tok, "unexpected trailing content")
	}

	if d.Name == "" {
		return nil, p.schemaErrorf(open, "definition name must not be empty")
	}
	if err := checkUniqueBindings(d.Resources, open); err != nil {
		return nil, err
	}
	if err := checkUniquePasses(d.Passes, open); err != nil {
		return nil, err
	}

	return d, nil
}

// checkUniqueBindings verifies that binding slot indices do not repeat.
func checkUniqueBindings(resources []Resource, at token) error {
	seen := make(map[int]string, len(resources))
	for _, r := range resources {
		if r.Binding < 0 {
			return fmt.Errorf("%w at %d:%d: resource %q requires a non-negative binding",
				ErrSchema, at.Line, at.Col, r.Name)
		}
		if prev, ok := seen[r.Binding]; ok {
			return fmt.Errorf("%w: resources %q and %q share binding %d",
				ErrDuplicateBinding, prev, r.Name, r.Binding)
		}
		seen[r.Binding] = r.Name
	}

	return nil
}

// checkUniquePasses verifies that pass names do not repeat.
func checkUniquePasses(passes []RenderPass, at token) error {
	seen := make(map[string]struct{}, len(passes))
	for _, pass := range passes {
		if pass.Name == "" {
			return fmt.Errorf("%w at %d:%d: pass name must not be empty",
				ErrSchema, at.Line, at.Col)
		}
		if _, ok := seen[pass.Name]; ok {
			return fmt.Errorf("%w: pass %q defined twice", ErrDuplicatePass, pass.Name)
		}
		seen[pass.Name] = struct{}{}
	}

	return nil
}

// parseResource parses a single resource binding record.
func (p *parser) parseResource() (Resource, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return Resource{}, err
	}

	res := Resource{Binding: -1}
	err := p.parseFields(func(name token) error {
		switch name.Lit {
		case "name":
			s, err := p.parseStringValue()
			if err != nil {
				return err
			}
			res.Name = s
			return nil

		case "kind":
			return p.parseResourceKindValue(&res)

		case "binding":
			n, err := p.parseIntValue()
			if err != nil {
				return err
			}
			res.Binding = int(n)
			return nil

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return Resource{}, err
	}

	return res, nil
}

// parseResourceKindValue parses the tagged resource payload.
func (p *parser) parseResourceKindValue(res *Resource) error {
	tag, err := p.expect(tokIdent)
	if err != nil {
		return err
	}

	kind, ok := parseResourceKind(tag.Lit)
	if !ok {
		return p.schemaErrorf(tag, "unknown resource kind %q", tag.Lit)
	}
	res.Kind = kind

	if _, err := p.expect(tokLParen); err != nil {
		return err
	}

	switch kind {
	case ResourceKindPropertyGroup:
		// Property groups may be empty; the payload is a list of property
		// records inside the variant parentheses.
		res.Properties = []Property{}
		if err := p.parseList(func() error {
			prop, err := p.parseProperty()
			if err != nil {
				return err
			}
			res.Properties = append(res.Properties, prop)
			return nil
		}); err != nil {
			return err
		}

	case ResourceKindTexture:
		tex := &TextureResource{}
		if err := p.parseFields(func(name token) error {
			switch name.Lit {
			case "kind":
				v, err := p.expect(tokIdent)
				if err != nil {
					return err
				}
				sk, ok := parseSamplerKind(v.Lit)
				if !ok {
					return p.schemaErrorf(v, "unknown sampler kind %q", v.Lit)
				}
				tex.Kind = sk
				return nil

			case "fallback":
				v, err := p.expect(tokIdent)
				if err != nil {
					return err
				}
				fb, ok := parseSamplerFallback(v.Lit)
				if !ok {
					return p.schemaErrorf(v, "unknown sampler fallback %q", v.Lit)
				}
				tex.Fallback = fb
				return nil

			default:
				return p.unknownField(name)
			}
		}); err != nil {
			return err
		}
		res.Texture = tex
		return nil
	}

	if _, err := p.expect(tokRParen); err != nil {
		return err
	}

	return nil
}

// parseProperty parses a named property record with its default value.
func (p *parser) parseProperty() (Property, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return Property{}, err
	}

	prop := Property{}
	err := p.parseFields(func(name token) error {
		switch name.Lit {
		case "name":
			s, err := p.parseStringValue()
			if err != nil {
				return err
			}
			prop.Name = s
			return nil

		case "kind", "value":
			v, err := p.parsePropertyValue()
			if err != nil {
				return err
			}
			prop.Value = v
			return nil

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return Property{}, err
	}

	return prop, nil
}

// parsePropertyValue parses a tagged property value variant.
func (p *parser) parsePropertyValue() (PropertyValue, error) {
	tag, err := p.expect(tokIdent)
	if err != nil {
		return PropertyValue{}, err
	}

	switch PropertyKind(tag.Lit) {
	case PropertyKindFloat:
		f, err := p.parseVariantFloat()
		return FloatValue(f), err

	case PropertyKindInt:
		if _, err := p.expect(tokLParen); err != nil {
			return PropertyValue{}, err
		}
		n, err := p.parseIntValue()
		if err != nil {
			return PropertyValue{}, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return PropertyValue{}, err
		}
		return IntValue(n), nil

	case PropertyKindUInt:
		if _, err := p.expect(tokLParen); err != nil {
			return PropertyValue{}, err
		}
		n, err := p.parseUIntValue()
		if err != nil {
			return PropertyValue{}, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return PropertyValue{}, err
		}
		return UIntValue(n), nil

	case PropertyKindBool:
		if _, err := p.expect(tokLParen); err != nil {
			return PropertyValue{}, err
		}
		b, err := p.parseBoolValue()
		if err != nil {
			return PropertyValue{}, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return PropertyValue{}, err
		}
		return BoolValue(b), nil

	case PropertyKindColor:
		return p.parseColorValue()

	case PropertyKindVector2, PropertyKindVector3, PropertyKindVector4,
		PropertyKindMatrix2, PropertyKindMatrix3, PropertyKindMatrix4:
		return p.parseComponentsValue(PropertyKind(tag.Lit))

	default:
		return PropertyValue{}, p.schemaErrorf(tag, "unknown property kind %q", tag.Lit)
	}
}

// parseColorValue parses Color(r: N, g: N, b: N, a: N).
func (p *parser) parseColorValue() (PropertyValue, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return PropertyValue{}, err
	}

	c := Color{}
	err := p.parseFields(func(name token) error {
		var dst *uint8
		switch name.Lit {
		case "r":
			dst = &c.R
		case "g":
			dst = &c.G
		case "b":
			dst = &c.B
		case "a":
			dst = &c.A
		default:
			return p.unknownField(name)
		}

		n, err := p.parseUIntValue()
		if err != nil {
			return err
		}
		if n > 255 {
			return p.schemaErrorf(name, "color channel %q out of byte range", name.Lit)
		}
		*dst = uint8(n)
		return nil
	})
	if err != nil {
		return PropertyValue{}, err
	}

	return ColorValue(c), nil
}

// parseComponentsValue parses vector and matrix variants with a flat
// component list, e.g. Vector3(0.0, 1.0, 0.0).
func (p *parser) parseComponentsValue(kind PropertyKind) (PropertyValue, error) {
	open, err := p.expect(tokLParen)
	if err != nil {
		return PropertyValue{}, err
	}

	want := kind.componentCount()
	comps := make([]float32, 0, want)
	for {
		tok, err := p.peek()
		if err != nil {
			return PropertyValue{}, err
		}
		if tok.Type == tokRParen {
			_, _ = p.next()
			break
		}

		f, err := p.parseFloatValue()
		if err != nil {
			return PropertyValue{}, err
		}
		comps = append(comps, float32(f))

		tok, err = p.peek()
		if err != nil {
			return PropertyValue{}, err
		}
		if tok.Type == tokComma {
			_, _ = p.next()
			continue
		}
		if tok.Type == tokRParen {
			continue
		}

		return PropertyValue{}, p.errorf(tok, "expected ',' or ')' in component list")
	}

	if len(comps) != want {
		return PropertyValue{}, p.schemaErrorf(open, "%s expects %d components, got %d", kind, want, len(comps))
	}

	v := PropertyValue{Kind: kind}
	switch kind {
	case PropertyKindVector2:
		v.Vector2 = mgl32.Vec2{comps[0], comps[1]}
	case PropertyKindVector3:
		v.Vector3 = mgl32.Vec3{comps[0], comps[1], comps[2]}
	case PropertyKindVector4:
		v.Vector4 = mgl32.Vec4{comps[0], comps[1], comps[2], comps[3]}
	case PropertyKindMatrix2:
		copy(v.Matrix2[:], comps)
	case PropertyKindMatrix3:
		copy(v.Matrix3[:], comps)
	case PropertyKindMatrix4:
		copy(v.Matrix4[:], comps)
	}

	return v, nil
}

// parsePass parses a render pass record.
func (p *parser) parsePass() (RenderPass, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return RenderPass{}, err
	}

	pass := RenderPass{DrawParameters: defaultDrawParameters()}
	err := p.parseFields(func(name token) error {
		switch name.Lit {
		case "name":
			s, err := p.parseStringValue()
			if err != nil {
				return err
			}
			pass.Name = s
			return nil

		case "draw_parameters":
			dp, err := p.parseDrawParameters()
			if err != nil {
				return err
			}
			pass.DrawParameters = dp
			return nil

		case "vertex_shader":
			s, err := p.parseSourceValue()
			if err != nil {
				return err
			}
			pass.VertexShader = s
			return nil

		case "fragment_shader":
			s, err := p.parseSourceValue()
			if err != nil {
				return err
			}
			pass.FragmentShader = s
			return nil

		case "geometry_shader":
			s, err := p.parseSourceValue()
			if err != nil {
				return err
			}
			pass.GeometryShader = s
			return nil

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return RenderPass{}, err
	}

	return pass, nil
}

// parseDrawParameters parses the DrawParameters(...) record. Absent fields
// keep their permissive defaults.
func (p *parser) parseDrawParameters() (DrawParameters, error) {
	tag, err := p.expect(tokIdent)
	if err != nil {
		return DrawParameters{}, err
	}
	if tag.Lit != "DrawParameters" {
		return DrawParameters{}, p.schemaErrorf(tag, "expected DrawParameters, got %q", tag.Lit)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return DrawParameters{}, err
	}

	dp := defaultDrawParameters()
	err = p.parseFields(func(name token) error {
		switch name.Lit {
		case "cull_face":
			return p.parseOptional(func(v token) error {
				cf, ok := parseCullFace(v.Lit)
				if !ok {
					return p.schemaErrorf(v, "unknown cull face %q", v.Lit)
				}
				dp.CullFace = &cf
				return nil
			}, func() { dp.CullFace = nil })

		case "color_write":
			cm, err := p.parseColorMask()
			if err != nil {
				return err
			}
			dp.ColorWrite = cm
			return nil

		case "depth_write":
			b, err := p.parseBoolValue()
			if err != nil {
				return err
			}
			dp.DepthWrite = b
			return nil

		case "stencil_test":
			return p.parseOptional(func(v token) error {
				if v.Lit != "StencilFunc" {
					return p.schemaErrorf(v, "expected StencilFunc, got %q", v.Lit)
				}
				sf, err := p.parseStencilFunc()
				if err != nil {
					return err
				}
				dp.StencilTest = &sf
				return nil
			}, func() { dp.StencilTest = nil })

		case "depth_test":
			return p.parseOptional(func(v token) error {
				cf, ok := parseCompareFunc(v.Lit)
				if !ok {
					return p.schemaErrorf(v, "unknown comparison %q", v.Lit)
				}
				dp.DepthTest = &cf
				return nil
			}, func() { dp.DepthTest = nil })

		case "blend":
			return p.parseOptional(func(v token) error {
				if v.Lit != "BlendParameters" {
					return p.schemaErrorf(v, "expected BlendParameters, got %q", v.Lit)
				}
				bp, err := p.parseBlendParameters()
				if err != nil {
					return err
				}
				dp.Blend = &bp
				return nil
			}, func() { dp.Blend = nil })

		case "stencil_op":
			op, err := p.parseStencilOp()
			if err != nil {
				return err
			}
			dp.StencilOp = op
			return nil

		case "scissor_box":
			return p.parseOptional(func(v token) error {
				if v.Lit != "ScissorBox" {
					return p.schemaErrorf(v, "expected ScissorBox, got %q", v.Lit)
				}
				sb, err := p.parseScissorBox()
				if err != nil {
					return err
				}
				dp.ScissorBox = &sb
				return nil
			}, func() { dp.ScissorBox = nil })

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return DrawParameters{}, err
	}

	return dp, nil
}

// parseColorMask parses ColorMask(red: bool, green: bool, blue: bool, alpha: bool).
func (p *parser) parseColorMask() (ColorMask, error) {
	tag, err := p.expect(tokIdent)
	if err != nil {
		return ColorMask{}, err
	}
	if tag.Lit != "ColorMask" {
		return ColorMask{}, p.schemaErrorf(tag, "expected ColorMask, got %q", tag.Lit)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return ColorMask{}, err
	}

	cm := ColorMask{Red: true, Green: true, Blue: true, Alpha: true}
	err = p.parseFields(func(name token) error {
		var dst *bool
		switch name.Lit {
		case "red":
			dst = &cm.Red
		case "green":
			dst = &cm.Green
		case "blue":
			dst = &cm.Blue
		case "alpha":
			dst = &cm.Alpha
		default:
			return p.unknownField(name)
		}

		b, err := p.parseBoolValue()
		if err != nil {
			return err
		}
		*dst = b
		return nil
	})
	if err != nil {
		return ColorMask{}, err
	}

	return cm, nil
}

// parseStencilFunc parses the StencilFunc(...) body after its tag.
func (p *parser) parseStencilFunc() (StencilFunc, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return StencilFunc{}, err
	}

	// Absent fields mirror the renderer defaults.
	sf := StencilFunc{Func: CompareAlways, Mask: 0xFFFFFFFF}
	err := p.parseFields(func(name token) error {
		switch name.Lit {
		case "func":
			v, err := p.expect(tokIdent)
			if err != nil {
				return err
			}
			cf, ok := parseCompareFunc(v.Lit)
			if !ok {
				return p.schemaErrorf(v, "unknown comparison %q", v.Lit)
			}
			sf.Func = cf
			return nil

		case "ref":
			n, err := p.parseUIntValue()
			if err != nil {
				return err
			}
			sf.Ref = uint32(n)
			return nil

		case "mask":
			n, err := p.parseUIntValue()
			if err != nil {
				return err
			}
			sf.Mask = uint32(n)
			return nil

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return StencilFunc{}, err
	}

	return sf, nil
}

// parseStencilOp parses StencilOp(fail:, zfail:, zpass:, write_mask:).
func (p *parser) parseStencilOp() (StencilOp, error) {
	tag, err := p.expect(tokIdent)
	if err != nil {
		return StencilOp{}, err
	}
	if tag.Lit != "StencilOp" {
		return StencilOp{}, p.schemaErrorf(tag, "expected StencilOp, got %q", tag.Lit)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return StencilOp{}, err
	}

	op := defaultDrawParameters().StencilOp
	parseAction := func() (StencilAction, error) {
		v, err := p.expect(tokIdent)
		if err != nil {
			return "", err
		}
		a, ok := parseStencilAction(v.Lit)
		if !ok {
			return "", p.schemaErrorf(v, "unknown stencil action %q", v.Lit)
		}
		return a, nil
	}

	err = p.parseFields(func(name token) error {
		switch name.Lit {
		case "fail":
			a, err := parseAction()
			if err != nil {
				return err
			}
			op.Fail = a
			return nil

		case "zfail":
			a, err := parseAction()
			if err != nil {
				return err
			}
			op.ZFail = a
			return nil

		case "zpass":
			a, err := parseAction()
			if err != nil {
				return err
			}
			op.ZPass = a
			return nil

		case "write_mask":
			n, err := p.parseUIntValue()
			if err != nil {
				return err
			}
			op.WriteMask = uint32(n)
			return nil

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return StencilOp{}, err
	}

	return op, nil
}

// parseBlendParameters parses the BlendParameters(...) body after its tag.
func (p *parser) parseBlendParameters() (BlendParameters, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return BlendParameters{}, err
	}

	bp := BlendParameters{
		Func: BlendFunc{
			SFactor:      FactorOne,
			DFactor:      FactorZero,
			AlphaSFactor: FactorOne,
			AlphaDFactor: FactorZero,
		},
		Equation: BlendEquation{RGB: BlendAdd, Alpha: BlendAdd},
	}
	err := p.parseFields(func(name token) error {
		switch name.Lit {
		case "func":
			f, err := p.parseBlendFunc()
			if err != nil {
				return err
			}
			bp.Func = f
			return nil

		case "equation":
			eq, err := p.parseBlendEquation()
			if err != nil {
				return err
			}
			bp.Equation = eq
			return nil

		default:
			return p.unknownField(name)
		}
	})
	if err != nil {
		return BlendParameters{}, err
	}

	return bp, nil
}

// parseBlendFunc parses BlendFunc(sfactor:, dfactor:, alpha_sfactor:, alpha_dfactor:).
func (p *parser) parseBlendFunc() (BlendFunc, error) {
	tag, err := p.expect(tokIdent)
	if err != nil {
		return BlendFunc{}, err
	}
	if tag.Lit != "BlendFunc" {
		return BlendFunc{}, p.schemaErrorf(tag, "expected BlendFunc, got %q", tag.Lit)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return BlendFunc{}, err
	}

	bf := BlendFunc{
		SFactor:      FactorOne,
		DFactor:      FactorZero,
		AlphaSFactor: FactorOne,
		AlphaDFactor: FactorZero,
	}
	parseFactor := func() (BlendFactor, error) {
		v, err := p.expect(tokIdent)
		if err != nil {
			return "", err
		}
		f, ok := parseBlendFactor(v.Lit)
		if !ok {
			return "", p.schemaErrorf(v, "unknown blend factor %q", v.Lit)
		}
		return f, nil
	}

	err = p.parseFields(func(name token) error {
		var dst *BlendFactor
		switch name.Lit {
		case "sfactor":
			dst = &bf.SFactor
		case "dfactor":
			dst = &bf.DFactor
		case "alpha_sfactor":
			dst = &bf.AlphaSFactor
		case "alpha_dfactor":
			dst = &bf.AlphaDFactor
		default:
			return p.unknownField(name)
		}

		f, err := parseFactor()
		if err != nil {
			return err
		}
		*dst = f
		return nil
	})
	if err != nil {
		return BlendFunc{}, err
	}

	return bf, nil
}

// parseBlendEquation parses BlendEquation(rgb:, alpha:).
func (p *parser) parseBlendEquation() (BlendEquation, error) {
	tag, err := p.expect(tokIdent)
	if err != nil {
		return BlendEquation{}, err
	}
	if tag.Lit != "BlendEquation" {
		return BlendEquation{}, p.schemaErrorf(tag, "expected BlendEquation, got %q", tag.Lit)
	}
	if _, err := p.expect(tokLParen); err != nil {
		return BlendEquation{}, err
	}

	eq := BlendEquation{RGB: BlendAdd, Alpha: BlendAdd}
	err = p.parseFields(func(name token) error {
		var dst *BlendMode
		switch name.Lit {
		case "rgb":
			dst = &eq.RGB
		case "alpha":
			dst = &eq.Alpha
		default:
			return p.unknownField(name)
		}

		v, err := p.expect(tokIdent)
		if err != nil {
			return err
		}
		m, ok := parseBlendMode(v.Lit)
		if !ok {
			return p.schemaErrorf(v, "unknown blend mode %q", v.Lit)
		}
		*dst = m
		return nil
	})
	if err != nil {
		return BlendEquation{}, err
	}

	return eq, nil
}

// parseScissorBox parses the ScissorBox(...) body after its tag.
func (p *parser) parseScissorBox() (ScissorBox, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return ScissorBox{}, err
	}

	sb := ScissorBox{}
	err := p.parseFields(func(name token) error {
		var dst *int32
		switch name.Lit {
		case "x":
			dst = &sb.X
		case "y":
			dst = &sb.Y
		case "width":
			dst = &sb.Width
		case "height":
			dst = &sb.Height
		default:
			return p.unknownField(name)
		}

		n, err := p.parseIntValue()
		if err != nil {
			return err
		}
		*dst = int32(n)
		return nil
	})
	if err != nil {
		return ScissorBox{}, err
	}

	return sb, nil
}

// parseOptional parses an optional value: None clears it, Some(payload) or a
// bare payload tag sets it. some receives the payload tag token with the
// token stream positioned right after it.
func (p *parser) parseOptional(some func(tag token) error, none func()) error {
	tok, err := p.expect(tokIdent)
	if err != nil {
		return err
	}

	if tok.Lit == "None" {
		none()
		return nil
	}

	if tok.Lit == "Some" {
		if _, err := p.expect(tokLParen); err != nil {
			return err
		}
		inner, err := p.expect(tokIdent)
		if err != nil {
			return err
		}
		if err := some(inner); err != nil {
			return err
		}
		_, err = p.expect(tokRParen)
		return err
	}

	// Bare payload without the Some(...) wrapper.
	return some(tok)
}

// parseFields parses "name: value" pairs until the closing parenthesis.
// Commas between fields are optional before the close.
func (p *parser) parseFields(field func(name token) error) error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type == tokRParen {
			_, _ = p.next()
			return nil
		}

		name, err := p.expect(tokIdent)
		if err != nil {
			return err
		}
		if _, err := p.expect(tokColon); err != nil {
			return err
		}
		if err := field(name); err != nil {
			return err
		}

		tok, err = p.peek()
		if err != nil {
			return err
		}
		if tok.Type == tokComma {
			_, _ = p.next()
			continue
		}
		if tok.Type == tokRParen {
			continue
		}

		return p.errorf(tok, "expected ',' or ')' after field")
	}
}

// parseList parses "[ elem, elem, ... ]" invoking elem per entry.
func (p *parser) parseList(elem func() error) error {
	if _, err := p.expect(tokLBracket); err != nil {
		return err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		if tok.Type == tokRBracket {
			_, _ = p.next()
			return nil
		}

		if err := elem(); err != nil {
			return err
		}

		tok, err = p.peek()
		if err != nil {
			return err
		}
		if tok.Type == tokComma {
			_, _ = p.next()
			continue
		}
		if tok.Type == tokRBracket {
			continue
		}

		return p.errorf(tok, "expected ',' or ']' in list")
	}
}

// unknownField fails with a schema error, or skips the field value when
// strict fields are disabled.
func (p *parser) unknownField(name token) error {
	if !p.opt.DisableStrictFields {
		return p.schemaErrorf(name, "unknown field %q", name.Lit)
	}

	return p.skipValue()
}

// skipValue consumes one value of any shape: literal, variant with payload,
// list, or record.
func (p *parser) skipValue() error {
	tok, err := p.next()
	if err != nil {
		return err
	}

	switch tok.Type {
	case tokNumber, tokString, tokRawString:
		return nil

	case tokIdent:
		// A variant tag may carry a parenthesized payload.
		nxt, err := p.peek()
		if err != nil {
			return err
		}
		if nxt.Type == tokLParen {
			return p.skipBalanced()
		}
		return nil

	case tokLParen:
		return p.skipBalancedFrom(1, 0)

	case tokLBracket:
		return p.skipBalancedFrom(0, 1)

	default:
		return p.errorf(tok, "unexpected token")
	}
}

// skipBalanced consumes a parenthesized payload including its delimiters.
func (p *parser) skipBalanced() error {
	if _, err := p.expect(tokLParen); err != nil {
		return err
	}

	return p.skipBalancedFrom(1, 0)
}

// skipBalancedFrom consumes tokens until all open delimiters are closed.
func (p *parser) skipBalancedFrom(parens, brackets int) error {
	for parens > 0 || brackets > 0 {
		tok, err := p.next()
		if err != nil {
			return err
		}

		switch tok.Type {
		case tokLParen:
			parens++
		case tokRParen:
			parens--
		case tokLBracket:
			brackets++
		case tokRBracket:
			brackets--
		case tokEOF:
			return p.errorf(tok, "unexpected end of file")
		}

		if parens < 0 || brackets < 0 {
			return p.errorf(tok, "unbalanced delimiters")
		}
	}

	return nil
}

// parseVariantFloat parses "(number)" after a Float tag.
func (p *parser) parseVariantFloat() (float64, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return 0, err
	}
	f, err := p.parseFloatValue()
	if err != nil {
		return 0, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return 0, err
	}

	return f, nil
}

// parseStringValue parses a quoted string value.
func (p *parser) parseStringValue() (string, error) {
	tok, err := p.next()
	if err != nil {
		return "", err
	}

	switch tok.Type {
	case tokString, tokRawString:
		return tok.Lit, nil
	default:
		return "", p.errorf(tok, "expected string")
	}
}

// parseSourceValue parses a shader source block: raw string or quoted string.
func (p *parser) parseSourceValue() (string, error) {
	return p.parseStringValue()
}

// parseBoolValue parses a true/false identifier.
func (p *parser) parseBoolValue() (bool, error) {
	tok, err := p.expect(tokIdent)
	if err != nil {
		return false, err
	}

	switch tok.Lit {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, p.errorf(tok, "expected true or false")
	}
}

// parseFloatValue parses a number token as float64.
func (p *parser) parseFloatValue() (float64, error) {
	tok, err := p.expect(tokNumber)
	if err != nil {
		return 0, err
	}

	if u, ok := parseHexLit(tok.Lit); ok {
		return float64(u), nil
	}

	f, err := strconv.ParseFloat(tok.Lit, 64)
	if err != nil {
		return 0, p.errorf(tok, "invalid number")
	}

	return f, nil
}

// parseIntValue parses a number token as int64.
func (p *parser) parseIntValue() (int64, error) {
	tok, err := p.expect(tokNumber)
	if err != nil {
		return 0, err
	}

	if u, ok := parseHexLit(tok.Lit); ok {
		return int64(u), nil
	}

	n, err := strconv.ParseInt(tok.Lit, 10, 64)
	if err != nil {
		// Integer fields tolerate float notation with a zero fraction.
		f, ferr := strconv.ParseFloat(tok.Lit, 64)
		if ferr != nil || f != float64(int64(f)) {
			return 0, p.errorf(tok, "invalid integer")
		}
		return int64(f), nil
	}

	return n, nil
}

// parseUIntValue parses a number token as uint64.
func (p *parser) parseUIntValue() (uint64, error) {
	tok, err := p.expect(tokNumber)
	if err != nil {
		return 0, err
	}

	if u, ok := parseHexLit(tok.Lit); ok {
		return u, nil
	}

	n, err := strconv.ParseUint(tok.Lit, 10, 64)
	if err != nil {
		return 0, p.errorf(tok, "invalid unsigned integer")
	}

	return n, nil
}

// parseHexLit parses a 0x literal with optional '_' separators.
func parseHexLit(s string) (uint64, bool) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return 0, false
	}

	hex := strings.ReplaceAll(s[2:], "_", "")
	u, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, false
	}

	return u, true
}

// expect expects a token.
func (p *parser) expect(tt tokenType) (token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}

	if tok.Type != tt {
		return tok, p.errorf(tok, "expected %s", tokenName(tt))
	}

	return tok, nil
}

// errorf formats a syntax error.
func (p *parser) errorf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrSyntax, tok.Line, tok.Col, fmt.Sprintf(format, args...))
}

// schemaErrorf formats a schema error.
func (p *parser) schemaErrorf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrSchema, tok.Line, tok.Col, fmt.Sprintf(format, args...))
}

// tokenName returns the name of a token.
func tokenName(tt tokenType) string {
	switch tt {
	case tokEOF:
		return "EOF"
	case tokIdent:
		return "identifier"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokRawString:
		return "raw string"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokLBracket:
		return "["
	case tokRBracket:
		return "]"
	case tokColon:
		return ":"
	case tokComma:
		return ","
	default:
		return "token"
	}
}
