package shaderdef

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Encode writes a Definition to writer.
func Encode(w io.Writer, d *Definition, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent}
	if err := wr.writeDefinition(d); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a Definition to a file.
func EncodeFile(path string, d *Definition, opt *FormatOptions) error {
	b, err := Format(d, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Definition to bytes.
func Format(d *Definition, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, d, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a Definition to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation string
	cache  []string  // Cache of indentation strings
	level  int       // Current nesting level
}

// writeDefinition writes a Definition to the writer.
func (w *writer) writeDefinition(d *Definition) error {
	if err := w.writeString("(\n"); err != nil {
		return err
	}
	w.level++

	if err := w.writeFieldStart("name"); err != nil {
		return err
	}
	if err := w.writeQuoted(d.Name); err != nil {
		return err
	}
	if err := w.writeString(",\n"); err != nil {
		return err
	}

	if len(d.Resources) > 0 {
		if err := w.writeFieldStart("resources"); err != nil {
			return err
		}
		if err := w.writeString("[\n"); err != nil {
			return err
		}
		w.level++
		for i := range d.Resources {
			if err := w.writeResource(&d.Resources[i]); err != nil {
				return err
			}
		}
		w.level--
		if err := w.writeIndent(); err != nil {
			return err
		}
		if err := w.writeString("],\n"); err != nil {
			return err
		}
	}

	if len(d.DisabledPasses) > 0 {
		if err := w.writeFieldStart("disabled_passes"); err != nil {
			return err
		}
		if err := w.writeString("["); err != nil {
			return err
		}
		for i, name := range d.DisabledPasses {
			if i > 0 {
				if err := w.writeString(", "); err != nil {
					return err
				}
			}
			if err := w.writeQuoted(name); err != nil {
				return err
			}
		}
		if err := w.writeString("],\n"); err != nil {
			return err
		}
	}

	if len(d.Passes) > 0 {
		if err := w.writeFieldStart("passes"); err != nil {
			return err
		}
		if err := w.writeString("[\n"); err != nil {
			return err
		}
		w.level++
		for i := range d.Passes {
			if err := w.writePass(&d.Passes[i]); err != nil {
				return err
			}
		}
		w.level--
		if err := w.writeIndent(); err != nil {
			return err
		}
		if err := w.writeString("],\n"); err != nil {
			return err
		}
	}

	w.level--
	return w.writeString(")\n")
}

// writeResource writes a resource binding record.
func (w *writer) writeResource(r *Resource) error {
	if err := w.writeIndent(); err != nil {
		return err
	}
	if err := w.writeString("(\n"); err != nil {
		return err
	}
	w.level++

	if err := w.writeFieldStart("name"); err != nil {
		return err
	}
	if err := w.writeQuoted(r.Name); err != nil {
		return err
	}
	if err := w.writeString(",\n"); err != nil {
		return err
	}

	if err := w.writeFieldStart("kind"); err != nil {
		return err
	}
	switch r.Kind {
	case ResourceKindTexture:
		if r.Texture == nil {
			return fmt.Errorf("%w: texture resource %q has no sampler payload", ErrSchema, r.Name)
		}
		if err := w.writeString("Texture(kind: "); err != nil {
			return err
		}
		if err := w.writeString(string(r.Texture.Kind)); err != nil {
			return err
		}
		if err := w.writeString(", fallback: "); err != nil {
			return err
		}
		if err := w.writeString(string(r.Texture.Fallback)); err != nil {
			return err
		}
		if err := w.writeString("),\n"); err != nil {
			return err
		}

	default:
		if err := w.writePropertyGroup(r.Properties); err != nil {
			return err
		}
	}

	if err := w.writeFieldStart("binding"); err != nil {
		return err
	}
	if err := w.writeString(strconv.Itoa(r.Binding)); err != nil {
		return err
	}
	if err := w.writeString(",\n"); err != nil {
		return err
	}

	w.level--
	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("),\n")
}

// writePropertyGroup writes the PropertyGroup([...]) payload.
func (w *writer) writePropertyGroup(props []Property) error {
	if len(props) == 0 {
		return w.writeString("PropertyGroup([]),\n")
	}

	if err := w.writeString("PropertyGroup([\n"); err != nil {
		return err
	}
	w.level++
	for i := range props {
		if err := w.writeProperty(&props[i]); err != nil {
			return err
		}
	}
	w.level--
	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("]),\n")
}

// writeProperty writes a single property record on one line.
func (w *writer) writeProperty(prop *Property) error {
	if err := w.writeIndent(); err != nil {
		return err
	}
	if err := w.writeString("(name: "); err != nil {
		return err
	}
	if err := w.writeQuoted(prop.Name); err != nil {
		return err
	}
	if err := w.writeString(", kind: "); err != nil {
		return err
	}
	if err := w.writePropertyValue(prop.Value); err != nil {
		return err
	}

	return w.writeString("),\n")
}

// writePropertyValue writes a tagged property value variant.
func (w *writer) writePropertyValue(v PropertyValue) error {
	switch v.Kind {
	case PropertyKindFloat:
		if err := w.writeString("Float("); err != nil {
			return err
		}
		if err := w.writeNumber(v.Float); err != nil {
			return err
		}
		return w.writeString(")")

	case PropertyKindInt:
		if err := w.writeString("Int("); err != nil {
			return err
		}
		if err := w.writeString(strconv.FormatInt(v.Int, 10)); err != nil {
			return err
		}
		return w.writeString(")")

	case PropertyKindUInt:
		if err := w.writeString("UInt("); err != nil {
			return err
		}
		if err := w.writeString(strconv.FormatUint(v.UInt, 10)); err != nil {
			return err
		}
		return w.writeString(")")

	case PropertyKindBool:
		if err := w.writeString("Bool("); err != nil {
			return err
		}
		if err := w.writeBool(v.Bool); err != nil {
			return err
		}
		return w.writeString(")")

	case PropertyKindColor:
		c := v.Color
		if err := w.writeString("Color(r: "); err != nil {
			return err
		}
		if err := w.writeString(strconv.Itoa(int(c.R))); err != nil {
			return err
		}
		if err := w.writeString(", g: "); err != nil {
			return err
		}
		if err := w.writeString(strconv.Itoa(int(c.G))); err != nil {
			return err
		}
		if err := w.writeString(", b: "); err != nil {
			return err
		}
		if err := w.writeString(strconv.Itoa(int(c.B))); err != nil {
			return err
		}
		if err := w.writeString(", a: "); err != nil {
			return err
		}
		if err := w.writeString(strconv.Itoa(int(c.A))); err != nil {
			return err
		}
		return w.writeString(")")

	case PropertyKindVector2:
		return w.writeComponents(string(v.Kind), v.Vector2[:])
	case PropertyKindVector3:
		return w.writeComponents(string(v.Kind), v.Vector3[:])
	case PropertyKindVector4:
		return w.writeComponents(string(v.Kind), v.Vector4[:])
	case PropertyKindMatrix2:
		return w.writeComponents(string(v.Kind), v.Matrix2[:])
	case PropertyKindMatrix3:
		return w.writeComponents(string(v.Kind), v.Matrix3[:])
	case PropertyKindMatrix4:
		return w.writeComponents(string(v.Kind), v.Matrix4[:])

	default:
		return nil
	}
}

// writeComponents writes a flat component list variant.
func (w *writer) writeComponents(tag string, comps []float32) error {
	if err := w.writeString(tag); err != nil {
		return err
	}
	if err := w.writeString("("); err != nil {
		return err
	}
	for i, c := range comps {
		if i > 0 {
			if err := w.writeString(", "); err != nil {
				return err
			}
		}
		var buf [32]byte
		b := strconv.AppendFloat(buf[:0], float64(c), 'g', -1, 32)
		if _, err := w.w.Write(b); err != nil {
			return err
		}
	}

	return w.writeString(")")
}

// writePass writes a render pass record.
func (w *writer) writePass(pass *RenderPass) error {
	if err := w.writeIndent(); err != nil {
		return err
	}
	if err := w.writeString("(\n"); err != nil {
		return err
	}
	w.level++

	if err := w.writeFieldStart("name"); err != nil {
		return err
	}
	if err := w.writeQuoted(pass.Name); err != nil {
		return err
	}
	if err := w.writeString(",\n"); err != nil {
		return err
	}

	if err := w.writeDrawParameters(&pass.DrawParameters); err != nil {
		return err
	}

	if err := w.writeSource("vertex_shader", pass.VertexShader); err != nil {
		return err
	}
	if pass.GeometryShader != "" {
		if err := w.writeSource("geometry_shader", pass.GeometryShader); err != nil {
			return err
		}
	}
	if err := w.writeSource("fragment_shader", pass.FragmentShader); err != nil {
		return err
	}

	w.level--
	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("),\n")
}

// writeDrawParameters writes the full fixed-function state. All fields are
// written explicitly so output does not depend on parser defaults.
func (w *writer) writeDrawParameters(dp *DrawParameters) error {
	if err := w.writeFieldStart("draw_parameters"); err != nil {
		return err
	}
	if err := w.writeString("DrawParameters(\n"); err != nil {
		return err
	}
	w.level++

	if err := w.writeFieldStart("cull_face"); err != nil {
		return err
	}
	if dp.CullFace == nil {
		if err := w.writeString("None,\n"); err != nil {
			return err
		}
	} else {
		if err := w.writeString("Some(" + string(*dp.CullFace) + "),\n"); err != nil {
			return err
		}
	}

	if err := w.writeFieldStart("color_write"); err != nil {
		return err
	}
	cm := dp.ColorWrite
	if err := w.writeString("ColorMask(red: "); err != nil {
		return err
	}
	if err := w.writeBool(cm.Red); err != nil {
		return err
	}
	if err := w.writeString(", green: "); err != nil {
		return err
	}
	if err := w.writeBool(cm.Green); err != nil {
		return err
	}
	if err := w.writeString(", blue: "); err != nil {
		return err
	}
	if err := w.writeBool(cm.Blue); err != nil {
		return err
	}
	if err := w.writeString(", alpha: "); err != nil {
		return err
	}
	if err := w.writeBool(cm.Alpha); err != nil {
		return err
	}
	if err := w.writeString("),\n"); err != nil {
		return err
	}

	if err := w.writeFieldStart("depth_write"); err != nil {
		return err
	}
	if err := w.writeBool(dp.DepthWrite); err != nil {
		return err
	}
	if err := w.writeString(",\n"); err != nil {
		return err
	}

	if err := w.writeFieldStart("stencil_test"); err != nil {
		return err
	}
	if dp.StencilTest == nil {
		if err := w.writeString("None,\n"); err != nil {
			return err
		}
	} else {
		st := dp.StencilTest
		if err := w.writeString("Some(StencilFunc(func: " + string(st.Func) +
			", ref: " + strconv.FormatUint(uint64(st.Ref), 10) +
			", mask: " + formatMask(st.Mask) + ")),\n"); err != nil {
			return err
		}
	}

	if err := w.writeFieldStart("depth_test"); err != nil {
		return err
	}
	if dp.DepthTest == nil {
		if err := w.writeString("None,\n"); err != nil {
			return err
		}
	} else {
		if err := w.writeString("Some(" + string(*dp.DepthTest) + "),\n"); err != nil {
			return err
		}
	}

	if err := w.writeBlend(dp.Blend); err != nil {
		return err
	}

	if err := w.writeFieldStart("stencil_op"); err != nil {
		return err
	}
	op := dp.StencilOp
	if err := w.writeString("StencilOp(fail: " + string(op.Fail) +
		", zfail: " + string(op.ZFail) +
		", zpass: " + string(op.ZPass) +
		", write_mask: " + formatMask(op.WriteMask) + "),\n"); err != nil {
		return err
	}

	if err := w.writeFieldStart("scissor_box"); err != nil {
		return err
	}
	if dp.ScissorBox == nil {
		if err := w.writeString("None,\n"); err != nil {
			return err
		}
	} else {
		sb := dp.ScissorBox
		if err := w.writeString("Some(ScissorBox(x: " + strconv.FormatInt(int64(sb.X), 10) +
			", y: " + strconv.FormatInt(int64(sb.Y), 10) +
			", width: " + strconv.FormatInt(int64(sb.Width), 10) +
			", height: " + strconv.FormatInt(int64(sb.Height), 10) + ")),\n"); err != nil {
			return err
		}
	}

	w.level--
	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString("),\n")
}

// writeBlend writes the blend field of DrawParameters.
func (w *writer) writeBlend(bp *BlendParameters) error {
	if err := w.writeFieldStart("blend"); err != nil {
		return err
	}
	if bp == nil {
		return w.writeString("None,\n")
	}

	if err := w.writeString("Some(BlendParameters(\n"); err != nil {
		return err
	}
	w.level++

	f := bp.Func
	if err := w.writeFieldStart("func"); err != nil {
		return err
	}
	if err := w.writeString("BlendFunc(\n"); err != nil {
		return err
	}
	w.level++
	if err := w.writeFieldStart("sfactor"); err != nil {
		return err
	}
	if err := w.writeString(string(f.SFactor) + ",\n"); err != nil {
		return err
	}
	if err := w.writeFieldStart("dfactor"); err != nil {
		return err
	}
	if err := w.writeString(string(f.DFactor) + ",\n"); err != nil {
		return err
	}
	if err := w.writeFieldStart("alpha_sfactor"); err != nil {
		return err
	}
	if err := w.writeString(string(f.AlphaSFactor) + ",\n"); err != nil {
		return err
	}
	if err := w.writeFieldStart("alpha_dfactor"); err != nil {
		return err
	}
	if err := w.writeString(string(f.AlphaDFactor) + ",\n"); err != nil {
		return err
	}
	w.level--
	if err := w.writeIndent(); err != nil {
		return err
	}
	if err := w.writeString("),\n"); err != nil {
		return err
	}

	if err := w.writeFieldStart("equation"); err != nil {
		return err
	}
	eq := bp.Equation
	if err := w.writeString("BlendEquation(rgb: " + string(eq.RGB) +
		", alpha: " + string(eq.Alpha) + "),\n"); err != nil {
		return err
	}

	w.level--
	if err := w.writeIndent(); err != nil {
		return err
	}

	return w.writeString(")),\n")
}

// writeSource writes a shader source block as a raw string.
func (w *writer) writeSource(field, src string) error {
	if err := w.writeFieldStart(field); err != nil {
		return err
	}

	hashes := rawStringHashes(src)
	if err := w.writeString("r" + hashes + "\""); err != nil {
		return err
	}
	if err := w.writeString(src); err != nil {
		return err
	}

	return w.writeString("\"" + hashes + ",\n")
}

// rawStringHashes returns a '#' run long enough that "\"#..." never occurs
// inside src.
func rawStringHashes(src string) string {
	hashes := "#"
	for strings.Contains(src, "\""+hashes) {
		hashes += "#"
	}

	return hashes
}

// formatMask formats a stencil mask as a hex literal.
func formatMask(mask uint32) string {
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(mask), 16))
}

// writeFieldStart writes indentation, the field name, and ": ".
func (w *writer) writeFieldStart(name string) error {
	if err := w.writeIndent(); err != nil {
		return err
	}
	if err := w.writeString(name); err != nil {
		return err
	}

	return w.writeString(": ")
}

// writeBool writes a boolean literal.
func (w *writer) writeBool(v bool) error {
	if v {
		return w.writeString("true")
	}

	return w.writeString("false")
}

// writeNumber writes a float64 value to the writer.
func (w *writer) writeNumber(v float64) error {
	var buf [32]byte
	b := strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
	_, err := w.w.Write(b)

	return err
}

// writeQuoted writes a quoted string with escaping.
func (w *writer) writeQuoted(s string) error {
	if err := w.writeString("\""); err != nil {
		return err
	}

	if strings.ContainsAny(s, "\\\"") {
		s = strings.ReplaceAll(s, "\\", "\\\\")
		s = strings.ReplaceAll(s, "\"", "\\\"")
	}
	if err := w.writeString(s); err != nil {
		return err
	}

	return w.writeString("\"")
}

// writeIndent writes the current indentation level to the writer.
func (w *writer) writeIndent() error {
	if w.level <= 0 {
		return nil
	}

	// Cache repeated indentation strings per nesting level.
	return w.writeString(w.indentFor(w.level))
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// indentFor returns the cached indentation string for a nesting level.
func (w *writer) indentFor(level int) string {
	if level <= 0 {
		return ""
	}

	if len(w.cache) <= level {
		w.cache = append(w.cache, make([]string, level-len(w.cache)+1)...)
	}
	if w.cache[level] == "" {
		w.cache[level] = strings.Repeat(w.indent, level)
	}

	return w.cache[level]
}
