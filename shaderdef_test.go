package shaderdef

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseSamples(t *testing.T) {
	files := []string{
		"gizmo.shader",
		"full.shader",
		"minimal.shader",
	}
	for _, f := range files {
		d, err := DecodeFile(filepath.Join("testdata", f), nil)
		if err != nil {
			t.Fatalf("parse %s: %v", f, err)
		}
		if f == "full.shader" {
			if len(d.Resources) == 0 || len(d.Passes) != 2 {
				t.Fatalf("expected resources and two passes in %s", f)
			}
		}
	}
}

func TestParseGizmoSample(t *testing.T) {
	d, err := DecodeFile(filepath.Join("testdata", "gizmo.shader"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if d.Name != "GizmoShader" {
		t.Fatalf("unexpected name %q", d.Name)
	}

	if len(d.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(d.Resources))
	}
	props := d.Resources[0]
	if props.Name != "properties" || props.Kind != ResourceKindPropertyGroup || props.Binding != 0 {
		t.Fatalf("unexpected properties resource: %+v", props)
	}
	if len(props.Properties) != 1 {
		t.Fatalf("expected 1 property, got %d", len(props.Properties))
	}
	diffuse := props.Properties[0]
	if diffuse.Name != "diffuseColor" {
		t.Fatalf("unexpected property name %q", diffuse.Name)
	}
	if diffuse.Value.Kind != PropertyKindColor || diffuse.Value.Color != NewColor(255, 255, 255, 255) {
		t.Fatalf("unexpected diffuseColor value: %+v", diffuse.Value)
	}
	inst := d.Resources[1]
	if inst.Name != "fyrox_instanceData" || inst.Binding != 1 || len(inst.Properties) != 0 {
		t.Fatalf("unexpected instance data resource: %+v", inst)
	}

	wantDisabled := []string{"GBuffer", "DirectionalShadow", "PointShadow", "SpotShadow"}
	if !reflect.DeepEqual(d.DisabledPasses, wantDisabled) {
		t.Fatalf("unexpected disabled passes: %v", d.DisabledPasses)
	}
	for _, name := range wantDisabled {
		if !d.IsPassDisabled(name) {
			t.Fatalf("expected %s disabled", name)
		}
	}
	if d.IsPassDisabled("Forward") {
		t.Fatalf("Forward should not be disabled")
	}

	if len(d.Passes) != 1 {
		t.Fatalf("expected 1 pass, got %d", len(d.Passes))
	}
	pass, ok := d.Pass("Forward")
	if !ok {
		t.Fatalf("expected Forward pass")
	}
	dp := pass.DrawParameters
	if dp.CullFace != nil {
		t.Fatalf("expected cull_face None, got %v", *dp.CullFace)
	}
	if dp.DepthTest == nil || *dp.DepthTest != CompareLess {
		t.Fatalf("expected depth_test Some(Less), got %v", dp.DepthTest)
	}
	if dp.Blend == nil {
		t.Fatalf("expected blend enabled")
	}
	wantFunc := BlendFunc{
		SFactor:      FactorSrcAlpha,
		DFactor:      FactorOneMinusSrcAlpha,
		AlphaSFactor: FactorSrcAlpha,
		AlphaDFactor: FactorOneMinusSrcAlpha,
	}
	if dp.Blend.Func != wantFunc {
		t.Fatalf("unexpected blend func: %+v", dp.Blend.Func)
	}
	if dp.Blend.Equation != (BlendEquation{RGB: BlendAdd, Alpha: BlendAdd}) {
		t.Fatalf("unexpected blend equation: %+v", dp.Blend.Equation)
	}
	if !strings.Contains(pass.VertexShader, "worldViewProjection") {
		t.Fatalf("vertex shader source not preserved")
	}
	if !strings.Contains(pass.FragmentShader, "gl_FragDepth") {
		t.Fatalf("fragment shader source not preserved")
	}
	if !strings.Contains(pass.FragmentShader, "// Pull the overlay") {
		t.Fatalf("comments inside shader source must pass through verbatim")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []string{"gizmo.shader", "full.shader", "minimal.shader"} {
		t.Run(f, func(t *testing.T) {
			d, err := DecodeFile(filepath.Join("testdata", f), nil)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			out, err := Format(d, nil)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			d2, err := Parse(out, nil)
			if err != nil {
				t.Fatalf("reparse: %v", err)
			}
			if !reflect.DeepEqual(d, d2) {
				t.Fatalf("round-trip mismatch for %s", f)
			}
		})
	}
}

func TestDrawParameterDefaults(t *testing.T) {
	d, err := DecodeFile(filepath.Join("testdata", "minimal.shader"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	dp := d.Passes[0].DrawParameters
	if dp.ColorWrite != (ColorMask{Red: true, Green: true, Blue: true, Alpha: true}) {
		t.Fatalf("expected permissive color_write, got %+v", dp.ColorWrite)
	}
	if !dp.DepthWrite {
		t.Fatalf("expected depth_write enabled by default")
	}
	want := StencilOp{Fail: ActionKeep, ZFail: ActionKeep, ZPass: ActionKeep, WriteMask: 0xFFFFFFFF}
	if dp.StencilOp != want {
		t.Fatalf("unexpected stencil_op default: %+v", dp.StencilOp)
	}
	if dp.CullFace != nil || dp.DepthTest != nil || dp.Blend != nil || dp.StencilTest != nil || dp.ScissorBox != nil {
		t.Fatalf("expected optional state disabled by default")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name: "duplicate_binding",
			input: `(
				name: "Broken",
				resources: [
					(name: "a", kind: PropertyGroup([]), binding: 0),
					(name: "b", kind: PropertyGroup([]), binding: 0),
				],
			)`,
			want: ErrDuplicateBinding,
		},
		{
			name: "duplicate_pass",
			input: `(
				name: "Broken",
				passes: [
					(name: "Forward", draw_parameters: DrawParameters(), vertex_shader: r#"a"#, fragment_shader: r#"b"#),
					(name: "Forward", draw_parameters: DrawParameters(), vertex_shader: r#"a"#, fragment_shader: r#"b"#),
				],
			)`,
			want: ErrDuplicatePass,
		},
		{
			name: "unknown_resource_kind",
			input: `(
				name: "Broken",
				resources: [
					(name: "a", kind: Buffer([]), binding: 0),
				],
			)`,
			want: ErrSchema,
		},
		{
			name: "unknown_property_kind",
			input: `(
				name: "Broken",
				resources: [
					(name: "a", kind: PropertyGroup([
						(name: "p", kind: Quaternion(0.0, 0.0, 0.0, 1.0)),
					]), binding: 0),
				],
			)`,
			want: ErrSchema,
		},
		{
			name: "unknown_enum_variant",
			input: `(
				name: "Broken",
				passes: [
					(name: "Forward", draw_parameters: DrawParameters(depth_test: Some(Sometimes)), vertex_shader: r#"a"#, fragment_shader: r#"b"#),
				],
			)`,
			want: ErrSchema,
		},
		{
			name: "unknown_field",
			input: `(
				name: "Broken",
				shader_model: "5_0",
			)`,
			want: ErrSchema,
		},
		{
			name:  "missing_name",
			input: `(passes: [])`,
			want:  ErrSchema,
		},
		{
			name:  "negative_binding",
			input: `(name: "Broken", resources: [(name: "a", kind: PropertyGroup([]), binding: -1)])`,
			want:  ErrSchema,
		},
		{
			name:  "unterminated_record",
			input: `(name: "Broken",`,
			want:  ErrSyntax,
		},
		{
			name:  "unterminated_raw_string",
			input: `(name: "Broken", passes: [(name: "F", draw_parameters: DrawParameters(), vertex_shader: r#"oops)])`,
			want:  ErrSyntax,
		},
		{
			name:  "trailing_content",
			input: "(name: \"Broken\") extra",
			want:  ErrSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input), nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestDisabledPassNotLocal(t *testing.T) {
	// disabled_passes may name passes defined by a shared base pipeline.
	input := `(
		name: "OverlayShader",
		disabled_passes: ["GBuffer", "SomeCustomPass"],
	)`
	d, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.IsPassDisabled("SomeCustomPass") {
		t.Fatalf("expected SomeCustomPass disabled")
	}
}

func TestStrictFieldsOption(t *testing.T) {
	input := `(
		name: "Lenient",
		shader_model: "5_0",
		lighting: (model: "phong", bands: [1, 2, 3]),
		passes: [
			(name: "Forward", priority: 10, draw_parameters: DrawParameters(), vertex_shader: r#"a"#, fragment_shader: r#"b"#),
		],
	)`
	if _, err := Parse([]byte(input), nil); !errors.Is(err, ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}

	d, err := Parse([]byte(input), &ParseOptions{DisableStrictFields: true})
	if err != nil {
		t.Fatalf("parse lenient: %v", err)
	}
	if d.Name != "Lenient" || len(d.Passes) != 1 {
		t.Fatalf("unexpected lenient result: %+v", d)
	}

	// Unknown variants stay fatal even with strict fields disabled.
	bad := `(name: "X", resources: [(name: "a", kind: Buffer([]), binding: 0)])`
	if _, err := Parse([]byte(bad), &ParseOptions{DisableStrictFields: true}); !errors.Is(err, ErrSchema) {
		t.Fatalf("expected schema error for unknown variant, got %v", err)
	}
}

func TestStrictFieldsLeafRecords(t *testing.T) {
	// Unknown fields inside the innermost records must also be skippable.
	input := `(
		name: "Lenient",
		resources: [
			(name: "properties", kind: PropertyGroup([
				(name: "tint", kind: Color(r: 10, g: 20, b: 30, a: 40, gamma: 2.2)),
			]), binding: 0),
		],
		passes: [
			(name: "Forward", draw_parameters: DrawParameters(
				color_write: ColorMask(red: true, shimmer: false, alpha: false),
				blend: Some(BlendParameters(
					func: BlendFunc(sfactor: One, premultiplied: true, dfactor: Zero),
					equation: BlendEquation(rgb: Add, dual_source: Max, alpha: Max),
				)),
				scissor_box: Some(ScissorBox(x: 1, y: 2, origin: "top_left", width: 3, height: 4)),
			), vertex_shader: r#"a"#, fragment_shader: r#"b"#),
		],
	)`
	if _, err := Parse([]byte(input), nil); !errors.Is(err, ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}

	d, err := Parse([]byte(input), &ParseOptions{DisableStrictFields: true})
	if err != nil {
		t.Fatalf("parse lenient: %v", err)
	}

	tint := d.Resources[0].Properties[0].Value
	if tint.Color != NewColor(10, 20, 30, 40) {
		t.Fatalf("unexpected tint: %+v", tint.Color)
	}
	dp := d.Passes[0].DrawParameters
	if dp.ColorWrite != (ColorMask{Red: true, Green: true, Blue: true, Alpha: false}) {
		t.Fatalf("unexpected color_write: %+v", dp.ColorWrite)
	}
	if dp.Blend == nil || dp.Blend.Func.SFactor != FactorOne || dp.Blend.Func.DFactor != FactorZero {
		t.Fatalf("unexpected blend func: %+v", dp.Blend)
	}
	if dp.Blend.Equation != (BlendEquation{RGB: BlendAdd, Alpha: BlendMax}) {
		t.Fatalf("unexpected blend equation: %+v", dp.Blend.Equation)
	}
	if dp.ScissorBox == nil || *dp.ScissorBox != (ScissorBox{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Fatalf("unexpected scissor_box: %+v", dp.ScissorBox)
	}
}

func TestParseComments(t *testing.T) {
	input := `// top comment
(
	name: "Commented", /* mid */
	disabled_passes: ["GBuffer"], // end
)`
	if _, err := Parse([]byte(input), nil); err != nil {
		t.Fatalf("parse with comments: %v", err)
	}
	if _, err := Parse([]byte(input), &ParseOptions{DisableComments: true}); err == nil {
		t.Fatalf("expected error with comments disabled")
	}
}

func TestBareOptionalPayload(t *testing.T) {
	input := `(
		name: "Bare",
		passes: [
			(name: "Forward", draw_parameters: DrawParameters(cull_face: Back, depth_test: Less), vertex_shader: r#"a"#, fragment_shader: r#"b"#),
		],
	)`
	d, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	dp := d.Passes[0].DrawParameters
	if dp.CullFace == nil || *dp.CullFace != CullBack {
		t.Fatalf("expected cull_face Back, got %v", dp.CullFace)
	}
	if dp.DepthTest == nil || *dp.DepthTest != CompareLess {
		t.Fatalf("expected depth_test Less, got %v", dp.DepthTest)
	}
}

func TestPropertyValues(t *testing.T) {
	d, err := DecodeFile(filepath.Join("testdata", "full.shader"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	res, ok := d.Resource("properties")
	if !ok {
		t.Fatalf("expected properties resource")
	}

	byName := make(map[string]PropertyValue, len(res.Properties))
	for _, p := range res.Properties {
		byName[p.Name] = p.Value
	}

	if v := byName["heightScale"]; v.Kind != PropertyKindFloat || v.Float != 0.25 {
		t.Fatalf("unexpected heightScale: %+v", v)
	}
	if v := byName["layerCount"]; v.Kind != PropertyKindInt || v.Int != 4 {
		t.Fatalf("unexpected layerCount: %+v", v)
	}
	if v := byName["nodeMask"]; v.Kind != PropertyKindUInt || v.UInt != 0xFF00FF00 {
		t.Fatalf("unexpected nodeMask: %+v", v)
	}
	if v := byName["useNormalMap"]; v.Kind != PropertyKindBool || !v.Bool {
		t.Fatalf("unexpected useNormalMap: %+v", v)
	}
	if v := byName["texScale"]; v.Kind != PropertyKindVector2 || v.Vector2.X() != 8 || v.Vector2.Y() != 8 {
		t.Fatalf("unexpected texScale: %+v", v)
	}
	if v := byName["sunDirection"]; v.Kind != PropertyKindVector3 || v.Vector3.Y() != -1 {
		t.Fatalf("unexpected sunDirection: %+v", v)
	}
	if v := byName["prevWorldViewProj"]; v.Kind != PropertyKindMatrix4 || v.Matrix4.At(0, 0) != 1 {
		t.Fatalf("unexpected prevWorldViewProj: %+v", v)
	}

	tex, ok := d.Resource("normalTexture")
	if !ok || tex.Kind != ResourceKindTexture || tex.Texture == nil {
		t.Fatalf("expected normalTexture resource")
	}
	if tex.Texture.Kind != Sampler2D || tex.Texture.Fallback != FallbackNormal {
		t.Fatalf("unexpected normalTexture payload: %+v", tex.Texture)
	}

	if _, ok := d.ResourceAt(3); !ok {
		t.Fatalf("expected resource at binding 3")
	}
}

func TestGeometryStage(t *testing.T) {
	d, err := DecodeFile(filepath.Join("testdata", "full.shader"), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	pass, ok := d.Pass("GBuffer")
	if !ok {
		t.Fatalf("expected GBuffer pass")
	}
	if !strings.Contains(pass.GeometryShader, "EmitVertex") {
		t.Fatalf("geometry shader source not preserved")
	}
	forward, _ := d.Pass("Forward")
	if forward.GeometryShader != "" {
		t.Fatalf("Forward pass should have no geometry stage")
	}
}

func TestValidateTable(t *testing.T) {
	cullBack := CullBack

	tests := []struct {
		name     string
		def      *Definition
		opt      *ValidateOptions
		wantWarn int
		wantErr  int
	}{
		{
			name: "ok_minimal",
			def: &Definition{
				Name: "Ok",
				Resources: []Resource{
					{Name: "properties", Kind: ResourceKindPropertyGroup, Binding: 0},
				},
				Passes: []RenderPass{
					{
						Name:           "Forward",
						DrawParameters: DrawParameters{CullFace: &cullBack},
						VertexShader:   "void main() {}",
						FragmentShader: "void main() {}",
					},
				},
			},
			wantWarn: 0,
			wantErr:  0,
		},
		{
			name: "unknown_pass_names",
			def: &Definition{
				Name:           "Odd",
				DisabledPasses: []string{"Bloom"},
				Passes: []RenderPass{
					{Name: "MyCustomPass", VertexShader: "v", FragmentShader: "f"},
				},
			},
			wantWarn: 2,
			wantErr:  0,
		},
		{
			name: "custom_known_passes",
			def: &Definition{
				Name:           "Odd",
				DisabledPasses: []string{"Bloom"},
				Passes: []RenderPass{
					{Name: "MyCustomPass", VertexShader: "v", FragmentShader: "f"},
				},
			},
			opt:      &ValidateOptions{KnownPasses: []string{"MyCustomPass", "Bloom"}},
			wantWarn: 0,
			wantErr:  0,
		},
		{
			name: "disabled_local_pass",
			def: &Definition{
				Name:           "SelfDisabled",
				DisabledPasses: []string{"Forward"},
				Passes: []RenderPass{
					{Name: "Forward", VertexShader: "v", FragmentShader: "f"},
				},
			},
			wantWarn: 1,
			wantErr:  0,
		},
		{
			name: "empty_sources",
			def: &Definition{
				Name: "Empty",
				Passes: []RenderPass{
					{Name: "Forward"},
				},
			},
			wantWarn: 2,
			wantErr:  0,
		},
		{
			name: "empty_sources_disabled_check",
			def: &Definition{
				Name: "Empty",
				Passes: []RenderPass{
					{Name: "Forward"},
				},
			},
			opt:      &ValidateOptions{DisableSourceCheck: true},
			wantWarn: 0,
			wantErr:  0,
		},
		{
			name: "binding_gap",
			def: &Definition{
				Name: "Gapped",
				Resources: []Resource{
					{Name: "a", Kind: ResourceKindPropertyGroup, Binding: 0},
					{Name: "b", Kind: ResourceKindPropertyGroup, Binding: 2},
				},
			},
			wantWarn: 1,
			wantErr:  0,
		},
		{
			name: "texture_without_payload",
			def: &Definition{
				Name: "Texless",
				Resources: []Resource{
					{Name: "diffuseTexture", Kind: ResourceKindTexture, Binding: 0},
				},
			},
			wantWarn: 0,
			wantErr:  1,
		},
		{
			name: "duplicate_property",
			def: &Definition{
				Name: "Dup",
				Resources: []Resource{
					{
						Name: "properties",
						Kind: ResourceKindPropertyGroup,
						Properties: []Property{
							{Name: "color", Value: ColorValue(ColorOpaque(1, 2, 3))},
							{Name: "color", Value: FloatValue(1)},
						},
						Binding: 0,
					},
				},
			},
			wantWarn: 0,
			wantErr:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate(tt.def, tt.opt)
			var warns, errs int
			for _, it := range issues {
				switch it.Level {
				case IssueWarning:
					warns++
				case IssueError:
					errs++
				}
			}
			if warns != tt.wantWarn || errs != tt.wantErr {
				t.Fatalf("unexpected issues: warnings=%d errors=%d issues=%v", warns, errs, issues)
			}
		})
	}
}

func TestRoundTripConstructed(t *testing.T) {
	cullBack := CullBack
	depthLess := CompareLess

	want := &Definition{
		Name: "Constructed",
		Resources: []Resource{
			{
				Name: "properties",
				Kind: ResourceKindPropertyGroup,
				Properties: []Property{
					{Name: "diffuseColor", Value: ColorValue(NewColor(10, 20, 30, 40))},
					{Name: "power", Value: FloatValue(32)},
					{Name: "enabled", Value: BoolValue(false)},
				},
				Binding: 0,
			},
			{
				Name:    "diffuseTexture",
				Kind:    ResourceKindTexture,
				Texture: &TextureResource{Kind: SamplerCube, Fallback: FallbackBlack},
				Binding: 1,
			},
		},
		DisabledPasses: []string{"PointShadow", "SpotShadow"},
		Passes: []RenderPass{
			{
				Name: "Forward",
				DrawParameters: DrawParameters{
					CullFace:   &cullBack,
					ColorWrite: ColorMask{Red: true, Green: true, Blue: true, Alpha: true},
					DepthWrite: true,
					DepthTest:  &depthLess,
					StencilTest: &StencilFunc{
						Func: CompareNotEqual,
						Ref:  1,
						Mask: 0xFF,
					},
					Blend: &BlendParameters{
						Func: BlendFunc{
							SFactor:      FactorSrcAlpha,
							DFactor:      FactorOneMinusSrcAlpha,
							AlphaSFactor: FactorOne,
							AlphaDFactor: FactorZero,
						},
						Equation: BlendEquation{RGB: BlendAdd, Alpha: BlendAdd},
					},
					StencilOp: StencilOp{
						Fail:      ActionKeep,
						ZFail:     ActionKeep,
						ZPass:     ActionReplace,
						WriteMask: 0xFF,
					},
					ScissorBox: &ScissorBox{X: 8, Y: 8, Width: 256, Height: 128},
				},
				VertexShader:   "void main() { gl_Position = vec4(0.0); }",
				FragmentShader: "out vec4 FragColor; void main() { FragColor = vec4(1.0); }",
			},
		},
	}

	out, err := Format(want, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	got, err := Parse(out, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round-trip mismatch:\n%s", string(out))
	}
}

func TestBuiltInDefinitions(t *testing.T) {
	gizmo := BuiltInGizmo()
	if gizmo.Name != "GizmoShader" {
		t.Fatalf("unexpected built-in gizmo name %q", gizmo.Name)
	}
	if gizmo != BuiltInGizmo() {
		t.Fatalf("built-in gizmo definition must be shared")
	}

	flat := BuiltInFlat()
	if flat.Name != "FlatShader" {
		t.Fatalf("unexpected built-in flat name %q", flat.Name)
	}
	if _, ok := flat.Resource("diffuseTexture"); !ok {
		t.Fatalf("expected diffuseTexture in built-in flat definition")
	}
	for _, d := range []*Definition{gizmo, flat} {
		if issues := Validate(d, nil); len(issues) != 0 {
			t.Fatalf("built-in %s has validation issues: %v", d.Name, issues)
		}
	}
}

func TestEncodeTextureWithoutPayload(t *testing.T) {
	d := &Definition{
		Name: "Texless",
		Resources: []Resource{
			{Name: "diffuseTexture", Kind: ResourceKindTexture, Binding: 0},
		},
	}

	_, err := Format(d, nil)
	if !errors.Is(err, ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestRawStringWithoutHashes(t *testing.T) {
	input := `(
		name: "Plain",
		passes: [
			(name: "Forward", draw_parameters: DrawParameters(), vertex_shader: r"void main() {}", fragment_shader: r"out vec4 c;"),
		],
	)`
	d, err := Parse([]byte(input), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Passes[0].VertexShader != "void main() {}" {
		t.Fatalf("unexpected vertex source %q", d.Passes[0].VertexShader)
	}
}

func TestRawStringWithHashes(t *testing.T) {
	src := "const char *s = \"#version 330\";"
	want := &Definition{
		Name: "Hashy",
		Passes: []RenderPass{
			{
				Name:           "Forward",
				DrawParameters: defaultDrawParameters(),
				VertexShader:   src,
				FragmentShader: "void main() {}",
			},
		},
	}

	out, err := Format(want, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	got, err := Parse(out, nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Passes[0].VertexShader != src {
		t.Fatalf("raw string mismatch: %q", got.Passes[0].VertexShader)
	}
}
