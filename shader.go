package shaderdef

// ResourceKind indicates the payload variant of a resource binding.
type ResourceKind string

const (
	// ResourceKindPropertyGroup represents a uniform group with default values.
	ResourceKindPropertyGroup ResourceKind = "PropertyGroup"
	// ResourceKindTexture represents a texture binding.
	ResourceKindTexture ResourceKind = "Texture"
)

// Definition represents a parsed shader definition file. It is immutable
// after parsing and safe to share between renderer threads.
type Definition struct {
	Name           string       `json:"name" yaml:"name"`                                       // Shader name
	Resources      []Resource   `json:"resources,omitempty" yaml:"resources,omitempty"`         // Resource bindings in declaration order
	DisabledPasses []string     `json:"disabledPasses,omitempty" yaml:"disabledPasses,omitempty"` // Passes this shader opts out of
	Passes         []RenderPass `json:"passes,omitempty" yaml:"passes,omitempty"`               // Render passes in declaration order
}

// Resource represents a single resource binding. The payload depends on Kind:
// Properties for PropertyGroup, Texture for Texture.
type Resource struct {
	Name       string           `json:"name" yaml:"name"`                               // Resource name
	Kind       ResourceKind     `json:"kind" yaml:"kind"`                               // Payload variant
	Properties []Property       `json:"properties,omitempty" yaml:"properties,omitempty"` // Property group payload
	Texture    *TextureResource `json:"texture,omitempty" yaml:"texture,omitempty"`     // Texture payload
	Binding    int              `json:"binding" yaml:"binding"`                         // Slot index, unique per definition
}

// Property is a named uniform default inside a property group.
type Property struct {
	Name  string        `json:"name" yaml:"name"`   // Property name
	Value PropertyValue `json:"value" yaml:"value"` // Default value
}

// RenderPass describes one configured pipeline invocation: fixed-function
// state plus the shader stages executed for it.
type RenderPass struct {
	Name           string         `json:"name" yaml:"name"`                     // Pass name, unique per definition
	DrawParameters DrawParameters `json:"drawParameters" yaml:"drawParameters"` // Fixed-function state
	VertexShader   string         `json:"vertexShader" yaml:"vertexShader"`     // Vertex stage source, verbatim
	FragmentShader string         `json:"fragmentShader" yaml:"fragmentShader"` // Fragment stage source, verbatim
	GeometryShader string         `json:"geometryShader,omitempty" yaml:"geometryShader,omitempty"` // Optional geometry stage source
}

// Pass returns the pass with the given name.
func (d *Definition) Pass(name string) (*RenderPass, bool) {
	for i := range d.Passes {
		if d.Passes[i].Name == name {
			return &d.Passes[i], true
		}
	}

	return nil, false
}

// Resource returns the resource with the given name.
func (d *Definition) Resource(name string) (*Resource, bool) {
	for i := range d.Resources {
		if d.Resources[i].Name == name {
			return &d.Resources[i], true
		}
	}

	return nil, false
}

// ResourceAt returns the resource bound to the given slot index.
func (d *Definition) ResourceAt(binding int) (*Resource, bool) {
	for i := range d.Resources {
		if d.Resources[i].Binding == binding {
			return &d.Resources[i], true
		}
	}

	return nil, false
}

// IsPassDisabled reports whether the named pass is listed in DisabledPasses.
// The name may refer to a pass defined by a shared base pipeline rather than
// one of d's own passes.
func (d *Definition) IsPassDisabled(name string) bool {
	for _, p := range d.DisabledPasses {
		if p == name {
			return true
		}
	}

	return false
}

// parseResourceKind maps a variant name to a ResourceKind.
func parseResourceKind(s string) (ResourceKind, bool) {
	switch ResourceKind(s) {
	case ResourceKindPropertyGroup, ResourceKindTexture:
		return ResourceKind(s), true
	default:
		return "", false
	}
}
