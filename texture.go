package shaderdef

// SamplerKind indicates the GPU sampler type of a texture resource.
type SamplerKind string

const (
	// Sampler1D represents a 1D texture sampler.
	Sampler1D SamplerKind = "Sampler1D"
	// Sampler2D represents a 2D texture sampler.
	Sampler2D SamplerKind = "Sampler2D"
	// Sampler3D represents a 3D (volume) texture sampler.
	Sampler3D SamplerKind = "Sampler3D"
	// SamplerCube represents a cube map sampler.
	SamplerCube SamplerKind = "SamplerCube"
	// USampler2D represents an unsigned integer 2D texture sampler.
	USampler2D SamplerKind = "USampler2D"
)

// SamplerFallback selects the built-in texture used when no texture is bound
// to the slot by a material instance.
type SamplerFallback string

const (
	// FallbackWhite is an opaque white 1x1 texture.
	FallbackWhite SamplerFallback = "White"
	// FallbackBlack is an opaque black 1x1 texture.
	FallbackBlack SamplerFallback = "Black"
	// FallbackNormal is a flat normal map texture (0.5, 0.5, 1.0).
	FallbackNormal SamplerFallback = "Normal"
)

// TextureResource describes a texture resource binding payload.
type TextureResource struct {
	Kind     SamplerKind     `json:"kind" yaml:"kind"`         // Sampler type
	Fallback SamplerFallback `json:"fallback" yaml:"fallback"` // Fallback texture
}

// parseSamplerKind maps a variant name to a SamplerKind.
func parseSamplerKind(s string) (SamplerKind, bool) {
	switch SamplerKind(s) {
	case Sampler1D, Sampler2D, Sampler3D, SamplerCube, USampler2D:
		return SamplerKind(s), true
	default:
		return "", false
	}
}

// parseSamplerFallback maps a variant name to a SamplerFallback.
func parseSamplerFallback(s string) (SamplerFallback, bool) {
	switch SamplerFallback(s) {
	case FallbackWhite, FallbackBlack, FallbackNormal:
		return SamplerFallback(s), true
	default:
		return "", false
	}
}
