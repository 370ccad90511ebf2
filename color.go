package shaderdef

// Color represents an 8-bit RGBA color used as a property default.
type Color struct {
	R uint8 `json:"r" yaml:"r"` // Red channel component
	G uint8 `json:"g" yaml:"g"` // Green channel component
	B uint8 `json:"b" yaml:"b"` // Blue channel component
	A uint8 `json:"a" yaml:"a"` // Alpha channel component
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NewColor creates a Color from RGBA bytes.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorOpaque creates a Color with alpha=255.
func ColorOpaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromFloats creates a Color from normalized [0,1] components.
func FromFloats(r, g, b, a float64) Color {
	return Color{
		R: uint8(Clamp01(r) * 255),
		G: uint8(Clamp01(g) * 255),
		B: uint8(Clamp01(b) * 255),
		A: uint8(Clamp01(a) * 255),
	}
}

// ToFloats converts color to normalized [0,1] components in RGBA order.
func (c Color) ToFloats() [4]float64 {
	return [4]float64{
		float64(c.R) / 255,
		float64(c.G) / 255,
		float64(c.B) / 255,
		float64(c.A) / 255,
	}
}
