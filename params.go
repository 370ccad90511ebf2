package shaderdef

// CullFace indicates which triangle faces are discarded before rasterization.
type CullFace string

const (
	// CullFront discards front-facing triangles.
	CullFront CullFace = "Front"
	// CullBack discards back-facing triangles.
	CullBack CullFace = "Back"
)

// CompareFunc is a depth/stencil comparison function.
type CompareFunc string

const (
	// CompareNever never passes.
	CompareNever CompareFunc = "Never"
	// CompareLess passes if the incoming value is less than the stored one.
	CompareLess CompareFunc = "Less"
	// CompareEqual passes if the values are equal.
	CompareEqual CompareFunc = "Equal"
	// CompareLessOrEqual passes if the incoming value is less than or equal.
	CompareLessOrEqual CompareFunc = "LessOrEqual"
	// CompareGreater passes if the incoming value is greater.
	CompareGreater CompareFunc = "Greater"
	// CompareNotEqual passes if the values differ.
	CompareNotEqual CompareFunc = "NotEqual"
	// CompareGreaterOrEqual passes if the incoming value is greater or equal.
	CompareGreaterOrEqual CompareFunc = "GreaterOrEqual"
	// CompareAlways always passes.
	CompareAlways CompareFunc = "Always"
)

// BlendFactor is a source or destination blending factor.
type BlendFactor string

const (
	// FactorZero is the constant zero factor.
	FactorZero BlendFactor = "Zero"
	// FactorOne is the constant one factor.
	FactorOne BlendFactor = "One"
	// FactorSrcColor scales by the source color.
	FactorSrcColor BlendFactor = "SrcColor"
	// FactorOneMinusSrcColor scales by one minus the source color.
	FactorOneMinusSrcColor BlendFactor = "OneMinusSrcColor"
	// FactorDstColor scales by the destination color.
	FactorDstColor BlendFactor = "DstColor"
	// FactorOneMinusDstColor scales by one minus the destination color.
	FactorOneMinusDstColor BlendFactor = "OneMinusDstColor"
	// FactorSrcAlpha scales by the source alpha.
	FactorSrcAlpha BlendFactor = "SrcAlpha"
	// FactorOneMinusSrcAlpha scales by one minus the source alpha.
	FactorOneMinusSrcAlpha BlendFactor = "OneMinusSrcAlpha"
	// FactorDstAlpha scales by the destination alpha.
	FactorDstAlpha BlendFactor = "DstAlpha"
	// FactorOneMinusDstAlpha scales by one minus the destination alpha.
	FactorOneMinusDstAlpha BlendFactor = "OneMinusDstAlpha"
	// FactorConstantColor scales by the constant blend color.
	FactorConstantColor BlendFactor = "ConstantColor"
	// FactorOneMinusConstantColor scales by one minus the constant blend color.
	FactorOneMinusConstantColor BlendFactor = "OneMinusConstantColor"
	// FactorConstantAlpha scales by the constant blend alpha.
	FactorConstantAlpha BlendFactor = "ConstantAlpha"
	// FactorOneMinusConstantAlpha scales by one minus the constant blend alpha.
	FactorOneMinusConstantAlpha BlendFactor = "OneMinusConstantAlpha"
	// FactorSrcAlphaSaturate scales by min(src alpha, 1 - dst alpha).
	FactorSrcAlphaSaturate BlendFactor = "SrcAlphaSaturate"
)

// BlendMode is a per-channel blend combine operation.
type BlendMode string

const (
	// BlendAdd adds source and destination.
	BlendAdd BlendMode = "Add"
	// BlendSubtract subtracts destination from source.
	BlendSubtract BlendMode = "Subtract"
	// BlendReverseSubtract subtracts source from destination.
	BlendReverseSubtract BlendMode = "ReverseSubtract"
	// BlendMin takes the per-channel minimum.
	BlendMin BlendMode = "Min"
	// BlendMax takes the per-channel maximum.
	BlendMax BlendMode = "Max"
)

// StencilAction is the action applied to the stencil buffer.
type StencilAction string

const (
	// ActionKeep keeps the current value.
	ActionKeep StencilAction = "Keep"
	// ActionZero sets the value to zero.
	ActionZero StencilAction = "Zero"
	// ActionReplace replaces the value with the reference.
	ActionReplace StencilAction = "Replace"
	// ActionIncr increments with clamping.
	ActionIncr StencilAction = "Incr"
	// ActionIncrWrap increments with wrapping.
	ActionIncrWrap StencilAction = "IncrWrap"
	// ActionDecr decrements with clamping.
	ActionDecr StencilAction = "Decr"
	// ActionDecrWrap decrements with wrapping.
	ActionDecrWrap StencilAction = "DecrWrap"
	// ActionInvert bitwise-inverts the value.
	ActionInvert StencilAction = "Invert"
)

// ColorMask controls which color channels are written by a pass.
type ColorMask struct {
	Red   bool `json:"red" yaml:"red"`     // Write red channel
	Green bool `json:"green" yaml:"green"` // Write green channel
	Blue  bool `json:"blue" yaml:"blue"`   // Write blue channel
	Alpha bool `json:"alpha" yaml:"alpha"` // Write alpha channel
}

// StencilFunc describes the stencil test comparison.
type StencilFunc struct {
	Func CompareFunc `json:"func" yaml:"func"` // Comparison function
	Ref  uint32      `json:"ref" yaml:"ref"`   // Reference value
	Mask uint32      `json:"mask" yaml:"mask"` // Comparison mask
}

// StencilOp describes how the stencil buffer is updated.
type StencilOp struct {
	Fail      StencilAction `json:"fail" yaml:"fail"`           // Action when the stencil test fails
	ZFail     StencilAction `json:"zfail" yaml:"zfail"`         // Action when the depth test fails
	ZPass     StencilAction `json:"zpass" yaml:"zpass"`         // Action when both tests pass
	WriteMask uint32        `json:"writeMask" yaml:"writeMask"` // Write mask
}

// BlendFunc holds the source and destination factors for color and alpha.
type BlendFunc struct {
	SFactor      BlendFactor `json:"sfactor" yaml:"sfactor"`           // Source color factor
	DFactor      BlendFactor `json:"dfactor" yaml:"dfactor"`           // Destination color factor
	AlphaSFactor BlendFactor `json:"alphaSfactor" yaml:"alphaSfactor"` // Source alpha factor
	AlphaDFactor BlendFactor `json:"alphaDfactor" yaml:"alphaDfactor"` // Destination alpha factor
}

// BlendEquation holds the per-channel combine operations.
type BlendEquation struct {
	RGB   BlendMode `json:"rgb" yaml:"rgb"`     // Color combine operation
	Alpha BlendMode `json:"alpha" yaml:"alpha"` // Alpha combine operation
}

// BlendParameters describes the blending state of a pass.
type BlendParameters struct {
	Func     BlendFunc     `json:"func" yaml:"func"`         // Blend factors
	Equation BlendEquation `json:"equation" yaml:"equation"` // Combine operations
}

// ScissorBox limits rasterization to a screen-space rectangle.
type ScissorBox struct {
	X      int32 `json:"x" yaml:"x"`           // Left edge
	Y      int32 `json:"y" yaml:"y"`           // Bottom edge
	Width  int32 `json:"width" yaml:"width"`   // Rectangle width
	Height int32 `json:"height" yaml:"height"` // Rectangle height
}

// DrawParameters is the fixed-function pipeline state of a render pass.
// Nil pointer fields mean the corresponding test or state is disabled.
type DrawParameters struct {
	CullFace    *CullFace        `json:"cullFace,omitempty" yaml:"cullFace,omitempty"`       // Face culling, nil disables
	ColorWrite  ColorMask        `json:"colorWrite" yaml:"colorWrite"`                       // Color channel write mask
	DepthWrite  bool             `json:"depthWrite" yaml:"depthWrite"`                       // Depth buffer writes
	StencilTest *StencilFunc     `json:"stencilTest,omitempty" yaml:"stencilTest,omitempty"` // Stencil test, nil disables
	DepthTest   *CompareFunc     `json:"depthTest,omitempty" yaml:"depthTest,omitempty"`     // Depth test, nil disables
	Blend       *BlendParameters `json:"blend,omitempty" yaml:"blend,omitempty"`             // Blending, nil disables
	StencilOp   StencilOp        `json:"stencilOp" yaml:"stencilOp"`                         // Stencil buffer update
	ScissorBox  *ScissorBox      `json:"scissorBox,omitempty" yaml:"scissorBox,omitempty"`   // Scissor rectangle, nil disables
}

// defaultDrawParameters returns the permissive state used for absent fields:
// all color channels and depth writes enabled, stencil untouched.
func defaultDrawParameters() DrawParameters {
	return DrawParameters{
		ColorWrite: ColorMask{Red: true, Green: true, Blue: true, Alpha: true},
		DepthWrite: true,
		StencilOp: StencilOp{
			Fail:      ActionKeep,
			ZFail:     ActionKeep,
			ZPass:     ActionKeep,
			WriteMask: 0xFFFFFFFF,
		},
	}
}

// parseCullFace maps a variant name to a CullFace.
func parseCullFace(s string) (CullFace, bool) {
	switch CullFace(s) {
	case CullFront, CullBack:
		return CullFace(s), true
	default:
		return "", false
	}
}

// parseCompareFunc maps a variant name to a CompareFunc.
func parseCompareFunc(s string) (CompareFunc, bool) {
	switch CompareFunc(s) {
	case CompareNever, CompareLess, CompareEqual, CompareLessOrEqual,
		CompareGreater, CompareNotEqual, CompareGreaterOrEqual, CompareAlways:
		return CompareFunc(s), true
	default:
		return "", false
	}
}

// parseBlendFactor maps a variant name to a BlendFactor.
func parseBlendFactor(s string) (BlendFactor, bool) {
	switch BlendFactor(s) {
	case FactorZero, FactorOne, FactorSrcColor, FactorOneMinusSrcColor,
		FactorDstColor, FactorOneMinusDstColor, FactorSrcAlpha,
		FactorOneMinusSrcAlpha, FactorDstAlpha, FactorOneMinusDstAlpha,
		FactorConstantColor, FactorOneMinusConstantColor, FactorConstantAlpha,
		FactorOneMinusConstantAlpha, FactorSrcAlphaSaturate:
		return BlendFactor(s), true
	default:
		return "", false
	}
}

// parseBlendMode maps a variant name to a BlendMode.
func parseBlendMode(s string) (BlendMode, bool) {
	switch BlendMode(s) {
	case BlendAdd, BlendSubtract, BlendReverseSubtract, BlendMin, BlendMax:
		return BlendMode(s), true
	default:
		return "", false
	}
}

// parseStencilAction maps a variant name to a StencilAction.
func parseStencilAction(s string) (StencilAction, bool) {
	switch StencilAction(s) {
	case ActionKeep, ActionZero, ActionReplace, ActionIncr, ActionIncrWrap,
		ActionDecr, ActionDecrWrap, ActionInvert:
		return StencilAction(s), true
	default:
		return "", false
	}
}
