package shaderdef

import "github.com/go-gl/mathgl/mgl32"

// PropertyKind represents the variant of a property value.
type PropertyKind string

// Property value kinds.
const (
	// PropertyKindFloat indicates a single float value.
	PropertyKindFloat PropertyKind = "Float"
	// PropertyKindInt indicates a signed integer value.
	PropertyKindInt PropertyKind = "Int"
	// PropertyKindUInt indicates an unsigned integer value.
	PropertyKindUInt PropertyKind = "UInt"
	// PropertyKindBool indicates a boolean value.
	PropertyKindBool PropertyKind = "Bool"
	// PropertyKindVector2 indicates a 2-component float vector.
	PropertyKindVector2 PropertyKind = "Vector2"
	// PropertyKindVector3 indicates a 3-component float vector.
	PropertyKindVector3 PropertyKind = "Vector3"
	// PropertyKindVector4 indicates a 4-component float vector.
	PropertyKindVector4 PropertyKind = "Vector4"
	// PropertyKindMatrix2 indicates a 2x2 float matrix.
	PropertyKindMatrix2 PropertyKind = "Matrix2"
	// PropertyKindMatrix3 indicates a 3x3 float matrix.
	PropertyKindMatrix3 PropertyKind = "Matrix3"
	// PropertyKindMatrix4 indicates a 4x4 float matrix.
	PropertyKindMatrix4 PropertyKind = "Matrix4"
	// PropertyKindColor indicates an 8-bit RGBA color.
	PropertyKindColor PropertyKind = "Color"
)

// PropertyValue is a tagged variant holding the default value of a shader
// property. Only the field matching Kind is meaningful.
type PropertyValue struct {
	Kind    PropertyKind `json:"kind" yaml:"kind"`                             // Value variant tag
	Float   float64      `json:"float,omitempty" yaml:"float,omitempty"`       // Float payload
	Int     int64        `json:"int,omitempty" yaml:"int,omitempty"`           // Int payload
	UInt    uint64       `json:"uint,omitempty" yaml:"uint,omitempty"`         // UInt payload
	Bool    bool         `json:"bool,omitempty" yaml:"bool,omitempty"`         // Bool payload
	Vector2 mgl32.Vec2   `json:"vector2,omitempty" yaml:"vector2,omitempty"`   // Vector2 payload
	Vector3 mgl32.Vec3   `json:"vector3,omitempty" yaml:"vector3,omitempty"`   // Vector3 payload
	Vector4 mgl32.Vec4   `json:"vector4,omitempty" yaml:"vector4,omitempty"`   // Vector4 payload
	Matrix2 mgl32.Mat2   `json:"matrix2,omitempty" yaml:"matrix2,omitempty"`   // Matrix2 payload
	Matrix3 mgl32.Mat3   `json:"matrix3,omitempty" yaml:"matrix3,omitempty"`   // Matrix3 payload
	Matrix4 mgl32.Mat4   `json:"matrix4,omitempty" yaml:"matrix4,omitempty"`   // Matrix4 payload
	Color   Color        `json:"color,omitempty" yaml:"color,omitempty"`       // Color payload
}

// FloatValue creates a Float property value.
func FloatValue(v float64) PropertyValue {
	return PropertyValue{Kind: PropertyKindFloat, Float: v}
}

// IntValue creates an Int property value.
func IntValue(v int64) PropertyValue {
	return PropertyValue{Kind: PropertyKindInt, Int: v}
}

// UIntValue creates a UInt property value.
func UIntValue(v uint64) PropertyValue {
	return PropertyValue{Kind: PropertyKindUInt, UInt: v}
}

// BoolValue creates a Bool property value.
func BoolValue(v bool) PropertyValue {
	return PropertyValue{Kind: PropertyKindBool, Bool: v}
}

// Vector2Value creates a Vector2 property value.
func Vector2Value(v mgl32.Vec2) PropertyValue {
	return PropertyValue{Kind: PropertyKindVector2, Vector2: v}
}

// Vector3Value creates a Vector3 property value.
func Vector3Value(v mgl32.Vec3) PropertyValue {
	return PropertyValue{Kind: PropertyKindVector3, Vector3: v}
}

// Vector4Value creates a Vector4 property value.
func Vector4Value(v mgl32.Vec4) PropertyValue {
	return PropertyValue{Kind: PropertyKindVector4, Vector4: v}
}

// Matrix2Value creates a Matrix2 property value.
func Matrix2Value(v mgl32.Mat2) PropertyValue {
	return PropertyValue{Kind: PropertyKindMatrix2, Matrix2: v}
}

// Matrix3Value creates a Matrix3 property value.
func Matrix3Value(v mgl32.Mat3) PropertyValue {
	return PropertyValue{Kind: PropertyKindMatrix3, Matrix3: v}
}

// Matrix4Value creates a Matrix4 property value.
func Matrix4Value(v mgl32.Mat4) PropertyValue {
	return PropertyValue{Kind: PropertyKindMatrix4, Matrix4: v}
}

// ColorValue creates a Color property value.
func ColorValue(c Color) PropertyValue {
	return PropertyValue{Kind: PropertyKindColor, Color: c}
}

// componentCount returns the number of scalar components for vector and
// matrix kinds, or 0 for scalar/color kinds.
func (k PropertyKind) componentCount() int {
	switch k {
	case PropertyKindVector2:
		return 2
	case PropertyKindVector3:
		return 3
	case PropertyKindVector4, PropertyKindMatrix2:
		return 4
	case PropertyKindMatrix3:
		return 9
	case PropertyKindMatrix4:
		return 16
	default:
		return 0
	}
}
