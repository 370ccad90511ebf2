package shaderdef

import "errors"

var (
	// ErrSyntax indicates malformed shader definition text.
	ErrSyntax = errors.New("syntax error")

	// ErrSchema indicates an unknown field or variant in the definition.
	ErrSchema = errors.New("schema error")

	// ErrDuplicateBinding indicates two resources sharing a binding index.
	ErrDuplicateBinding = errors.New("duplicate binding")

	// ErrDuplicatePass indicates two passes sharing a name.
	ErrDuplicatePass = errors.New("duplicate pass")
)
