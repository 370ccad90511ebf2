package shaderdef

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed shaders
var builtinFS embed.FS

// BuiltInGizmo returns the definition used for editor gizmo overlays: a
// flat-color forward pass with alpha blending and a small depth bias.
// The returned definition is shared; callers must not modify it.
func BuiltInGizmo() *Definition {
	return gizmoDef()
}

// BuiltInFlat returns a minimal unlit textured definition. The returned
// definition is shared; callers must not modify it.
func BuiltInFlat() *Definition {
	return flatDef()
}

var (
	gizmoDef = sync.OnceValue(func() *Definition { return mustBuiltin("shaders/gizmo.shader") })
	flatDef  = sync.OnceValue(func() *Definition { return mustBuiltin("shaders/flat.shader") })
)

// mustBuiltin parses an embedded definition. Embedded sources are covered by
// tests, so a failure here is a build defect.
func mustBuiltin(name string) *Definition {
	data, err := builtinFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("shaderdef: read built-in %s: %v", name, err))
	}

	def, err := Parse(data, nil)
	if err != nil {
		panic(fmt.Sprintf("shaderdef: parse built-in %s: %v", name, err))
	}

	return def
}
