/*
Package shaderdef provides parsing, writing, and validation for declarative
shader definition files.

A definition describes a named shader: its resource bindings (property groups
with default values, texture slots), the render passes it participates in with
their fixed-function pipeline state, the passes it explicitly opts out of, and
the embedded vertex/fragment source text for each pass. The definition is
immutable after parsing and carries no GPU state; compiling the sources and
configuring the pipeline is the renderer's job.

Reader example:

	def, err := shaderdef.DecodeFile("gizmo.shader", nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := shaderdef.Format(def, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := shaderdef.Validate(def, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Pass lookup example:

	if pass, ok := def.Pass("Forward"); ok && !def.IsPassDisabled("Forward") {
		_ = pass.VertexShader
	}
*/
package shaderdef
