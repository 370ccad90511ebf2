package shaderdef

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// DisableComments disables // and /* */ comments.
	DisableComments bool
	// DisableStrictFields skips unknown record fields instead of failing
	// with a schema error. Unknown enum variants remain fatal.
	DisableStrictFields bool
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Indent is the indentation string for nested blocks (default is four spaces).
	Indent string
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// KnownPasses overrides the built-in list of pass names understood by
	// the renderer. Used for pass-name checks on passes and disabled_passes.
	KnownPasses []string
	// DisableKnownPassCheck disables validation of pass names against the
	// well-known pass list.
	DisableKnownPassCheck bool
	// DisableSourceCheck disables warnings for passes with empty vertex or
	// fragment shader source.
	DisableSourceCheck bool
	// DisableBindingGapCheck disables warnings for non-contiguous binding
	// slot indices.
	DisableBindingGapCheck bool
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{}
	}

	return *o
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Indent: "    "}
	}

	out := *o
	if out.Indent == "" {
		out.Indent = "    "
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}
