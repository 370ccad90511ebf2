package shaderdef

import (
	"sort"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected element
}

// defaultKnownPasses is the set of pass names the stock render pipeline
// understands. Definitions may still name other passes; a custom pipeline
// can register more, so mismatches are warnings only.
var defaultKnownPasses = []string{
	"GBuffer",
	"Forward",
	"DirectionalShadow",
	"PointShadow",
	"SpotShadow",
}

// Validate checks a definition beyond the fatal parse-time rules and returns
// advisory issues. Parse already guarantees name presence and binding/pass
// uniqueness; everything reported here is about renderer expectations.
func Validate(d *Definition, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	known := vopt.KnownPasses
	if known == nil {
		known = defaultKnownPasses
	}

	if !vopt.DisableKnownPassCheck {
		for _, pass := range d.Passes {
			if !containsName(known, pass.Name) {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    "unknown_pass",
					Message: "pass name not known to the render pipeline",
					Path:    pass.Name,
				})
			}
		}

		for _, name := range d.DisabledPasses {
			if !containsName(known, name) {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    "unknown_pass",
					Message: "disabled pass name not known to the render pipeline",
					Path:    name,
				})
			}
		}
	}

	// Disabling a pass the definition also provides means the embedded
	// sources for it can never run.
	for _, pass := range d.Passes {
		if d.IsPassDisabled(pass.Name) {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    "disabled_local_pass",
				Message: "pass is defined but listed in disabled_passes",
				Path:    pass.Name,
			})
		}
	}

	if !vopt.DisableSourceCheck {
		for _, pass := range d.Passes {
			if strings.TrimSpace(pass.VertexShader) == "" {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    "empty_stage",
					Message: "pass has empty vertex shader source",
					Path:    pass.Name,
				})
			}
			if strings.TrimSpace(pass.FragmentShader) == "" {
				out = append(out, Issue{
					Level:   IssueWarning,
					Code:    "empty_stage",
					Message: "pass has empty fragment shader source",
					Path:    pass.Name,
				})
			}
		}
	}

	if !vopt.DisableBindingGapCheck {
		out = append(out, validateBindingGaps(d.Resources)...)
	}

	for _, res := range d.Resources {
		out = append(out, validateResource(res)...)
	}

	return out
}

// validateBindingGaps warns when slot indices are not contiguous from zero.
// Renderers allocate bind group slots densely; a gap usually means a typo.
func validateBindingGaps(resources []Resource) []Issue {
	if len(resources) == 0 {
		return nil
	}

	bindings := make([]int, 0, len(resources))
	for _, r := range resources {
		bindings = append(bindings, r.Binding)
	}
	sort.Ints(bindings)

	var out []Issue
	for i, b := range bindings {
		if b != i {
			out = append(out, Issue{
				Level:   IssueWarning,
				Code:    "binding_gap",
				Message: "binding slots are not contiguous from zero",
			})
			break
		}
	}

	return out
}

// validateResource checks a single resource binding payload.
func validateResource(res Resource) []Issue {
	var out []Issue

	if res.Name == "" {
		out = append(out, Issue{
			Level:   IssueError,
			Code:    "unnamed_resource",
			Message: "resource has no name",
		})
	}

	if res.Kind == ResourceKindTexture && res.Texture == nil {
		out = append(out, Issue{
			Level:   IssueError,
			Code:    "missing_payload",
			Message: "texture resource without sampler payload",
			Path:    res.Name,
		})
	}

	seen := make(map[string]struct{}, len(res.Properties))
	for _, prop := range res.Properties {
		if _, ok := seen[prop.Name]; ok {
			out = append(out, Issue{
				Level:   IssueError,
				Code:    "duplicate_property",
				Message: "duplicate property name in group",
				Path:    res.Name + "." + prop.Name,
			})
			continue
		}
		seen[prop.Name] = struct{}{}
	}

	return out
}

// containsName reports whether names contains name.
func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
