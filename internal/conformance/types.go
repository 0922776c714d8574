// Package conformance runs YAML conformance vectors against the profile
// models.
//
// A vector names an input document, optional edits and the attributes the
// re-encoded document must carry:
//
//	id: ANIM-001
//	input: |
//	  <ValueTreeRoot><animationTree animationMode="1" mod2="50.9"/></ValueTreeRoot>
//	steps:
//	  - action: mod2
//	    params: { value: "20" }
//	expect:
//	  elements:
//	    animationTree: { animationMode: "1", mod2: "20" }
package conformance

// Vector is a single conformance case.
type Vector struct {
	// ID is the unique vector identifier (e.g., "MEGA-003").
	ID string `yaml:"id"`

	// Description explains what the vector checks.
	Description string `yaml:"description"`

	// Input is the XML document to parse.
	Input string `yaml:"input"`

	// Steps are edits applied after parsing, in order.
	Steps []Step `yaml:"steps,omitempty"`

	// Expect describes the outcome.
	Expect Expect `yaml:"expect"`

	// Tags for categorizing vectors.
	Tags []string `yaml:"tags,omitempty"`
}

// Step is one edit.
type Step struct {
	// Action is the edit to perform (e.g., "style", "gain").
	Action string `yaml:"action"`

	// Params are the arguments of the action.
	Params map[string]string `yaml:"params,omitempty"`
}

// Expect is the expected outcome of a vector.
type Expect struct {
	// Error names the expected failure: a parse error kind ("expected int",
	// "expected float", "expected enum", "invalid colours"), "out of range" or
	// "unavailable". Empty means success.
	Error string `yaml:"error,omitempty"`

	// Elements maps a slash-separated element path below the document root
	// to attributes it must carry.
	Elements map[string]map[string]string `yaml:"elements,omitempty"`

	// Absent maps an element path to attributes it must not carry.
	Absent map[string][]string `yaml:"absent,omitempty"`

	// Children maps an element path to its expected child element names.
	Children map[string][]string `yaml:"children,omitempty"`
}

// LoadError provides details about a vector loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return e.File + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.File + ": " + e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
