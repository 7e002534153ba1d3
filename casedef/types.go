package casedef

// File represents a parsed case definition document.
type File struct {
	// Cases is the ordered list of case definitions.
	// At least the empty list is required; a file with no "cases" key
	// resolves to no cases.
	Cases []Definition `yaml:"cases" json:"cases"`
}

// Definition describes one user-defined case before resolution.
type Definition struct {
	// Name is the case name used for lookup.
	// This field is required and must be unique within the file.
	Name string `yaml:"name" json:"name"`

	// Pattern is a built-in pattern name such as "lowercase" or "capital".
	// When omitted, word casing is left untouched.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Delimiter is the string inserted between words on output.
	// May be empty for flat output.
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// Boundaries select where input splits into words.
	// When omitted entirely, the default boundary set applies; an explicitly
	// empty list produces a case that never splits its input.
	Boundaries []BoundaryRef `yaml:"boundaries,omitempty" json:"boundaries,omitempty"`
}

// BoundaryRef names a single boundary in a definition.
//
// Exactly one of Builtin or Delim must be set.
type BoundaryRef struct {
	// Builtin is a built-in boundary name such as "underscore" or
	// "lower-upper", in any spelling casing.ParseBoundary accepts.
	Builtin string `yaml:"builtin,omitempty" json:"builtin,omitempty"`

	// Delim is a literal delimiter to split at and remove.
	Delim string `yaml:"delim,omitempty" json:"delim,omitempty"`
}
