package casing

import "github.com/erraggy/casetools/caseerrors"

// Case bundles the three ingredients of one naming convention: the boundary
// set that splits identifiers already written in it, the pattern that cases
// each word, and the delimiter that joins words back together.
//
// The built-in catalog is exported as package variables; Custom builds
// user-defined cases from the same parts.
type Case struct {
	name       string
	boundaries []Boundary
	pattern    Pattern
	delimiter  string
}

// Built-in cases.
var (
	// Snake renders "my_variable_name".
	Snake = Case{name: "Snake", boundaries: []Boundary{Underscore}, pattern: PatternLowercase, delimiter: "_"}

	// Constant renders "MY_VARIABLE_NAME".
	Constant = Case{name: "Constant", boundaries: []Boundary{Underscore}, pattern: PatternUppercase, delimiter: "_"}

	// UpperSnake is Constant under its other common name.
	UpperSnake = Case{name: "UpperSnake", boundaries: []Boundary{Underscore}, pattern: PatternUppercase, delimiter: "_"}

	// Ada renders "My_Variable_Name".
	Ada = Case{name: "Ada", boundaries: []Boundary{Underscore}, pattern: PatternCapital, delimiter: "_"}

	// Kebab renders "my-variable-name".
	Kebab = Case{name: "Kebab", boundaries: []Boundary{Hyphen}, pattern: PatternLowercase, delimiter: "-"}

	// Cobol renders "MY-VARIABLE-NAME".
	Cobol = Case{name: "Cobol", boundaries: []Boundary{Hyphen}, pattern: PatternUppercase, delimiter: "-"}

	// UpperKebab is Cobol under its other common name.
	UpperKebab = Case{name: "UpperKebab", boundaries: []Boundary{Hyphen}, pattern: PatternUppercase, delimiter: "-"}

	// Train renders "My-Variable-Name".
	Train = Case{name: "Train", boundaries: []Boundary{Hyphen}, pattern: PatternCapital, delimiter: "-"}

	// Flat renders "myvariablename". It has no boundaries: a flat identifier
	// cannot be split back into words.
	Flat = Case{name: "Flat", pattern: PatternLowercase, delimiter: ""}

	// UpperFlat renders "MYVARIABLENAME".
	UpperFlat = Case{name: "UpperFlat", pattern: PatternUppercase, delimiter: ""}

	// Pascal renders "MyVariableName".
	Pascal = Case{name: "Pascal", boundaries: camelBoundaries(), pattern: PatternCapital, delimiter: ""}

	// UpperCamel is Pascal under its other common name.
	UpperCamel = Case{name: "UpperCamel", boundaries: camelBoundaries(), pattern: PatternCapital, delimiter: ""}

	// Camel renders "myVariableName".
	Camel = Case{name: "Camel", boundaries: camelBoundaries(), pattern: PatternCamel, delimiter: ""}

	// Lower renders "my variable name".
	Lower = Case{name: "Lower", boundaries: []Boundary{Space}, pattern: PatternLowercase, delimiter: " "}

	// Upper renders "MY VARIABLE NAME".
	Upper = Case{name: "Upper", boundaries: []Boundary{Space}, pattern: PatternUppercase, delimiter: " "}

	// Title renders "My Variable Name".
	Title = Case{name: "Title", boundaries: []Boundary{Space}, pattern: PatternCapital, delimiter: " "}

	// Sentence renders "My variable name".
	Sentence = Case{name: "Sentence", boundaries: []Boundary{Space}, pattern: PatternSentence, delimiter: " "}

	// Alternating renders "mY vArIaBlE nAmE".
	Alternating = Case{name: "Alternating", boundaries: []Boundary{Space}, pattern: PatternAlternating, delimiter: " "}

	// Toggle renders "mY vARIABLE nAME".
	Toggle = Case{name: "Toggle", boundaries: []Boundary{Space}, pattern: PatternToggle, delimiter: " "}

	// Random cases every letter by a coin flip, such as "MY vaRiabLe NamE".
	Random = Case{name: "Random", boundaries: []Boundary{Space}, pattern: PatternRandom, delimiter: " "}

	// PseudoRandom cases letters randomly without ever repeating a case on
	// adjacent letters, such as "mY vArIabLe nAme".
	PseudoRandom = Case{name: "PseudoRandom", boundaries: []Boundary{Space}, pattern: PatternPseudoRandom, delimiter: " "}
)

// camelBoundaries returns the boundary set of the delimiterless capitalized
// cases: every letter and digit transition, but no literal delimiter.
func camelBoundaries() []Boundary {
	return []Boundary{LowerUpper, Acronym, LowerDigit, UpperDigit, DigitLower, DigitUpper}
}

// Cases returns the complete built-in catalog, aliases and random cases
// included, in listing order.
func Cases() []Case {
	return []Case{
		Snake, Constant, UpperSnake, Ada,
		Kebab, Cobol, UpperKebab, Train,
		Flat, UpperFlat,
		Pascal, UpperCamel, Camel,
		Lower, Upper, Title, Sentence, Alternating, Toggle,
		Random, PseudoRandom,
	}
}

// DeterministicCases returns the catalog used for detection, in detection
// order. Aliases and the random cases are excluded: aliases would duplicate
// every match and random output cannot be recognized.
func DeterministicCases() []Case {
	return []Case{
		Snake, Constant, Ada,
		Kebab, Cobol, Train,
		Flat, UpperFlat,
		Pascal, Camel,
		Lower, Upper, Title, Sentence, Alternating, Toggle,
	}
}

// ParseCase resolves a case by name. Matching ignores letter casing and the
// separators "-", "_", and " ", so "upper-camel", "UpperCamel", and
// "upper_camel" all resolve.
func ParseCase(name string) (Case, error) {
	key := normalizeName(name)
	for _, c := range Cases() {
		if normalizeName(c.name) == key {
			return c, nil
		}
	}
	return Case{}, &caseerrors.UnknownNameError{
		Kind:    caseerrors.KindCase,
		Name:    name,
		Message: "see Cases for the catalog",
	}
}

// Custom builds a user-defined case from a boundary set, a pattern, and a
// delimiter. The boundary set is copied and deduplicated; a nil pattern
// leaves word casing untouched.
func Custom(name string, boundaries []Boundary, pattern Pattern, delimiter string) Case {
	return Case{
		name:       name,
		boundaries: dedupeBoundaries(boundaries),
		pattern:    pattern,
		delimiter:  delimiter,
	}
}

// Name returns the case's name.
func (c Case) Name() string { return c.name }

// String returns the case's name.
func (c Case) String() string { return c.name }

// Boundaries returns a copy of the case's boundary set.
func (c Case) Boundaries() []Boundary {
	out := make([]Boundary, len(c.boundaries))
	copy(out, c.boundaries)
	return out
}

// Pattern returns the case's pattern, nil when the case leaves casing
// untouched.
func (c Case) Pattern() Pattern { return c.pattern }

// Delimiter returns the string inserted between words when joining.
func (c Case) Delimiter() string { return c.delimiter }
