package casing

import (
	"math/rand/v2"
	"strings"
)

// Converter runs the split, pattern, join pipeline with an explicitly
// assembled configuration. It is the surface for conversions that mix parts
// of different cases or use custom boundaries and patterns; for plain
// case-to-case work, Convert and ConvertFrom are shorter.
//
// Methods return the receiver for chaining. Boundary-replacing calls
// (SetBoundaries, FromCase) overwrite earlier boundary state; only
// AddBoundaries and RemoveBoundaries compose with it. A Converter is not
// safe for concurrent mutation; concurrent Convert calls are fine once the
// configuration is final, provided any entropy source set is itself safe.
type Converter struct {
	boundaries []Boundary
	pattern    Pattern
	delimiter  string
	entropy    rand.Source
}

// NewConverter returns a converter with the default boundary set, no pattern
// (word casing left untouched), and an empty delimiter.
func NewConverter() *Converter {
	return &Converter{boundaries: DefaultBoundaries()}
}

// FromCase adopts the boundary set of c, and nothing else. It describes what
// the input looks like, not what the output should be.
func (cv *Converter) FromCase(c Case) *Converter {
	cv.boundaries = c.Boundaries()
	return cv
}

// ToCase adopts the pattern and delimiter of c, leaving boundaries alone.
func (cv *Converter) ToCase(c Case) *Converter {
	cv.pattern = c.pattern
	cv.delimiter = c.delimiter
	return cv
}

// SetBoundaries replaces the boundary set.
func (cv *Converter) SetBoundaries(bs ...Boundary) *Converter {
	cv.boundaries = dedupeBoundaries(bs)
	return cv
}

// AddBoundaries unions bs into the boundary set.
func (cv *Converter) AddBoundaries(bs ...Boundary) *Converter {
	cv.boundaries = dedupeBoundaries(append(cv.boundaries, bs...))
	return cv
}

// RemoveBoundaries removes every boundary matching bs by (name, arg) from
// the boundary set.
func (cv *Converter) RemoveBoundaries(bs ...Boundary) *Converter {
	cv.boundaries = removeBoundaries(cv.boundaries, bs)
	return cv
}

// SetPattern replaces the pattern. A nil pattern leaves word casing
// untouched.
func (cv *Converter) SetPattern(p Pattern) *Converter {
	cv.pattern = p
	return cv
}

// SetDelimiter replaces the joining delimiter.
func (cv *Converter) SetDelimiter(d string) *Converter {
	cv.delimiter = d
	return cv
}

// SetEntropy supplies the source consulted by the random patterns. A nil
// source selects the shared process-wide generator. Sources shared across
// goroutines must be externally synchronized.
func (cv *Converter) SetEntropy(src rand.Source) *Converter {
	cv.entropy = src
	return cv
}

// Convert runs the pipeline on s. It is total: every string input, including
// the empty string and strings no boundary matches, produces a result.
func (cv *Converter) Convert(s string) string {
	words := Split(s, cv.boundaries)
	if cv.pattern != nil {
		words = cv.pattern.Apply(words, cv.entropy)
	}
	return strings.Join(words, cv.delimiter)
}

// Convert renders s in the target case, splitting with the default boundary
// set.
// Example: Convert("springBoot", Snake) -> "spring_boot"
func Convert(s string, to Case) string {
	return NewConverter().ToCase(to).Convert(s)
}

// ConvertFrom renders s in the target case, splitting only at the source
// case's boundaries. Use it when the input convention is known: it keeps
// content intact that the default boundaries would split.
// Example: ConvertFrom("django-item", Kebab, Snake) -> "django_item"
// Example: ConvertFrom("2020-04-16", Kebab, Title) -> "2020 04 16"
func ConvertFrom(s string, from, to Case) string {
	return NewConverter().FromCase(from).ToCase(to).Convert(s)
}
