package casing

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/internal/segment"
)

// ConditionFunc reports whether a boundary fires at the head of window.
// The window holds the next graphemes of the input starting at the position
// under inspection and may be shorter than the boundary's declared window
// near the end of the input. arg carries the boundary's parameter, such as a
// literal delimiter.
type ConditionFunc func(window []string, arg string) bool

// Boundary describes where a word split occurs and what it consumes.
// A boundary fires when its condition matches the look-ahead window; the
// split point sits start graphemes after the match position and length
// graphemes are removed there.
//
// Boundaries are stateless values, deduplicated by (name, arg) when combined
// into sets. The built-in catalog covers the common delimiters and
// letter/digit transitions; FromDelim and NewBoundary construct custom ones.
type Boundary struct {
	name   string
	arg    string
	cond   ConditionFunc
	window int
	start  int
	length int
}

// Built-in boundaries. Delimiter boundaries remove the matched delimiter;
// transition boundaries are zero-width cuts between two graphemes.
var (
	// Underscore splits at "_" and removes it.
	// Example: "a_b" -> "a", "b"
	Underscore = Boundary{name: "Underscore", arg: "_", cond: matchDelim, window: 1, start: 0, length: 1}

	// Hyphen splits at "-" and removes it.
	// Example: "a-b" -> "a", "b"
	Hyphen = Boundary{name: "Hyphen", arg: "-", cond: matchDelim, window: 1, start: 0, length: 1}

	// Space splits at " " and removes it.
	// Example: "a b" -> "a", "b"
	Space = Boundary{name: "Space", arg: " ", cond: matchDelim, window: 1, start: 0, length: 1}

	// LowerUpper splits between a lowercase grapheme and an uppercase one.
	// Example: "aA" -> "a", "A"
	LowerUpper = Boundary{name: "LowerUpper", cond: matchLowerUpper, window: 2, start: 1, length: 0}

	// Acronym splits a run of uppercase graphemes before its last member when
	// that member starts a new capitalized word.
	// Example: "HTTPRequest" -> "HTTP", "Request"
	Acronym = Boundary{name: "Acronym", cond: matchAcronym, window: 3, start: 1, length: 0}

	// LowerDigit splits between a lowercase grapheme and an ASCII digit.
	// Example: "a1" -> "a", "1"
	LowerDigit = Boundary{name: "LowerDigit", cond: matchLowerDigit, window: 2, start: 1, length: 0}

	// UpperDigit splits between an uppercase grapheme and an ASCII digit.
	// Example: "A1" -> "A", "1"
	UpperDigit = Boundary{name: "UpperDigit", cond: matchUpperDigit, window: 2, start: 1, length: 0}

	// DigitLower splits between an ASCII digit and a lowercase grapheme.
	// Example: "1a" -> "1", "a"
	DigitLower = Boundary{name: "DigitLower", cond: matchDigitLower, window: 2, start: 1, length: 0}

	// DigitUpper splits between an ASCII digit and an uppercase grapheme.
	// Example: "1A" -> "1", "A"
	DigitUpper = Boundary{name: "DigitUpper", cond: matchDigitUpper, window: 2, start: 1, length: 0}
)

// DefaultBoundaries returns the boundary set used when no case or boundaries
// have been specified: underscore, hyphen, space, the lower-to-upper and
// acronym transitions, and all four digit transitions.
func DefaultBoundaries() []Boundary {
	return []Boundary{
		Underscore, Hyphen, Space,
		LowerUpper, Acronym,
		LowerDigit, UpperDigit, DigitLower, DigitUpper,
	}
}

// DigitBoundaries returns the four letter/digit transition boundaries.
// Remove them from a converter to keep digits glued to adjacent letters.
// Example: "scale2D" splits as "scale", "2", "D" with them and as
// "scale", "2D" without DigitUpper and DigitLower.
func DigitBoundaries() []Boundary {
	return []Boundary{LowerDigit, UpperDigit, DigitLower, DigitUpper}
}

// ParseBoundary resolves a built-in boundary by name. Matching ignores letter
// casing and the separators "-", "_", and " ", so "lower-upper", "LowerUpper",
// and "lower_upper" all resolve.
func ParseBoundary(name string) (Boundary, error) {
	key := normalizeName(name)
	for _, b := range DefaultBoundaries() {
		if normalizeName(b.name) == key {
			return b, nil
		}
	}
	return Boundary{}, &caseerrors.UnknownNameError{
		Kind:    caseerrors.KindBoundary,
		Name:    name,
		Message: "see DefaultBoundaries for the catalog",
	}
}

// FromDelim returns a boundary that splits at the literal delim and removes
// it. The boundary is named after the delimiter. An empty delimiter yields a
// boundary that never fires.
func FromDelim(delim string) Boundary {
	n := len(segment.Graphemes(delim))
	return Boundary{
		name:   delim,
		arg:    delim,
		cond:   matchDelim,
		window: n,
		start:  0,
		length: n,
	}
}

// NewBoundary constructs a custom boundary. window is the number of
// look-ahead graphemes cond inspects, start is the offset of the split point
// from the match position, and length is the number of graphemes removed at
// the split. Geometry where start or length is negative, window is not
// positive, or start+length exceeds window is rejected here rather than
// surfacing as misbehavior during a later split.
func NewBoundary(name string, cond ConditionFunc, window, start, length int) (Boundary, error) {
	if cond == nil {
		return Boundary{}, fmt.Errorf("casing: boundary %q: condition must not be nil", name)
	}
	if window <= 0 {
		return Boundary{}, fmt.Errorf("casing: boundary %q: window must be positive, got %d", name, window)
	}
	if start < 0 || length < 0 {
		return Boundary{}, fmt.Errorf("casing: boundary %q: start %d and length %d must not be negative", name, start, length)
	}
	if start+length > window {
		return Boundary{}, fmt.Errorf("casing: boundary %q: start %d + length %d exceeds window %d", name, start, length, window)
	}
	return Boundary{name: name, cond: cond, window: window, start: start, length: length}, nil
}

// MustBoundary is like NewBoundary but panics on invalid geometry. It is
// intended for package-level boundary variables.
func MustBoundary(name string, cond ConditionFunc, window, start, length int) Boundary {
	b, err := NewBoundary(name, cond, window, start, length)
	if err != nil {
		panic(err)
	}
	return b
}

// Name returns the boundary's name. Built-in names are stable and are the
// identifiers accepted by definition files.
func (b Boundary) Name() string { return b.name }

// Arg returns the boundary's parameter: the literal delimiter for delimiter
// boundaries, empty for transition boundaries.
func (b Boundary) Arg() string { return b.arg }

// String returns the boundary's name.
func (b Boundary) String() string { return b.name }

// Match reports whether the boundary fires at the head of window.
func (b Boundary) Match(window []string) bool {
	if b.cond == nil {
		return false
	}
	return b.cond(window, b.arg)
}

func matchDelim(window []string, arg string) bool {
	return arg != "" && strings.Join(window, "") == arg
}

func matchLowerUpper(window []string, _ string) bool {
	return len(window) >= 2 && isLowerGrapheme(window[0]) && isUpperGrapheme(window[1])
}

func matchAcronym(window []string, _ string) bool {
	return len(window) >= 3 && isUpperGrapheme(window[0]) && isUpperGrapheme(window[1]) && isLowerGrapheme(window[2])
}

func matchLowerDigit(window []string, _ string) bool {
	return len(window) >= 2 && isLowerGrapheme(window[0]) && isDigitGrapheme(window[1])
}

func matchUpperDigit(window []string, _ string) bool {
	return len(window) >= 2 && isUpperGrapheme(window[0]) && isDigitGrapheme(window[1])
}

func matchDigitLower(window []string, _ string) bool {
	return len(window) >= 2 && isDigitGrapheme(window[0]) && isLowerGrapheme(window[1])
}

func matchDigitUpper(window []string, _ string) bool {
	return len(window) >= 2 && isDigitGrapheme(window[0]) && isUpperGrapheme(window[1])
}

// isLowerGrapheme reports whether g changes under uppercasing and is fixed
// under lowercasing. Uncased graphemes (digits, punctuation, ideographs) are
// neither lower nor upper.
func isLowerGrapheme(g string) bool {
	if len(g) == 1 {
		c := g[0]
		if c < utf8.RuneSelf {
			return 'a' <= c && c <= 'z'
		}
	}
	return g != upperString(g) && g == lowerString(g)
}

// isUpperGrapheme is the mirror of isLowerGrapheme.
func isUpperGrapheme(g string) bool {
	if len(g) == 1 {
		c := g[0]
		if c < utf8.RuneSelf {
			return 'A' <= c && c <= 'Z'
		}
	}
	return g == upperString(g) && g != lowerString(g)
}

// isDigitGrapheme reports whether g is a single ASCII digit. Only ASCII
// digits participate in the digit transition boundaries.
func isDigitGrapheme(g string) bool {
	return len(g) == 1 && '0' <= g[0] && g[0] <= '9'
}

type boundaryKey struct {
	name string
	arg  string
}

// dedupeBoundaries drops later duplicates under the (name, arg) key,
// preserving first-seen order.
func dedupeBoundaries(bs []Boundary) []Boundary {
	seen := make(map[boundaryKey]struct{}, len(bs))
	out := make([]Boundary, 0, len(bs))
	for _, b := range bs {
		k := boundaryKey{name: b.name, arg: b.arg}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, b)
	}
	return out
}

// removeBoundaries returns bs without any boundary sharing a (name, arg) key
// with drop.
func removeBoundaries(bs, drop []Boundary) []Boundary {
	dropped := make(map[boundaryKey]struct{}, len(drop))
	for _, b := range drop {
		dropped[boundaryKey{name: b.name, arg: b.arg}] = struct{}{}
	}
	out := make([]Boundary, 0, len(bs))
	for _, b := range bs {
		if _, ok := dropped[boundaryKey{name: b.name, arg: b.arg}]; ok {
			continue
		}
		out = append(out, b)
	}
	return out
}
