package casing

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/internal/segment"
)

// Pattern mutates the letter casing of a word sequence. Implementations must
// preserve word order and count and change only casing. Deterministic
// patterns ignore the entropy source; the random patterns draw from it, and a
// nil source selects the shared process-wide generator.
type Pattern interface {
	Apply(words []string, src rand.Source) []string
}

// PatternFunc adapts a plain function to the Pattern interface, discarding
// the entropy source. It suits deterministic custom patterns.
type PatternFunc func(words []string) []string

// Apply implements Pattern.
func (f PatternFunc) Apply(words []string, _ rand.Source) []string {
	return f(words)
}

// BuiltinPattern enumerates the built-in casing patterns. The zero value is
// PatternLowercase.
type BuiltinPattern int

const (
	// PatternLowercase lowercases every word.
	// Example: "My", "Words" -> "my", "words"
	PatternLowercase BuiltinPattern = iota

	// PatternUppercase uppercases every word.
	// Example: "My", "Words" -> "MY", "WORDS"
	PatternUppercase

	// PatternCapital uppercases the first grapheme of each word and
	// lowercases the rest.
	// Example: "my", "WORDS" -> "My", "Words"
	PatternCapital

	// PatternCamel lowercases the first word entirely and capitalizes the
	// words after it.
	// Example: "My", "words" -> "my", "Words"
	PatternCamel

	// PatternSentence capitalizes the first word and lowercases the words
	// after it.
	// Example: "my", "WORDS" -> "My", "words"
	PatternSentence

	// PatternToggle lowercases the first grapheme of each word and uppercases
	// the rest.
	// Example: "My", "words" -> "mY", "wORDS"
	PatternToggle

	// PatternAlternating cases cased graphemes lower, upper, lower, ... in
	// one run across all words, starting lowercase. Uncased graphemes pass
	// through without advancing the alternation.
	// Example: "my", "words" -> "mY", "wOrDs"
	PatternAlternating

	// PatternRandom cases every cased grapheme by an independent draw from
	// the entropy source.
	PatternRandom

	// PatternPseudoRandom cases cased graphemes randomly while never letting
	// two adjacent cased graphemes share a case.
	PatternPseudoRandom
)

// builtinPatternNames maps definition-file names to patterns. Keys are
// normalized by normalizeName.
var builtinPatternNames = map[string]BuiltinPattern{
	"lowercase":    PatternLowercase,
	"uppercase":    PatternUppercase,
	"capital":      PatternCapital,
	"camel":        PatternCamel,
	"sentence":     PatternSentence,
	"toggle":       PatternToggle,
	"alternating":  PatternAlternating,
	"random":       PatternRandom,
	"pseudorandom": PatternPseudoRandom,
}

// String returns the pattern's name as accepted by definition files.
func (p BuiltinPattern) String() string {
	switch p {
	case PatternLowercase:
		return "lowercase"
	case PatternUppercase:
		return "uppercase"
	case PatternCapital:
		return "capital"
	case PatternCamel:
		return "camel"
	case PatternSentence:
		return "sentence"
	case PatternToggle:
		return "toggle"
	case PatternAlternating:
		return "alternating"
	case PatternRandom:
		return "random"
	case PatternPseudoRandom:
		return "pseudo-random"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

// ParsePattern resolves a built-in pattern by name. Matching ignores letter
// casing and the separators "-", "_", and " ", so "pseudo-random",
// "PseudoRandom", and "pseudo_random" all resolve.
func ParsePattern(name string) (BuiltinPattern, error) {
	if p, ok := builtinPatternNames[normalizeName(name)]; ok {
		return p, nil
	}
	return 0, &caseerrors.UnknownNameError{
		Kind:    caseerrors.KindPattern,
		Name:    name,
		Message: "see BuiltinPattern for the accepted names",
	}
}

// Apply implements Pattern.
func (p BuiltinPattern) Apply(words []string, src rand.Source) []string {
	out := make([]string, len(words))
	switch p {
	case PatternLowercase:
		for i, w := range words {
			out[i] = lowerString(w)
		}
	case PatternUppercase:
		for i, w := range words {
			out[i] = upperString(w)
		}
	case PatternCapital:
		for i, w := range words {
			out[i] = capitalize(w)
		}
	case PatternCamel:
		for i, w := range words {
			if i == 0 {
				out[i] = lowerString(w)
			} else {
				out[i] = capitalize(w)
			}
		}
	case PatternSentence:
		for i, w := range words {
			if i == 0 {
				out[i] = capitalize(w)
			} else {
				out[i] = lowerString(w)
			}
		}
	case PatternToggle:
		for i, w := range words {
			out[i] = toggleWord(w)
		}
	case PatternAlternating:
		return alternate(words)
	case PatternRandom:
		return randomize(words, coin(src), false)
	case PatternPseudoRandom:
		return randomize(words, coin(src), true)
	default:
		copy(out, words)
	}
	return out
}

// lowerString applies the full Unicode lowercase mapping to s as one unit,
// so context-sensitive mappings such as Greek final sigma apply.
func lowerString(s string) string {
	return cases.Lower(language.Und).String(s)
}

// upperString applies the full Unicode uppercase mapping, including
// one-to-many expansions such as the German sharp s.
func upperString(s string) string {
	return cases.Upper(language.Und).String(s)
}

// capitalize uppercases the first grapheme and lowercases the remainder.
func capitalize(word string) string {
	head, rest := segment.First(word)
	if head == "" {
		return word
	}
	return upperString(head) + lowerString(rest)
}

// toggleWord lowercases the first grapheme and uppercases the remainder.
func toggleWord(word string) string {
	head, rest := segment.First(word)
	if head == "" {
		return word
	}
	return lowerString(head) + upperString(rest)
}

// isCasedGrapheme reports whether g has distinct lower and upper forms.
func isCasedGrapheme(g string) bool {
	if len(g) == 1 {
		c := g[0]
		if c < utf8.RuneSelf {
			return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
		}
	}
	return lowerString(g) != upperString(g)
}

// alternate lowers and uppers cased graphemes in turn. The alternation state
// survives word borders so the joined output reads as one continuous run.
func alternate(words []string) []string {
	out := make([]string, len(words))
	upper := false
	for i, w := range words {
		var sb strings.Builder
		sb.Grow(len(w))
		for _, g := range segment.Graphemes(w) {
			switch {
			case !isCasedGrapheme(g):
				sb.WriteString(g)
				continue
			case upper:
				sb.WriteString(upperString(g))
			default:
				sb.WriteString(lowerString(g))
			}
			upper = !upper
		}
		out[i] = sb.String()
	}
	return out
}

// randomize cases each cased grapheme by a coin flip. In pseudo mode a flip
// matching the previous cased grapheme is redrawn up to two times and then
// forced to the opposite, so adjacent cased graphemes never share a case.
// Adjacency, like alternation, runs across word borders.
func randomize(words []string, flip func() bool, pseudo bool) []string {
	out := make([]string, len(words))
	havePrev := false
	prevUpper := false
	for i, w := range words {
		var sb strings.Builder
		sb.Grow(len(w))
		for _, g := range segment.Graphemes(w) {
			if !isCasedGrapheme(g) {
				sb.WriteString(g)
				continue
			}
			upper := flip()
			if pseudo && havePrev {
				for redraw := 0; redraw < 2 && upper == prevUpper; redraw++ {
					upper = flip()
				}
				if upper == prevUpper {
					upper = !prevUpper
				}
			}
			if upper {
				sb.WriteString(upperString(g))
			} else {
				sb.WriteString(lowerString(g))
			}
			havePrev = true
			prevUpper = upper
		}
		out[i] = sb.String()
	}
	return out
}

// coin returns a fair boolean generator over src, falling back to the shared
// process-wide generator when src is nil.
func coin(src rand.Source) func() bool {
	if src == nil {
		return func() bool { return rand.Uint64()&1 == 1 }
	}
	return func() bool { return src.Uint64()&1 == 1 }
}

// normalizeName lowercases a case or pattern name and strips the separators
// "-", "_", and " " so lookups accept any of the common spellings.
func normalizeName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case '-', '_', ' ':
			continue
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
