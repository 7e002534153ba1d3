package casing

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPatternApply(t *testing.T) {
	tests := []struct {
		name    string
		pattern BuiltinPattern
		words   []string
		want    []string
	}{
		// Whole-word mappings
		{name: "lowercase", pattern: PatternLowercase, words: []string{"My", "WORDS"}, want: []string{"my", "words"}},
		{name: "uppercase", pattern: PatternUppercase, words: []string{"My", "words"}, want: []string{"MY", "WORDS"}},
		{name: "lowercase final sigma", pattern: PatternLowercase, words: []string{"ὈΔΥΣΣΕΎΣ"}, want: []string{"ὀδυσσεύς"}},
		{name: "uppercase expands sharp s", pattern: PatternUppercase, words: []string{"straße"}, want: []string{"STRASSE"}},

		// Word-position dependent
		{name: "capital", pattern: PatternCapital, words: []string{"my", "WORDS"}, want: []string{"My", "Words"}},
		{name: "camel", pattern: PatternCamel, words: []string{"My", "words", "HERE"}, want: []string{"my", "Words", "Here"}},
		{name: "sentence", pattern: PatternSentence, words: []string{"my", "WORDS", "here"}, want: []string{"My", "words", "here"}},

		// Per-word inversions
		{name: "toggle", pattern: PatternToggle, words: []string{"My", "variable", "22", "name"}, want: []string{"mY", "vARIABLE", "22", "nAME"}},
		{name: "alternating", pattern: PatternAlternating, words: []string{"my", "variable", "22", "name"}, want: []string{"mY", "vArIaBlE", "22", "nAmE"}},
		{name: "alternating skips apostrophe", pattern: PatternAlternating, words: []string{"that's"}, want: []string{"tHaT's"}},

		// Structure preserved
		{name: "empty word list", pattern: PatternCapital, words: nil, want: []string{}},
		{name: "capital on digits only", pattern: PatternCapital, words: []string{"42"}, want: []string{"42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.pattern.Apply(tt.words, nil)
			assert.Equal(t, tt.want, got, "%s.Apply(%v)", tt.pattern, tt.words)
		})
	}
}

func TestPatternString(t *testing.T) {
	tests := []struct {
		pattern BuiltinPattern
		want    string
	}{
		{PatternLowercase, "lowercase"},
		{PatternUppercase, "uppercase"},
		{PatternCapital, "capital"},
		{PatternCamel, "camel"},
		{PatternSentence, "sentence"},
		{PatternToggle, "toggle"},
		{PatternAlternating, "alternating"},
		{PatternRandom, "random"},
		{PatternPseudoRandom, "pseudo-random"},
		{BuiltinPattern(99), "pattern(99)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pattern.String())
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		input   string
		want    BuiltinPattern
		wantErr bool
	}{
		{input: "lowercase", want: PatternLowercase},
		{input: "Capital", want: PatternCapital},
		{input: "pseudo-random", want: PatternPseudoRandom},
		{input: "pseudo_random", want: PatternPseudoRandom},
		{input: "PseudoRandom", want: PatternPseudoRandom},
		{input: "ALTERNATING", want: PatternAlternating},
		{input: "sideways", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePattern(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "ParsePattern(%q)", tt.input)
				return
			}
			require.NoError(t, err, "ParsePattern(%q)", tt.input)
			assert.Equal(t, tt.want, got, "ParsePattern(%q)", tt.input)
		})
	}
}

func TestPatternFunc(t *testing.T) {
	shout := PatternFunc(func(words []string) []string {
		out := make([]string, len(words))
		for i, w := range words {
			out[i] = upperString(w)
		}
		return out
	})

	got := shout.Apply([]string{"a", "b"}, nil)
	assert.Equal(t, []string{"A", "B"}, got)

	out := NewConverter().SetPattern(shout).SetDelimiter("!").Convert("one two")
	assert.Equal(t, "ONE!TWO", out)
}

// scriptedSource feeds predetermined words to the random patterns. The low
// bit of each value decides the case of one cased grapheme.
type scriptedSource struct {
	values []uint64
	next   int
}

func (s *scriptedSource) Uint64() uint64 {
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next]
	s.next++
	return v
}

func TestPatternRandomScripted(t *testing.T) {
	// One draw per cased grapheme: 1 means upper, 0 means lower. The digit
	// passes through without a draw.
	src := &scriptedSource{values: []uint64{1, 0, 0, 1}}
	got := PatternRandom.Apply([]string{"ab", "c4d"}, src)
	assert.Equal(t, []string{"Ab", "c4D"}, got)
}

func TestPatternPseudoRandomRedraws(t *testing.T) {
	t.Run("redraw resolves a collision", func(t *testing.T) {
		// First grapheme draws upper. The second collides once, then draws
		// lower on the redraw.
		src := &scriptedSource{values: []uint64{1, 1, 0}}
		got := PatternPseudoRandom.Apply([]string{"ab"}, src)
		assert.Equal(t, []string{"Ab"}, got)
	})

	t.Run("exhausted redraws force the opposite", func(t *testing.T) {
		// Every draw comes up upper; adjacency still alternates because the
		// fallback flips after two failed redraws.
		src := &scriptedSource{values: []uint64{1, 1, 1, 1, 1, 1, 1, 1}}
		got := PatternPseudoRandom.Apply([]string{"abcd"}, src)
		assert.Equal(t, []string{"AbCd"}, got)
	})
}

func TestPatternPseudoRandomNoAdjacentRepeats(t *testing.T) {
	src := rand.NewPCG(7, 11)
	words := []string{"somewhat", "longer", "wording", "with", "letters"}
	for range 50 {
		out := PatternPseudoRandom.Apply(words, src)
		var prev rune
		var havePrev bool
		for _, w := range out {
			for _, r := range w {
				if !isCasedGrapheme(string(r)) {
					continue
				}
				upper := isUpperGrapheme(string(r))
				if havePrev {
					prevUpper := isUpperGrapheme(string(prev))
					assert.NotEqual(t, prevUpper, upper, "adjacent cased letters %q and %q share a case in %v", prev, r, out)
				}
				prev = r
				havePrev = true
			}
		}
	}
}

func TestPatternRandomNilSourceDoesNotPanic(t *testing.T) {
	out := PatternRandom.Apply([]string{"letters"}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "letters", lowerString(out[0]))
}
