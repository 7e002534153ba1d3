package casing

import (
	"strings"

	"github.com/erraggy/casetools/internal/segment"
)

// Split divides s into words at every position where one of the boundaries
// fires. Graphemes a firing boundary consumes are dropped, and empty words
// arising from leading, trailing, or adjacent delimiters are discarded, so
// "many___underscores" split on underscore yields exactly "many" and
// "underscores". When no boundary fires the whole input is a single word.
// The empty string yields no words.
//
// Boundaries are tried in slice order at each position; the first match
// wins and the scan resumes past whatever it consumed.
func Split(s string, boundaries []Boundary) []string {
	graphemes := segment.Graphemes(s)
	if len(graphemes) == 0 {
		return nil
	}

	var words []string
	current := make([]string, 0, len(graphemes))
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.Join(current, ""))
			current = current[:0]
		}
	}

	i := 0
	for i < len(graphemes) {
		b, fired := matchAt(graphemes, i, boundaries)
		if !fired {
			current = append(current, graphemes[i])
			i++
			continue
		}
		// Graphemes before the split point stay with the current word, the
		// next length graphemes are dropped.
		for k := 0; k < b.start && i < len(graphemes); k++ {
			current = append(current, graphemes[i])
			i++
		}
		flush()
		i = min(i+b.length, len(graphemes))
		if b.start+b.length == 0 && i < len(graphemes) {
			// The boundary consumed nothing; take one grapheme so the scan
			// cannot match the same position forever.
			current = append(current, graphemes[i])
			i++
		}
	}
	flush()

	return words
}

func matchAt(graphemes []string, i int, boundaries []Boundary) (Boundary, bool) {
	for _, b := range boundaries {
		end := min(i+b.window, len(graphemes))
		if b.Match(graphemes[i:end]) {
			return b, true
		}
	}
	return Boundary{}, false
}
