// Package segment splits strings into user-perceived characters.
//
// Case conversion operates on grapheme clusters rather than runes or bytes so
// that multi-rune characters (combining marks, regional indicator pairs, emoji
// sequences) move through boundary detection and casing as single units.
package segment

import "github.com/rivo/uniseg"

// Graphemes returns the grapheme clusters of s in order. It returns nil for
// the empty string.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	state := -1
	var c string
	for len(s) > 0 {
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, c)
	}
	return clusters
}

// First returns the first grapheme cluster of s and the remainder. Both are
// empty when s is empty.
func First(s string) (cluster, rest string) {
	if s == "" {
		return "", ""
	}
	cluster, rest, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster, rest
}
