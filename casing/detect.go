package casing

import "strings"

// IsCase reports whether s is already rendered in c. ASCII digits are
// stripped from both sides of the comparison first: digit boundaries are not
// part of every case's boundary set, so digit placement is not a reliable
// discriminator. The stripped input is converted with the default boundary
// set and c's pattern and delimiter; s is in c exactly when that round trip
// is a fixed point.
// Example: IsCase("css-class-name", Kebab) -> true
// Example: IsCase("css-class-name", Snake) -> false
func IsCase(s string, c Case) bool {
	digitless := stripASCIIDigits(s)
	return digitless == stripASCIIDigits(Convert(digitless, c))
}

// DetectCases returns every deterministic case s satisfies, in detection
// order. Detection is approximate by nature: a lowercase word with no
// delimiters satisfies Snake, Kebab, Flat, Camel, and Lower at once, and no
// winner is picked among them.
func DetectCases(s string) []Case {
	var out []Case
	for _, c := range DeterministicCases() {
		if IsCase(s, c) {
			out = append(out, c)
		}
	}
	return out
}

// stripASCIIDigits removes the bytes '0' through '9'. Operating on bytes is
// safe in UTF-8: ASCII values never occur inside a multi-byte sequence.
func stripASCIIDigits(s string) string {
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
