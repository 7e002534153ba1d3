package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		// Empty and ASCII
		{"empty string", "", nil},
		{"single letter", "a", []string{"a"}},
		{"word", "abc", []string{"a", "b", "c"}},
		{"digits and punctuation", "a1,b", []string{"a", "1", ",", "b"}},

		// Multi-byte single clusters
		{"precomposed accent", "café", []string{"c", "a", "f", "é"}},
		{"greek", "ὀδ", []string{"ὀ", "δ"}},

		// Multi-rune clusters
		{"combining acute", "éx", []string{"é", "x"}},
		{"regional indicator pair", "\U0001F1E9\U0001F1EAok", []string{"\U0001F1E9\U0001F1EA", "o", "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Graphemes(tt.input)
			assert.Equal(t, tt.want, got, "Graphemes(%q)", tt.input)
		})
	}
}

func TestFirst(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCluster string
		wantRest    string
	}{
		{"empty string", "", "", ""},
		{"single letter", "a", "a", ""},
		{"word", "abc", "a", "bc"},
		{"combining mark stays attached", "éx", "é", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cluster, rest := First(tt.input)
			assert.Equal(t, tt.wantCluster, cluster, "First(%q) cluster", tt.input)
			assert.Equal(t, tt.wantRest, rest, "First(%q) rest", tt.input)
		})
	}
}
