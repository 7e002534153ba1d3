package casing

import (
	"testing"
)

// FuzzConvert is a Go Fuzz Test targeting the Convert pipeline.
// It mutates the input data to try and find inputs that cause crashes (panics).
//
// Conversion is total: every string input must produce a result, so the
// fuzzer drives Convert, DetectCases, and Split across arbitrary byte
// sequences, including invalid UTF-8 and grapheme clusters that span
// several runes.
func FuzzConvert(f *testing.F) {
	// 1. Seed Corpus: Provide known identifier shapes and edge cases.
	seedCorpus := []string{
		// Plain identifiers in each delimiter family
		"my_variable_name",
		"my-variable-name",
		"My Variable Name",
		"myVariable22Name",
		"XMLHttpRequest",

		// Empty and delimiter-only input
		"",
		"_",
		"_-_ -",
		"many___underscores",
		"tailing-hyphens-----",

		// Digits at every transition
		"8a8A8",
		"vector4d",
		"E5150",
		"scale2D",

		// Multi-rune graphemes and non-Latin scripts
		"música moderna",
		"ПЕРСПЕКТИВА24",
		"日本語のテキスト",
		"🇩🇪 flag pair",
		"éx",

		// Content that is not an identifier at all
		"10,000Days",
		"one\ntwo\nthree",
		"that's",
		string([]byte{0xff, 0xfe, 'a', '_', 'b'}),
	}

	for _, seed := range seedCorpus {
		f.Add(seed)
	}

	// 2. Fuzz Target: conversion and detection must never panic, and
	// splitting must never yield an empty word.
	f.Fuzz(func(t *testing.T, input string) {
		for _, c := range []Case{Snake, Camel, Pascal, Title, Alternating} {
			out := Convert(input, c)
			if input == "" && out != "" {
				t.Errorf("Convert(%q, %v) = %q, want empty", input, c, out)
			}
		}

		_ = DetectCases(input)

		for _, word := range Split(input, DefaultBoundaries()) {
			if word == "" {
				t.Errorf("Split(%q) produced an empty word", input)
			}
			// Bare delimiter graphemes always split; they survive only
			// inside larger grapheme clusters.
			if word == "_" || word == "-" || word == " " {
				t.Errorf("Split(%q) kept the bare delimiter %q as a word", input, word)
			}
		}
	})
}
