// Package casing converts strings between naming conventions.
//
// A conversion runs in three stages: the input is split into words at
// boundaries, each word's letter casing is rewritten by a pattern, and the
// words are joined with a delimiter. A [Case] bundles one configuration of
// the three; the built-in catalog covers the usual program identifier
// conventions.
//
// # Quick Start
//
// Convert a string to a case:
//
//	casing.Convert("MyVariableName", casing.Snake)   // "my_variable_name"
//	casing.Convert("my variable name", casing.Camel) // "myVariableName"
//	casing.Convert("HTTPRequest", casing.Kebab)      // "http-request"
//
// Convert by naming the source convention. The source case restricts
// splitting to its own boundaries, which keeps content intact that the
// defaults would split:
//
//	casing.ConvertFrom("2020-04-16", casing.Kebab, casing.Title) // "2020 04 16"
//	casing.ConvertFrom("myVar2x", casing.Snake, casing.Pascal)   // "Myvar2x": only underscores split
//
// # Boundaries
//
// Splitting is driven by [Boundary] values. The default set splits at
// underscores, hyphens, and spaces (removing them), at lower-to-upper
// transitions, before the last letter of an uppercase acronym run, and at
// every letter/digit transition:
//
//	casing.Split("vector4d", casing.DefaultBoundaries()) // ["vector", "4", "d"]
//	casing.Split("XMLHttpRequest", casing.DefaultBoundaries()) // ["XML", "Http", "Request"]
//
// [FromDelim] builds a boundary for an arbitrary literal delimiter, and
// [NewBoundary] accepts a condition function for transitions the catalog
// does not cover.
//
// # Converter
//
// [Converter] assembles a pipeline piece by piece for conversions no case
// pair expresses, such as dropping the digit boundaries:
//
//	out := casing.NewConverter().
//		FromCase(casing.Camel).
//		RemoveBoundaries(casing.DigitUpper, casing.DigitLower).
//		ToCase(casing.Snake).
//		Convert("scale2D") // "scale_2d"
//
// # Detection
//
// [IsCase] reports whether a string already satisfies a case, and
// [DetectCases] filters the whole deterministic catalog. Detection ignores
// ASCII digits and is intentionally loose: short or bland inputs satisfy
// several cases at once.
//
// # Unicode
//
// All stages operate on grapheme clusters, and casing uses the full Unicode
// mappings: one-to-many expansions apply ("straße" uppercases to
// "STRASSE") and the final Greek sigma is picked contextually. Characters
// with no case mapping pass through unchanged.
//
// # Randomized patterns
//
// The [Random] and [PseudoRandom] cases draw from an entropy source passed
// through [Converter.SetEntropy]. A nil source uses the shared math/rand/v2
// generator; tests can supply a fixed-seed or scripted source.
package casing
