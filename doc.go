// Package casetools provides comprehensive tools for converting identifiers
// between naming conventions.
//
// casetools splits identifiers into words, applies a casing pattern to each
// word, and joins the words with a delimiter. Snake case, camel case, kebab
// case, and eighteen further conventions ship built in, and fully custom
// conventions can be assembled from the same parts.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - casing: Convert strings between cases and detect the cases a string
//     already satisfies
//   - casedef: Load user-defined cases from YAML definition files
//   - generator: Generate Go source files holding identifier naming tables
//
// Errors across all packages share the sentinel and typed error vocabulary of
// the caseerrors package.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert a string to a built-in case:
//
//	import "github.com/erraggy/casetools/casing"
//
//	fmt.Println(casing.Convert("userLoginCount", casing.Snake))
//	// Output: user_login_count
//
// Reuse a configured converter for many inputs:
//
//	conv := casing.NewConverter().ToCase(casing.Kebab)
//	for _, name := range names {
//		fmt.Println(conv.Convert(name))
//	}
//
// Detect the cases an identifier already satisfies:
//
//	for _, c := range casing.DetectCases("remote-profile-sync") {
//		fmt.Println(c.Name())
//	}
//	// Output: Kebab
//
// # Casing Package
//
// The casing package implements the conversion pipeline. Each conversion
// splits the input at a set of boundaries, applies the target pattern to the
// resulting words, and joins them with the target delimiter.
//
// Key features:
//   - 21 built-in cases from Snake through Toggle, listed by Cases()
//   - Grapheme-aware splitting, so combining characters never tear
//   - Boundary control per conversion (FromCase, SetBoundaries, AddBoundaries)
//   - Custom cases assembled from boundaries, a pattern, and a delimiter
//   - Case detection (DetectCases, IsCase) over the deterministic catalog
//
// Constrain splitting to a known source convention so that otherwise
// meaningful characters survive:
//
//	// Split at underscores only; hyphens and digits pass through.
//	s := casing.ConvertFrom("2020-04-16_first_patch", casing.Snake, casing.Title)
//	// s == "2020-04-16 First Patch"
//
// Assemble a custom case:
//
//	dotted := casing.Custom("dotted",
//		[]casing.Boundary{casing.Underscore, casing.FromDelim(".")},
//		casing.PatternLowercase, ".")
//	fmt.Println(casing.Convert("span_id", dotted))
//	// Output: span.id
//
// The Random and PseudoRandom cases draw from a converter-scoped entropy
// source; seed it with SetEntropy for reproducible output.
//
// See the casing package documentation for more details.
//
// # Case Definition Files
//
// The casedef package loads additional cases from YAML files, so deployments
// can extend the catalog without recompiling:
//
//	cases, err := casedef.Load("cases.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if dot, ok := casedef.Find(cases, "dotted"); ok {
//		fmt.Println(casing.Convert("spanID", dot))
//	}
//
// Definition files name a pattern, a delimiter, and a boundary list per case.
// See the casedef package documentation for the file structure.
//
// # Generator Package
//
// The generator package renders Go source files mapping identifiers to their
// converted forms, for freezing naming decisions into compiled tables:
//
//	result, err := generator.Generate(generator.Options{
//		Identifiers: []string{"userID", "createdAt", "displayName"},
//		Package:     "store",
//		VarName:     "ColumnNames",
//		To:          casing.Snake,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.Write("./store")
//
// Generated files are formatted and import-fixed, ready to compile.
//
// # Common Workflows
//
// Normalize identifiers from mixed conventions into one:
//
//	conv := casing.NewConverter().ToCase(casing.Snake)
//	for _, col := range columns {
//		normalized[conv.Convert(col)] = col
//	}
//
// Convert only strings that match a known convention, leaving the rest
// untouched:
//
//	if casing.IsCase(name, casing.Kebab) {
//		name = casing.ConvertFrom(name, casing.Kebab, casing.UpperCamel)
//	}
//
// # Error Handling
//
// Conversion itself never fails: Convert and Converter.Convert are total
// functions over strings. Errors arise only at the edges and follow
// consistent patterns:
//
//   - Unknown case, pattern, or boundary names: caseerrors.ErrUnknownCase,
//     ErrUnknownPattern, and ErrUnknownBoundary via errors.Is
//   - Definition file problems: *caseerrors.DefinitionError with the file
//     path, list position, and offending field
//   - Generator option problems: *caseerrors.ConfigError naming the option
//
// # Performance Tips
//
// For best performance:
//
//   - Reuse a Converter across inputs rather than calling Convert per string;
//     converters are cheap but not goroutine-safe, so create one per goroutine
//   - Restrict boundaries with FromCase when the source convention is known,
//     which skips the full default boundary scan
//   - Freeze hot naming tables with the generator instead of converting at
//     runtime
//
// # Command-Line Interface
//
// In addition to the library packages, casetools provides a command-line
// interface:
//
//	# Convert identifiers
//	casetools convert -t snake userLoginCount
//
//	# Detect cases
//	casetools detect remote-profile-sync
//
//	# List the case catalog
//	casetools cases -v
//
//	# Generate a naming table
//	casetools gen -t snake -p store -n ColumnNames userID createdAt
//
//	# Serve conversions over the Model Context Protocol on stdio
//	casetools mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/casetools/cmd/casetools@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/casetools
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/casetools
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package casetools
