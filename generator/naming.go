// This file implements identifier validation for generated code and the
// derivation of default file names from variable names.

package generator

import (
	"unicode"

	"github.com/erraggy/casetools/casing"
)

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Note: We only include actual keywords, not predeclared identifiers like "error",
// because those can be shadowed and are valid, if unwise, package and variable names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// isGoIdentifier reports whether s is usable as a Go identifier: a letter or
// underscore followed by letters, digits, and underscores, and not a keyword.
func isGoIdentifier(s string) bool {
	if s == "" || goReservedWords[s] {
		return false
	}
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// defaultFilename derives a file name from the generated variable name,
// so VarName "ColumnNames" lands in "column_names.go".
func defaultFilename(varName string) string {
	return casing.Convert(varName, casing.Snake) + ".go"
}
