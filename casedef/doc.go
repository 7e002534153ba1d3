// Package casedef loads user-defined cases from YAML definition files.
//
// A definition file names cases that the CLI and the MCP server offer
// alongside the built-in catalog. Each definition assembles the same three
// parts a built-in case has: a boundary set, a pattern, and a delimiter.
//
// # Quick Start
//
// Load a definition file and look cases up by name:
//
//	cases, err := casedef.Load("cases.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if dot, ok := casedef.Find(cases, "dotted"); ok {
//	    fmt.Println(casing.Convert("myVariableName", dot))
//	}
//
// # Definition File Structure
//
// A file holds a single "cases" list. Each entry has:
//   - name: The case name used for lookup (required, unique per file)
//   - pattern: A built-in pattern name; omitted leaves word casing untouched
//   - delimiter: The string joining words on output; may be empty
//   - boundaries: Where input splits into words; omitted means the default set
//
// Example definition file:
//
//	cases:
//	  - name: dotted
//	    pattern: lowercase
//	    delimiter: "."
//	    boundaries:
//	      - builtin: underscore
//	      - delim: "."
//	  - name: http-header
//	    pattern: capital
//	    delimiter: "-"
//	    boundaries:
//	      - builtin: hyphen
//	      - builtin: space
//
// Boundary entries name exactly one of a built-in boundary ("builtin") or a
// literal delimiter to split at and remove ("delim"). Built-in names accept
// the spellings [casing.ParseBoundary] accepts. An explicitly empty
// boundaries list produces a case that never splits, like [casing.Flat].
//
// # Validation
//
// Structural problems surface as [caseerrors.DefinitionError] values carrying
// the file path, the definition's position, and the offending field:
//
//	_, err := casedef.Load("cases.yaml")
//	var defErr *caseerrors.DefinitionError
//	if errors.As(err, &defErr) {
//	    fmt.Printf("bad definition %d: field %s\n", defErr.Position, defErr.Field)
//	}
//
// Duplicate names within one file are an error. A definition reusing a
// built-in case name is permitted; it logs a warning through the configured
// [Logger] because consumers resolving names against user definitions first
// will no longer reach the built-in.
package casedef
