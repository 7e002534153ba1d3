// Package caseerrors provides structured error types for the casetools library.
//
// Import path: github.com/erraggy/casetools/caseerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [UnknownNameError]: lookups of case, pattern, or boundary names that resolve to nothing
//   - [DefinitionError]: invalid entries in a case definition file
//   - [ConfigError]: invalid options passed to a library surface
//
// # Sentinel Errors
//
// Each failure category has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrUnknownCase]: Matches [UnknownNameError] with Kind "case"
//   - [ErrUnknownPattern]: Matches [UnknownNameError] with Kind "pattern"
//   - [ErrUnknownBoundary]: Matches [UnknownNameError] with Kind "boundary"
//   - [ErrDefinition]: Matches any [DefinitionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage with errors.Is
//
//	defs, err := casedef.Load("cases.yaml")
//	if errors.Is(err, caseerrors.ErrUnknownPattern) {
//	    // The file names a pattern the catalog does not have.
//	}
//
// # Usage with errors.As
//
//	var defErr *caseerrors.DefinitionError
//	if errors.As(err, &defErr) {
//	    fmt.Printf("definition %d is broken: %s\n", defErr.Position, defErr.Message)
//	}
package caseerrors
