package caseerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrUnknownCase indicates a case name failed to resolve.
	ErrUnknownCase = errors.New("unknown case")

	// ErrUnknownPattern indicates a pattern name failed to resolve.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrUnknownBoundary indicates a boundary name failed to resolve.
	ErrUnknownBoundary = errors.New("unknown boundary")

	// ErrDefinition indicates an invalid case definition.
	ErrDefinition = errors.New("definition error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Name kinds recognized by UnknownNameError.
const (
	KindCase     = "case"
	KindPattern  = "pattern"
	KindBoundary = "boundary"
)

// UnknownNameError represents a failed lookup in one of the built-in catalogs.
type UnknownNameError struct {
	// Kind identifies the catalog that was searched: KindCase, KindPattern,
	// or KindBoundary
	Kind string
	// Name is the name that failed to resolve
	Name string
	// Message provides additional context, such as the accepted names
	Message string
}

// Error returns a human-readable error message.
func (e *UnknownNameError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "name"
	}
	msg := "unknown " + kind
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
// The sentinel matched depends on the Kind field.
func (e *UnknownNameError) Is(target error) bool {
	switch target {
	case ErrUnknownCase:
		return e.Kind == KindCase
	case ErrUnknownPattern:
		return e.Kind == KindPattern
	case ErrUnknownBoundary:
		return e.Kind == KindBoundary
	}
	return false
}

// DefinitionError represents an invalid entry in a case definition file.
type DefinitionError struct {
	// Path is the definition file path or source identifier
	Path string
	// Position is the 1-based position of the definition in the file (0 if unknown)
	Position int
	// Name is the name of the case being defined, if it was readable
	Name string
	// Field is the specific field with the issue
	Field string
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DefinitionError) Error() string {
	msg := "definition error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Position > 0 {
		msg += fmt.Sprintf(" at case %d", e.Position)
	}
	if e.Name != "" {
		msg += fmt.Sprintf(" (%s)", e.Name)
	}
	if e.Field != "" {
		msg += ": field " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
