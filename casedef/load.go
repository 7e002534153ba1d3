package casedef

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/casing"
)

// Option is a function that configures a load operation.
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation.
type loadConfig struct {
	logger Logger
}

// WithLogger sets the logger receiving non-fatal findings, such as a
// definition shadowing a built-in case name. Defaults to [NopLogger].
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = l
		return nil
	}
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Load reads a YAML definition file and resolves its definitions into cases,
// in file order.
//
// yaml.Unmarshal handles both YAML and JSON, so .json definition files work
// unchanged.
func Load(path string, opts ...Option) ([]casing.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &caseerrors.DefinitionError{
			Path:    path,
			Message: "failed to read definition file",
			Cause:   err,
		}
	}
	return parse(path, data, opts...)
}

// Parse resolves definition bytes into cases, in document order.
func Parse(data []byte, opts ...Option) ([]casing.Case, error) {
	return parse("", data, opts...)
}

func parse(path string, data []byte, opts ...Option) ([]casing.Case, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("casedef: invalid options: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &caseerrors.DefinitionError{
			Path:    path,
			Message: "invalid YAML",
			Cause:   err,
		}
	}

	seen := make(map[string]int, len(file.Cases))
	out := make([]casing.Case, 0, len(file.Cases))
	for i, def := range file.Cases {
		pos := i + 1

		c, err := resolveDefinition(path, pos, def)
		if err != nil {
			return nil, err
		}

		key := normalizeName(def.Name)
		if prev, ok := seen[key]; ok {
			return nil, &caseerrors.DefinitionError{
				Path:     path,
				Position: pos,
				Name:     def.Name,
				Field:    "name",
				Message:  fmt.Sprintf("duplicate of case %d", prev),
			}
		}
		seen[key] = pos

		if _, err := casing.ParseCase(def.Name); err == nil {
			cfg.logger.Warn("case definition shadows a built-in case",
				"name", def.Name, "position", pos, "path", path)
		}

		out = append(out, c)
	}
	return out, nil
}

// resolveDefinition turns one definition into a casing.Case or reports which
// field is broken.
func resolveDefinition(path string, pos int, def Definition) (casing.Case, error) {
	if strings.TrimSpace(def.Name) == "" {
		return casing.Case{}, &caseerrors.DefinitionError{
			Path:     path,
			Position: pos,
			Field:    "name",
			Message:  "name is required",
		}
	}

	var pattern casing.Pattern
	if def.Pattern != "" {
		p, err := casing.ParsePattern(def.Pattern)
		if err != nil {
			return casing.Case{}, &caseerrors.DefinitionError{
				Path:     path,
				Position: pos,
				Name:     def.Name,
				Field:    "pattern",
				Cause:    err,
			}
		}
		pattern = p
	}

	// nil means the key was omitted; an explicitly empty list stays empty.
	boundaries := casing.DefaultBoundaries()
	if def.Boundaries != nil {
		boundaries = make([]casing.Boundary, 0, len(def.Boundaries))
		for j, ref := range def.Boundaries {
			b, err := resolveBoundary(ref)
			if err != nil {
				return casing.Case{}, &caseerrors.DefinitionError{
					Path:     path,
					Position: pos,
					Name:     def.Name,
					Field:    fmt.Sprintf("boundaries[%d]", j),
					Cause:    err,
				}
			}
			boundaries = append(boundaries, b)
		}
	}

	return casing.Custom(def.Name, boundaries, pattern, def.Delimiter), nil
}

// resolveBoundary resolves one boundary reference.
func resolveBoundary(ref BoundaryRef) (casing.Boundary, error) {
	switch {
	case ref.Builtin != "" && ref.Delim != "":
		return casing.Boundary{}, errors.New("builtin and delim are mutually exclusive")
	case ref.Builtin != "":
		return casing.ParseBoundary(ref.Builtin)
	case ref.Delim != "":
		return casing.FromDelim(ref.Delim), nil
	default:
		return casing.Boundary{}, errors.New("one of builtin or delim is required")
	}
}

// Find returns the first case in cases matching name. Matching follows the
// same rule as casing.ParseCase: letter casing and the separators "-", "_",
// and " " are ignored.
//
// Consumers offering user definitions alongside the built-in catalog should
// consult Find first so definitions can override built-ins.
func Find(cases []casing.Case, name string) (casing.Case, bool) {
	key := normalizeName(name)
	for _, c := range cases {
		if normalizeName(c.Name()) == key {
			return c, true
		}
	}
	return casing.Case{}, false
}

// normalizeName mirrors the name matching of casing.ParseCase: lowercase
// with the separators "-", "_", and " " stripped.
func normalizeName(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case '-', '_', ' ':
			continue
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
