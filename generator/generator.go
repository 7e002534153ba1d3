package generator

import (
	"fmt"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/casing"
)

// Options configures a single Generate call.
type Options struct {
	// Identifiers are the source identifiers to convert, in the order they
	// should appear in the table. At least one is required; duplicates are
	// rejected because they would collide as map keys.
	Identifiers []string

	// Package is the package name for the generated file.
	// If empty, defaults to "names".
	Package string

	// VarName is the name of the generated map variable.
	// If empty, defaults to "Names".
	VarName string

	// To is the target case. Required, and must carry a name: every
	// catalog case does, and casing.Custom takes one.
	To casing.Case

	// From, when set, is the case the identifiers are already written in.
	// Splitting then uses only that case's boundaries instead of the
	// default set.
	From *casing.Case

	// Filename is the name of the generated file, without path separators.
	// If empty, it is derived from VarName: "ColumnNames" becomes
	// "column_names.go".
	Filename string
}

// Result holds one generated file.
type Result struct {
	// Filename is the file name the source should be written as
	Filename string
	// Source is the generated Go source code
	Source []byte
}

// tableData contains data for the naming table template
type tableData struct {
	Package  string
	VarName  string
	CaseName string
	Pairs    []pairData
}

// pairData contains data for a single table entry
type pairData struct {
	Name      string
	Converted string
}

// Generate renders a naming table for opts. The returned source is already
// formatted; validation failures are caseerrors.ConfigError values matching
// caseerrors.ErrConfig.
func Generate(opts Options) (*Result, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	conv := casing.NewConverter().ToCase(opts.To)
	if opts.From != nil {
		conv.FromCase(*opts.From)
	}

	data := tableData{
		Package:  opts.Package,
		VarName:  opts.VarName,
		CaseName: opts.To.Name(),
		Pairs:    make([]pairData, 0, len(opts.Identifiers)),
	}
	for _, ident := range opts.Identifiers {
		data.Pairs = append(data.Pairs, pairData{
			Name:      ident,
			Converted: conv.Convert(ident),
		})
	}

	src, err := executeTemplate("table.go.tmpl", opts.Filename, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render naming table: %w", err)
	}

	return &Result{Filename: opts.Filename, Source: src}, nil
}

// validateOptions checks opts and fills in defaults. It mutates opts in
// place so Generate sees the defaulted values.
func validateOptions(opts *Options) error {
	if opts.Package == "" {
		opts.Package = "names"
	}
	if opts.VarName == "" {
		opts.VarName = "Names"
	}
	if opts.Filename == "" {
		opts.Filename = defaultFilename(opts.VarName)
	}

	if !isGoIdentifier(opts.Package) {
		return &caseerrors.ConfigError{
			Option:  "package",
			Value:   opts.Package,
			Message: "must be a valid Go identifier",
		}
	}
	if !isGoIdentifier(opts.VarName) {
		return &caseerrors.ConfigError{
			Option:  "var",
			Value:   opts.VarName,
			Message: "must be a valid Go identifier",
		}
	}
	if opts.To.Name() == "" {
		return &caseerrors.ConfigError{
			Option:  "to",
			Message: "target case is required",
		}
	}

	if len(opts.Identifiers) == 0 {
		return &caseerrors.ConfigError{
			Option:  "identifiers",
			Message: "at least one identifier is required",
		}
	}
	seen := make(map[string]bool, len(opts.Identifiers))
	for i, ident := range opts.Identifiers {
		if ident == "" {
			return &caseerrors.ConfigError{
				Option:  "identifiers",
				Message: fmt.Sprintf("identifier %d is empty", i+1),
			}
		}
		if seen[ident] {
			return &caseerrors.ConfigError{
				Option:  "identifiers",
				Value:   ident,
				Message: "duplicate identifier",
			}
		}
		seen[ident] = true
	}

	return nil
}
