package mcpserver

import (
	"fmt"
	"log/slog"

	"github.com/erraggy/casetools/casedef"
	"github.com/erraggy/casetools/casing"
)

// definitions holds the user-defined cases loaded from CASETOOLS_DEFS at
// startup, nil when no definition file is configured.
var definitions = loadDefinitions()

// loadDefinitions reads the definition file named by CASETOOLS_DEFS.
// A load failure is logged and the server continues with built-ins only,
// so a broken definition file never prevents startup.
func loadDefinitions() []casing.Case {
	if cfg.DefsPath == "" {
		return nil
	}
	defs, err := casedef.Load(cfg.DefsPath, casedef.WithLogger(casedef.NewSlogAdapter(nil)))
	if err != nil {
		slog.Warn("failed to load case definitions, continuing with built-ins only", "path", cfg.DefsPath, "error", err) //nolint:gosec // G706: values are structured log fields, not format strings
		return nil
	}
	return defs
}

// resolveCase resolves a case name against the loaded definitions first,
// then the built-in catalog, so definitions can shadow built-in names.
func resolveCase(name string) (casing.Case, error) {
	if c, ok := casedef.Find(definitions, name); ok {
		return c, nil
	}
	return casing.ParseCase(name)
}

// catalog returns the full case catalog in listing order: loaded
// definitions first, then the built-ins.
func catalog() []casing.Case {
	return append(append([]casing.Case{}, definitions...), casing.Cases()...)
}

// validateInputs enforces the configured batch ceilings on tool inputs.
func validateInputs(inputs []string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("at least one input string is required")
	}
	if len(inputs) > cfg.MaxInputs {
		return fmt.Errorf("input count %d exceeds maximum %d; set CASETOOLS_MAX_INPUTS to increase", len(inputs), cfg.MaxInputs)
	}
	for i, s := range inputs {
		if len(s) > cfg.MaxInputLen {
			return fmt.Errorf("input %d length %d bytes exceeds maximum %d; set CASETOOLS_MAX_INPUT_LEN to increase", i+1, len(s), cfg.MaxInputLen)
		}
	}
	return nil
}
