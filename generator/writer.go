package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/casetools/internal/fileutil"
)

// Write writes the generated file into the specified output directory.
// The directory is created if it doesn't exist.
func (r *Result) Write(outputDir string) error {
	safeName := filepath.Base(r.Filename)
	if safeName != r.Filename {
		return fmt.Errorf("invalid file name %q: must not contain path separators", r.Filename)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(outputDir, safeName)
	if err := os.WriteFile(path, r.Source, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file %s: %w", r.Filename, err)
	}

	return nil
}
