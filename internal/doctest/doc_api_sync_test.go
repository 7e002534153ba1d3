package doctest

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocExampleAPISync verifies that code examples in package documentation
// and in the runnable example programs reference symbols that actually exist
// in the public packages.
//
// This catches:
//   - References to renamed or removed functions in doc comment examples
//   - References to nonexistent types, variables, or constants
//   - References to internal packages in user-facing examples
func TestDocExampleAPISync(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller(0) failed")
	repoRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	// Public packages to verify symbol references against.
	publicPkgNames := []string{"casedef", "caseerrors", "casing", "generator"}

	// Build symbol table: package name → set of exported symbol names.
	symbols := make(map[string]map[string]bool, len(publicPkgNames))
	for _, pkg := range publicPkgNames {
		symbols[pkg] = extractExportedSymbols(t, filepath.Join(repoRoot, pkg))
	}

	// Internal package names that should not be referenced in user-facing
	// examples. Value is the suggested public package to use instead (empty
	// if no direct equivalent).
	internalPkgs := map[string]string{
		"fileutil":  "",
		"mcpserver": "",
		"segment":   "casing",
	}

	// Build regex for matching qualified references: knownPkg.ExportedSymbol.
	allPkgNames := make([]string, 0, len(publicPkgNames)+len(internalPkgs))
	allPkgNames = append(allPkgNames, publicPkgNames...)
	for pkg := range internalPkgs {
		allPkgNames = append(allPkgNames, pkg)
	}
	sort.Strings(allPkgNames)
	refRe := regexp.MustCompile(`\b(` + strings.Join(allPkgNames, "|") + `)\.([A-Z][a-zA-Z0-9]*)`)

	sources := findExampleSources(t, repoRoot)
	require.NotEmpty(t, sources, "no documentation sources found to scan")

	for _, src := range sources {
		relPath, _ := filepath.Rel(repoRoot, src)
		t.Run(relPath, func(t *testing.T) {
			content, err := os.ReadFile(src)
			require.NoError(t, err)

			for _, ref := range extractCodeLines(src, string(content)) {
				for _, match := range refRe.FindAllStringSubmatch(ref.text, -1) {
					pkg, sym := match[1], match[2]

					// Flag internal package references.
					if alt, isInternal := internalPkgs[pkg]; isInternal {
						if alt != "" {
							t.Errorf("%s:%d: references internal package %s.%s (use %s.%s instead)",
								relPath, ref.line, pkg, sym, alt, sym)
						} else {
							t.Errorf("%s:%d: references internal package %s.%s",
								relPath, ref.line, pkg, sym)
						}
						continue
					}

					// Verify the symbol exists in the public package.
					assert.True(t, symbols[pkg][sym],
						"%s:%d: references %s.%s but no such exported symbol exists in the %s package",
						relPath, ref.line, pkg, sym, pkg)
				}
			}
		})
	}
}

// codeLine is one line of example code with its 1-indexed source line number.
type codeLine struct {
	text string
	line int
}

// extractCodeLines returns the example code in a source file. For doc.go
// files these are the tab-indented code blocks of doc comments; runnable
// example sources are code throughout.
func extractCodeLines(path, content string) []codeLine {
	lines := strings.Split(content, "\n")
	docOnly := filepath.Base(path) == "doc.go"

	out := make([]codeLine, 0, len(lines))
	for i, line := range lines {
		if docOnly {
			rest, ok := strings.CutPrefix(line, "//\t")
			if !ok {
				continue
			}
			line = rest
		}
		out = append(out, codeLine{text: line, line: i + 1})
	}
	return out
}

// extractExportedSymbols uses go/ast to find all exported names (functions,
// methods, types, constants, variables) in the given package directory,
// excluding test files. Methods are included because doc comments and code
// examples use the godoc-style package.Method syntax.
func extractExportedSymbols(t *testing.T, dir string) map[string]bool {
	t.Helper()

	fset := token.NewFileSet()
	pkgs, err := goparser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, 0)
	require.NoError(t, err, "parsing package dir %s", dir)

	syms := make(map[string]bool)
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				switch d := decl.(type) {
				case *ast.FuncDecl:
					if d.Name.IsExported() {
						syms[d.Name.Name] = true
					}
				case *ast.GenDecl:
					for _, spec := range d.Specs {
						switch s := spec.(type) {
						case *ast.TypeSpec:
							if s.Name.IsExported() {
								syms[s.Name.Name] = true
							}
						case *ast.ValueSpec:
							for _, name := range s.Names {
								if name.IsExported() {
									syms[name.Name] = true
								}
							}
						}
					}
				}
			}
		}
	}
	return syms
}

// findExampleSources returns the documentation sources to scan: the root and
// package doc.go files plus the runnable example programs.
func findExampleSources(t *testing.T, repoRoot string) []string {
	t.Helper()

	var files []string

	rootDoc := filepath.Join(repoRoot, "doc.go")
	if _, err := os.Stat(rootDoc); err == nil {
		files = append(files, rootDoc)
	}

	entries, err := os.ReadDir(repoRoot)
	require.NoError(t, err)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		docPath := filepath.Join(repoRoot, e.Name(), "doc.go")
		if _, err := os.Stat(docPath); err == nil {
			files = append(files, docPath)
		}
	}

	exEntries, err := os.ReadDir(filepath.Join(repoRoot, "examples"))
	if err == nil {
		for _, e := range exEntries {
			if !e.IsDir() {
				continue
			}
			mainPath := filepath.Join(repoRoot, "examples", e.Name(), "main.go")
			if _, err := os.Stat(mainPath); err == nil {
				files = append(files, mainPath)
			}
		}
	}

	sort.Strings(files)
	return files
}
