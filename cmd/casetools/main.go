// Command casetools provides command-line case conversion utilities.
//
// Usage:
//
//	casetools convert -t snake userLoginCount
//	casetools detect remote-profile-sync
//	casetools cases -v
//	casetools gen -t snake -p store -n ColumnNames userID createdAt
//	casetools mcp
//	casetools version
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/erraggy/casetools"
	"github.com/erraggy/casetools/casedef"
	"github.com/erraggy/casetools/casing"
	"github.com/erraggy/casetools/generator"
	"github.com/erraggy/casetools/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casetools v%s\n", casetools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "detect":
		if err := handleDetect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "cases":
		if err := handleCases(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "gen":
		if err := handleGen(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// commandNames lists every valid subcommand, used for typo suggestions.
var commandNames = []string{"convert", "detect", "cases", "gen", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough to suggest.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range commandNames {
		if d := editDistance(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

type convertFlags struct {
	To   string
	From string
	Defs string
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{}

	fs.StringVar(&flags.To, "t", "", "Target case name (required)")
	fs.StringVar(&flags.To, "to", "", "Target case name (required)")
	fs.StringVar(&flags.From, "f", "", "Source case name; split only at its boundaries")
	fs.StringVar(&flags.From, "from", "", "Source case name; split only at its boundaries")
	fs.StringVar(&flags.Defs, "d", "", "YAML case definition file extending the catalog")
	fs.StringVar(&flags.Defs, "defs", "", "YAML case definition file extending the catalog")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: casetools convert [flags] [input...]\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Convert identifiers to a target case, one result per line.\n")
		_, _ = fmt.Fprintf(fs.Output(), "Inputs come from the arguments, or from stdin (one per line) when\nno arguments are given.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(fs.Output(), "\nExamples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools convert -t snake userLoginCount\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools convert -t title -f snake 2020-04-16_first_patch\n")
		_, _ = fmt.Fprintf(fs.Output(), "  cat identifiers.txt | casetools convert -t kebab\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools convert -t dotted -d defs.yaml spanID\n")
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("target case is required (use -t or --to)")
	}

	defs, err := loadDefs(flags.Defs)
	if err != nil {
		return err
	}

	to, err := resolveCase(defs, flags.To)
	if err != nil {
		return err
	}

	conv := casing.NewConverter().ToCase(to)
	if flags.From != "" {
		from, err := resolveCase(defs, flags.From)
		if err != nil {
			return err
		}
		conv.FromCase(from)
	}

	inputs, err := gatherInputs(fs.Args())
	if err != nil {
		return err
	}

	for _, input := range inputs {
		fmt.Println(conv.Convert(input))
	}
	return nil
}

func setupDetectFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: casetools detect [input...]\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Report which cases each input already satisfies. Inputs come from\nthe arguments, or from stdin (one per line) when no arguments are\ngiven.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Examples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools detect remote-profile-sync\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools detect user_id SpanContext\n")
	}

	return fs
}

func handleDetect(args []string) error {
	fs := setupDetectFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	inputs, err := gatherInputs(fs.Args())
	if err != nil {
		return err
	}

	for _, input := range inputs {
		matches := casing.DetectCases(input)
		if len(matches) == 0 {
			fmt.Printf("%s: (no match)\n", input)
			continue
		}
		names := make([]string, 0, len(matches))
		for _, c := range matches {
			names = append(names, c.Name())
		}
		fmt.Printf("%s: %s\n", input, strings.Join(names, ", "))
	}
	return nil
}

type casesFlags struct {
	Verbose bool
	Defs    string
}

func setupCasesFlags() (*flag.FlagSet, *casesFlags) {
	fs := flag.NewFlagSet("cases", flag.ContinueOnError)
	flags := &casesFlags{}

	fs.BoolVar(&flags.Verbose, "v", false, "Show boundaries, pattern, delimiter, and an example per case")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Show boundaries, pattern, delimiter, and an example per case")
	fs.StringVar(&flags.Defs, "d", "", "YAML case definition file extending the catalog")
	fs.StringVar(&flags.Defs, "defs", "", "YAML case definition file extending the catalog")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: casetools cases [flags]\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "List the case catalog. Definitions loaded with -d are listed before\nthe built-in cases.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(fs.Output(), "\nExamples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools cases\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools cases -v -d defs.yaml\n")
	}

	return fs, flags
}

// exampleSource is the phrase rendered per case in verbose listings.
const exampleSource = "my variable name"

func handleCases(args []string) error {
	fs, flags := setupCasesFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	defs, err := loadDefs(flags.Defs)
	if err != nil {
		return err
	}

	catalog := append(append([]casing.Case{}, defs...), casing.Cases()...)
	for _, c := range catalog {
		if !flags.Verbose {
			fmt.Println(c.Name())
			continue
		}

		boundaries := "(none)"
		if bs := c.Boundaries(); len(bs) > 0 {
			names := make([]string, 0, len(bs))
			for _, b := range bs {
				names = append(names, b.Name())
			}
			boundaries = strings.Join(names, ", ")
		}
		pattern := "(none)"
		if p, ok := c.Pattern().(fmt.Stringer); ok {
			pattern = p.String()
		}

		fmt.Printf("%s\n", c.Name())
		fmt.Printf("  boundaries: %s\n", boundaries)
		fmt.Printf("  pattern:    %s\n", pattern)
		fmt.Printf("  delimiter:  %q\n", c.Delimiter())
		fmt.Printf("  example:    %s\n", casing.Convert(exampleSource, c))
		fmt.Println()
	}
	return nil
}

type genFlags struct {
	To      string
	From    string
	Package string
	VarName string
	Output  string
	Input   string
}

func setupGenFlags() (*flag.FlagSet, *genFlags) {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	flags := &genFlags{}

	fs.StringVar(&flags.To, "t", "", "Target case name (required)")
	fs.StringVar(&flags.To, "to", "", "Target case name (required)")
	fs.StringVar(&flags.From, "f", "", "Source case name; split only at its boundaries")
	fs.StringVar(&flags.From, "from", "", "Source case name; split only at its boundaries")
	fs.StringVar(&flags.Package, "p", "", "Package name for the generated file (default \"names\")")
	fs.StringVar(&flags.Package, "package", "", "Package name for the generated file (default \"names\")")
	fs.StringVar(&flags.VarName, "n", "", "Variable name for the generated table (default \"Names\")")
	fs.StringVar(&flags.VarName, "var", "", "Variable name for the generated table (default \"Names\")")
	fs.StringVar(&flags.Output, "o", "", "Output file path (default: write source to stdout)")
	fs.StringVar(&flags.Output, "output", "", "Output file path (default: write source to stdout)")
	fs.StringVar(&flags.Input, "i", "", "File with identifiers, one per line")
	fs.StringVar(&flags.Input, "input", "", "File with identifiers, one per line")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: casetools gen [flags] [identifier...]\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Generate a Go source file mapping identifiers to their converted\nforms. Identifiers come from the arguments, from the -i file, or\nfrom stdin, in that order of preference.\n\n")
		_, _ = fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(fs.Output(), "\nExamples:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools gen -t snake -p store -n ColumnNames userID createdAt\n")
		_, _ = fmt.Fprintf(fs.Output(), "  casetools gen -t kebab -i fields.txt -o internal/store/names.go\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nNotes:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Without -o the generated source is written to stdout.\n")
		_, _ = fmt.Fprintf(fs.Output(), "  - Table entries keep the order of the input identifiers.\n")
	}

	return fs, flags
}

func handleGen(args []string) error {
	fs, flags := setupGenFlags()
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.To == "" {
		fs.Usage()
		return fmt.Errorf("target case is required (use -t or --to)")
	}

	to, err := casing.ParseCase(flags.To)
	if err != nil {
		return err
	}

	identifiers, err := gatherIdentifiers(fs.Args(), flags.Input)
	if err != nil {
		return err
	}

	opts := generator.Options{
		Identifiers: identifiers,
		Package:     flags.Package,
		VarName:     flags.VarName,
		To:          to,
	}
	if flags.From != "" {
		from, err := casing.ParseCase(flags.From)
		if err != nil {
			return err
		}
		opts.From = &from
	}
	if flags.Output != "" {
		opts.Filename = filepath.Base(flags.Output)
	}

	result, err := generator.Generate(opts)
	if err != nil {
		return err
	}

	if flags.Output == "" {
		_, err := os.Stdout.Write(result.Source)
		return err
	}

	if err := result.Write(filepath.Dir(flags.Output)); err != nil {
		return err
	}
	fmt.Printf("Generated %s (%d identifiers)\n", flags.Output, len(identifiers))
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}

// loadDefs loads a case definition file when path is non-empty.
func loadDefs(path string) ([]casing.Case, error) {
	if path == "" {
		return nil, nil
	}
	defs, err := casedef.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading case definitions: %w", err)
	}
	return defs, nil
}

// resolveCase resolves a case name against loaded definitions first,
// then against the built-in catalog.
func resolveCase(defs []casing.Case, name string) (casing.Case, error) {
	if c, ok := casedef.Find(defs, name); ok {
		return c, nil
	}
	return casing.ParseCase(name)
}

// gatherInputs returns the positional arguments, or stdin lines when
// no arguments were given.
func gatherInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return readLines(os.Stdin)
}

// gatherIdentifiers returns the positional arguments, the lines of the
// -i file, or stdin lines, in that order of preference.
func gatherIdentifiers(args []string, inputPath string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("opening identifier file: %w", err)
		}
		defer func() { _ = f.Close() }()
		return readLines(f)
	}
	return readLines(os.Stdin)
}

// readLines collects non-empty trimmed lines from r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

func printUsage() {
	fmt.Println(`casetools - Identifier Case Conversion Tools

Usage:
  casetools <command> [options]

Commands:
  convert     Convert identifiers to a target case
  detect      Report which cases each input already satisfies
  cases       List the case catalog
  gen         Generate a Go source file with a naming table
  mcp         Run the MCP server on stdio
  version     Show version information
  help        Show this help message

Examples:
  casetools convert -t snake userLoginCount
  casetools convert -t title -f snake 2020-04-16_first_patch
  casetools detect remote-profile-sync
  casetools cases -v
  casetools gen -t snake -p store -n ColumnNames userID createdAt
  casetools mcp

Run 'casetools <command> --help' for more information on a command.`)
}
