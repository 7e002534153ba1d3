package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casetools/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// exampleSource is the identifier rendered per case in verbose listings.
const exampleSource = "my variable name"

type listCasesInput struct {
	Verbose bool `json:"verbose,omitempty" jsonschema:"Include boundaries\\, pattern\\, delimiter\\, and an example rendering per case"`
}

type caseSummary struct {
	Name       string   `json:"name"`
	Source     string   `json:"source"`
	Boundaries []string `json:"boundaries,omitempty"`
	Pattern    string   `json:"pattern,omitempty"`
	Delimiter  string   `json:"delimiter,omitempty"`
	Example    string   `json:"example,omitempty"`
}

type listCasesOutput struct {
	Count int           `json:"count"`
	Cases []caseSummary `json:"cases"`
}

func handleListCases(_ context.Context, _ *mcp.CallToolRequest, input listCasesInput) (*mcp.CallToolResult, listCasesOutput, error) {
	all := catalog()
	output := listCasesOutput{Count: len(all), Cases: make([]caseSummary, 0, len(all))}

	for i, c := range all {
		summary := caseSummary{Name: c.Name(), Source: "builtin"}
		if i < len(definitions) {
			summary.Source = "definition"
		}
		if input.Verbose {
			summary.Boundaries = boundaryNames(c.Boundaries())
			if p, ok := c.Pattern().(fmt.Stringer); ok {
				summary.Pattern = p.String()
			}
			summary.Delimiter = c.Delimiter()
			summary.Example = casing.Convert(exampleSource, c)
		}
		output.Cases = append(output.Cases, summary)
	}

	return nil, output, nil
}

func boundaryNames(bs []casing.Boundary) []string {
	names := makeSlice[string](len(bs))
	for _, b := range bs {
		names = append(names, b.Name())
	}
	return names
}
