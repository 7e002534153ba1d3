package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/casetools/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Inputs []string `json:"inputs"         jsonschema:"Identifier strings to convert"`
	To     string   `json:"to"             jsonschema:"Target case name (see list_cases)"`
	From   string   `json:"from,omitempty" jsonschema:"Source case name. When set\\, splitting uses only that case's boundaries instead of the default inference."`
}

type conversionResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

type convertOutput struct {
	To      string             `json:"to"`
	From    string             `json:"from,omitempty"`
	Results []conversionResult `json:"results"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	if input.To == "" {
		return errResult(fmt.Errorf("target case is required")), convertOutput{}, nil
	}
	if err := validateInputs(input.Inputs); err != nil {
		return errResult(err), convertOutput{}, nil
	}

	to, err := resolveCase(input.To)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	conv := casing.NewConverter().ToCase(to)
	output := convertOutput{To: to.Name()}

	if input.From != "" {
		from, err := resolveCase(input.From)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		conv.FromCase(from)
		output.From = from.Name()
	}

	output.Results = make([]conversionResult, 0, len(input.Inputs))
	for _, s := range input.Inputs {
		output.Results = append(output.Results, conversionResult{
			Input:  s,
			Output: conv.Convert(s),
		})
	}

	return nil, output, nil
}
