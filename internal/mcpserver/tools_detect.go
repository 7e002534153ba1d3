package mcpserver

import (
	"context"

	"github.com/erraggy/casetools/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type detectInput struct {
	Inputs []string `json:"inputs" jsonschema:"Strings to analyze"`
}

type detectionResult struct {
	Input string   `json:"input"`
	Cases []string `json:"cases,omitempty"`
}

type detectOutput struct {
	Results []detectionResult `json:"results"`
}

func handleDetect(_ context.Context, _ *mcp.CallToolRequest, input detectInput) (*mcp.CallToolResult, detectOutput, error) {
	if err := validateInputs(input.Inputs); err != nil {
		return errResult(err), detectOutput{}, nil
	}

	output := detectOutput{Results: make([]detectionResult, 0, len(input.Inputs))}
	for _, s := range input.Inputs {
		matched := casing.DetectCases(s)
		names := makeSlice[string](len(matched))
		for _, c := range matched {
			names = append(names, c.Name())
		}
		output.Results = append(output.Results, detectionResult{Input: s, Cases: names})
	}

	return nil, output, nil
}
