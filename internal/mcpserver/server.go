// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casetools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/erraggy/casetools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casetools MCP server — converts identifiers between naming conventions, detects which conventions a string already follows, and lists the case catalog.

Configuration: All defaults are configurable via CASETOOLS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- CASETOOLS_MAX_INPUTS (default: 1000) — maximum strings per tool call
- CASETOOLS_MAX_INPUT_LEN (default: 4096) — maximum bytes per input string
- CASETOOLS_DEFS — optional path to a YAML case definition file; its cases extend the catalog used by convert and list_cases

Case names accept flexible spellings: "UpperCamel", "upper-camel", and "upper_camel" all resolve to the same case. Use list_cases to see every accepted name.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casetools", Version: casetools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert identifier strings to a target naming case (snake, camel, kebab, pascal, title, and more; see list_cases). By default word boundaries are inferred from delimiters, letter-case transitions, acronyms, and digits. Set from to a source case to split only at that case's boundaries, which keeps content intact that inference would break apart (dates, version strings). Batch ceilings are configurable via CASETOOLS_MAX_INPUTS and CASETOOLS_MAX_INPUT_LEN env vars.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "detect",
		Description: "Detect which naming cases each input string already follows. Returns the matching case names per input, in catalog order; an input that matches nothing (mixed delimiters, inconsistent casing) returns an empty list. ASCII digits are ignored during matching, so identifiers like sha256_digest still read as snake case.",
	}, handleDetect)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_cases",
		Description: "List the case catalog: built-in cases plus any loaded from the CASETOOLS_DEFS definition file. Use verbose=true to include each case's boundaries, pattern, delimiter, and an example rendering.",
	}, handleListCases)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
