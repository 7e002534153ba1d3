package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/casetools/casing"
)

func TestConvertTool_Basic(t *testing.T) {
	input := convertInput{
		Inputs: []string{"userLoginCount", "remote-profile-sync"},
		To:     "snake",
	}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "Snake", output.To)
	assert.Empty(t, output.From)
	require.Len(t, output.Results, 2)
	assert.Equal(t, conversionResult{Input: "userLoginCount", Output: "user_login_count"}, output.Results[0])
	assert.Equal(t, conversionResult{Input: "remote-profile-sync", Output: "remote_profile_sync"}, output.Results[1])
}

func TestConvertTool_WithFrom(t *testing.T) {
	input := convertInput{
		Inputs: []string{"2020-04-16_first_patch"},
		To:     "title",
		From:   "snake",
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "Title", output.To)
	assert.Equal(t, "Snake", output.From)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "2020-04-16 First Patch", output.Results[0].Output,
		"source-case splitting must keep the date intact")
}

func TestConvertTool_FlexibleCaseNames(t *testing.T) {
	input := convertInput{
		Inputs: []string{"some value"},
		To:     "upper_camel",
	}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "UpperCamel", output.To)
	assert.Equal(t, "SomeValue", output.Results[0].Output)
}

func TestConvertTool_MissingTarget(t *testing.T) {
	input := convertInput{Inputs: []string{"a"}}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Results)
}

func TestConvertTool_UnknownTarget(t *testing.T) {
	input := convertInput{Inputs: []string{"a"}, To: "SCREAMING"}
	result, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Results)

	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "unknown case")
	assert.Contains(t, text.Text, "SCREAMING")
}

func TestConvertTool_UnknownFrom(t *testing.T) {
	input := convertInput{Inputs: []string{"a"}, To: "snake", From: "piglatin"}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_NoInputs(t *testing.T) {
	input := convertInput{To: "snake"}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_InputCeiling(t *testing.T) {
	withConfig(t, &serverConfig{MaxInputs: 1, MaxInputLen: 4096})

	input := convertInput{Inputs: []string{"a", "b"}, To: "snake"}
	result, _, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertTool_DefinitionCase(t *testing.T) {
	dotted := casing.Custom("dotted", []casing.Boundary{casing.FromDelim(".")}, casing.PatternLowercase, ".")
	withDefinitions(t, []casing.Case{dotted})

	input := convertInput{Inputs: []string{"SpanID"}, To: "dotted"}
	_, output, err := handleConvert(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "dotted", output.To)
	assert.Equal(t, "span.id", output.Results[0].Output)
}
