package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/refmt/whitespace"
)

type cleanWhitespaceInput struct {
	Path        string   `json:"path"                   jsonschema:"Directory or file to clean"`
	Extensions  []string `json:"extensions,omitempty"   jsonschema:"File extension allow-list (default: common text and source files)"`
	NoRecursive bool     `json:"no_recursive,omitempty" jsonschema:"Disable recursive traversal"`
	DryRun      bool     `json:"dry_run,omitempty"      jsonschema:"Preview changes without writing"`
}

type cleanWhitespaceOutput struct {
	FilesChanged int      `json:"files_changed"`
	LinesCleaned int      `json:"lines_cleaned"`
	Errors       []string `json:"errors,omitempty"`
	DryRun       bool     `json:"dry_run"`
}

func handleCleanWhitespace(_ context.Context, _ *mcp.CallToolRequest, input cleanWhitespaceInput) (*mcp.CallToolResult, cleanWhitespaceOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), cleanWhitespaceOutput{}, nil
	}

	c := whitespace.New()
	c.Extensions = input.Extensions
	c.Recursive = cfg.Recursive && !input.NoRecursive
	c.DryRun = input.DryRun || cfg.DryRun

	result, err := c.Process(input.Path)
	if err != nil {
		return errResult(err), cleanWhitespaceOutput{}, nil
	}

	return nil, cleanWhitespaceOutput{
		FilesChanged: result.FilesChanged,
		LinesCleaned: result.LinesCleaned,
		Errors:       errStrings(result.Errors),
		DryRun:       result.DryRun,
	}, nil
}
