package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/refmt/emoji"
)

type transformEmojiInput struct {
	Path          string   `json:"path"                      jsonschema:"Directory or file to process"`
	Extensions    []string `json:"extensions,omitempty"      jsonschema:"File extension allow-list (default: common text and source files)"`
	NoReplaceTask bool     `json:"no_replace_task,omitempty" jsonschema:"Do not replace task/status glyphs with text tokens"`
	NoRemoveOther bool     `json:"no_remove_other,omitempty" jsonschema:"Do not delete unmapped emoji glyphs"`
	NoRecursive   bool     `json:"no_recursive,omitempty"    jsonschema:"Disable recursive traversal"`
	DryRun        bool     `json:"dry_run,omitempty"         jsonschema:"Preview changes without writing"`
}

type transformEmojiOutput struct {
	FilesChanged int      `json:"files_changed"`
	Changes      int      `json:"changes"`
	Errors       []string `json:"errors,omitempty"`
	DryRun       bool     `json:"dry_run"`
}

func handleTransformEmoji(_ context.Context, _ *mcp.CallToolRequest, input transformEmojiInput) (*mcp.CallToolResult, transformEmojiOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), transformEmojiOutput{}, nil
	}

	tr := emoji.New()
	tr.ReplaceTask = !input.NoReplaceTask
	tr.RemoveOther = !input.NoRemoveOther
	tr.Extensions = input.Extensions
	tr.Recursive = cfg.Recursive && !input.NoRecursive
	tr.DryRun = input.DryRun || cfg.DryRun

	result, err := tr.Process(input.Path)
	if err != nil {
		return errResult(err), transformEmojiOutput{}, nil
	}

	return nil, transformEmojiOutput{
		FilesChanged: result.FilesChanged,
		Changes:      result.Changes,
		Errors:       errStrings(result.Errors),
		DryRun:       result.DryRun,
	}, nil
}
