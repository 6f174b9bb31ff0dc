package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/refmt/combined"
)

type cleanAllInput struct {
	Path        string `json:"path"                   jsonschema:"Directory or file to process"`
	NoRecursive bool   `json:"no_recursive,omitempty" jsonschema:"Disable recursive traversal"`
	DryRun      bool   `json:"dry_run,omitempty"      jsonschema:"Preview changes without renaming or writing"`
}

type stageReport struct {
	Path        string `json:"path"`
	Stage       string `json:"stage"`
	Edits       int    `json:"edits"`
	Description string `json:"description"`
}

type cleanAllOutput struct {
	FilesRenamed           int           `json:"files_renamed"`
	FilesEmojiTransformed  int           `json:"files_emoji_transformed"`
	EmojiChanges           int           `json:"emoji_changes"`
	FilesWhitespaceCleaned int           `json:"files_whitespace_cleaned"`
	WhitespaceLinesCleaned int           `json:"whitespace_lines_cleaned"`
	Reports                []stageReport `json:"reports,omitempty"`
	Errors                 []string      `json:"errors,omitempty"`
	DryRun                 bool          `json:"dry_run"`
}

func handleCleanAll(_ context.Context, _ *mcp.CallToolRequest, input cleanAllInput) (*mcp.CallToolResult, cleanAllOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), cleanAllOutput{}, nil
	}

	processor := combined.New(combined.Options{
		Recursive: cfg.Recursive && !input.NoRecursive,
		DryRun:    input.DryRun || cfg.DryRun,
	})
	result, err := processor.Process(input.Path)
	if err != nil {
		return errResult(err), cleanAllOutput{}, nil
	}

	output := cleanAllOutput{
		FilesRenamed:           result.Stats.FilesRenamed,
		FilesEmojiTransformed:  result.Stats.FilesEmojiTransformed,
		EmojiChanges:           result.Stats.EmojiChanges,
		FilesWhitespaceCleaned: result.Stats.FilesWhitespaceCleaned,
		WhitespaceLinesCleaned: result.Stats.WhitespaceLinesCleaned,
		Errors:                 errStrings(result.Errors),
		DryRun:                 result.DryRun,
	}
	output.Reports = makeSlice[stageReport](len(result.Reports))
	for _, report := range result.Reports {
		output.Reports = append(output.Reports, stageReport{
			Path:        report.Path,
			Stage:       string(report.Stage),
			Edits:       report.Edits,
			Description: report.Description,
		})
	}
	output.Reports = capReports(output.Reports)
	return nil, output, nil
}
