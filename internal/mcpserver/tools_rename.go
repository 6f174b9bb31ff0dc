package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/refmt/renamer"
)

type renameFilesInput struct {
	Path         string `json:"path"                    jsonschema:"Directory or file to rename"`
	Case         string `json:"case,omitempty"          jsonschema:"Case transform: lower\\, upper\\, capitalize\\, or none"`
	Separator    string `json:"separator,omitempty"     jsonschema:"Separator replacement: underscore\\, hyphen\\, or none"`
	AddPrefix    string `json:"add_prefix,omitempty"    jsonschema:"Literal prefix to add to the base name"`
	RemovePrefix string `json:"remove_prefix,omitempty" jsonschema:"Literal prefix to remove from the base name"`
	AddSuffix    string `json:"add_suffix,omitempty"    jsonschema:"Literal suffix to add before the extension"`
	RemoveSuffix string `json:"remove_suffix,omitempty" jsonschema:"Literal suffix to remove before the extension"`
	Timestamp    string `json:"timestamp,omitempty"     jsonschema:"Date prefix: long (YYYYMMDD_) or short (YYMMDD_)"`
	NoRecursive  bool   `json:"no_recursive,omitempty"  jsonschema:"Disable recursive traversal"`
	DryRun       bool   `json:"dry_run,omitempty"       jsonschema:"Preview renames without performing them"`
}

type renamedFile struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type renameFilesOutput struct {
	FilesRenamed int           `json:"files_renamed"`
	Renames      []renamedFile `json:"renames,omitempty"`
	Errors       []string      `json:"errors,omitempty"`
	DryRun       bool          `json:"dry_run"`
}

func handleRenameFiles(_ context.Context, _ *mcp.CallToolRequest, input renameFilesInput) (*mcp.CallToolResult, renameFilesOutput, error) {
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), renameFilesOutput{}, nil
	}
	caseTransform, err := renamer.ParseCaseTransform(input.Case)
	if err != nil {
		return errResult(err), renameFilesOutput{}, nil
	}
	separator, err := renamer.ParseSeparator(input.Separator)
	if err != nil {
		return errResult(err), renameFilesOutput{}, nil
	}

	r := renamer.New()
	r.Case = caseTransform
	r.Separator = separator
	r.AddPrefix = input.AddPrefix
	r.RemovePrefix = input.RemovePrefix
	r.AddSuffix = input.AddSuffix
	r.RemoveSuffix = input.RemoveSuffix
	r.Recursive = cfg.Recursive && !input.NoRecursive
	r.DryRun = input.DryRun || cfg.DryRun

	switch input.Timestamp {
	case "":
	case "long":
		r.Timestamp = renamer.TimestampLong
	case "short":
		r.Timestamp = renamer.TimestampShort
	default:
		return errResult(fmt.Errorf("invalid timestamp %q; valid values: long, short", input.Timestamp)), renameFilesOutput{}, nil
	}

	result, err := r.Process(input.Path)
	if err != nil {
		return errResult(err), renameFilesOutput{}, nil
	}

	output := renameFilesOutput{
		FilesRenamed: result.FilesRenamed,
		Errors:       errStrings(result.Errors),
		DryRun:       result.DryRun,
	}
	output.Renames = makeSlice[renamedFile](len(result.Renames))
	for _, rn := range result.Renames {
		output.Renames = append(output.Renames, renamedFile{From: rn.OldPath, To: rn.NewPath})
	}
	output.Renames = capReports(output.Renames)
	return nil, output, nil
}
