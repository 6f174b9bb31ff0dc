// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the refmt transformers as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/refmt"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `refmt MCP server — converts identifier case formats, renames files, substitutes status glyphs, and trims trailing whitespace.

Configuration: Defaults are configurable via REFMT_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- REFMT_DRY_RUN (default: false) — make every tool default to dry-run mode
- REFMT_RECURSIVE (default: true) — make every tool default to recursive traversal
- REFMT_MAX_REPORTS (default: 100) — cap per-file report lines in tool output

All tools mutate files in place. Use dry_run=true to preview changes before applying them.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "refmt", Version: refmt.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert identifiers in file content between case formats (camel, pascal, snake, screaming-snake, kebab, screaming-kebab). Supports literal prefix/suffix strip/replace/add, a word-filter regex, extension and glob file selection, and dry-run preview.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_files",
		Description: "Rename files through an edit pipeline: remove/add literal prefixes and suffixes, replace separators with underscores or hyphens, apply a case transform (lower, upper, capitalize), and optionally add a date prefix. The extension is preserved. Use dry_run=true to preview.",
	}, handleRenameFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform_emoji",
		Description: "Replace task/status glyphs with text tokens (✅ -> [x]) and optionally remove all other emoji glyphs. Use no_replace_task or no_remove_other to disable either pass.",
	}, handleTransformEmoji)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clean_whitespace",
		Description: "Remove trailing spaces and tabs from every line, preserving each line's original CRLF or LF ending. Returns per-file line counts.",
	}, handleCleanWhitespace)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "clean_all",
		Description: "Run the combined single-pass cleanup: lowercase file names, substitute status glyphs, and trim trailing whitespace in one traversal. Returns aggregate statistics per stage.",
	}, handleCleanAll)
}

// capReports truncates a report list to the configured maximum.
func capReports[T any](items []T) []T {
	if len(items) > cfg.MaxReports {
		return items[:cfg.MaxReports]
	}
	return items
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON
// semantics), otherwise returns make([]T, 0, n) for pre-allocated
// appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// errStrings renders collected per-file errors for tool output,
// sanitized like top-level errors.
func errStrings(errs []error) []string {
	out := makeSlice[string](len(errs))
	for _, err := range errs {
		out = append(out, sanitizeError(err))
	}
	return out
}
