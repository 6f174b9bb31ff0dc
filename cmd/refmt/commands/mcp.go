package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/refmt/internal/cliutil"
	"github.com/erraggy/refmt/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: refmt mcp\n\n")
		cliutil.Writef(fs.Output(), "Start the MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes the refmt transformers as MCP tools:\n")
		cliutil.Writef(fs.Output(), "  convert_case, rename_files, transform_emoji, clean_whitespace, clean_all\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  REFMT_DRY_RUN      default every tool to dry-run mode (default: false)\n")
		cliutil.Writef(fs.Output(), "  REFMT_RECURSIVE    default every tool to recursive traversal (default: true)\n")
		cliutil.Writef(fs.Output(), "  REFMT_MAX_REPORTS  cap per-file report lines in tool output (default: 100)\n")
		cliutil.Writef(fs.Output(), "\nExample MCP client configuration:\n")
		cliutil.Writef(fs.Output(), "  {\"command\": \"refmt\", \"args\": [\"mcp\"], \"env\": {\"REFMT_DRY_RUN\": \"true\"}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
