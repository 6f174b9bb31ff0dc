package main

import (
	"fmt"
	"os"

	"github.com/erraggy/refmt"
	"github.com/erraggy/refmt/cmd/refmt/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("refmt v%s\n", refmt.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "convert":
		err = commands.HandleConvert(args)
	case "rename":
		err = commands.HandleRename(args)
	case "emoji":
		err = commands.HandleEmoji(args)
	case "whitespace":
		err = commands.HandleWhitespace(args)
	case "clean":
		err = commands.HandleClean(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`refmt - source text and file name reformatting tools

Usage:
  refmt <command> [options] <path>

Commands:
  convert     Convert identifiers between case formats (camel, snake, ...)
  rename      Transform file names (case, separators, prefixes, timestamps)
  emoji       Replace task/status glyphs with text tokens, remove other emojis
  whitespace  Strip trailing whitespace from every line
  clean       Combined single-pass cleanup: rename + emoji + whitespace
  mcp         Start the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  refmt convert -f camel -t snake -r ./src
  refmt rename -case lower -sep underscore ./docs
  refmt emoji --dry-run README.md
  refmt whitespace -ext .go,.md ./
  refmt clean --dry-run --format json ./docs

Run 'refmt <command> --help' for more information on a command.`)
}
