package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/internal/cliutil"
	"github.com/erraggy/refmt/whitespace"
)

// WhitespaceFlags contains flags for the whitespace command
type WhitespaceFlags struct {
	Ext         string
	NoRecursive bool
	DryRun      bool
	Format      string
	Profile     ProfileFlags
}

// SetupWhitespaceFlags creates and configures a FlagSet for the whitespace command.
// Returns the FlagSet and a WhitespaceFlags struct with bound flag variables.
func SetupWhitespaceFlags() (*flag.FlagSet, *WhitespaceFlags) {
	fs := flag.NewFlagSet("whitespace", flag.ContinueOnError)
	flags := &WhitespaceFlags{}

	fs.StringVar(&flags.Ext, "ext", "", "comma-separated extension allow-list (default: common text and source files)")
	fs.BoolVar(&flags.NoRecursive, "no-recursive", false, "don't descend into subdirectories")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report changes without writing any file")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	AddProfileFlags(fs, &flags.Profile)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: refmt whitespace [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Strip trailing spaces and tabs from every line.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  refmt whitespace ./src\n")
		cliutil.Writef(fs.Output(), "  refmt whitespace -ext .md,.txt ./docs\n")
		cliutil.Writef(fs.Output(), "  refmt whitespace --dry-run --format yaml ./src\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Line endings (LF or CRLF) are preserved per line\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All candidate files processed\n")
		cliutil.Writef(fs.Output(), "  1    Invalid options or one or more files failed\n")
	}

	return fs, flags
}

type whitespaceOutput struct {
	FilesChanged int      `json:"files_changed"    yaml:"files_changed"`
	LinesCleaned int      `json:"lines_cleaned"    yaml:"lines_cleaned"`
	Errors       []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	DryRun       bool     `json:"dry_run"          yaml:"dry_run"`
}

// HandleWhitespace executes the whitespace command
func HandleWhitespace(args []string) error {
	fs, flags := SetupWhitespaceFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("whitespace command requires exactly one file or directory path")
	}
	root := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	settings, err := LoadProfile(&flags.Profile)
	if err != nil {
		return err
	}

	c := whitespace.New()
	c.Extensions = SplitExtensions(flags.Ext)
	c.Recursive = !flags.NoRecursive
	c.DryRun = flags.DryRun

	if settings != nil {
		set := explicitFlags(fs)
		applyStrings(&c.Extensions, settings.Extensions)
		applyBool(&c.Recursive, set, settings.Recursive, "no-recursive")
		applyBool(&c.DryRun, set, settings.DryRun, "dry-run")
	}

	result, err := c.Process(root)
	if err != nil {
		return fmt.Errorf("cleaning whitespace in %s: %w", root, err)
	}

	if flags.Format != FormatText {
		output := whitespaceOutput{
			FilesChanged: result.FilesChanged,
			LinesCleaned: result.LinesCleaned,
			DryRun:       result.DryRun,
		}
		for _, procErr := range result.Errors {
			output.Errors = append(output.Errors, procErr.Error())
		}
		if err := OutputStructured(output, flags.Format); err != nil {
			return err
		}
		return exitOnFileErrors(result.Errors)
	}

	cliutil.Writef(os.Stdout, "Whitespace Cleaner\n\n")
	cliutil.Writef(os.Stdout, "Files changed: %d\n", result.FilesChanged)
	cliutil.Writef(os.Stdout, "Lines cleaned: %d\n", result.LinesCleaned)
	if result.DryRun {
		cliutil.Writef(os.Stdout, "Dry run: no files were written\n")
	}

	printFileErrors(result.Errors)
	return exitOnFileErrors(result.Errors)
}
