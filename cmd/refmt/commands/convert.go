package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/caseformat"
	"github.com/erraggy/refmt/converter"
	"github.com/erraggy/refmt/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	From              string
	To                string
	Ext               string
	Glob              string
	WordFilter        string
	Prefix            string
	Suffix            string
	StripPrefix       string
	StripSuffix       string
	ReplacePrefixFrom string
	ReplacePrefixTo   string
	ReplaceSuffixFrom string
	ReplaceSuffixTo   string
	Recursive         bool
	DryRun            bool
	Format            string
	Profile           ProfileFlags
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.From, "f", "", "source case format (required)")
	fs.StringVar(&flags.From, "from", "", "source case format (required)")
	fs.StringVar(&flags.To, "t", "", "target case format (required)")
	fs.StringVar(&flags.To, "to", "", "target case format (required)")
	fs.StringVar(&flags.Ext, "ext", "", "comma-separated extension allow-list (default: common source files)")
	fs.StringVar(&flags.Glob, "glob", "", "glob pattern matched against file name or relative path")
	fs.StringVar(&flags.WordFilter, "word-filter", "", "regex over the lowercase word sequence; non-matching identifiers are skipped")
	fs.StringVar(&flags.Prefix, "prefix", "", "literal prefix added to every converted identifier")
	fs.StringVar(&flags.Suffix, "suffix", "", "literal suffix added to every converted identifier")
	fs.StringVar(&flags.StripPrefix, "strip-prefix", "", "literal prefix removed from matches before conversion")
	fs.StringVar(&flags.StripSuffix, "strip-suffix", "", "literal suffix removed from matches before conversion")
	fs.StringVar(&flags.ReplacePrefixFrom, "replace-prefix-from", "", "literal prefix to replace before conversion")
	fs.StringVar(&flags.ReplacePrefixTo, "replace-prefix-to", "", "replacement for -replace-prefix-from")
	fs.StringVar(&flags.ReplaceSuffixFrom, "replace-suffix-from", "", "literal suffix to replace before conversion")
	fs.StringVar(&flags.ReplaceSuffixTo, "replace-suffix-to", "", "replacement for -replace-suffix-from")
	fs.BoolVar(&flags.Recursive, "r", false, "process directories recursively")
	fs.BoolVar(&flags.Recursive, "recursive", false, "process directories recursively")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report changes without writing any file")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	AddProfileFlags(fs, &flags.Profile)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: refmt convert [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Rewrite identifiers from one case format to another across a file or tree.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nCase Formats:\n")
		cliutil.Writef(fs.Output(), "  camel            firstName\n")
		cliutil.Writef(fs.Output(), "  pascal           FirstName\n")
		cliutil.Writef(fs.Output(), "  snake            first_name\n")
		cliutil.Writef(fs.Output(), "  screaming-snake  FIRST_NAME\n")
		cliutil.Writef(fs.Output(), "  kebab            first-name\n")
		cliutil.Writef(fs.Output(), "  screaming-kebab  FIRST-NAME\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  refmt convert -f camel -t snake main.py\n")
		cliutil.Writef(fs.Output(), "  refmt convert -f snake -t camel -r ./src\n")
		cliutil.Writef(fs.Output(), "  refmt convert -f camel -t snake -r --word-filter '^get_' ./src\n")
		cliutil.Writef(fs.Output(), "  refmt convert -f camel -t snake --dry-run --format json ./src\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - A single file path is always processed, regardless of extension filters\n")
		cliutil.Writef(fs.Output(), "  - Identifiers inside already-converted text are never rewritten twice\n")
		cliutil.Writef(fs.Output(), "  - Per-file read or encoding failures are reported and do not stop the run\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All candidate files processed\n")
		cliutil.Writef(fs.Output(), "  1    Invalid options or one or more files failed\n")
	}

	return fs, flags
}

type convertOutput struct {
	FilesScanned int             `json:"files_scanned"            yaml:"files_scanned"`
	FilesChanged int             `json:"files_changed"            yaml:"files_changed"`
	Identifiers  int             `json:"identifiers"              yaml:"identifiers"`
	Changes      []convertChange `json:"changes,omitempty"        yaml:"changes,omitempty"`
	Errors       []string        `json:"errors,omitempty"         yaml:"errors,omitempty"`
	DryRun       bool            `json:"dry_run"                  yaml:"dry_run"`
}

type convertChange struct {
	Path    string `json:"path"    yaml:"path"`
	Matches int    `json:"matches" yaml:"matches"`
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file or directory path")
	}
	root := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	settings, err := LoadProfile(&flags.Profile)
	if err != nil {
		return err
	}
	exts := SplitExtensions(flags.Ext)
	if settings != nil {
		set := explicitFlags(fs)
		applyString(&flags.From, settings.From)
		applyString(&flags.To, settings.To)
		applyString(&flags.Glob, settings.Glob)
		applyString(&flags.WordFilter, settings.WordFilter)
		applyString(&flags.Prefix, settings.Prefix)
		applyString(&flags.Suffix, settings.Suffix)
		applyString(&flags.StripPrefix, settings.StripPrefix)
		applyString(&flags.StripSuffix, settings.StripSuffix)
		applyString(&flags.ReplacePrefixFrom, settings.ReplacePrefixFrom)
		applyString(&flags.ReplacePrefixTo, settings.ReplacePrefixTo)
		applyString(&flags.ReplaceSuffixFrom, settings.ReplaceSuffixFrom)
		applyString(&flags.ReplaceSuffixTo, settings.ReplaceSuffixTo)
		applyBool(&flags.Recursive, set, settings.Recursive, "r", "recursive")
		applyBool(&flags.DryRun, set, settings.DryRun, "dry-run")
		applyStrings(&exts, settings.Extensions)
	}

	if flags.From == "" || flags.To == "" {
		fs.Usage()
		return fmt.Errorf("source and target formats are required (use -f and -t)")
	}

	from, err := caseformat.Parse(flags.From)
	if err != nil {
		return err
	}
	to, err := caseformat.Parse(flags.To)
	if err != nil {
		return err
	}

	c := converter.New(from, to)
	c.Extensions = exts
	c.Glob = flags.Glob
	c.WordFilter = flags.WordFilter
	c.Prefix = flags.Prefix
	c.Suffix = flags.Suffix
	c.StripPrefix = flags.StripPrefix
	c.StripSuffix = flags.StripSuffix
	c.ReplacePrefixFrom = flags.ReplacePrefixFrom
	c.ReplacePrefixTo = flags.ReplacePrefixTo
	c.ReplaceSuffixFrom = flags.ReplaceSuffixFrom
	c.ReplaceSuffixTo = flags.ReplaceSuffixTo
	c.Recursive = flags.Recursive
	c.DryRun = flags.DryRun

	result, err := c.Process(root)
	if err != nil {
		return fmt.Errorf("converting %s: %w", root, err)
	}

	if flags.Format != FormatText {
		output := convertOutput{
			FilesScanned: result.FilesScanned,
			FilesChanged: result.FilesChanged,
			Identifiers:  result.Identifiers,
			DryRun:       result.DryRun,
		}
		for _, change := range result.Changes {
			output.Changes = append(output.Changes, convertChange{Path: change.Path, Matches: change.Matches})
		}
		for _, procErr := range result.Errors {
			output.Errors = append(output.Errors, procErr.Error())
		}
		if err := OutputStructured(output, flags.Format); err != nil {
			return err
		}
		return exitOnFileErrors(result.Errors)
	}

	cliutil.Writef(os.Stdout, "Case Converter (%s -> %s)\n\n", from, to)
	cliutil.Writef(os.Stdout, "Files scanned: %d\n", result.FilesScanned)
	cliutil.Writef(os.Stdout, "Files changed: %d\n", result.FilesChanged)
	cliutil.Writef(os.Stdout, "Identifiers rewritten: %d\n", result.Identifiers)
	if result.DryRun {
		cliutil.Writef(os.Stdout, "Dry run: no files were written\n")
	}

	if len(result.Changes) > 0 {
		cliutil.Writef(os.Stdout, "\nChanged files:\n")
		for _, change := range result.Changes {
			cliutil.Writef(os.Stdout, "  %s (%d identifiers)\n", change.Path, change.Matches)
		}
	}

	printFileErrors(result.Errors)
	return exitOnFileErrors(result.Errors)
}

// printFileErrors reports per-file failures collected during a run.
func printFileErrors(errs []error) {
	if len(errs) == 0 {
		return
	}
	cliutil.Writef(os.Stderr, "\nErrors (%d):\n", len(errs))
	for _, err := range errs {
		cliutil.Writef(os.Stderr, "  %v\n", err)
	}
}

// exitOnFileErrors converts collected per-file failures into a non-zero exit.
func exitOnFileErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d file(s) failed", len(errs))
}
