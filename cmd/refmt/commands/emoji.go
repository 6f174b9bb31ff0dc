package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/emoji"
	"github.com/erraggy/refmt/internal/cliutil"
)

// EmojiFlags contains flags for the emoji command
type EmojiFlags struct {
	Ext           string
	NoReplaceTask bool
	NoRemoveOther bool
	NoRecursive   bool
	DryRun        bool
	Format        string
	Profile       ProfileFlags
}

// SetupEmojiFlags creates and configures a FlagSet for the emoji command.
// Returns the FlagSet and an EmojiFlags struct with bound flag variables.
func SetupEmojiFlags() (*flag.FlagSet, *EmojiFlags) {
	fs := flag.NewFlagSet("emoji", flag.ContinueOnError)
	flags := &EmojiFlags{}

	fs.StringVar(&flags.Ext, "ext", "", "comma-separated extension allow-list (default: common text files)")
	fs.BoolVar(&flags.NoReplaceTask, "no-replace-task", false, "don't replace task/status glyphs with text tokens")
	fs.BoolVar(&flags.NoRemoveOther, "no-remove-other", false, "don't delete unmapped emoji glyphs")
	fs.BoolVar(&flags.NoRecursive, "no-recursive", false, "don't descend into subdirectories")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report changes without writing any file")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	AddProfileFlags(fs, &flags.Profile)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: refmt emoji [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Replace task/status glyphs with text tokens and remove other emojis.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nToken Examples:\n")
		cliutil.Writef(fs.Output(), "  checkmarks -> [x]    warning signs -> [!]    memo -> [note]\n")
		cliutil.Writef(fs.Output(), "  empty box  -> [ ]    colored circles -> [red], [green], ...\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  refmt emoji ./docs\n")
		cliutil.Writef(fs.Output(), "  refmt emoji --no-remove-other README.md\n")
		cliutil.Writef(fs.Output(), "  refmt emoji --dry-run --format json ./notes\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All candidate files processed\n")
		cliutil.Writef(fs.Output(), "  1    Invalid options or one or more files failed\n")
	}

	return fs, flags
}

type emojiOutput struct {
	FilesChanged int      `json:"files_changed"    yaml:"files_changed"`
	Changes      int      `json:"changes"          yaml:"changes"`
	Errors       []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	DryRun       bool     `json:"dry_run"          yaml:"dry_run"`
}

// HandleEmoji executes the emoji command
func HandleEmoji(args []string) error {
	fs, flags := SetupEmojiFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("emoji command requires exactly one file or directory path")
	}
	root := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	settings, err := LoadProfile(&flags.Profile)
	if err != nil {
		return err
	}

	tr := emoji.New()
	tr.Extensions = SplitExtensions(flags.Ext)
	tr.ReplaceTask = !flags.NoReplaceTask
	tr.RemoveOther = !flags.NoRemoveOther
	tr.Recursive = !flags.NoRecursive
	tr.DryRun = flags.DryRun

	if settings != nil {
		set := explicitFlags(fs)
		applyStrings(&tr.Extensions, settings.Extensions)
		applyBool(&tr.ReplaceTask, set, settings.ReplaceTask, "no-replace-task")
		applyBool(&tr.RemoveOther, set, settings.RemoveOther, "no-remove-other")
		applyBool(&tr.Recursive, set, settings.Recursive, "no-recursive")
		applyBool(&tr.DryRun, set, settings.DryRun, "dry-run")
	}

	result, err := tr.Process(root)
	if err != nil {
		return fmt.Errorf("transforming emojis in %s: %w", root, err)
	}

	if flags.Format != FormatText {
		output := emojiOutput{
			FilesChanged: result.FilesChanged,
			Changes:      result.Changes,
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

	cliutil.Writef(os.Stdout, "Emoji Transformer\n\n")
	cliutil.Writef(os.Stdout, "Files changed: %d\n", result.FilesChanged)
	cliutil.Writef(os.Stdout, "Glyphs transformed: %d\n", result.Changes)
	if result.DryRun {
		cliutil.Writef(os.Stdout, "Dry run: no files were written\n")
	}

	printFileErrors(result.Errors)
	return exitOnFileErrors(result.Errors)
}
