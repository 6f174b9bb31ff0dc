package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/combined"
	"github.com/erraggy/refmt/internal/cliutil"
)

// CleanFlags contains flags for the clean command
type CleanFlags struct {
	NoRecursive bool
	DryRun      bool
	Format      string
	Profile     ProfileFlags
}

// SetupCleanFlags creates and configures a FlagSet for the clean command.
// Returns the FlagSet and a CleanFlags struct with bound flag variables.
func SetupCleanFlags() (*flag.FlagSet, *CleanFlags) {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	flags := &CleanFlags{}

	fs.BoolVar(&flags.NoRecursive, "no-recursive", false, "don't descend into subdirectories")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "preview every change without renaming or writing")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	AddProfileFlags(fs, &flags.Profile)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: refmt clean [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Run the combined cleanup in one pass: lowercase rename, emoji\n")
		cliutil.Writef(fs.Output(), "substitution, and trailing-whitespace removal.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nStages (per file, in order):\n")
		cliutil.Writef(fs.Output(), "  rename       lowercase the file name\n")
		cliutil.Writef(fs.Output(), "  emoji        replace task glyphs, remove other emojis\n")
		cliutil.Writef(fs.Output(), "  whitespace   strip trailing spaces and tabs\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  refmt clean ./docs\n")
		cliutil.Writef(fs.Output(), "  refmt clean --dry-run --format json ./docs\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Content stages only run on recognized text file extensions\n")
		cliutil.Writef(fs.Output(), "  - Reports refer to the post-rename path\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All candidate files processed\n")
		cliutil.Writef(fs.Output(), "  1    Invalid options or one or more files failed\n")
	}

	return fs, flags
}

type cleanOutput struct {
	FilesRenamed           int           `json:"files_renamed"            yaml:"files_renamed"`
	FilesEmojiTransformed  int           `json:"files_emoji_transformed"  yaml:"files_emoji_transformed"`
	EmojiChanges           int           `json:"emoji_changes"            yaml:"emoji_changes"`
	FilesWhitespaceCleaned int           `json:"files_whitespace_cleaned" yaml:"files_whitespace_cleaned"`
	WhitespaceLinesCleaned int           `json:"whitespace_lines_cleaned" yaml:"whitespace_lines_cleaned"`
	Reports                []cleanReport `json:"reports,omitempty"        yaml:"reports,omitempty"`
	Errors                 []string      `json:"errors,omitempty"         yaml:"errors,omitempty"`
	DryRun                 bool          `json:"dry_run"                  yaml:"dry_run"`
}

type cleanReport struct {
	Path        string `json:"path"        yaml:"path"`
	Stage       string `json:"stage"       yaml:"stage"`
	Edits       int    `json:"edits"       yaml:"edits"`
	Description string `json:"description" yaml:"description"`
}

// HandleClean executes the clean command
func HandleClean(args []string) error {
	fs, flags := SetupCleanFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("clean command requires exactly one file or directory path")
	}
	root := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	settings, err := LoadProfile(&flags.Profile)
	if err != nil {
		return err
	}

	opts := combined.Options{
		Recursive: !flags.NoRecursive,
		DryRun:    flags.DryRun,
	}
	if settings != nil {
		set := explicitFlags(fs)
		applyBool(&opts.Recursive, set, settings.Recursive, "no-recursive")
		applyBool(&opts.DryRun, set, settings.DryRun, "dry-run")
	}

	result, err := combined.New(opts).Process(root)
	if err != nil {
		return fmt.Errorf("cleaning %s: %w", root, err)
	}

	if flags.Format != FormatText {
		output := cleanOutput{
			FilesRenamed:           result.Stats.FilesRenamed,
			FilesEmojiTransformed:  result.Stats.FilesEmojiTransformed,
			EmojiChanges:           result.Stats.EmojiChanges,
			FilesWhitespaceCleaned: result.Stats.FilesWhitespaceCleaned,
			WhitespaceLinesCleaned: result.Stats.WhitespaceLinesCleaned,
			DryRun:                 result.DryRun,
		}
		for _, report := range result.Reports {
			output.Reports = append(output.Reports, cleanReport{
				Path:        report.Path,
				Stage:       string(report.Stage),
				Edits:       report.Edits,
				Description: report.Description,
			})
		}
		for _, procErr := range result.Errors {
			output.Errors = append(output.Errors, procErr.Error())
		}
		if err := OutputStructured(output, flags.Format); err != nil {
			return err
		}
		return exitOnFileErrors(result.Errors)
	}

	cliutil.Writef(os.Stdout, "Combined Cleanup\n\n")
	cliutil.Writef(os.Stdout, "Files renamed: %d\n", result.Stats.FilesRenamed)
	cliutil.Writef(os.Stdout, "Files with emoji changes: %d (%d glyphs)\n",
		result.Stats.FilesEmojiTransformed, result.Stats.EmojiChanges)
	cliutil.Writef(os.Stdout, "Files with whitespace cleaned: %d (%d lines)\n",
		result.Stats.FilesWhitespaceCleaned, result.Stats.WhitespaceLinesCleaned)
	if result.DryRun {
		cliutil.Writef(os.Stdout, "Dry run: no files were renamed or written\n")
	}

	if len(result.Reports) > 0 {
		cliutil.Writef(os.Stdout, "\nChanges:\n")
		for _, report := range result.Reports {
			cliutil.Writef(os.Stdout, "  [%s] %s: %s\n", report.Stage, report.Path, report.Description)
		}
	}

	printFileErrors(result.Errors)
	return exitOnFileErrors(result.Errors)
}
