package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/refmt/internal/cliutil"
	"github.com/erraggy/refmt/renamer"
)

// RenameFlags contains flags for the rename command
type RenameFlags struct {
	Case         string
	Separator    string
	AddPrefix    string
	RemovePrefix string
	AddSuffix    string
	RemoveSuffix string
	Timestamp    string
	Recursive    bool
	DryRun       bool
	Format       string
	Profile      ProfileFlags
}

// SetupRenameFlags creates and configures a FlagSet for the rename command.
// Returns the FlagSet and a RenameFlags struct with bound flag variables.
func SetupRenameFlags() (*flag.FlagSet, *RenameFlags) {
	fs := flag.NewFlagSet("rename", flag.ContinueOnError)
	flags := &RenameFlags{}

	fs.StringVar(&flags.Case, "case", "", "case transform: lower, upper, or capitalize")
	fs.StringVar(&flags.Separator, "sep", "", "replace spaces and hyphens/underscores: underscore or hyphen")
	fs.StringVar(&flags.Separator, "separator", "", "replace spaces and hyphens/underscores: underscore or hyphen")
	fs.StringVar(&flags.AddPrefix, "add-prefix", "", "literal prefix to add to the base name")
	fs.StringVar(&flags.RemovePrefix, "remove-prefix", "", "literal prefix to remove from the base name")
	fs.StringVar(&flags.AddSuffix, "add-suffix", "", "literal suffix to add before the extension")
	fs.StringVar(&flags.RemoveSuffix, "remove-suffix", "", "literal suffix to remove before the extension")
	fs.StringVar(&flags.Timestamp, "timestamp", "", "date prefix: long (YYYYMMDD_) or short (YYMMDD_)")
	fs.BoolVar(&flags.Recursive, "r", false, "process directories recursively")
	fs.BoolVar(&flags.Recursive, "recursive", false, "process directories recursively")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "report renames without performing them")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	AddProfileFlags(fs, &flags.Profile)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: refmt rename [flags] <path>\n\n")
		cliutil.Writef(fs.Output(), "Transform file names through an ordered edit pipeline.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nPipeline Order:\n")
		cliutil.Writef(fs.Output(), "  remove prefix/suffix -> separator replacement -> case transform ->\n")
		cliutil.Writef(fs.Output(), "  add prefix/suffix -> timestamp prefix; the extension is never touched\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  refmt rename -case lower -sep underscore ./docs\n")
		cliutil.Writef(fs.Output(), "  refmt rename -r -case lower --remove-prefix 'Copy of ' ./archive\n")
		cliutil.Writef(fs.Output(), "  refmt rename --timestamp long --dry-run ./reports\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Hidden files are never renamed\n")
		cliutil.Writef(fs.Output(), "  - A rename that would overwrite a different existing file is skipped\n")
		cliutil.Writef(fs.Output(), "  - Deeper directories are processed first\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    All candidate files processed\n")
		cliutil.Writef(fs.Output(), "  1    Invalid options or one or more renames failed\n")
	}

	return fs, flags
}

type renameOutput struct {
	FilesRenamed int            `json:"files_renamed"     yaml:"files_renamed"`
	Renames      []renameChange `json:"renames,omitempty" yaml:"renames,omitempty"`
	Errors       []string       `json:"errors,omitempty"  yaml:"errors,omitempty"`
	DryRun       bool           `json:"dry_run"           yaml:"dry_run"`
}

type renameChange struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
}

// HandleRename executes the rename command
func HandleRename(args []string) error {
	fs, flags := SetupRenameFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("rename command requires exactly one file or directory path")
	}
	root := fs.Arg(0)

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	settings, err := LoadProfile(&flags.Profile)
	if err != nil {
		return err
	}
	if settings != nil {
		set := explicitFlags(fs)
		applyString(&flags.Case, settings.Case)
		applyString(&flags.Separator, settings.Separator)
		applyString(&flags.AddPrefix, settings.AddPrefix)
		applyString(&flags.RemovePrefix, settings.RemovePrefix)
		applyString(&flags.AddSuffix, settings.AddSuffix)
		applyString(&flags.RemoveSuffix, settings.RemoveSuffix)
		applyString(&flags.Timestamp, settings.Timestamp)
		applyBool(&flags.Recursive, set, settings.Recursive, "r", "recursive")
		applyBool(&flags.DryRun, set, settings.DryRun, "dry-run")
	}

	caseTransform, err := renamer.ParseCaseTransform(flags.Case)
	if err != nil {
		return err
	}
	separator, err := renamer.ParseSeparator(flags.Separator)
	if err != nil {
		return err
	}

	r := renamer.New()
	r.Case = caseTransform
	r.Separator = separator
	r.AddPrefix = flags.AddPrefix
	r.RemovePrefix = flags.RemovePrefix
	r.AddSuffix = flags.AddSuffix
	r.RemoveSuffix = flags.RemoveSuffix
	r.Recursive = flags.Recursive
	r.DryRun = flags.DryRun

	switch flags.Timestamp {
	case "":
	case "long":
		r.Timestamp = renamer.TimestampLong
	case "short":
		r.Timestamp = renamer.TimestampShort
	default:
		return fmt.Errorf("invalid timestamp %q; valid values: long, short", flags.Timestamp)
	}

	result, err := r.Process(root)
	if err != nil {
		return fmt.Errorf("renaming in %s: %w", root, err)
	}

	if flags.Format != FormatText {
		output := renameOutput{
			FilesRenamed: result.FilesRenamed,
			DryRun:       result.DryRun,
		}
		for _, rn := range result.Renames {
			output.Renames = append(output.Renames, renameChange{From: rn.OldPath, To: rn.NewPath})
		}
		for _, procErr := range result.Errors {
			output.Errors = append(output.Errors, procErr.Error())
		}
		if err := OutputStructured(output, flags.Format); err != nil {
			return err
		}
		return exitOnFileErrors(result.Errors)
	}

	cliutil.Writef(os.Stdout, "File Renamer\n\n")
	cliutil.Writef(os.Stdout, "Files renamed: %d\n", result.FilesRenamed)
	if result.DryRun {
		cliutil.Writef(os.Stdout, "Dry run: no files were renamed\n")
	}
	if len(result.Renames) > 0 {
		cliutil.Writef(os.Stdout, "\nRenames:\n")
		for _, rn := range result.Renames {
			cliutil.Writef(os.Stdout, "  %s -> %s\n", rn.OldPath, rn.NewPath)
		}
	}

	printFileErrors(result.Errors)
	return exitOnFileErrors(result.Errors)
}
