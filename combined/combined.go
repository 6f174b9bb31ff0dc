// Package combined applies several transformations to a file tree in a
// single traversal.
//
// Each file passes through a fixed stage chain: rename (lowercase the
// name), then glyph substitution, then trailing-whitespace trimming.
// Files are visited deepest-first so a rename never invalidates the path
// of a still-to-be-visited entry, and the content stages always operate
// on the post-rename path. Under dry-run the rename is only simulated:
// the hypothetical new path appears in the report while the content
// stages read the file where it actually is.
package combined

import (
	"fmt"

	"github.com/erraggy/refmt/emoji"
	"github.com/erraggy/refmt/internal/walk"
	"github.com/erraggy/refmt/renamer"
	"github.com/erraggy/refmt/whitespace"
)

// Stage identifies one transformation in the chain. The stage set is
// closed; the chain always runs in the order listed here.
type Stage string

const (
	// StageRename lowercases the file name.
	StageRename Stage = "rename"
	// StageEmoji substitutes status glyphs in the content.
	StageEmoji Stage = "emoji"
	// StageWhitespace trims trailing whitespace from the content.
	StageWhitespace Stage = "whitespace"
)

// Options configure a combined pass.
type Options struct {
	// Recursive descends into subdirectories when set.
	Recursive bool
	// DryRun computes and reports changes without renaming or writing.
	DryRun bool
}

// CombinedStats accumulates per-stage totals for one pass.
type CombinedStats struct {
	// FilesRenamed is the number of files whose name changed.
	FilesRenamed int `json:"files_renamed" yaml:"files_renamed"`
	// FilesEmojiTransformed is the number of files with glyph changes.
	FilesEmojiTransformed int `json:"files_emoji_transformed" yaml:"files_emoji_transformed"`
	// EmojiChanges is the total number of glyph substitutions/removals.
	EmojiChanges int `json:"emoji_changes" yaml:"emoji_changes"`
	// FilesWhitespaceCleaned is the number of files with trimmed lines.
	FilesWhitespaceCleaned int `json:"files_whitespace_cleaned" yaml:"files_whitespace_cleaned"`
	// WhitespaceLinesCleaned is the total number of lines trimmed.
	WhitespaceLinesCleaned int `json:"whitespace_lines_cleaned" yaml:"whitespace_lines_cleaned"`
}

// TransformResult records one stage's outcome on one file. Results are
// only recorded for stages that changed something.
type TransformResult struct {
	// Path is the file's path after any rename in this pass. Under
	// dry-run this is the hypothetical renamed path.
	Path string
	// Stage is the transformation that produced this result.
	Stage Stage
	// Edits is the stage's count of discrete edits.
	Edits int
	// Description is a human-readable summary of the change.
	Description string
}

// CombinedResult aggregates one combined pass.
type CombinedResult struct {
	// Stats holds the per-stage totals.
	Stats CombinedStats
	// Reports lists every stage change, in processing order.
	Reports []TransformResult
	// Errors collects per-file failures; these do not abort the pass.
	Errors []error
	// DryRun records whether the pass was allowed to mutate anything.
	DryRun bool
}

// Processor applies the stage chain to every file in one traversal.
type Processor struct {
	opts    Options
	renamer *renamer.Renamer
	emoji   *emoji.Transformer
	cleaner *whitespace.Cleaner
}

// New creates a Processor. The rename stage lowercases names; the
// content stages run with their default extension allow-lists.
func New(opts Options) *Processor {
	r := renamer.New()
	r.Case = renamer.CaseLower
	r.DryRun = opts.DryRun

	e := emoji.New()
	e.DryRun = opts.DryRun

	c := whitespace.New()
	c.DryRun = opts.DryRun

	return &Processor{opts: opts, renamer: r, emoji: e, cleaner: c}
}

// Process runs the combined pass under root. Root may be a directory or
// a single file. A per-file stage failure is recorded and the pass moves
// on to the next file; a directory enumeration failure aborts.
func (p *Processor) Process(root string) (*CombinedResult, error) {
	entries, err := walk.Files(root, walk.Options{Recursive: p.opts.Recursive})
	if err != nil {
		return nil, err
	}
	walk.SortDeepestFirst(entries)

	result := &CombinedResult{DryRun: p.opts.DryRun}
	for _, entry := range entries {
		p.processFile(entry.Path, result)
	}
	return result, nil
}

// processFile runs the stage chain on one file. The working path is
// updated after the rename stage so later stages observe the file's
// current on-disk location; under dry-run the on-disk location is still
// the original path, while the report carries the hypothetical one.
func (p *Processor) processFile(path string, result *CombinedResult) {
	newPath, renamed, err := p.renamer.RenameFile(path)
	if err != nil {
		result.Errors = append(result.Errors, err)
		return
	}

	diskPath := path
	reportPath := path
	if renamed {
		result.Stats.FilesRenamed++
		reportPath = newPath
		desc := fmt.Sprintf("renamed %q to %q", path, newPath)
		if p.opts.DryRun {
			desc = fmt.Sprintf("would rename %q to %q", path, newPath)
		} else {
			diskPath = newPath
		}
		result.Reports = append(result.Reports, TransformResult{
			Path:        reportPath,
			Stage:       StageRename,
			Edits:       1,
			Description: desc,
		})
	}

	if walk.MatchExtension(diskPath, emoji.DefaultExtensions) {
		changes, err := p.emoji.TransformFile(diskPath)
		if err != nil {
			result.Errors = append(result.Errors, err)
			return
		}
		if changes > 0 {
			result.Stats.FilesEmojiTransformed++
			result.Stats.EmojiChanges += changes
			result.Reports = append(result.Reports, TransformResult{
				Path:        reportPath,
				Stage:       StageEmoji,
				Edits:       changes,
				Description: fmt.Sprintf("substituted %d glyphs in %q", changes, reportPath),
			})
		}
	}

	if walk.MatchExtension(diskPath, whitespace.DefaultExtensions) {
		lines, err := p.cleaner.CleanFile(diskPath)
		if err != nil {
			result.Errors = append(result.Errors, err)
			return
		}
		if lines > 0 {
			result.Stats.FilesWhitespaceCleaned++
			result.Stats.WhitespaceLinesCleaned += lines
			result.Reports = append(result.Reports, TransformResult{
				Path:        reportPath,
				Stage:       StageWhitespace,
				Edits:       lines,
				Description: fmt.Sprintf("trimmed %d lines in %q", lines, reportPath),
			})
		}
	}
}
