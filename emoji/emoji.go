// Package emoji substitutes status glyphs in file content with plain
// text tokens.
//
// Two independent toggles control the work: ReplaceTask rewrites known
// task-completion and status glyphs to bracketed tokens (✅ becomes
// [x]), and RemoveOther deletes any remaining glyph in the recognized
// symbol ranges. Replacement tokens are plain ASCII and are never
// re-matched by the removal pass.
package emoji

import (
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/internal/walk"
	"github.com/erraggy/refmt/refmterrors"
)

// DefaultExtensions is the extension allow-list used when Extensions is
// empty.
var DefaultExtensions = []string{
	".md", ".txt", ".rst", ".org",
	".py", ".rs", ".go", ".java",
	".js", ".ts", ".jsx", ".tsx",
	".c", ".h", ".cpp", ".hpp",
}

// taskPattern matches every glyph with a text token in taskTokens.
var taskPattern = regexp.MustCompile(`[` +
	`\x{2705}` + // white check mark
	`\x{2611}` + // ballot box with check
	`\x{2714}` + // heavy check mark
	`\x{2713}` + // check mark
	`\x{2610}` + // ballot box
	`\x{2612}` + // ballot box with X
	`\x{274C}` + // cross mark
	`\x{274E}` + // negative squared cross mark
	`\x{26A0}` + // warning sign
	`\x{26D4}` + // no entry
	`\x{2B50}` + // star
	`\x{1F7E0}` + // orange circle
	`\x{1F7E1}` + // yellow circle
	`\x{1F7E8}` + // yellow square
	`\x{1F7E2}` + // green circle
	`\x{1F534}` + // red circle
	`\x{1F4DD}` + // memo
	`\x{1F4CB}` + // clipboard
	`\x{1F4C4}` + // page facing up
	`\x{1F4C5}` + // calendar
	`\x{1F4C6}` + // tear-off calendar
	`\x{1F5D3}` + // spiral calendar
	`\x{1F4D1}` + // bookmark tabs
	`\x{1F4CC}` + // pushpin
	`\x{1F4CD}` + // round pushpin
	`\x{1F4CE}` + // paperclip
	`]`)

// taskTokens maps each task/status glyph to its replacement token.
var taskTokens = map[rune]string{
	'✅':  "[x]",
	'☑':  "[x]",
	'✔':  "[x]",
	'✓':  "[x]",
	'☐':  "[ ]",
	'☒':  "[X]",
	'❌':  "[X]",
	'❎':  "[X]",
	'⚠':  "[!]",
	'⛔':  "[!]",
	'⭐':  "[+]",
	'\U0001F7E0': "[orange]",
	'\U0001F7E1': "[yellow]",
	'\U0001F7E8': "[yellow]",
	'\U0001F7E2': "[green]",
	'\U0001F534': "[red]",
	'\U0001F4DD': "[note]",
	'\U0001F4CB': "[list]",
	'\U0001F4C4': "[doc]",
	'\U0001F4C5': "[cal]",
	'\U0001F4C6': "[cal]",
	'\U0001F5D3': "[cal]",
	'\U0001F4D1': "[tab]",
	'\U0001F4CC': "[pin]",
	'\U0001F4CD': "[pin]",
	'\U0001F4CE': "[clip]",
}

// generalPattern matches glyphs in the recognized symbol categories:
// emoticons, pictographs, transport symbols, flags, miscellaneous
// symbols, dingbats, supplemental symbols, and variation selectors.
var generalPattern = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` +
	`\x{1F300}-\x{1F5FF}` +
	`\x{1F680}-\x{1F6FF}` +
	`\x{1F1E0}-\x{1F1FF}` +
	`\x{2600}-\x{26FF}` +
	`\x{2700}-\x{27BF}` +
	`\x{1F900}-\x{1F9FF}` +
	`\x{1FA00}-\x{1FA6F}` +
	`\x{1FA70}-\x{1FAFF}` +
	`\x{FE00}-\x{FE0F}` +
	`\x{1F004}` +
	`\x{1F0CF}` +
	`\x{1F18E}` +
	`\x{1F191}-\x{1F19A}` +
	`]`)

// Transformer holds the configuration for one substitution run.
type Transformer struct {
	// ReplaceTask rewrites known task/status glyphs to text tokens.
	ReplaceTask bool
	// RemoveOther deletes unmapped glyphs in the symbol categories.
	RemoveOther bool
	// Extensions is the case-insensitive extension allow-list.
	// Empty means DefaultExtensions.
	Extensions []string
	// Recursive descends into subdirectories when set.
	Recursive bool
	// DryRun computes and reports changes without writing any file.
	DryRun bool
}

// New creates a Transformer with both substitution passes enabled and
// recursive traversal on.
func New() *Transformer {
	return &Transformer{ReplaceTask: true, RemoveOther: true, Recursive: true}
}

// Result aggregates one substitution run.
type Result struct {
	// FilesChanged is the number of files whose content changed.
	FilesChanged int
	// Changes is the total number of substitutions and removals.
	Changes int
	// Errors collects per-file failures; these do not abort the run.
	Errors []error
	// DryRun records whether the run was allowed to write.
	DryRun bool
}

// TransformContent applies the enabled passes to content and returns the
// result plus the number of glyphs substituted or removed.
func (t *Transformer) TransformContent(content string) (string, int) {
	out := content
	changes := 0

	if t.ReplaceTask {
		if n := len(taskPattern.FindAllStringIndex(out, -1)); n > 0 {
			out = taskPattern.ReplaceAllStringFunc(out, func(m string) string {
				r, _ := utf8.DecodeRuneInString(m)
				return taskTokens[r]
			})
			changes += n
		}
	}
	if t.RemoveOther {
		if n := len(generalPattern.FindAllStringIndex(out, -1)); n > 0 {
			out = generalPattern.ReplaceAllString(out, "")
			changes += n
		}
	}
	return out, changes
}

// TransformFile substitutes glyphs in a single file and returns the
// change count, zero when the content did not change. In dry-run mode
// the change is computed but nothing is written.
func (t *Transformer) TransformFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &refmterrors.IOError{Op: "read", Path: path, Cause: err}
	}
	content := string(data)
	if !utf8.ValidString(content) {
		return 0, &refmterrors.EncodingError{Path: path, Message: "content is not valid UTF-8"}
	}

	out, changes := t.TransformContent(content)
	if out == content {
		return 0, nil
	}
	if !t.DryRun {
		if err := os.WriteFile(path, []byte(out), fileutil.ReadableByAll); err != nil {
			return 0, &refmterrors.IOError{Op: "write", Path: path, Cause: err}
		}
	}
	return changes, nil
}

// Process substitutes glyphs in every candidate file under root. Root
// may be a directory or a single file. Per-file failures are collected
// in the result; enumeration failures abort.
func (t *Transformer) Process(root string) (*Result, error) {
	exts := t.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := walk.Files(root, walk.Options{
		Recursive:  t.Recursive,
		Extensions: exts,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{DryRun: t.DryRun}
	for _, entry := range entries {
		changes, err := t.TransformFile(entry.Path)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		if changes > 0 {
			result.FilesChanged++
			result.Changes += changes
		}
	}
	return result, nil
}
