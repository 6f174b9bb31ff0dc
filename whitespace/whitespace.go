// Package whitespace removes trailing whitespace from file content.
//
// Only trailing space and tab characters are stripped, never leading or
// interior whitespace. Each line keeps whatever end-of-line sequence it
// originally used: the CRLF or LF decision is made per line, so files
// with mixed endings survive a clean untouched except for the trimmed
// characters. A final line without a newline stays without one.
package whitespace

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/internal/walk"
	"github.com/erraggy/refmt/refmterrors"
)

// DefaultExtensions is the extension allow-list used when Extensions is
// empty.
var DefaultExtensions = []string{
	".py", ".pyx", ".pxd", ".pxi",
	".c", ".h", ".cpp", ".hpp",
	".rs", ".go", ".java",
	".js", ".ts", ".jsx", ".tsx",
	".md", ".qmd", ".txt",
}

// Cleaner holds the configuration for one trim run.
type Cleaner struct {
	// Extensions is the case-insensitive extension allow-list.
	// Empty means DefaultExtensions.
	Extensions []string
	// Recursive descends into subdirectories when set.
	Recursive bool
	// DryRun computes and reports changes without writing any file.
	DryRun bool
}

// New creates a Cleaner with recursive traversal on.
func New() *Cleaner {
	return &Cleaner{Recursive: true}
}

// Result aggregates one trim run.
type Result struct {
	// FilesChanged is the number of files whose content changed.
	FilesChanged int
	// LinesCleaned is the total number of lines trimmed.
	LinesCleaned int
	// Errors collects per-file failures; these do not abort the run.
	Errors []error
	// DryRun records whether the run was allowed to write.
	DryRun bool
}

// CleanContent trims trailing spaces and tabs from every line of
// content and returns the result plus the number of lines changed.
func CleanContent(content string) (string, int) {
	var b strings.Builder
	b.Grow(len(content))
	changed := 0

	start := 0
	for start < len(content) {
		var line, eol string
		if idx := strings.IndexByte(content[start:], '\n'); idx >= 0 {
			end := start + idx
			line, eol = content[start:end], "\n"
			if strings.HasSuffix(line, "\r") {
				line, eol = line[:len(line)-1], "\r\n"
			}
			start = end + 1
		} else {
			line = content[start:]
			start = len(content)
		}

		trimmed := strings.TrimRight(line, " \t")
		if trimmed != line {
			changed++
		}
		b.WriteString(trimmed)
		b.WriteString(eol)
	}
	return b.String(), changed
}

// CleanFile trims trailing whitespace in a single file and returns the
// number of lines changed, zero when nothing changed. In dry-run mode
// the change is computed but nothing is written.
func (c *Cleaner) CleanFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &refmterrors.IOError{Op: "read", Path: path, Cause: err}
	}
	content := string(data)
	if !utf8.ValidString(content) {
		return 0, &refmterrors.EncodingError{Path: path, Message: "content is not valid UTF-8"}
	}

	cleaned, lines := CleanContent(content)
	if lines == 0 {
		return 0, nil
	}
	if !c.DryRun {
		if err := os.WriteFile(path, []byte(cleaned), fileutil.ReadableByAll); err != nil {
			return 0, &refmterrors.IOError{Op: "write", Path: path, Cause: err}
		}
	}
	return lines, nil
}

// Process trims trailing whitespace in every candidate file under root.
// Root may be a directory or a single file. Per-file failures are
// collected in the result; enumeration failures abort.
func (c *Cleaner) Process(root string) (*Result, error) {
	exts := c.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := walk.Files(root, walk.Options{
		Recursive:  c.Recursive,
		Extensions: exts,
	})
	if err != nil {
		return nil, err
	}

	result := &Result{DryRun: c.DryRun}
	for _, entry := range entries {
		lines, err := c.CleanFile(entry.Path)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		if lines > 0 {
			result.FilesChanged++
			result.LinesCleaned += lines
		}
	}
	return result, nil
}
