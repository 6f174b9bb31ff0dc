// Package converter rewrites identifiers inside file content from one
// case format to another.
//
// A Converter scans content for identifiers matching the source format's
// detection pattern and replaces each match with its target-format
// rendering. Every match runs through a fixed edit pipeline: strip
// configured literal prefix/suffix, replace configured literal
// prefix/suffix, test the word filter, convert between formats, and add
// configured literal prefix/suffix. Replacement is a single pass over the
// original content; replaced text is never re-scanned.
package converter

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/erraggy/refmt/caseformat"
	"github.com/erraggy/refmt/internal/fileutil"
	"github.com/erraggy/refmt/internal/walk"
	"github.com/erraggy/refmt/refmterrors"
)

// DefaultExtensions is the extension allow-list used when Extensions is
// empty.
var DefaultExtensions = []string{
	".c", ".h", ".py", ".md", ".js", ".ts", ".java", ".cpp", ".hpp",
}

// Converter holds the configuration for one conversion run. Fields are
// read once per run; a Converter is safe to reuse across runs if not
// mutated concurrently.
type Converter struct {
	// From is the source case format to detect.
	From caseformat.Format
	// To is the target case format to render.
	To caseformat.Format
	// Extensions is the case-insensitive extension allow-list.
	// Empty means DefaultExtensions.
	Extensions []string
	// Recursive descends into subdirectories when set.
	Recursive bool
	// DryRun computes and reports changes without writing any file.
	DryRun bool
	// Prefix is a literal added to every converted identifier.
	Prefix string
	// Suffix is a literal added to every converted identifier.
	Suffix string
	// StripPrefix is a literal removed from a matched identifier before
	// conversion, when present.
	StripPrefix string
	// StripSuffix is a literal removed from a matched identifier before
	// conversion, when present.
	StripSuffix string
	// ReplacePrefixFrom and ReplacePrefixTo substitute one literal
	// prefix for another before conversion. Both must be set together.
	ReplacePrefixFrom string
	ReplacePrefixTo   string
	// ReplaceSuffixFrom and ReplaceSuffixTo substitute one literal
	// suffix for another before conversion. Both must be set together.
	ReplaceSuffixFrom string
	ReplaceSuffixTo   string
	// Glob restricts candidate files to those whose name or
	// root-relative path matches the pattern.
	Glob string
	// WordFilter is a regular expression tested against the matched
	// identifier's lowercase word sequence joined with underscores.
	// Identifiers that fail the filter are left untouched.
	WordFilter string
}

// New creates a Converter for the given format pair with default
// settings.
func New(from, to caseformat.Format) *Converter {
	return &Converter{From: from, To: to}
}

// FileResult is the outcome of converting a single file.
type FileResult struct {
	// Path is the file that was processed.
	Path string
	// Changed is true when the rewritten content differs.
	Changed bool
	// Matches is the number of identifiers rewritten.
	Matches int
}

// ConvertResult aggregates one conversion run.
type ConvertResult struct {
	// FilesScanned is the number of candidate files read.
	FilesScanned int
	// FilesChanged is the number of files whose content changed.
	FilesChanged int
	// Identifiers is the total number of identifiers rewritten.
	Identifiers int
	// Changes lists the per-file outcomes for files that changed.
	Changes []FileResult
	// Errors collects per-file failures; these do not abort the run.
	Errors []error
	// DryRun records whether the run was allowed to write.
	DryRun bool
}

// HasChanges returns true if any file content changed.
func (r *ConvertResult) HasChanges() bool {
	return r.FilesChanged > 0
}

// runtime is the compiled form of a Converter, built once per run.
type runtime struct {
	cfg     *Converter
	pattern *regexp.Regexp
	filter  *regexp.Regexp
}

// compile validates the configuration and builds the matching state.
// All configuration errors surface here, before any file I/O.
func (c *Converter) compile() (*runtime, error) {
	if !c.From.Valid() {
		return nil, &refmterrors.ConfigError{
			Option:  "source-format",
			Value:   string(c.From),
			Message: "unknown case format",
		}
	}
	if !c.To.Valid() {
		return nil, &refmterrors.ConfigError{
			Option:  "target-format",
			Value:   string(c.To),
			Message: "unknown case format",
		}
	}
	if (c.ReplacePrefixFrom == "") != (c.ReplacePrefixTo == "") {
		return nil, &refmterrors.ConfigError{
			Option:  "replace-prefix",
			Message: "replace-prefix-from and replace-prefix-to must be set together",
		}
	}
	if (c.ReplaceSuffixFrom == "") != (c.ReplaceSuffixTo == "") {
		return nil, &refmterrors.ConfigError{
			Option:  "replace-suffix",
			Message: "replace-suffix-from and replace-suffix-to must be set together",
		}
	}
	if err := walk.ValidateGlob(c.Glob); err != nil {
		return nil, err
	}

	rt := &runtime{cfg: c, pattern: c.From.Pattern()}
	if c.WordFilter != "" {
		filter, err := regexp.Compile(c.WordFilter)
		if err != nil {
			return nil, &refmterrors.ConfigError{
				Option:  "word-filter",
				Value:   c.WordFilter,
				Message: "invalid regular expression",
				Cause:   err,
			}
		}
		rt.filter = filter
	}
	return rt, nil
}

// Convert rewrites a single identifier through the full edit pipeline.
// The identifier comes back unchanged when the word filter rejects it.
// Configuration errors are reported before any conversion happens.
func (c *Converter) Convert(name string) (string, error) {
	rt, err := c.compile()
	if err != nil {
		return "", err
	}
	return rt.convert(name), nil
}

// convert applies the per-match edit pipeline in fixed order.
func (rt *runtime) convert(name string) string {
	cfg := rt.cfg
	processed := name

	if cfg.StripPrefix != "" {
		processed = strings.TrimPrefix(processed, cfg.StripPrefix)
	}
	if cfg.StripSuffix != "" {
		processed = strings.TrimSuffix(processed, cfg.StripSuffix)
	}
	if cfg.ReplacePrefixFrom != "" && strings.HasPrefix(processed, cfg.ReplacePrefixFrom) {
		processed = cfg.ReplacePrefixTo + processed[len(cfg.ReplacePrefixFrom):]
	}
	if cfg.ReplaceSuffixFrom != "" && strings.HasSuffix(processed, cfg.ReplaceSuffixFrom) {
		processed = processed[:len(processed)-len(cfg.ReplaceSuffixFrom)] + cfg.ReplaceSuffixTo
	}

	words := cfg.From.Split(processed)
	if rt.filter != nil && !rt.filter.MatchString(strings.Join(words, "_")) {
		return name
	}
	return cfg.To.Join(words, cfg.Prefix, cfg.Suffix)
}

// rewrite replaces every source-format match in content. Match spans
// come from a single scan of the original content; each replacement is
// computed independently and spliced in, so replaced text is never
// re-matched.
func (rt *runtime) rewrite(content string) (string, int) {
	spans := rt.pattern.FindAllStringIndex(content, -1)
	if len(spans) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	matches := 0
	for _, span := range spans {
		match := content[span[0]:span[1]]
		repl := rt.convert(match)
		b.WriteString(content[last:span[0]])
		b.WriteString(repl)
		if repl != match {
			matches++
		}
		last = span[1]
	}
	b.WriteString(content[last:])
	return b.String(), matches
}

// ProcessFile converts identifiers in a single file. In dry-run mode the
// change is computed and reported but nothing is written.
func (c *Converter) ProcessFile(path string) (*FileResult, error) {
	rt, err := c.compile()
	if err != nil {
		return nil, err
	}
	return rt.processFile(path)
}

func (rt *runtime) processFile(path string) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &refmterrors.IOError{Op: "read", Path: path, Cause: err}
	}
	content := string(data)
	if !utf8.ValidString(content) {
		return nil, &refmterrors.EncodingError{Path: path, Message: "content is not valid UTF-8"}
	}

	rewritten, matches := rt.rewrite(content)
	result := &FileResult{Path: path, Changed: rewritten != content, Matches: matches}
	if !result.Changed || rt.cfg.DryRun {
		return result, nil
	}
	if err := os.WriteFile(path, []byte(rewritten), fileutil.ReadableByAll); err != nil {
		return nil, &refmterrors.IOError{Op: "write", Path: path, Cause: err}
	}
	return result, nil
}

// Process converts identifiers in every candidate file under root.
// Root may be a directory or a single file; a single file is always
// processed regardless of the extension and glob filters. Per-file
// failures are collected in the result and do not abort the run;
// configuration and directory enumeration errors do.
func (c *Converter) Process(root string) (*ConvertResult, error) {
	rt, err := c.compile()
	if err != nil {
		return nil, err
	}

	exts := c.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	entries, err := walk.Files(root, walk.Options{
		Recursive:  c.Recursive,
		Extensions: exts,
		Glob:       c.Glob,
	})
	if err != nil {
		return nil, err
	}

	result := &ConvertResult{DryRun: c.DryRun}
	for _, entry := range entries {
		fr, err := rt.processFile(entry.Path)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		result.FilesScanned++
		if fr.Changed {
			result.FilesChanged++
			result.Identifiers += fr.Matches
			result.Changes = append(result.Changes, *fr)
		}
	}
	return result, nil
}
