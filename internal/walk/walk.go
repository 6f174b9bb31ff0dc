// Package walk enumerates candidate files for the refmt transformers.
// It owns the shared selection rules: recursion, hidden-file skipping,
// build-directory skipping, extension allow-lists, and glob matching.
package walk

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erraggy/refmt/refmterrors"
)

// skipDirs are directory names never descended into during traversal.
var skipDirs = map[string]struct{}{
	"build":        {},
	"__pycache__":  {},
	".git":         {},
	"node_modules": {},
	"venv":         {},
	".venv":        {},
	"target":       {},
}

// FileEntry is one candidate file produced by a traversal.
type FileEntry struct {
	// Path is the file's full path, rooted at the traversal root.
	Path string
	// Rel is the path relative to the traversal root.
	Rel string
}

// Name returns the entry's base name.
func (e FileEntry) Name() string { return filepath.Base(e.Path) }

// Depth returns the number of path components in the relative path.
func (e FileEntry) Depth() int {
	return strings.Count(e.Rel, string(filepath.Separator)) + 1
}

// Options control file selection during a traversal.
type Options struct {
	// Recursive descends into subdirectories when set.
	Recursive bool
	// Extensions is a case-insensitive allow-list, with or without the
	// leading dot ("py", ".md"). Empty admits every extension.
	Extensions []string
	// Glob is a filepath.Match pattern tested against the file name and
	// against the root-relative path. Empty admits every file.
	Glob string
	// IncludeHidden admits dot-prefixed files and directories when set.
	// Directories on the skip list are never entered regardless.
	IncludeHidden bool
}

// ValidateGlob reports a ConfigError when pattern is not a valid
// filepath.Match pattern. Transformers call this before any file I/O.
func ValidateGlob(pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return &refmterrors.ConfigError{
			Option:  "glob",
			Value:   pattern,
			Message: "invalid glob pattern",
			Cause:   err,
		}
	}
	return nil
}

// Files enumerates candidate files under root in directory order. When
// root is itself a regular file it is returned as the sole entry and the
// hidden-file, extension, and glob filters do not apply: an explicitly
// named target is always processed. A stat or directory enumeration
// failure is returned as an IOError and aborts the traversal.
func Files(root string, opts Options) ([]FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &refmterrors.IOError{Op: "readdir", Path: root, Cause: err}
	}
	if !info.IsDir() {
		return []FileEntry{{Path: root, Rel: filepath.Base(root)}}, nil
	}

	var entries []FileEntry
	if err := collect(root, root, opts, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func collect(root, dir string, opts Options, out *[]FileEntry) error {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return &refmterrors.IOError{Op: "readdir", Path: dir, Cause: err}
	}
	for _, de := range dirents {
		name := de.Name()
		full := filepath.Join(dir, name)
		if de.IsDir() {
			if !opts.Recursive || SkippedDir(name) {
				continue
			}
			if Hidden(name) && !opts.IncludeHidden {
				continue
			}
			if err := collect(root, full, opts, out); err != nil {
				return err
			}
			continue
		}
		if !de.Type().IsRegular() {
			continue
		}
		if Hidden(name) && !opts.IncludeHidden {
			continue
		}
		if !MatchExtension(name, opts.Extensions) {
			continue
		}
		rel, relErr := filepath.Rel(root, full)
		if relErr != nil {
			rel = name
		}
		if !matchGlob(opts.Glob, name, rel) {
			continue
		}
		*out = append(*out, FileEntry{Path: full, Rel: rel})
	}
	return nil
}

// SortDeepestFirst orders entries so deeper paths come first. Entries at
// equal depth keep a stable lexical order by relative path. Deepest-first
// ordering lets a rename at one level never invalidate the path of a
// still-to-be-visited entry.
func SortDeepestFirst(entries []FileEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].Depth(), entries[j].Depth()
		if di != dj {
			return di > dj
		}
		return entries[i].Rel < entries[j].Rel
	})
}

// Hidden reports whether name carries the dot hidden-file marker.
func Hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// SkippedDir reports whether name is on the build/VCS directory skip list.
func SkippedDir(name string) bool {
	_, ok := skipDirs[name]
	return ok
}

// MatchExtension reports whether name's extension is on the allow-list.
// Matching is case-insensitive and tolerates entries with or without the
// leading dot. An empty list admits every name.
func MatchExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	got := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if got == e {
			return true
		}
	}
	return false
}

func matchGlob(pattern, name, rel string) bool {
	if pattern == "" {
		return true
	}
	if ok, _ := filepath.Match(pattern, name); ok {
		return true
	}
	ok, _ := filepath.Match(pattern, rel)
	return ok
}
