// Package renamer computes new file names through an ordered edit
// pipeline and performs the renames.
//
// The pipeline operates on the file's base name with the extension
// detached: remove prefix, remove suffix, separator replacement, case
// transform, add prefix, add suffix, timestamp prefix. The extension is
// reattached untouched. Renaming is all-or-nothing per file: either the
// computed name differs and the file is renamed, or it is left alone.
package renamer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/refmt/internal/walk"
	"github.com/erraggy/refmt/refmterrors"
)

// CaseTransform selects the case applied to the whole base name.
type CaseTransform string

const (
	// CaseNone leaves the name's case alone.
	CaseNone CaseTransform = "none"
	// CaseLower converts the name to lowercase.
	CaseLower CaseTransform = "lower"
	// CaseUpper converts the name to UPPERCASE.
	CaseUpper CaseTransform = "upper"
	// CaseCapitalize uppercases the first letter and lowercases the rest.
	CaseCapitalize CaseTransform = "capitalize"
)

// ParseCaseTransform resolves a case transform name.
func ParseCaseTransform(name string) (CaseTransform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CaseNone, nil
	case "lower", "lowercase":
		return CaseLower, nil
	case "upper", "uppercase":
		return CaseUpper, nil
	case "capitalize":
		return CaseCapitalize, nil
	}
	return "", fmt.Errorf("renamer: unknown case transform %q", name)
}

// Separator selects the separator substitution applied to the base name.
// Spaces plus the opposite separator are replaced, exclusively one
// target or neither.
type Separator string

const (
	// SeparatorNone leaves separators alone.
	SeparatorNone Separator = "none"
	// SeparatorUnderscore replaces spaces and hyphens with underscores.
	SeparatorUnderscore Separator = "underscore"
	// SeparatorHyphen replaces spaces and underscores with hyphens.
	SeparatorHyphen Separator = "hyphen"
)

// ParseSeparator resolves a separator replacement name.
func ParseSeparator(name string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return SeparatorNone, nil
	case "underscore", "underscored":
		return SeparatorUnderscore, nil
	case "hyphen", "hyphenated":
		return SeparatorHyphen, nil
	}
	return "", fmt.Errorf("renamer: unknown separator replacement %q", name)
}

// Timestamp selects an optional date prefix prepended to the final name.
type Timestamp string

const (
	// TimestampNone adds no date prefix.
	TimestampNone Timestamp = "none"
	// TimestampLong prefixes the name with YYYYMMDD_.
	TimestampLong Timestamp = "long"
	// TimestampShort prefixes the name with YYMMDD_.
	TimestampShort Timestamp = "short"
)

// Renamer holds the configuration for one rename run.
type Renamer struct {
	// Case is the case transform applied to the whole base name.
	Case CaseTransform
	// Separator is the separator substitution applied to the base name.
	Separator Separator
	// AddPrefix is a literal prepended to the base name.
	AddPrefix string
	// RemovePrefix is a literal stripped from the base name when present.
	RemovePrefix string
	// AddSuffix is a literal appended to the base name, before the
	// extension.
	AddSuffix string
	// RemoveSuffix is a literal stripped from the base name when
	// present, before the extension.
	RemoveSuffix string
	// Timestamp prepends a date prefix to the final name.
	Timestamp Timestamp
	// Recursive descends into subdirectories when set.
	Recursive bool
	// DryRun reports would-be renames without touching the filesystem.
	DryRun bool
	// Now supplies the clock for timestamp prefixes. Nil means time.Now.
	Now func() time.Time
}

// New creates a Renamer that changes nothing until configured.
func New() *Renamer {
	return &Renamer{Case: CaseNone, Separator: SeparatorNone, Timestamp: TimestampNone}
}

// Rename records one performed or simulated rename.
type Rename struct {
	// OldPath is the path before renaming.
	OldPath string
	// NewPath is the path after renaming.
	NewPath string
}

// RenameResult aggregates one rename run.
type RenameResult struct {
	// FilesRenamed is the number of files whose name changed.
	FilesRenamed int
	// Renames lists every performed or simulated rename.
	Renames []Rename
	// Errors collects per-file failures; these do not abort the run.
	Errors []error
	// DryRun records whether the run was allowed to rename.
	DryRun bool
}

// NewName computes the transformed file name for fileName, which must be
// a bare name without directory components. The extension, when present,
// is detached before the pipeline and reattached untouched.
func (r *Renamer) NewName(fileName string) string {
	name := fileName
	ext := ""
	if dot := strings.LastIndex(fileName, "."); dot > 0 {
		name, ext = fileName[:dot], fileName[dot:]
	}

	if r.RemovePrefix != "" {
		name = strings.TrimPrefix(name, r.RemovePrefix)
	}
	if r.RemoveSuffix != "" {
		name = strings.TrimSuffix(name, r.RemoveSuffix)
	}

	switch r.Separator {
	case SeparatorUnderscore:
		name = strings.NewReplacer(" ", "_", "-", "_").Replace(name)
	case SeparatorHyphen:
		name = strings.NewReplacer(" ", "-", "_", "-").Replace(name)
	}

	switch r.Case {
	case CaseLower:
		name = strings.ToLower(name)
	case CaseUpper:
		name = strings.ToUpper(name)
	case CaseCapitalize:
		name = capitalize(name)
	}

	name = r.AddPrefix + name + r.AddSuffix

	switch r.Timestamp {
	case TimestampLong:
		name = r.now().Format("20060102") + "_" + name
	case TimestampShort:
		name = r.now().Format("060102") + "_" + name
	}

	return name + ext
}

func (r *Renamer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// RenameFile renames a single file according to the pipeline. It returns
// the new path and whether a rename happened (or would happen under
// dry-run). Hidden files are left alone. A distinct file already at the
// target path is a rename collision; a case-only rename on a
// case-insensitive filesystem is allowed.
func (r *Renamer) RenameFile(path string) (string, bool, error) {
	base := filepath.Base(path)
	if walk.Hidden(base) {
		return path, false, nil
	}

	newName := r.NewName(base)
	if newName == base {
		return path, false, nil
	}
	newPath := filepath.Join(filepath.Dir(path), newName)

	if fi, err := os.Stat(newPath); err == nil {
		old, oldErr := os.Stat(path)
		if oldErr != nil || !os.SameFile(old, fi) {
			return path, false, &refmterrors.IOError{
				Op:      "rename",
				Path:    path,
				Message: fmt.Sprintf("target already exists: %s", newPath),
			}
		}
	}

	if !r.DryRun {
		if err := os.Rename(path, newPath); err != nil {
			return path, false, &refmterrors.IOError{Op: "rename", Path: path, Cause: err}
		}
	}
	return newPath, true, nil
}

// Process renames every candidate file under root. Root may be a
// directory or a single file. Files are visited deepest-first so a
// rename never invalidates a still-to-be-visited path. Per-file
// failures are collected in the result; enumeration failures abort.
func (r *Renamer) Process(root string) (*RenameResult, error) {
	entries, err := walk.Files(root, walk.Options{Recursive: r.Recursive})
	if err != nil {
		return nil, err
	}
	walk.SortDeepestFirst(entries)

	result := &RenameResult{DryRun: r.DryRun}
	for _, entry := range entries {
		newPath, renamed, err := r.RenameFile(entry.Path)
		if err != nil {
			result.Errors = append(result.Errors, err)
			continue
		}
		if renamed {
			result.FilesRenamed++
			result.Renames = append(result.Renames, Rename{OldPath: entry.Path, NewPath: newPath})
		}
	}
	return result, nil
}
