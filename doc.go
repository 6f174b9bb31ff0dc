// Package refmt provides tools for rewriting identifiers and incidental text
// inside source trees: case-format conversion, file renaming, emoji/status-glyph
// substitution, and trailing-whitespace cleanup — individually or combined in a
// single directory pass.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - caseformat: the identifier case model (camelCase, PascalCase, snake_case,
//     SCREAMING_SNAKE_CASE, kebab-case, SCREAMING-KEBAB-CASE) with detection,
//     splitting, and joining
//   - converter: rewrite identifiers matching a source format into a target
//     format across files and directories
//   - renamer: transform file names through an ordered edit pipeline
//   - emoji: replace task/status glyphs with text tokens and remove other emojis
//   - whitespace: strip trailing whitespace while preserving per-line endings
//   - combined: apply rename, emoji, and whitespace stages in one traversal
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/refmt
//
// # Quick Start
//
// Convert snake_case identifiers to camelCase throughout a tree:
//
//	import (
//		"github.com/erraggy/refmt/caseformat"
//		"github.com/erraggy/refmt/converter"
//	)
//
//	c, err := converter.New(caseformat.Snake, caseformat.Camel)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := c.Process("./src")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Modified %d files\n", result.FilesChanged)
//
// Run the combined single-pass cleanup (lowercase rename, glyph substitution,
// trailing-whitespace removal):
//
//	import "github.com/erraggy/refmt/combined"
//
//	p := combined.New(combined.Options{Recursive: true})
//	stats, err := p.Process("./docs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Renamed %d, cleaned %d lines\n",
//		stats.FilesRenamed, stats.WhitespaceLinesCleaned)
//
// # Dry-Run Mode
//
// Every transformer supports a dry-run mode that computes and reports the
// changes a live run would make while leaving the file system untouched.
// Reported counts are identical between dry and live runs.
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Configuration errors (malformed filter regex or glob pattern) are
//     detected before any file I/O and fail fast
//   - Per-file I/O and encoding errors within a directory walk are collected
//     in the result record; the walk continues
//   - Directory enumeration errors abort the walk
//
// Structured error types live in the refmterrors package and support
// errors.Is and errors.As.
//
// # Command-Line Interface
//
// In addition to the library packages, refmt provides a command-line interface:
//
//	# Convert identifier case formats
//	refmt convert -f snake -t camel ./src
//
//	# Rename files to lowercase, replacing spaces with underscores
//	refmt rename -case lower -sep underscore ./docs
//
//	# Combined single-pass cleanup
//	refmt clean ./docs
//
// Install the CLI:
//
//	go install github.com/erraggy/refmt/cmd/refmt@latest
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package refmt
