package converter

import (
	"fmt"

	"github.com/erraggy/refmt/caseformat"
)

// Option configures a ConvertWithOptions run.
type Option func(*convertConfig) error

// convertConfig holds configuration for one ConvertWithOptions call.
type convertConfig struct {
	path string
	conv Converter
}

// WithPath sets the directory or file to process. Required.
func WithPath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return fmt.Errorf("path cannot be empty")
		}
		cfg.path = path
		return nil
	}
}

// WithFormats sets the source and target case formats. Required.
func WithFormats(from, to caseformat.Format) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.From = from
		cfg.conv.To = to
		return nil
	}
}

// WithExtensions overrides the default extension allow-list.
func WithExtensions(exts []string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.Extensions = exts
		return nil
	}
}

// WithRecursive enables descending into subdirectories.
func WithRecursive(recursive bool) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.Recursive = recursive
		return nil
	}
}

// WithDryRun computes changes without writing them.
func WithDryRun(dryRun bool) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.DryRun = dryRun
		return nil
	}
}

// WithPrefix adds a literal prefix to every converted identifier.
func WithPrefix(prefix string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.Prefix = prefix
		return nil
	}
}

// WithSuffix adds a literal suffix to every converted identifier.
func WithSuffix(suffix string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.Suffix = suffix
		return nil
	}
}

// WithStripPrefix removes a literal prefix from matches before
// conversion.
func WithStripPrefix(prefix string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.StripPrefix = prefix
		return nil
	}
}

// WithStripSuffix removes a literal suffix from matches before
// conversion.
func WithStripSuffix(suffix string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.StripSuffix = suffix
		return nil
	}
}

// WithReplacePrefix substitutes one literal prefix for another before
// conversion.
func WithReplacePrefix(from, to string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.ReplacePrefixFrom = from
		cfg.conv.ReplacePrefixTo = to
		return nil
	}
}

// WithReplaceSuffix substitutes one literal suffix for another before
// conversion.
func WithReplaceSuffix(from, to string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.ReplaceSuffixFrom = from
		cfg.conv.ReplaceSuffixTo = to
		return nil
	}
}

// WithGlob restricts candidate files by glob pattern.
func WithGlob(pattern string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.Glob = pattern
		return nil
	}
}

// WithWordFilter restricts conversion to identifiers whose word
// sequence matches the regular expression.
func WithWordFilter(pattern string) Option {
	return func(cfg *convertConfig) error {
		cfg.conv.WordFilter = pattern
		return nil
	}
}

// ConvertWithOptions runs a conversion using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithPath("./src"),
//	    converter.WithFormats(caseformat.Camel, caseformat.Snake),
//	    converter.WithRecursive(true),
//	)
func ConvertWithOptions(opts ...Option) (*ConvertResult, error) {
	cfg := &convertConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("converter: invalid options: %w", err)
		}
	}
	if cfg.path == "" {
		return nil, fmt.Errorf("converter: no path specified, use WithPath")
	}
	return cfg.conv.Process(cfg.path)
}
