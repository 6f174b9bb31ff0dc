// Package refmterrors provides structured error types for refmt.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ConfigError: invalid options, malformed filter regex or glob patterns
//   - IOError: per-file read/write/rename failures and directory enumeration failures
//   - EncodingError: non-UTF-8 content where text processing is required
//
// # Usage with errors.As
//
//	result, err := c.Process("./src")
//	if err != nil {
//	    var cfgErr *refmterrors.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        // Fix the option named in cfgErr.Option and retry
//	    }
//	}
package refmterrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrIO indicates a file system operation failure.
	ErrIO = errors.New("io error")

	// ErrEncoding indicates file content was not valid UTF-8 text.
	ErrEncoding = errors.New("encoding error")
)

// ConfigError represents an invalid configuration or input.
// This includes malformed patterns, missing required inputs, and conflicting settings.
// Configuration errors are detected before any file system access.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// IOError represents a file system operation failure.
// Per-file IOErrors within a directory walk are collected in the run's
// result record and do not abort the walk; enumeration failures do.
type IOError struct {
	// Op identifies the failed operation: "read", "write", "rename", or "readdir"
	Op string
	// Path is the file or directory the operation targeted
	Path string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := "io error"
	if e.Op != "" {
		msg = e.Op + " error"
	}
	if e.Path != "" {
		msg += " on " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// EncodingError represents non-UTF-8 content in a file that requires
// text processing. Treated like a per-file IOError: recorded, non-fatal
// to the surrounding directory walk.
type EncodingError struct {
	// Path is the file containing the invalid content
	Path string
	// Message describes the encoding failure
	Message string
}

// Error returns a human-readable error message.
func (e *EncodingError) Error() string {
	msg := "encoding error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as EncodingError has no underlying cause.
func (e *EncodingError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// EncodingError also matches ErrIO since callers treat the two
// categories identically during a walk.
func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding || target == ErrIO
}
