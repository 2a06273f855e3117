package oaserrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrFile indicates an I/O failure on an input or output file.
	ErrFile = errors.New("file error")

	// ErrParse indicates malformed input JSON or a serialization failure.
	ErrParse = errors.New("parse error")

	// ErrInvalidFormat indicates a document that is not a Postman collection.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// FileError represents a failure to read or write a file.
type FileError struct {
	// Path is the file or directory involved
	Path string
	// Op is the attempted operation, e.g. "read", "write", "create directory"
	Op string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FileError) Error() string {
	msg := "file error"
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FileError) Is(target error) bool {
	return target == ErrFile
}

// ParseError represents input that is not valid JSON, or an output document
// that could not be serialized.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
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
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidFormatError represents a JSON document that lacks the top-level
// fields every Postman collection has.
type InvalidFormatError struct {
	// Path is the file path or source identifier
	Path string
	// Missing lists the absent top-level fields, e.g. ["info", "item"]
	Missing []string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *InvalidFormatError) Error() string {
	msg := "invalid format"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if len(e.Missing) > 0 {
		msg += " (missing: " + strings.Join(e.Missing, ", ") + ")"
	}
	return msg
}

// Unwrap returns nil as InvalidFormatError has no underlying cause.
func (e *InvalidFormatError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
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
