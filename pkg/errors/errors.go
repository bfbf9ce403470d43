package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ColorError reports a value that cannot be read as a color or color component.
type ColorError struct {
	Format string
	Input  string
	Err    error
}

// NewColorError constructs a ColorError for the given format (hex, rgb, hsv).
func NewColorError(format, input string, err error) error {
	return &ColorError{Format: format, Input: input, Err: err}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid %s color %q: %v", e.Format, e.Input, e.Err)
	}
	return fmt.Sprintf("invalid %s color %q", e.Format, e.Input)
}

// Unwrap exposes the underlying error.
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError indicates that no clipboard strategy could accept the text.
type ClipboardError struct {
	Method string
	Err    error
}

// NewClipboardError constructs a ClipboardError for the last attempted method.
func NewClipboardError(method string, err error) error {
	return &ClipboardError{Method: method, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.Method != "" {
		return fmt.Sprintf("clipboard error [%s]: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
