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

// ValidationError captures manifest validation issues.
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

// ConfigurationError reports a reference to something the theme or deck
// builder does not know: an unknown color name, an unsupported shape kind.
// It always identifies the offending key.
type ConfigurationError struct {
	Kind string
	Key  string
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(kind, key string) error {
	return &ConfigurationError{Kind: kind, Key: key}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("configuration error: unknown %s %q", e.Kind, e.Key)
}

// GeometryError reports a box that does not fit the slide canvas. The deck
// builder never clips or rejects geometry at runtime; this error is raised
// by manifest validation and by tests.
type GeometryError struct {
	Field   string
	Message string
}

// NewGeometryError constructs a GeometryError.
func NewGeometryError(field, message string) error {
	return &GeometryError{Field: field, Message: message}
}

func (e *GeometryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("geometry error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("geometry error: %s", e.Message)
}

// WriteError represents a failure to acquire or write the output artifact.
type WriteError struct {
	Path string
	Err  error
}

// NewWriteError constructs a WriteError.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}

func (e *WriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("write error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
