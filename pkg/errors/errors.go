// Package errors defines the typed failures surfaced by the plrefresh
// configuration and persistence layers.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for configuration files whose extension
// maps to no decoder.
var ErrUnsupportedFormat = stdErrors.New("unsupported config format")

// ParseError is a configuration decode failure. Format is "yaml" or "toml";
// Line is zero when the decoder did not report one.
type ParseError struct {
	Path   string
	Format string
	Line   int
	Err    error
}

// NewParseError constructs a ParseError.
func NewParseError(path, format string, line int, err error) error {
	return &ParseError{Path: path, Format: format, Line: line, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	where := e.Path
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Format != "" {
		return fmt.Sprintf("parse %s config %s: %v", e.Format, where, e.Err)
	}
	return fmt.Sprintf("parse config %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a configuration value that failed a rule. Field is
// the dotted config key, e.g. "footer.trigger_percent".
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
		return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid config: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoreError wraps a last-updated store failure.
type StoreError struct {
	Op   string
	Path string
	Key  string
	Err  error
}

// NewStoreError constructs a StoreError. Op names the failed step, such as
// "load" or "save".
func NewStoreError(op, path, key string, err error) error {
	return &StoreError{Op: op, Path: path, Key: key, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	msg := "store " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" [%s]", e.Key)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
