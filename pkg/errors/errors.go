// Package errors provides structured error types for blogplot.
//
// Error codes are machine-readable so that callers can tell a missing style
// sheet from a malformed one without string matching:
//
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - FONT_REGISTRY: The system font index could not be built
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidStyle, "line %d: missing ':'", n)
//	if errors.Is(err, errors.ErrCodeInvalidStyle) {
//	    // fall back to the default style
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPath, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeStyleNotFound Code = "STYLE_NOT_FOUND"

	// Host environment errors
	ErrCodeFontRegistry Code = "FONT_REGISTRY"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message shown to a chart author: the messages
// along the chain of coded errors, without code prefixes, followed by the
// non-coded root cause. Other errors are returned as-is.
//
//	"style sheet theme.toml: decode toml style sheet: toml: line 3 ..."
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	for cause := e.Cause; cause != nil; {
		var next *Error
		if !errors.As(cause, &next) {
			return msg + ": " + cause.Error()
		}
		msg += ": " + next.Message
		cause = next.Cause
	}
	return msg
}

// hints suggest what a chart author can do about each code.
var hints = map[Code]string{
	ErrCodeInvalidFormat: "choose one of svg, png or pdf",
	ErrCodeInvalidStyle:  `style sheets hold "key : value" lines, or TOML/YAML tables of parameters`,
	ErrCodeStyleNotFound: "check --style, or --style-dir for a root containing styles/plot_theme.mplstyle",
	ErrCodeFontRegistry:  "named fonts fall back to their generic family until the font index can be built",
	ErrCodeUnsupported:   "PNG and PDF export need rsvg-convert from librsvg; SVG export always works",
}

// Hint returns advice for the outermost coded error in err, or "" when there
// is none.
func Hint(err error) string {
	return hints[GetCode(err)]
}
