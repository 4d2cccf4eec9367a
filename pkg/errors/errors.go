// Package errors provides structured error types for cardpie.
//
// Every failure that aborts a chart render carries a machine-readable code so
// the CLI can tell apart a missing card image, an image that is too small to
// crop, and a deck file with nothing to draw.
//
// # Error Codes
//
//   - ASSET_UNAVAILABLE: a card image could not be located, fetched or decoded
//   - INVALID_ASSET_DIMENSIONS: a card image is smaller than the crop rectangle
//   - EMPTY_INPUT: no slices, or the weights sum to zero
//   - INVALID_*: other input validation failures
//   - NETWORK_ERROR, NOT_FOUND, RATE_LIMITED: lookup service failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyInput, "no decks to draw")
//	if errors.Is(err, errors.ErrCodeEmptyInput) {
//	    // nothing to render
//	}
//
//	err := errors.Wrap(errors.ErrCodeAssetUnavailable, origErr, "card %q", name)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Render errors
	ErrCodeAssetUnavailable       Code = "ASSET_UNAVAILABLE"
	ErrCodeInvalidAssetDimensions Code = "INVALID_ASSET_DIMENSIONS"
	ErrCodeEmptyInput             Code = "EMPTY_INPUT"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"

	// Lookup service errors
	ErrCodeNotFound    Code = "NOT_FOUND"
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for an *Error with a matching code,
// so a NETWORK_ERROR wrapped inside an ASSET_UNAVAILABLE matches both.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the error text without code prefixes, keeping the
// context added by every layer:
//
//	deck Dragons: ASSET_UNAVAILABLE: unable to find a card image for Blue-Eyes
//	deck Dragons: unable to find a card image for Blue-Eyes
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for e := err; e != nil; e = errors.Unwrap(e) {
		if pe, ok := e.(*Error); ok {
			msg = strings.Replace(msg, string(pe.Code)+": ", "", 1)
		}
	}
	return msg
}

// RateLimitedError provides additional information for rate-limited responses.
type RateLimitedError struct {
	RetryAfter int // Seconds to wait before retrying
}

// Error implements the error interface.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// Code returns the error code for this error type.
func (e *RateLimitedError) Code() Code {
	return ErrCodeRateLimited
}
