// Package errs provides structured, user-friendly errors with machine-parseable codes.
package errs

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-parseable error identifier.
type ErrorCode string

const (
	// General
	ErrInternal   ErrorCode = "ERR-001"
	ErrConfig     ErrorCode = "ERR-002"
	ErrValidation ErrorCode = "ERR-003"

	// Ephemeris errors
	ErrKernelOpen   ErrorCode = "ERR-EPH-001"
	ErrKernelRange  ErrorCode = "ERR-EPH-002"
	ErrBodyUnknown  ErrorCode = "ERR-EPH-003"
	ErrLookupFailed ErrorCode = "ERR-EPH-004"

	// Frame errors
	ErrFrameUnknown ErrorCode = "ERR-FRAME-001"
	ErrFrameBody    ErrorCode = "ERR-FRAME-002"
	ErrStateVector  ErrorCode = "ERR-FRAME-003"

	// Time errors
	ErrEpochParse ErrorCode = "ERR-TIME-001"
	ErrEpochSpan  ErrorCode = "ERR-TIME-002"
	ErrResolution ErrorCode = "ERR-TIME-003"

	// Cache / output errors
	ErrCacheRead  ErrorCode = "ERR-STATE-001"
	ErrCacheWrite ErrorCode = "ERR-STATE-002"
	ErrOutput     ErrorCode = "ERR-OUT-001"
)

// FrameError is the standard structured error type used across all refframes packages.
type FrameError struct {
	Code     ErrorCode // Machine-parseable error code
	Op       string    // Operation chain, e.g., "chgframe.rotate.iau"
	Resource string    // Resource identifier (frame name, body name, kernel path, ...)
	Cause    error     // Wrapped upstream error
	Advice   string    // Human-readable remediation hint
}

func (e *FrameError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("[%s] %s (%s): %v", e.Code, e.Op, e.Resource, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Op, e.Cause)
}

func (e *FrameError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the formatted user-facing error message with remediation advice.
func (e *FrameError) UserMessage() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Op)
	if e.Resource != "" {
		msg += fmt.Sprintf(" (resource: %s)", e.Resource)
	}
	if e.Advice != "" {
		msg += fmt.Sprintf("\n  → %s", e.Advice)
	}
	return msg
}

// New creates a new FrameError.
func New(code ErrorCode, op string, cause error) *FrameError {
	return &FrameError{Code: code, Op: op, Cause: cause}
}

// Newf creates a new FrameError with a formatted message as the cause.
func Newf(code ErrorCode, op, format string, args ...any) *FrameError {
	return New(code, op, fmt.Errorf(format, args...))
}

// WithResource sets the resource identifier on a FrameError.
func (e *FrameError) WithResource(res string) *FrameError {
	e.Resource = res
	return e
}

// WithAdvice sets the human-readable remediation hint on a FrameError.
func (e *FrameError) WithAdvice(advice string) *FrameError {
	e.Advice = advice
	return e
}

// Wrap wraps an existing error as a FrameError at a new operation boundary.
func Wrap(err error, code ErrorCode, op string) *FrameError {
	if err == nil {
		return nil
	}
	return &FrameError{Code: code, Op: op, Cause: err}
}

// IsCode reports whether err is a FrameError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var fe *FrameError
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}

// AsFrame extracts the *FrameError from err, or returns nil.
func AsFrame(err error) *FrameError {
	var fe *FrameError
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}
