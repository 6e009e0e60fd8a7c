/*
Package errs provides custom error types and application-level error code constants.

This file defines the CustomError struct, which implements the standard Go error interface
and carries a code, a kind from the error taxonomy, a user-facing message and an optional cause.
*/
package errs

import (
	"errors"
	"fmt"
	"strings"

	"wbrcli/internal/pkg/logx"
)

// Kind groups error codes by how callers are expected to react to them.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInput errors are re-prompted.
	KindInput
	// KindNetwork errors cover transport failures and timeouts.
	KindNetwork
	// KindProtocol errors mean the remote side answered, but not with a success payload.
	KindProtocol
	// KindParse errors cover malformed persisted state and malformed cookie envelopes.
	KindParse
	// KindIO errors cover filesystem and directory resolution failures.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindNetwork:
		return "network"
	case KindProtocol:
		return "protocol"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// CustomError is the error structure used throughout the application.
type CustomError struct {
	// Code is the error code (see constants definition).
	Code int

	// Kind is the taxonomy bucket of Code.
	Kind Kind

	// Message is the user-friendly error description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the standard Go error interface.
func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s error %d): %v", e.Message, e.Kind, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s error %d)", e.Message, e.Kind, e.Code)
}

// Unwrap returns the underlying cause.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *CustomError with the same code.
func (e *CustomError) Is(target error) bool {
	var t *CustomError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewError constructs a new *CustomError based on a predefined error code.
// The optional details are printf-style arguments for the message template.
// If an unknown code is provided, it defaults to returning ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr

	if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
				"code", code,
			)
		}
	}

	return &customErr
}

// Wrap is NewError with an underlying cause attached.
func Wrap(code int, cause error, details ...any) *CustomError {
	customErr := NewError(code, details...)
	customErr.Err = cause
	return customErr
}

// KindOf returns the kind of the first *CustomError in err's chain.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries a *CustomError of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the user-facing message of err, falling back to err.Error().
func Message(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Message
	}
	return err.Error()
}
