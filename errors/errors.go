// Package errors provides error handling for can.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping, and user-facing hints from a single import:
//
//	if !nomenclature.IsValidCode(code) {
//	    return errors.WithHint(
//	        errors.Wrapf(errors.ErrUnknownCode, "code %q", code),
//	        "run 'can list' to see valid codes")
//	}
//
// Catalog lookups themselves never return errors; a miss is reported with a
// boolean. Errors belong to the layers that turn a miss into a failure.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors. Wrap them with errors.Wrap to add context while keeping
// errors.Is checks working.
var (
	// ErrNotFound indicates a name or code matched nothing
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed input, such as a bad flag value
	ErrInvalidRequest = New("invalid request")

	// ErrUnknownCode indicates a string that is not an annotation code
	ErrUnknownCode = New("unknown annotation code")

	// ErrUnknownEmphasizer indicates a string that is not an emphasizer code
	ErrUnknownEmphasizer = New("unknown emphasizer")

	// ErrMultipleEmphasizers indicates more than one emphasizer on one annotation
	ErrMultipleEmphasizers = New("only one emphasizer is allowed per annotation")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRequest, format, args...)
}
