// Package errors provides error handling for intlwrap.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for CLI diagnostics
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrPathMismatch) {
//	    // handle unrecognized input path
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
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
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the generation pipeline.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrMissingDeclaration indicates no message-class declaration was found
	// in the catalogue input. Not fatal: the asset is skipped.
	ErrMissingDeclaration = New("no message class declaration found")

	// ErrConfigUnavailable indicates the project configuration is missing or
	// malformed. Not fatal: generation falls back to defaults.
	ErrConfigUnavailable = New("project configuration unavailable")

	// ErrPathMismatch indicates the input path does not end with the
	// recognized catalogue suffix. Fatal for the single request.
	ErrPathMismatch = New("input path does not match catalogue suffix")

	// ErrFormatFailed indicates the emitted source failed canonical
	// formatting. Fatal: this means the builder produced a malformed library.
	ErrFormatFailed = New("emitted source failed formatting")
)

// IsSkip reports whether err means the asset is simply not applicable,
// as opposed to a real failure.
func IsSkip(err error) bool {
	return err != nil && Is(err, ErrMissingDeclaration)
}

// IsFatal reports whether err must fail the request rather than degrade.
func IsFatal(err error) bool {
	return err != nil && IsAny(err, ErrPathMismatch, ErrFormatFailed)
}
