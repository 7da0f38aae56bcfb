// Package errors provides error handling for transmute.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
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
//	if errors.Is(err, errors.ErrUnknownTarget) {
//	    // handle bad target identifier
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for use across transmute.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownTarget indicates a target-language identifier that resolves
	// to no registered profile or catalog entry. Fatal to the call that
	// supplied it; there is no silent default substitution.
	ErrUnknownTarget = New("unknown target language")

	// ErrUnknownSource indicates a source file whose extension matches no
	// catalog entry
	ErrUnknownSource = New("unknown source language")

	// ErrParseUnavailable indicates the origin source could not be parsed
	// into a syntax tree. Callers fall back to emitting the source verbatim
	// rather than failing the whole conversion.
	ErrParseUnavailable = New("parse unavailable")

	// ErrStructuralImbalance indicates a post-emission structural check
	// found mismatched block delimiters. Diagnostic, never fatal.
	ErrStructuralImbalance = New("structural imbalance")
)

// IsUnknownTargetError checks if an error is or wraps ErrUnknownTarget
func IsUnknownTargetError(err error) bool {
	return err != nil && Is(err, ErrUnknownTarget)
}

// IsParseUnavailableError checks if an error is or wraps ErrParseUnavailable
func IsParseUnavailableError(err error) bool {
	return err != nil && Is(err, ErrParseUnavailable)
}

// NewUnknownTargetError creates an unknown-target error naming the identifier
func NewUnknownTargetError(target string) error {
	return WithHintf(Wrapf(ErrUnknownTarget, "%q", target),
		"run 'transmute targets' to list supported languages")
}

// NewUnknownSourceError creates an unknown-source error naming the extension
func NewUnknownSourceError(ext string) error {
	return Wrapf(ErrUnknownSource, "extension %q", ext)
}
