// Package errors provides error handling for casegraph.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Typed error inspection via Is/As
//
// The construction-time error types themselves (missing property, bad
// property kind, unknown class, conversion failure, unresolved tag) live
// next to the layers that raise them (nlg, parser); this package carries
// the shared machinery and the sentinels used across layers.
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

// Common sentinel errors for use across casegraph.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrInvalidInput indicates a malformed config line or token.
	ErrInvalidInput = New("invalid input")

	// ErrEmptyStack indicates a child or bundle class was dispatched with
	// no ancestor on the active nesting stack to attach to.
	ErrEmptyStack = New("no owning object on nesting stack")
)
