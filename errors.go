// errors.go: structured error handling for shuffle operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for all shuffle operations.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for Xanthos shuffle operations
const (
	// Argument errors (1xxx)
	ErrCodeEmptyInput  errors.ErrorCode = "XANTHOS_EMPTY_INPUT"
	ErrCodeInvalidDrop errors.ErrorCode = "XANTHOS_INVALID_DROP"
	ErrCodeNilKeyFunc  errors.ErrorCode = "XANTHOS_NIL_KEY_FUNC"

	// Internal errors (5xxx)
	ErrCodeNoBuckets errors.ErrorCode = "XANTHOS_NO_BUCKETS"
)

// Common error messages
const (
	msgEmptyInput  = "input must contain at least one item"
	msgInvalidDrop = "drop count must be in [0, len(values))"
	msgNilKeyFunc  = "key extraction function cannot be nil"
	msgNoBuckets   = "no buckets computed for non-empty input"
)

// =============================================================================
// ARGUMENT ERRORS
// =============================================================================

// NewErrEmptyInput creates an error for an empty input sequence
func NewErrEmptyInput() error {
	return errors.NewWithContext(ErrCodeEmptyInput, msgEmptyInput, map[string]interface{}{
		"provided_size": 0,
	})
}

// NewErrInvalidDrop creates an error for an out-of-range drop count
func NewErrInvalidDrop(drop int, size int) error {
	return errors.NewWithContext(ErrCodeInvalidDrop, msgInvalidDrop, map[string]interface{}{
		"provided_drop": drop,
		"input_size":    size,
		"valid_range":   "0 <= drop < input_size",
	})
}

// NewErrNilKeyFunc creates an error for a nil key extraction function
func NewErrNilKeyFunc() error {
	return errors.NewWithField(ErrCodeNilKeyFunc, msgNilKeyFunc, "argument", "keyOf")
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrNoBuckets creates an error for the defensive grouping invariant.
// This indicates a programming error in the engine, not a caller mistake:
// grouping a non-empty input must always produce at least one bucket.
func NewErrNoBuckets(remaining int) error {
	return errors.NewWithContext(ErrCodeNoBuckets, msgNoBuckets, map[string]interface{}{
		"remaining_items": remaining,
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsInvalidArgument checks if error reports a caller mistake (empty input,
// out-of-range drop count, or a nil key function).
func IsInvalidArgument(err error) bool {
	return errors.HasCode(err, ErrCodeEmptyInput) ||
		errors.HasCode(err, ErrCodeInvalidDrop) ||
		errors.HasCode(err, ErrCodeNilKeyFunc)
}

// IsEmptyInput checks if error is an empty input error
func IsEmptyInput(err error) bool {
	return errors.HasCode(err, ErrCodeEmptyInput)
}

// IsInvalidDrop checks if error is an invalid drop count error
func IsInvalidDrop(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidDrop)
}

// IsInternal checks if error is an internal invariant violation.
// These should be treated as fatal; they are unreachable in a correct engine.
func IsInternal(err error) bool {
	return errors.HasCode(err, ErrCodeNoBuckets)
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var xerr *errors.Error
	if goerrors.As(err, &xerr) {
		return xerr.Context
	}
	return nil
}
