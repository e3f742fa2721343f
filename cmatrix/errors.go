// SPDX-License-Identifier: MIT

// Package cmatrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// cmatrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package cmatrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "cmatrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver/argument -> shape -> index -> NaN/Inf -> dimension mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes, or MatMul where
	// a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed into a kernel.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf component was encountered where finite
	// values are required by the numeric policy (Set, FromRows).
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrInvalidTolerance signals a negative or non-finite tolerance passed
	// to a comparison kernel (AllClose).
	ErrInvalidTolerance = errors.New("cmatrix: tolerance must be finite, non-negative")
)
