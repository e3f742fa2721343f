// SPDX-License-Identifier: MIT

// Package spinop: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// spinop package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package spinop

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "spinop: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the detection site — callers still match
// via errors.Is.

var (
	// ErrMalformedLabel indicates a term label that violates the grammar
	// (unknown generator, missing "_", non-decimal site or exponent,
	// non-positive exponent in strict mode) or a site index outside the
	// declared register.
	ErrMalformedLabel = errors.New("spinop: malformed term label")

	// ErrDimensionMismatch indicates operator arithmetic between operands
	// with differing num_sites or spin quantum numbers.
	ErrDimensionMismatch = errors.New("spinop: operand dimensions differ")

	// ErrInvalidPermutation indicates a site permutation whose length is not
	// num_sites or which is not a bijection on {0,…,num_sites−1}.
	ErrInvalidPermutation = errors.New("spinop: invalid site permutation")

	// ErrInvalidSpin indicates a spin quantum number that is not a positive
	// half-integer.
	ErrInvalidSpin = errors.New("spinop: spin must be a positive half-integer")

	// ErrZeroDivisor indicates scalar division by zero.
	ErrZeroDivisor = errors.New("spinop: division by zero scalar")

	// ErrInvalidPower indicates a negative exponent passed to Pow.
	ErrInvalidPower = errors.New("spinop: power must be non-negative")
)
