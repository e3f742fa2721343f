// SPDX-License-Identifier: MIT

// Package spinop implements a sparse algebra engine for second-quantized
// spin operators: weighted sums of site-indexed generator strings acting
// on a tensor product of finite-dimensional spin spaces.
//
// The spinop package provides:
//
//   - A label codec for the "X_0 Y_1^2 Z_2" grammar (ParseTerm, Term
//     String/Compact forms).
//   - Structural term algebra: Add, Sub, Scale, Div, Neg, Compose (operator
//     product), Tensor, Expand, Pow.
//   - Hermitian machinery with the exact Y-sign convention derived from the
//     spin matrices: Conjugate, Transpose, Adjoint.
//   - Canonicalization: Simplify (expand exponents, merge, drop near-zero),
//     IndexOrder (commuting-site reorder), PermuteIndices (site relabeling).
//   - Dense realization: ToMatrix builds the exact (2s+1)^n × (2s+1)^n
//     complex matrix via per-site products and one Kronecker chain.
//   - A transformer boundary: Terms()/FromTerms() expose operators as
//     (factor-list, coefficient) sequences for external qubit mappers.
//
// Operators are immutable: every operation returns a fresh *SpinOp, and
// construction from a map sorts labels lexicographically so identical
// inputs always produce identical operators.
//
// Equality comes in two flavors: Equal canonicalizes both sides
// (IndexOrder + Simplify) and compares coefficients within tolerance;
// StrictEqual compares raw structure exactly and exists for round-trips.
//
// Errors are package sentinels (ErrMalformedLabel, ErrDimensionMismatch,
// ErrInvalidPermutation, …) matched via errors.Is; no exported operation
// panics on user input.
//
// Matrix expansion is the only resource-intensive step: memory grows as
// (2s+1)^{2·num_sites}, an explicit allocation the caller opts into.
// Everything else is O(terms · factors) symbolic work.
//
// See the examples in this package and the examples/ directory for usage
// patterns.
package spinop
