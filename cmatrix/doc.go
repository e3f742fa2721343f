// SPDX-License-Identifier: MIT

// Package cmatrix offers dense complex matrices for exact operator algebra.
//
// The cmatrix package provides:
//
//   - Dense, a row-major complex128 matrix with O(1) element access and
//     safe, error-returning accessors (no panics on user input).
//   - Exact linear-algebra kernels: MatMul, Kron (Kronecker product),
//     Add/AddScaled, Scale, ConjTranspose.
//   - Numeric policy: optional rejection of NaN/±Inf components on Set,
//     and tolerance-based comparison via AllClose.
//
// Dense matrices are best for small-to-moderate dimensions where O(r·c)
// memory is acceptable; the spin-operator expansion in spinop grows as
// (2s+1)^n per side, so callers bound the site count externally.
//
// Determinism: fixed loop orders everywhere, no map iteration, identical
// inputs always produce identical buffers.
//
// See the examples in this package and spinop for usage patterns.
package cmatrix
