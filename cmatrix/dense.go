// SPDX-License-Identifier: MIT

// Package cmatrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major complex128 buffer with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf components)
//     from a single source of truth.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package cmatrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- numeric policy (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on Set and
// FromRows. Both the real and imaginary component must be finite.
const DefaultValidateNaNInf = true

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite
// indices. Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports whether any component of v is NaN or ±Inf.
func isNonFinite(v complex128) bool {
	re, im := real(v), imag(v)

	return math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols), both strictly positive.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int          // row and column counts (>0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and set the default numeric policy.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the flat buffer deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// Identity creates the n×n identity matrix.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Identity(n int) (*Dense, error) {
	d, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// FromRows creates a Dense from a rectangular slice-of-rows literal.
//
// Implementation:
//   - Stage 1: validate non-empty and rectangular shape.
//   - Stage 2: validate finiteness under the default numeric policy.
//   - Stage 3: copy into a fresh flat buffer (input is not retained).
//
// Errors:
//   - ErrInvalidDimensions on empty input or ragged rows.
//   - ErrNaNInf on a non-finite component.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	d, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, ErrInvalidDimensions
		}
		for j, v := range row {
			if d.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At retrieves the element at position (i, j).
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (d *Dense) At(i, j int) (complex128, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.c+j], nil
}

// Set assigns the value v at position (i, j).
// Returns ErrOutOfRange on invalid indices and ErrNaNInf when the numeric
// policy rejects a non-finite component. Complexity: O(1).
func (d *Dense) Set(i, j int, v complex128) error {
	if d == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if d.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	d.data[i*d.c+j] = v

	return nil
}

// Clone returns a deep copy of the matrix; the copy is fully independent.
// Complexity: O(r*c).
func (d *Dense) Clone() *Dense {
	if d == nil {
		return nil
	}
	buf := make([]complex128, len(d.data))
	copy(buf, d.data)

	return &Dense{r: d.r, c: d.c, data: buf, validateNaNInf: d.validateNaNInf}
}

// String renders the matrix row by row as "[a, b, ...]\n" lines using the
// default complex formatting verb. Intended for diagnostics, not parsing.
// Complexity: O(r*c).
func (d *Dense) String() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			sb.WriteString(fmt.Sprintf("%v", d.data[i*d.c+j]))
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
