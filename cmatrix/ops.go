// SPDX-License-Identifier: MIT

// Package cmatrix - exact linear-algebra kernels on Dense.
//
// Purpose:
//   - Shape checks first, allocation second, fixed i→j(→k) loop orders.
//   - Hot paths operate on the flat data slice directly; no per-element
//     At/Set overhead inside kernels.
//   - AddScaled mutates the receiver by design: it is the accumulation
//     primitive used when summing weighted term matrices.
//
// Complexity quicksheet:
//   - Add/AddScaled/Scale: O(r*c); MatMul: O(r*k*c); Kron: O(r₁c₁r₂c₂);
//     ConjTranspose: O(r*c); AllClose: O(r*c).

package cmatrix

import (
	"math"
	"math/cmplx"
)

// Scale returns a new matrix with every element multiplied by s.
// Complexity: O(r*c).
func (d *Dense) Scale(s complex128) *Dense {
	if d == nil {
		return nil
	}
	out := d.Clone()
	for i := range out.data {
		out.data[i] *= s
	}

	return out
}

// Add returns the element-wise sum d + o as a new matrix.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (d *Dense) Add(o *Dense) (*Dense, error) {
	if d == nil || o == nil {
		return nil, ErrNilMatrix
	}
	if d.r != o.r || d.c != o.c {
		return nil, ErrDimensionMismatch
	}
	out := d.Clone()
	for i := range out.data {
		out.data[i] += o.data[i]
	}

	return out, nil
}

// Sub returns the element-wise difference d - o as a new matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (same contract as Add).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (d *Dense) Sub(o *Dense) (*Dense, error) {
	if d == nil || o == nil {
		return nil, ErrNilMatrix
	}
	if d.r != o.r || d.c != o.c {
		return nil, ErrDimensionMismatch
	}
	out := d.Clone()
	for i := range out.data {
		out.data[i] -= o.data[i]
	}

	return out, nil
}

// AddScaled accumulates s·o into the receiver IN PLACE: d += s·o.
//
// This is the only mutating kernel in the package; it exists so that a
// weighted sum over many term matrices allocates exactly one accumulator.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (d *Dense) AddScaled(o *Dense, s complex128) error {
	if d == nil || o == nil {
		return ErrNilMatrix
	}
	if d.r != o.r || d.c != o.c {
		return ErrDimensionMismatch
	}
	for i := range d.data {
		d.data[i] += s * o.data[i]
	}

	return nil
}

// MatMul returns the ordinary matrix product d·o as a new matrix.
//
// Implementation:
//   - Stage 1: validate operands and inner dimension (d.Cols == o.Rows).
//   - Stage 2: allocate the r×c result.
//   - Stage 3: fixed i→k→j loop order over flat buffers (cache-friendly:
//     the innermost loop walks both the result row and the o row).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func (d *Dense) MatMul(o *Dense) (*Dense, error) {
	if d == nil || o == nil {
		return nil, ErrNilMatrix
	}
	if d.c != o.r {
		return nil, ErrDimensionMismatch
	}
	out, err := New(d.r, o.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for k := 0; k < d.c; k++ {
			v := d.data[i*d.c+k]
			if v == 0 {
				continue // generator matrices are sparse; skip zero rows early
			}
			rowOut := out.data[i*o.c:]
			rowO := o.data[k*o.c:]
			for j := 0; j < o.c; j++ {
				rowOut[j] += v * rowO[j]
			}
		}
	}

	return out, nil
}

// Kron returns the Kronecker product d ⊗ o as a new matrix of shape
// (d.Rows·o.Rows) × (d.Cols·o.Cols).
//
// Element law: (d ⊗ o)[i·r₂+k, j·c₂+l] = d[i,j] · o[k,l].
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//
// Complexity:
//   - Time O(r₁c₁r₂c₂), Space O(r₁r₂·c₁c₂).
func (d *Dense) Kron(o *Dense) (*Dense, error) {
	if d == nil || o == nil {
		return nil, ErrNilMatrix
	}
	out, err := New(d.r*o.r, d.c*o.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v := d.data[i*d.c+j]
			if v == 0 {
				continue // zero block: nothing to write
			}
			for k := 0; k < o.r; k++ {
				dst := out.data[(i*o.r+k)*out.c+j*o.c:]
				src := o.data[k*o.c:]
				for l := 0; l < o.c; l++ {
					dst[l] = v * src[l]
				}
			}
		}
	}

	return out, nil
}

// ConjTranspose returns the Hermitian conjugate (conjugate transpose) as a
// new c×r matrix. Complexity: O(r*c).
func (d *Dense) ConjTranspose() *Dense {
	if d == nil {
		return nil
	}
	out := &Dense{r: d.c, c: d.r, data: make([]complex128, len(d.data)), validateNaNInf: d.validateNaNInf}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*out.c+i] = cmplx.Conj(d.data[i*d.c+j])
		}
	}

	return out
}

// AllClose reports whether every element of d is within eps of the matching
// element of o in absolute value: |d[i,j] − o[i,j]| ≤ eps.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when shapes differ.
//   - ErrInvalidTolerance when eps is negative or non-finite.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (d *Dense) AllClose(o *Dense, eps float64) (bool, error) {
	if d == nil || o == nil {
		return false, ErrNilMatrix
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, ErrInvalidTolerance
	}
	if d.r != o.r || d.c != o.c {
		return false, ErrDimensionMismatch
	}
	for i := range d.data {
		if cmplx.Abs(d.data[i]-o.data[i]) > eps {
			return false, nil
		}
	}

	return true, nil
}
