// SPDX-License-Identifier: MIT

// Package spinop - term algebra.
//
// Purpose:
//   - Structural operations over immutable operators: union-style Add/Sub,
//     scalar Scale/Div/Neg, Hermitian Conjugate/Transpose/Adjoint, and the
//     product family Compose/Tensor/Expand/Pow plus index relabeling.
//   - No operation canonicalizes its result: Add performs no reordering or
//     cancellation, Compose accumulates raw concatenations. Callers opt
//     into Simplify/IndexOrder explicitly.
//
// Sign convention (derived from the spin matrices, not assumed):
// Y is purely imaginary and antisymmetric, hence Yᵀ = conj(Y) = −Y.
// Conjugate and Transpose therefore each carry a (−1)^{#Y} factor per term;
// in Adjoint = Conjugate ∘ Transpose the two signs cancel, leaving reversed
// factor order with conjugated coefficient — exactly the Hermitian
// conjugate realized by ToMatrix (see the matrix-level tests).

package spinop

import (
	"fmt"
	"math/cmplx"
)

// cloneArena deep-copies the operator, metadata included.
func (a *SpinOp) cloneArena() *SpinOp {
	out := a.emptyLike()
	out.labels = append(out.labels, a.labels...)
	out.coeffs = append(out.coeffs, a.coeffs...)
	out.terms = make([]Term, len(a.terms))
	for i, t := range a.terms {
		out.terms[i] = t.clone()
	}
	for k, v := range a.index {
		out.index[k] = v
	}

	return out
}

// sameShape guards binary operations: both operands must share num_sites
// and spin. Returns ErrDimensionMismatch with context otherwise.
func (a *SpinOp) sameShape(b *SpinOp, op string) error {
	if a.numSites != b.numSites || a.spin != b.spin {
		return fmt.Errorf("%s: (num_sites=%d, spin=%s) vs (num_sites=%d, spin=%s): %w",
			op, a.numSites, a.spin, b.numSites, b.spin, ErrDimensionMismatch)
	}

	return nil
}

// Add returns the structural union a + b: coefficients of shared terms sum,
// all other terms carry over unchanged. No reordering, no cancellation.
//
// Errors:
//   - ErrDimensionMismatch when num_sites or spin differ.
//
// Complexity:
//   - Time O(len(a) + len(b)).
func (a *SpinOp) Add(b *SpinOp) (*SpinOp, error) {
	if err := a.sameShape(b, "Add"); err != nil {
		return nil, err
	}
	out := a.cloneArena()
	for i := range b.terms {
		out.push(b.terms[i].clone(), b.coeffs[i])
	}

	return out, nil
}

// Sub returns the structural difference a − b.
//
// Errors:
//   - ErrDimensionMismatch when num_sites or spin differ.
func (a *SpinOp) Sub(b *SpinOp) (*SpinOp, error) {
	if err := a.sameShape(b, "Sub"); err != nil {
		return nil, err
	}
	out := a.cloneArena()
	for i := range b.terms {
		out.push(b.terms[i].clone(), -b.coeffs[i])
	}

	return out, nil
}

// Scale returns the operator with every coefficient multiplied by s.
// Scaling by zero yields all-zero coefficients, not the zero sentinel;
// only Simplify drops them.
func (a *SpinOp) Scale(s complex128) *SpinOp {
	out := a.cloneArena()
	for i := range out.coeffs {
		out.coeffs[i] *= s
	}

	return out
}

// Div returns the operator with every coefficient divided by s.
//
// Errors:
//   - ErrZeroDivisor when s == 0.
func (a *SpinOp) Div(s complex128) (*SpinOp, error) {
	if s == 0 {
		return nil, ErrZeroDivisor
	}

	return a.Scale(1 / s), nil
}

// Neg returns −a.
func (a *SpinOp) Neg() *SpinOp {
	return a.Scale(-1)
}

// Conjugate returns the complex conjugate of the operator: every
// coefficient is conjugated and picks up a (−1)^{#Y} sign; term structure
// is unchanged (conj(Y) = −Y, conj(X) = X, conj(Z) = Z element-wise).
func (a *SpinOp) Conjugate() *SpinOp {
	out := a.cloneArena()
	for i := range out.coeffs {
		c := cmplx.Conj(out.coeffs[i])
		if out.terms[i].countY()%2 == 1 {
			c = -c
		}
		out.coeffs[i] = c
	}

	return out
}

// Transpose returns the transpose of the operator: factor order reverses
// within every term and the coefficient picks up a (−1)^{#Y} sign
// (Yᵀ = −Y; X and Z are symmetric). Coefficients are not conjugated.
func (a *SpinOp) Transpose() *SpinOp {
	out := a.emptyLike()
	for i := range a.terms {
		c := a.coeffs[i]
		if a.terms[i].countY()%2 == 1 {
			c = -c
		}
		out.push(a.terms[i].reversed(), c)
	}

	return out
}

// Adjoint returns the Hermitian conjugate: Transpose followed by Conjugate.
// The two Y signs cancel, so the net effect is reversed factor order with
// conjugated coefficients.
func (a *SpinOp) Adjoint() *SpinOp {
	return a.Transpose().Conjugate()
}

// Compose returns the operator product a·b: for every term pair the factor
// sequences concatenate (left factors first) and the coefficients multiply.
// The result is raw — identical concatenations accumulate, nothing is
// simplified or reordered.
//
// Errors:
//   - ErrDimensionMismatch when num_sites or spin differ.
//
// Complexity:
//   - Time O(len(a) · len(b) · factors).
func (a *SpinOp) Compose(b *SpinOp) (*SpinOp, error) {
	if err := a.sameShape(b, "Compose"); err != nil {
		return nil, err
	}
	out := a.emptyLike()
	for i := range a.terms {
		for j := range b.terms {
			t := make(Term, 0, len(a.terms[i])+len(b.terms[j]))
			t = append(t, a.terms[i]...)
			t = append(t, b.terms[j]...)
			out.push(t, a.coeffs[i]*b.coeffs[j])
		}
	}

	return out, nil
}

// Tensor returns the tensor product a ⊗ b: b's site indices shift up by
// a.NumSites(), the registers concatenate (a's sites first), and per term
// pair a's factors precede b's shifted factors.
//
// Errors:
//   - ErrDimensionMismatch when the spin quantum numbers differ
//     (site counts may differ freely).
func (a *SpinOp) Tensor(b *SpinOp) (*SpinOp, error) {
	if a.spin != b.spin {
		return nil, fmt.Errorf("Tensor: spin %s vs %s: %w", a.spin, b.spin, ErrDimensionMismatch)
	}
	out := newEmpty(a.numSites+b.numSites, a.spin, a.tol)
	for i := range a.terms {
		for j := range b.terms {
			shifted := b.terms[j].shifted(a.numSites)
			t := make(Term, 0, len(a.terms[i])+len(shifted))
			t = append(t, a.terms[i]...)
			t = append(t, shifted...)
			out.push(t, a.coeffs[i]*b.coeffs[j])
		}
	}

	return out, nil
}

// Expand returns the reversed tensor product b ⊗ a: b keeps its site
// indices and its factors come first; a's sites shift up by b.NumSites().
//
// Errors:
//   - ErrDimensionMismatch when the spin quantum numbers differ.
func (a *SpinOp) Expand(b *SpinOp) (*SpinOp, error) {
	if a.spin != b.spin {
		return nil, fmt.Errorf("Expand: spin %s vs %s: %w", a.spin, b.spin, ErrDimensionMismatch)
	}
	out := newEmpty(a.numSites+b.numSites, a.spin, a.tol)
	for i := range a.terms {
		for j := range b.terms {
			shifted := a.terms[i].shifted(b.numSites)
			t := make(Term, 0, len(b.terms[j])+len(shifted))
			t = append(t, b.terms[j]...)
			t = append(t, shifted...)
			out.push(t, a.coeffs[i]*b.coeffs[j])
		}
	}

	return out, nil
}

// Pow returns the k-fold composition a·a·…·a. Pow(0) is the identity on
// the receiver's register.
//
// Errors:
//   - ErrInvalidPower when k < 0.
func (a *SpinOp) Pow(k int) (*SpinOp, error) {
	if k < 0 {
		return nil, fmt.Errorf("Pow(%d): %w", k, ErrInvalidPower)
	}
	out := newEmpty(a.numSites, a.spin, a.tol)
	out.push(Term{}, 1)
	var err error
	for i := 0; i < k; i++ {
		if out, err = out.Compose(a); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// PermuteIndices relabels every factor's site through perm: site i becomes
// perm[i]. Factor order inside each term is unchanged.
//
// Errors:
//   - ErrInvalidPermutation when len(perm) != NumSites() or perm is not a
//     bijection on {0,…,NumSites()−1}.
//
// Complexity:
//   - Time O(num_sites + total factors).
func (a *SpinOp) PermuteIndices(perm []int) (*SpinOp, error) {
	if len(perm) != a.numSites {
		return nil, fmt.Errorf("permutation length %d, want %d: %w", len(perm), a.numSites, ErrInvalidPermutation)
	}
	seen := make([]bool, a.numSites)
	for _, p := range perm {
		if p < 0 || p >= a.numSites || seen[p] {
			return nil, fmt.Errorf("permutation %v is not a bijection on [0,%d): %w", perm, a.numSites, ErrInvalidPermutation)
		}
		seen[p] = true
	}

	out := a.emptyLike()
	for i := range a.terms {
		t := a.terms[i].clone()
		for j := range t {
			t[j].Site = perm[t[j].Site]
		}
		out.push(t, a.coeffs[i])
	}

	return out, nil
}
