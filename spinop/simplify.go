// SPDX-License-Identifier: MIT

// Package spinop - canonicalizer.
//
// Two-step canonical form, kept deliberately separate:
//
//	IndexOrder — equality-preserving reordering: factors on different
//	             sites commute, so each term is stably sorted by site index
//	             while same-site factors keep their relative order.
//	Simplify   — numerical canonicalization: exponents expand, identical
//	             terms merge, near-zero coefficients drop.
//
// The split lets callers compare canonical orderings before committing to
// numerical cancellation; Equal composes both.

package spinop

import "math/cmplx"

// Simplify returns the canonicalized operator:
//
//  1. Every G_i^k factor expands into k literal single factors; a zero
//     exponent collapses the factor to a no-op before merging, so
//     {"X_0^0": 1} canonicalizes to the One() form.
//  2. Terms identical after expansion merge by summing coefficients.
//  3. Terms whose merged coefficient magnitude is at or below the
//     tolerance drop; full cancellation leaves the zero-sentinel shape
//     (an empty term mapping on the same register).
//
// Simplify is idempotent and never changes the operator's matrix.
//
// Complexity:
//   - Time O(total exponent weight), Space O(result terms).
func (a *SpinOp) Simplify() *SpinOp {
	// Merge pass over expanded terms, insertion order preserved.
	merged := a.emptyLike()
	for i := range a.terms {
		merged.push(a.terms[i].expanded(), a.coeffs[i])
	}

	// Tolerance pass: keep only coefficients that survive cancellation.
	out := a.emptyLike()
	for i := range merged.terms {
		if cmplx.Abs(merged.coeffs[i]) > a.tol {
			out.push(merged.terms[i], merged.coeffs[i])
		}
	}

	return out
}

// IndexOrder returns the operator with every term stably reordered by
// ascending site index. Factors sharing a site keep their relative order —
// same-site generators do not commute and must never be permuted.
//
// When reordering makes two previously distinct terms identical, their
// coefficients sum (a keyed mapping admits one entry per term); no
// exponent expansion and no tolerance-based cancellation happen here —
// that remains Simplify's job.
//
// Complexity:
//   - Time O(terms · factors · log factors).
func (a *SpinOp) IndexOrder() *SpinOp {
	out := a.emptyLike()
	for i := range a.terms {
		out.push(a.terms[i].indexOrdered(), a.coeffs[i])
	}

	return out
}
