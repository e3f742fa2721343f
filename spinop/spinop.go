// SPDX-License-Identifier: MIT

// Package spinop - the SpinOp entity: construction, iteration, equality.
//
// Purpose:
//   - Hold a sparse operator as an arena of parallel slices (labels, parsed
//     terms, coefficients) plus a label→position index, so algebra never
//     re-parses strings.
//   - Guarantee immutability: every operation returns a fresh SpinOp; no
//     method mutates its receiver.
//   - Guarantee determinism: map-constructed operators sort their labels
//     lexicographically; FromTerms preserves sequence order; iteration is
//     always insertion order, never map order.

package spinop

import (
	"fmt"
	"iter"
	"math/cmplx"
	"sort"
	"strings"
)

// SpinOp is an immutable weighted sum of site-indexed generator strings
// acting on num_sites spin-s degrees of freedom.
//
// Internals are an arena of parallel slices in insertion order:
// labels[i] is the compact serialization of terms[i], coeffs[i] its complex
// weight, and index maps labels back to positions for O(1) merge-on-add.
type SpinOp struct {
	labels []string       // compact term keys, insertion order
	terms  []Term         // parsed factor sequences, parallel to labels
	coeffs []complex128   // complex weights, parallel to labels
	index  map[string]int // label -> arena position

	numSites int     // site-index domain size (> 0)
	spin     Spin    // per-site dimension is spin.Dim()
	tol      float64 // near-zero cancellation threshold
}

// newEmpty allocates an operator shell with the given metadata and no terms.
func newEmpty(numSites int, spin Spin, tol float64) *SpinOp {
	return &SpinOp{
		index:    make(map[string]int),
		numSites: numSites,
		spin:     spin,
		tol:      tol,
	}
}

// emptyLike allocates an operator shell carrying the receiver's metadata.
func (a *SpinOp) emptyLike() *SpinOp {
	return newEmpty(a.numSites, a.spin, a.tol)
}

// push merges (t, c) into the arena: identical compact keys accumulate
// their coefficients, new keys append in insertion order. The term is
// stored as-is; callers pass terms they no longer alias.
func (a *SpinOp) push(t Term, c complex128) {
	key := t.Compact()
	if i, ok := a.index[key]; ok {
		a.coeffs[i] += c

		return
	}
	a.index[key] = len(a.labels)
	a.labels = append(a.labels, key)
	a.terms = append(a.terms, t)
	a.coeffs = append(a.coeffs, c)
}

// New constructs a SpinOp from a label→coefficient mapping.
//
// Implementation:
//   - Stage 1: resolve options (num_sites, spin, tolerance) and validate spin.
//   - Stage 2: sort the labels lexicographically — Go maps have no insertion
//     order, and spinop guarantees deterministic term order.
//   - Stage 3: parse each label under the lenient grammar (a zero exponent
//     is admitted here; Simplify later collapses it), grouping coefficients
//     of identical parsed terms.
//   - Stage 4: resolve the register: infer num_sites as max site + 1 when
//     not fixed via WithNumSites; otherwise reject out-of-range sites.
//
// Errors:
//   - ErrInvalidSpin when the spin is not a positive half-integer.
//   - ErrMalformedLabel on grammar violations or out-of-range site indices.
//
// Complexity:
//   - Time O(L log L + total label length) for L labels.
func New(data map[string]complex128, opts ...Option) (*SpinOp, error) {
	o := gatherOptions(opts...)
	if err := o.spin.Validate(); err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	parsed := make([]Term, len(labels))
	maxSite := -1
	for i, label := range labels {
		t, err := parseTerm(label, true)
		if err != nil {
			return nil, err
		}
		if m := t.maxSite(); m > maxSite {
			maxSite = m
		}
		parsed[i] = t
	}

	numSites := o.numSites
	if numSites == InferNumSites {
		numSites = maxSite + 1
		if numSites < 1 {
			numSites = 1 // identity-only operators still act on one site
		}
	} else if maxSite >= numSites {
		return nil, fmt.Errorf("site %d outside register [0,%d): %w", maxSite, numSites, ErrMalformedLabel)
	}

	op := newEmpty(numSites, o.spin, o.tol)
	for i, label := range labels {
		op.push(parsed[i], data[label])
	}

	return op, nil
}

// Zero returns the zero operator sentinel: an empty term mapping on a
// single spin-1/2 site. It is the canonical result of full cancellation.
func Zero() *SpinOp {
	return newEmpty(1, DefaultSpin, DefaultTolerance)
}

// One returns the identity operator sentinel: the empty term with
// coefficient 1 on a single spin-1/2 site.
func One() *SpinOp {
	op := Zero()
	op.push(Term{}, 1)

	return op
}

// Identity returns the identity operator on numSites sites, honoring
// WithSpin/WithTolerance options.
//
// Errors:
//   - ErrInvalidSpin; panics from WithNumSites on non-positive counts are
//     forwarded as usual (programmer error).
func Identity(numSites int, opts ...Option) (*SpinOp, error) {
	return New(map[string]complex128{"": 1}, append(opts, WithNumSites(numSites))...)
}

// FromTerms constructs a SpinOp from a (term, coefficient) sequence, the
// inverse of Terms. Sequence order becomes insertion order; coefficients of
// identical terms accumulate.
//
// Errors:
//   - ErrInvalidSpin on a bad WithSpin value.
//   - ErrMalformedLabel on an unknown generator, negative site, negative
//     exponent, or a site outside a WithNumSites register.
func FromTerms(seq iter.Seq2[Term, complex128], opts ...Option) (*SpinOp, error) {
	o := gatherOptions(opts...)
	if err := o.spin.Validate(); err != nil {
		return nil, err
	}

	var (
		terms   []Term
		coeffs  []complex128
		maxSite = -1
	)
	for t, c := range seq {
		for _, f := range t {
			if f.Gen > GenZ || f.Site < 0 || f.Exp < 0 {
				return nil, fmt.Errorf("factor %+v: %w", f, ErrMalformedLabel)
			}
		}
		if m := t.maxSite(); m > maxSite {
			maxSite = m
		}
		terms = append(terms, t.clone())
		coeffs = append(coeffs, c)
	}

	numSites := o.numSites
	if numSites == InferNumSites {
		numSites = maxSite + 1
		if numSites < 1 {
			numSites = 1
		}
	} else if maxSite >= numSites {
		return nil, fmt.Errorf("site %d outside register [0,%d): %w", maxSite, numSites, ErrMalformedLabel)
	}

	op := newEmpty(numSites, o.spin, o.tol)
	for i := range terms {
		op.push(terms[i], coeffs[i])
	}

	return op, nil
}

// Terms returns a restartable sequence of (term, coefficient) pairs in
// insertion order. Every iteration starts fresh; every yielded term is an
// independent copy with exponents expanded into single factors, the shape
// external qubit-mapping transformers consume.
//
// Complexity: O(1) to obtain; O(terms · factors) per full iteration.
func (a *SpinOp) Terms() iter.Seq2[Term, complex128] {
	return func(yield func(Term, complex128) bool) {
		for i := range a.terms {
			if !yield(a.terms[i].expanded(), a.coeffs[i]) {
				return
			}
		}
	}
}

// Coeff returns the coefficient stored under the given label, normalizing
// the label through the codec first. The second return is false when the
// term is absent or the label malformed.
func (a *SpinOp) Coeff(label string) (complex128, bool) {
	t, err := parseTerm(label, true)
	if err != nil {
		return 0, false
	}
	i, ok := a.index[t.Compact()]
	if !ok {
		return 0, false
	}

	return a.coeffs[i], true
}

// NumSites returns the site-index domain size.
func (a *SpinOp) NumSites() int { return a.numSites }

// Spin returns the spin quantum number.
func (a *SpinOp) Spin() Spin { return a.spin }

// Tolerance returns the near-zero cancellation threshold.
func (a *SpinOp) Tolerance() float64 { return a.tol }

// Len returns the number of stored terms (before any canonicalization).
func (a *SpinOp) Len() int { return len(a.labels) }

// CoeffNorm returns the largest coefficient magnitude, 0 for the zero
// operator. Useful to normalize operators and as an equality scale.
func (a *SpinOp) CoeffNorm() float64 {
	norm := 0.0
	for _, c := range a.coeffs {
		if v := cmplx.Abs(c); v > norm {
			norm = v
		}
	}

	return norm
}

// IsZero reports whether the operator simplifies to the empty term mapping
// under its tolerance.
func (a *SpinOp) IsZero() bool {
	return a.Simplify().Len() == 0
}

// IsIdentity reports whether the operator canonicalizes to the identity
// term with coefficient 1 (within tolerance).
func (a *SpinOp) IsIdentity() bool {
	c := a.IndexOrder().Simplify()
	if c.Len() != 1 || len(c.terms[0]) != 0 {
		return false
	}

	return cmplx.Abs(c.coeffs[0]-1) <= c.tol
}

// Equal reports canonical equality: identical num_sites and spin, and
// identical term→coefficient mappings after IndexOrder + Simplify, with
// coefficients compared under the larger of the two tolerances.
//
// Complexity: O(total factors) for canonicalization plus O(terms) compare.
func (a *SpinOp) Equal(b *SpinOp) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.numSites != b.numSites || a.spin != b.spin {
		return false
	}
	ca, cb := a.IndexOrder().Simplify(), b.IndexOrder().Simplify()
	if ca.Len() != cb.Len() {
		return false
	}
	tol := a.tol
	if b.tol > tol {
		tol = b.tol
	}
	for key, i := range ca.index {
		j, ok := cb.index[key]
		if !ok {
			return false
		}
		if cmplx.Abs(ca.coeffs[i]-cb.coeffs[j]) > tol {
			return false
		}
	}

	return true
}

// StrictEqual reports structural equality with no canonicalization: same
// num_sites, same spin, and the exact same label→coefficient mapping
// (coefficients compared exactly). Insertion order is not significant.
// Intended for round-trip tests.
func (a *SpinOp) StrictEqual(b *SpinOp) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.numSites != b.numSites || a.spin != b.spin || len(a.labels) != len(b.labels) {
		return false
	}
	for key, i := range a.index {
		j, ok := b.index[key]
		if !ok || a.coeffs[i] != b.coeffs[j] {
			return false
		}
	}

	return true
}

// String renders the operator header and its terms in insertion order,
// one quoted compact label per line. Intended for diagnostics and examples.
func (a *SpinOp) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SpinOp(num_sites=%d, spin=%s)", a.numSites, a.spin)
	if len(a.labels) == 0 {
		sb.WriteString(" <zero>")

		return sb.String()
	}
	for i, label := range a.labels {
		fmt.Fprintf(&sb, "\n  %q: %v", label, a.coeffs[i])
	}

	return sb.String()
}
