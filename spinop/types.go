// SPDX-License-Identifier: MIT

// Package spinop: domain types for spin-operator terms.
// This file intentionally contains ONLY domain-facing value types
// (Generator, Factor, Term, Spin) and their pure helpers. Errors and
// configuration live in dedicated files (errors.go, options.go) per the
// global conventions.
package spinop

import (
	"fmt"
	"sort"
	"strings"
)

// Generator identifies one of the three non-commuting single-site spin
// operators. Generators on the same site do not commute; generators on
// different sites always commute.
type Generator uint8

// The three generators, in their canonical serialization order.
const (
	GenX Generator = iota // X — (S₊ + S₋)/2
	GenY                  // Y — (S₊ − S₋)/2i
	GenZ                  // Z — diag(s, s−1, …, −s)
)

// generatorLetters is the single source of truth for serialization.
const generatorLetters = "XYZ"

// String returns the one-letter label of the generator ("X", "Y" or "Z").
// Unknown values render as "?" (programmer error; never produced by parsing).
func (g Generator) String() string {
	if int(g) >= len(generatorLetters) {
		return "?"
	}

	return generatorLetters[g : g+1]
}

// parseGenerator maps a label byte onto a Generator.
// The second return is false on anything outside {X, Y, Z}.
func parseGenerator(b byte) (Generator, bool) {
	switch b {
	case 'X':
		return GenX, true
	case 'Y':
		return GenY, true
	case 'Z':
		return GenZ, true
	default:
		return 0, false
	}
}

// Factor is one (generator, site, exponent) token of a term.
//   - Site is a non-negative index into the operator's site register.
//   - Exp is the repetition count: Exp==1 is a single factor; Exp==k stands
//     for k adjacent copies of the same generator; Exp==0 is the no-op form
//     that Simplify collapses away (only lenient construction produces it).
type Factor struct {
	Gen  Generator
	Site int
	Exp  int
}

// Term is an ordered sequence of factors identifying a basis operator
// string. The empty Term denotes the identity on the declared site count.
// Multiple factors may share a site; order among them is significant.
type Term []Factor

// String serializes the term with every exponent expanded into explicit
// single factors ("X_0^2 Z_0" renders as "X_0 X_0 Z_0"). The identity term
// renders as the empty string. Complexity: O(total exponent weight).
func (t Term) String() string {
	var sb strings.Builder
	first := true
	for _, f := range t {
		for k := 0; k < f.Exp; k++ {
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(&sb, "%s_%d", f.Gen, f.Site)
		}
	}

	return sb.String()
}

// Compact serializes the term preserving exponents ("X_0^2 Z_0" stays
// "X_0^2 Z_0"; Exp==1 factors are emitted bare, Exp==0 as "^0").
// Complexity: O(len(t)).
func (t Term) Compact() string {
	var sb strings.Builder
	for i, f := range t {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if f.Exp == 1 {
			fmt.Fprintf(&sb, "%s_%d", f.Gen, f.Site)
		} else {
			fmt.Fprintf(&sb, "%s_%d^%d", f.Gen, f.Site, f.Exp)
		}
	}

	return sb.String()
}

// clone returns an independent copy of the term.
func (t Term) clone() Term {
	if len(t) == 0 {
		return Term{}
	}
	out := make(Term, len(t))
	copy(out, t)

	return out
}

// expanded returns the term with every exponent unrolled into Exp literal
// single factors; Exp==0 factors vanish. The result contains only Exp==1
// factors. Complexity: O(total exponent weight).
func (t Term) expanded() Term {
	out := make(Term, 0, len(t))
	for _, f := range t {
		for k := 0; k < f.Exp; k++ {
			out = append(out, Factor{Gen: f.Gen, Site: f.Site, Exp: 1})
		}
	}

	return out
}

// reversed returns the term with factor order reversed. A G_i^k factor is a
// run of identical generators, so factor-level reversal equals full
// single-factor reversal.
func (t Term) reversed() Term {
	out := make(Term, len(t))
	for i, f := range t {
		out[len(t)-1-i] = f
	}

	return out
}

// shifted returns the term with every site index displaced by delta
// (used by Tensor/Expand to relocate one operand's register).
func (t Term) shifted(delta int) Term {
	out := make(Term, len(t))
	for i, f := range t {
		out[i] = Factor{Gen: f.Gen, Site: f.Site + delta, Exp: f.Exp}
	}

	return out
}

// countY returns the total exponent weight of Y factors in the term.
// It drives the (−1)^{#Y} sign of Conjugate and Transpose: the Y generator
// is purely imaginary and antisymmetric, so Yᵀ = conj(Y) = −Y.
func (t Term) countY() int {
	n := 0
	for _, f := range t {
		if f.Gen == GenY {
			n += f.Exp
		}
	}

	return n
}

// indexOrdered returns the term stably sorted by ascending site index.
// Relative order among factors sharing a site is preserved: same-site
// generators do not commute and must not be permuted.
func (t Term) indexOrdered() Term {
	out := t.clone()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Site < out[j].Site })

	return out
}

// maxSite returns the largest site index in the term, or -1 for the
// identity term.
func (t Term) maxSite() int {
	m := -1
	for _, f := range t {
		if f.Site > m {
			m = f.Site
		}
	}

	return m
}

// Spin is the spin quantum number s fixing the per-site Hilbert space
// dimension d = 2s+1. Valid values are positive half-integers
// (1/2, 1, 3/2, …).
type Spin float64

// Validate reports whether s is a positive half-integer.
// Returns ErrInvalidSpin otherwise.
func (s Spin) Validate() error {
	twice := float64(s) * 2
	if s <= 0 || twice != float64(int(twice)) {
		return fmt.Errorf("spin %v: %w", float64(s), ErrInvalidSpin)
	}

	return nil
}

// Dim returns the per-site matrix dimension d = 2s+1.
// Callers must have validated s first; Dim on an invalid spin is undefined.
func (s Spin) Dim() int {
	return int(2*float64(s)) + 1
}

// String renders the spin as an exact half-integer ("1/2", "1", "3/2", …).
func (s Spin) String() string {
	twice := int(2 * float64(s))
	if twice%2 == 0 {
		return fmt.Sprintf("%d", twice/2)
	}

	return fmt.Sprintf("%d/2", twice)
}
