// SPDX-License-Identifier: MIT

package spinop_test

import (
	"testing"

	"github.com/katalvlaran/spinalg/spinop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Basics covers metadata resolution: register inference, explicit
// register validation, spin validation, and defaults.
func TestNew_Basics(t *testing.T) {
	op := mustOp(t, map[string]complex128{"X_0 Z_3": 1})
	assert.Equal(t, 4, op.NumSites(), "register inferred as max site + 1")
	assert.Equal(t, spinop.DefaultSpin, op.Spin(), "default spin is 1/2")
	assert.Equal(t, spinop.DefaultTolerance, op.Tolerance(), "default tolerance")

	op = mustOp(t, map[string]complex128{"": 5})
	assert.Equal(t, 1, op.NumSites(), "identity-only operators act on one site")

	op = mustOp(t, map[string]complex128{"X_0": 1}, spinop.WithNumSites(7), spinop.WithSpin(1.5))
	assert.Equal(t, 7, op.NumSites(), "explicit register wins")
	assert.Equal(t, spinop.Spin(1.5), op.Spin())

	_, err := spinop.New(map[string]complex128{"X_3": 1}, spinop.WithNumSites(3))
	assert.ErrorIs(t, err, spinop.ErrMalformedLabel, "site 3 outside [0,3) must be rejected")

	_, err = spinop.New(map[string]complex128{"X_0": 1}, spinop.WithSpin(0.3))
	assert.ErrorIs(t, err, spinop.ErrInvalidSpin, "non-half-integer spin must be rejected")

	_, err = spinop.New(map[string]complex128{"Q_0": 1})
	assert.ErrorIs(t, err, spinop.ErrMalformedLabel, "bad labels surface from New")
}

// TestNew_GroupsEquivalentLabels verifies that construction groups
// coefficients by identical parsed term ("X_0^1" and "X_0" are the same
// parsed factor), while genuinely different spellings stay distinct.
func TestNew_GroupsEquivalentLabels(t *testing.T) {
	op := mustOp(t, map[string]complex128{"X_0": 1, "X_0^1": 2})
	assert.Equal(t, 1, op.Len(), "identical parsed terms group on construction")
	c, ok := op.Coeff("X_0")
	require.True(t, ok)
	assert.Equal(t, complex128(3), c, "grouped coefficients sum")

	op = mustOp(t, map[string]complex128{"X_0^2 Z_0": 1, "X_0 X_0 Z_0": 2})
	assert.Equal(t, 2, op.Len(), "raw construction never merges equivalent-but-distinct terms")
}

// TestNew_ZeroExponentAccepted verifies the lenient construction path:
// "X_0^0" constructs fine and only Simplify collapses it.
func TestNew_ZeroExponentAccepted(t *testing.T) {
	op := mustOp(t, map[string]complex128{"X_0^0": 1})
	assert.Equal(t, 1, op.Len(), "zero-exponent factor survives raw construction")
	assert.True(t, op.Simplify().Equal(spinop.One()), "X_0^0 collapses to the identity")
}

// TestSentinels covers Zero and One.
func TestSentinels(t *testing.T) {
	zero := spinop.Zero()
	assert.Equal(t, 0, zero.Len(), "zero is the empty term mapping")
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsIdentity())

	one := spinop.One()
	assert.Equal(t, 1, one.Len(), "one is the single identity term")
	assert.True(t, one.IsIdentity())
	assert.False(t, one.IsZero())

	id, err := spinop.Identity(3, spinop.WithSpin(1))
	require.NoError(t, err)
	assert.Equal(t, 3, id.NumSites())
	assert.True(t, id.IsIdentity())
}

// TestTerms verifies the transformer boundary: Terms yields expanded
// (factor-list, coefficient) pairs in insertion order, restarts fresh, and
// FromTerms is its inverse.
func TestTerms(t *testing.T) {
	op := mustOp(t, map[string]complex128{
		"X_0":         1,
		"X_0 Z_1":     2,
		"Z_1 Y_1 X_2": 2,
	})

	want := []struct {
		term  spinop.Term
		coeff complex128
	}{
		{spinop.Term{{Gen: spinop.GenX, Site: 0, Exp: 1}}, 1},
		{spinop.Term{{Gen: spinop.GenX, Site: 0, Exp: 1}, {Gen: spinop.GenZ, Site: 1, Exp: 1}}, 2},
		{spinop.Term{{Gen: spinop.GenZ, Site: 1, Exp: 1}, {Gen: spinop.GenY, Site: 1, Exp: 1}, {Gen: spinop.GenX, Site: 2, Exp: 1}}, 2},
	}

	for round := 0; round < 2; round++ { // second round proves restartability
		i := 0
		for term, coeff := range op.Terms() {
			require.Less(t, i, len(want), "no extra terms")
			assert.Equal(t, want[i].term, term, "term %d, round %d", i, round)
			assert.Equal(t, want[i].coeff, coeff, "coeff %d, round %d", i, round)
			i++
		}
		assert.Equal(t, len(want), i, "all terms yielded on round %d", round)
	}

	back, err := spinop.FromTerms(op.Terms())
	require.NoError(t, err)
	assert.True(t, back.StrictEqual(op), "FromTerms(Terms(op)) round-trips structurally")
}

// TestTerms_EarlyStop verifies that a consumer may break out of the
// sequence without exhausting it.
func TestTerms_EarlyStop(t *testing.T) {
	op := mustOp(t, map[string]complex128{"X_0": 1, "Y_0": 2, "Z_0": 3})

	n := 0
	for range op.Terms() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n, "early break stops the sequence")
}

// TestFromTerms_Validation covers the malformed-factor paths.
func TestFromTerms_Validation(t *testing.T) {
	bad := func(f spinop.Factor) error {
		seq := func(yield func(spinop.Term, complex128) bool) {
			yield(spinop.Term{f}, 1)
		}
		_, err := spinop.FromTerms(seq)

		return err
	}

	assert.ErrorIs(t, bad(spinop.Factor{Gen: 5, Site: 0, Exp: 1}), spinop.ErrMalformedLabel, "unknown generator")
	assert.ErrorIs(t, bad(spinop.Factor{Gen: spinop.GenX, Site: -1, Exp: 1}), spinop.ErrMalformedLabel, "negative site")
	assert.ErrorIs(t, bad(spinop.Factor{Gen: spinop.GenX, Site: 0, Exp: -1}), spinop.ErrMalformedLabel, "negative exponent")
}

// TestEqual covers canonical equality: tolerance on coefficients,
// insensitivity to exponent spelling and commuting-site order, and the
// metadata guards.
func TestEqual(t *testing.T) {
	a := mustOp(t, map[string]complex128{"X_0^2 Z_0": 2})
	b := mustOp(t, map[string]complex128{"X_0 X_0 Z_0": 2})
	assert.True(t, a.Equal(b), "exponent spelling is not significant under Equal")
	assert.False(t, a.StrictEqual(b), "but it is under StrictEqual")

	a = mustOp(t, map[string]complex128{"X_0 Y_1": 1})
	b = mustOp(t, map[string]complex128{"Y_1 X_0": 1})
	assert.True(t, a.Equal(b), "factors on different sites commute")

	a = mustOp(t, map[string]complex128{"X_0": 1})
	b = mustOp(t, map[string]complex128{"X_0": 1 + 1e-13})
	assert.True(t, a.Equal(b), "coefficients compare within tolerance")

	b = mustOp(t, map[string]complex128{"X_0": 1.1})
	assert.False(t, a.Equal(b), "coefficients outside tolerance differ")

	b = mustOp(t, map[string]complex128{"X_0": 1}, spinop.WithNumSites(2))
	assert.False(t, a.Equal(b), "different registers are never equal")

	b = mustOp(t, map[string]complex128{"X_0": 1}, spinop.WithSpin(1))
	assert.False(t, a.Equal(b), "different spins are never equal")
}

// TestCoeffNorm covers the induced-norm helper.
func TestCoeffNorm(t *testing.T) {
	assert.Equal(t, 0.0, spinop.Zero().CoeffNorm(), "zero operator has zero norm")

	op := mustOp(t, map[string]complex128{"X_0": 3 + 4i, "Z_0": 1})
	assert.InDelta(t, 5.0, op.CoeffNorm(), 1e-15, "largest coefficient magnitude")
}

// TestString verifies the diagnostic rendering is deterministic.
func TestString(t *testing.T) {
	op := mustOp(t, map[string]complex128{"X_0 Y_0": 1, "Z_0": 2i})
	assert.Equal(t, "SpinOp(num_sites=1, spin=1/2)\n  \"X_0 Y_0\": (1+0i)\n  \"Z_0\": (0+2i)", op.String())
	assert.Equal(t, "SpinOp(num_sites=1, spin=1/2) <zero>", spinop.Zero().String())
}

// TestOptionPanics verifies that nonsensical option values panic with
// stable messages (programmer errors, per package policy).
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { spinop.WithNumSites(0) }, "non-positive register")
	assert.Panics(t, func() { spinop.WithTolerance(-1) }, "negative tolerance")
}
