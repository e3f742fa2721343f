// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spinalg/cmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InvalidDimensions verifies that non-positive shapes are rejected
// with ErrInvalidDimensions before any allocation happens.
func TestNew_InvalidDimensions(t *testing.T) {
	_, err := cmatrix.New(0, 3)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "zero rows must error")

	_, err = cmatrix.New(3, -1)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "negative cols must error")
}

// TestNew_ZeroInitialized verifies that a fresh matrix is all-zero.
func TestNew_ZeroInitialized(t *testing.T) {
	d, err := cmatrix.New(2, 3)
	require.NoError(t, err, "valid shape must construct")
	assert.Equal(t, 2, d.Rows(), "row count")
	assert.Equal(t, 3, d.Cols(), "col count")

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, complex128(0), v, "fresh matrices are zero-filled")
		}
	}
}

// TestAtSet_RangeChecks verifies the safe-accessor contract: out-of-range
// indices surface ErrOutOfRange, never a panic.
func TestAtSet_RangeChecks(t *testing.T) {
	d, err := cmatrix.New(2, 2)
	require.NoError(t, err)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange, "row past end")
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, cmatrix.ErrOutOfRange, "negative col")
	assert.ErrorIs(t, d.Set(-1, 0, 1), cmatrix.ErrOutOfRange, "negative row on Set")

	require.NoError(t, d.Set(1, 1, 2+3i))
	v, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2+3i, v, "Set then At round-trips")
}

// TestSet_NaNInfPolicy verifies that non-finite components are rejected by
// default on either the real or imaginary part.
func TestSet_NaNInfPolicy(t *testing.T) {
	d, err := cmatrix.New(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, d.Set(0, 0, complex(math.NaN(), 0)), cmatrix.ErrNaNInf, "NaN real part")
	assert.ErrorIs(t, d.Set(0, 0, complex(0, math.Inf(1))), cmatrix.ErrNaNInf, "+Inf imaginary part")
}

// TestFromRows verifies literal construction, ragged-input rejection, and
// that the input slices are copied, not retained.
func TestFromRows(t *testing.T) {
	rows := [][]complex128{{1, 2i}, {3, 4}}
	d, err := cmatrix.FromRows(rows)
	require.NoError(t, err, "rectangular literal must construct")

	rows[0][0] = 99 // mutate the input; the matrix must not see it
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v, "FromRows copies its input")

	_, err = cmatrix.FromRows([][]complex128{{1, 2}, {3}})
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "ragged rows must error")

	_, err = cmatrix.FromRows(nil)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "empty input must error")
}

// TestIdentity verifies the identity constructor.
func TestIdentity(t *testing.T) {
	d, err := cmatrix.Identity(3)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, want, v, "identity pattern at (%d,%d)", i, j)
		}
	}

	_, err = cmatrix.Identity(0)
	assert.ErrorIs(t, err, cmatrix.ErrInvalidDimensions, "identity needs n > 0")
}

// TestClone_Independence verifies that a clone shares no storage with its
// original.
func TestClone_Independence(t *testing.T) {
	d, err := cmatrix.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 7))

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, -7))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(7), v, "mutating the clone must not touch the original")
}
