// SPDX-License-Identifier: MIT

package spinop_test

import (
	"testing"

	"github.com/katalvlaran/spinalg/cmatrix"
	"github.com/katalvlaran/spinalg/spinop"
	"github.com/stretchr/testify/require"
)

// matrixEps is the comparison tolerance for dense-matrix fixtures; every
// engine value is an exact sum/product of square roots, so a tight bound
// suffices.
const matrixEps = 1e-9

// mustOp constructs a SpinOp and fails the test on any construction error.
func mustOp(t *testing.T, data map[string]complex128, opts ...spinop.Option) *spinop.SpinOp {
	t.Helper()
	op, err := spinop.New(data, opts...)
	require.NoError(t, err, "construction must succeed for %v", data)

	return op
}

// mustMatrix expands a SpinOp to its dense matrix, failing the test on error.
func mustMatrix(t *testing.T, op *spinop.SpinOp) *cmatrix.Dense {
	t.Helper()
	m, err := op.ToMatrix()
	require.NoError(t, err, "matrix expansion must succeed")

	return m
}

// assertAllClose compares two dense matrices within matrixEps.
func assertAllClose(t *testing.T, want, got *cmatrix.Dense, msg string) {
	t.Helper()
	ok, err := want.AllClose(got, matrixEps)
	require.NoError(t, err, "comparable shapes required: %s", msg)
	require.True(t, ok, "%s\nwant:\n%sgot:\n%s", msg, want, got)
}
