// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/spinalg/cmatrix"
)

// ExampleDense_MatMul multiplies a 2×2 matrix by the swap permutation.
func ExampleDense_MatMul() {
	a, _ := cmatrix.FromRows([][]complex128{{1, 2}, {3, 4}})
	swap, _ := cmatrix.FromRows([][]complex128{{0, 1}, {1, 0}})

	p, _ := a.MatMul(swap)
	fmt.Print(p)

	// Output:
	// [(2+0i), (1+0i)]
	// [(4+0i), (3+0i)]
}

// ExampleDense_Kron embeds a single-site operator into a two-site space:
// identity on the left site, the operator on the right.
func ExampleDense_Kron() {
	eye, _ := cmatrix.Identity(2)
	x, _ := cmatrix.FromRows([][]complex128{{0, 0.5}, {0.5, 0}})

	full, _ := eye.Kron(x)
	fmt.Println(full.Rows(), full.Cols())
	v, _ := full.At(2, 3) // lower-right block carries x
	fmt.Println(v)

	// Output:
	// 4 4
	// (0.5+0i)
}
