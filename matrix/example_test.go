// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/heatlab/matrix"
)

// ExampleTriplets_ToCSR assembles a 1D second-difference operator in COO
// form and applies it to a vector.
func ExampleTriplets_ToCSR() {
	const n = 4
	tr, _ := matrix.NewTriplets(n, n, 3*n)
	for i := 0; i < n; i++ {
		_ = tr.Append(i, i, -2)
		if i > 0 {
			_ = tr.Append(i, i-1, 1)
		}
		if i+1 < n {
			_ = tr.Append(i, i+1, 1)
		}
	}
	A, _ := tr.ToCSR()
	y, _ := A.MulVec([]float64{0, 1, 0, 0})

	fmt.Println("nnz:", A.NNZ())
	fmt.Println("y:", y)
	// Output:
	// nnz: 10
	// y: [1 -2 1 0]
}

// ExampleCSRFromDense shows the exact dense→sparse round-trip.
func ExampleCSRFromDense() {
	d, _ := matrix.NewDenseFrom(2, 2, []float64{-4, 1, 0, -4})
	s, _ := matrix.CSRFromDense(d)
	fmt.Println(s.NNZ())
	fmt.Print(s.ToDense())
	// Output:
	// 3
	// [-4, 1]
	// [0, -4]
}
