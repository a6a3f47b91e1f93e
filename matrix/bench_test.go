// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for dense and sparse products,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/heatlab/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkB bool
)

func BenchmarkMatVecDense(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			x := randVec(n, 42)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkMulVecCSR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := MustDense(b, n, n)
		fillDenseRand(b, A, 7)
		sparsify(b, A, 0.02, 8)
		S, err := matrix.CSRFromDense(A)
		if err != nil {
			b.Fatal(err)
		}
		x := randVec(n, 9)
		b.Run(fmt.Sprintf("serial/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				y, err := S.MulVec(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
		b.Run(fmt.Sprintf("parallel/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				y, err := S.MulVecParallel(x, 0)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkAllClose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense(b, n, n)
			fillDenseRand(b, A, 5)
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := matrix.AllClose(A, B, 1e-9, 1e-12)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}
