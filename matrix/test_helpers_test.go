// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for dense and sparse kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/heatlab/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the At-based fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustDenseFrom builds an r×c *Dense from row-major data or fails the test.
func MustDenseFrom(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// fillDenseRand writes deterministic values in [-1, 1) into m.
func fillDenseRand(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	err := m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 })
	if err != nil {
		t.Fatalf("fillDenseRand: %v", err)
	}
}

// sparsify zeroes roughly (1-density) of m's entries deterministically.
func sparsify(t testing.TB, m *matrix.Dense, density float64, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	err := m.Apply(func(_, _ int, v float64) float64 {
		if rng.Float64() < density {
			return v
		}
		return 0
	})
	if err != nil {
		t.Fatalf("sparsify: %v", err)
	}
}

// randVec returns a deterministic vector of length n.
func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = 2*rng.Float64() - 1
	}

	return x
}
