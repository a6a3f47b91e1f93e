// SPDX-License-Identifier: MIT
package heat_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/heatlab/grid"
)

// randGrid returns an n×n grid filled with deterministic values in [0, 1).
func randGrid(t testing.TB, n int, seed int64) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]float64, n*n)
	for i := range flat {
		flat[i] = rng.Float64()
	}
	g, err := grid.Adopt(n, flat)
	if err != nil {
		t.Fatalf("randGrid(%d): %v", n, err)
	}

	return g
}

// impulseGrid returns an n×n zero grid with amp at (r, c).
func impulseGrid(t testing.TB, n, r, c int, amp float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(n)
	if err != nil {
		t.Fatalf("impulseGrid(%d): %v", n, err)
	}
	if err = g.Set(r, c, amp); err != nil {
		t.Fatalf("impulseGrid(%d,%d): %v", r, c, err)
	}

	return g
}

// expectedSupport returns the sorted flat indices of (r, c) and its axis neighbours.
func expectedSupport(g *grid.Grid, r, c int) []int {
	set := map[int]bool{g.Index(r, c): true}
	for _, nb := range g.Neighbors(r, c) {
		set[g.Index(nb.Row, nb.Col)] = true
	}
	out := make([]int, 0, len(set))
	for i := 0; i < g.Len(); i++ {
		if set[i] {
			out = append(out, i)
		}
	}

	return out
}
