// SPDX-License-Identifier: MIT

package grid

import "math"

// InBounds reports whether (r, c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.n && c >= 0 && c < g.n
}

// Index maps (r, c) to the row-major offset r*N + c. No bounds check.
func (g *Grid) Index(r, c int) int { return r*g.n + c }

// Coordinate converts a row-major index back to (r, c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (r, c int) {
	return idx / g.n, idx % g.n
}

// Neighbors returns the in-bounds axis-aligned neighbours of (r, c) in
// N, E, S, W order. Corners have 2, edges 3, interior cells 4.
func (g *Grid) Neighbors(r, c int) []Cell {
	out := make([]Cell, 0, len(axisOffsets))
	for _, d := range axisOffsets {
		nr, nc := r+d[0], c+d[1]
		if g.InBounds(nr, nc) {
			out = append(out, Cell{Row: nr, Col: nc})
		}
	}

	return out
}

// Support returns, in ascending order, the flattened indices of cells with
// |v| > tol. NaN cells are included: they are never negligible.
func (g *Grid) Support(tol float64) []int {
	var idx []int
	for i, v := range g.data {
		if math.IsNaN(v) || math.Abs(v) > tol {
			idx = append(idx, i)
		}
	}

	return idx
}

// Regions finds 4-connected groups of cells with |v| > tol.
// Each region is a slice of flattened indices in BFS order; regions are
// listed in row-major order of their first cell.
//
// Time:   O(N²·4).
// Memory: O(N²) for visited flags and output.
func (g *Grid) Regions(tol float64) [][]int {
	hot := func(i int) bool {
		v := g.data[i]
		return math.IsNaN(v) || math.Abs(v) > tol
	}
	seen := make([]bool, len(g.data))
	var regions [][]int

	for i0 := range g.data {
		if seen[i0] || !hot(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			r, c := g.Coordinate(queue[qi])
			for _, d := range axisOffsets {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				vi := g.Index(nr, nc)
				if !seen[vi] && hot(vi) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, queue)
	}

	return regions
}
