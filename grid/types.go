// SPDX-License-Identifier: MIT

package grid

// Cell addresses one grid point by row and column.
type Cell struct {
	Row, Col int
}

// axisOffsets lists the 4-connectivity moves in N, E, S, W order as (dRow, dCol).
var axisOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an N×N scalar field stored row-major. The zero value is not usable;
// build grids with New, FromRows, FromFlat or Adopt.
//
// Grid is not safe for concurrent mutation. Read-only sharing is fine, and
// every kernel in this module returns a fresh Grid instead of writing in place.
type Grid struct {
	n    int
	data []float64 // len n*n, offset row*n + col
}
