// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// New returns an n×n grid of zeros.
// Returns ErrInvalidSize for n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}

	return &Grid{n: n, data: make([]float64, n*n)}, nil
}

// FromRows deep-copies a square [][]float64 into a Grid.
// Returns ErrNonSquare if rows is empty, ragged or not square.
func FromRows(rows [][]float64) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrNonSquare)
	}
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", r, len(row), n, ErrNonSquare)
		}
	}
	g := &Grid{n: n, data: make([]float64, n*n)}
	for r, row := range rows {
		copy(g.data[r*n:(r+1)*n], row)
	}

	return g, nil
}

// FromFlat reshapes a row-major buffer (copied) into an n×n grid.
// Returns ErrInvalidSize for n ≤ 0 and ErrLength when len(flat) != n².
func FromFlat(n int, flat []float64) (*Grid, error) {
	g, err := Adopt(n, flat)
	if err != nil {
		return nil, err
	}
	g.data = append([]float64(nil), flat...)

	return g, nil
}

// Adopt is FromFlat without the copy: the grid takes ownership of flat.
// The caller must not touch flat afterwards. Kernels use it to wrap buffers
// they have just allocated.
func Adopt(n int, flat []float64) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Adopt(%d): %w", n, ErrInvalidSize)
	}
	if len(flat) != n*n {
		return nil, fmt.Errorf("Adopt(%d): got %d values: %w", n, len(flat), ErrLength)
	}

	return &Grid{n: n, data: flat}, nil
}

// N returns the side length.
func (g *Grid) N() int { return g.n }

// Len returns N², the length of the flattened vector.
func (g *Grid) Len() int { return len(g.data) }

// At returns the value at (r, c) or ErrOutOfRange.
func (g *Grid) At(r, c int) (float64, error) {
	if !g.InBounds(r, c) {
		return 0, fmt.Errorf("At(%d,%d): %w", r, c, ErrOutOfRange)
	}

	return g.data[g.Index(r, c)], nil
}

// Set stores v at (r, c) or returns ErrOutOfRange. Any float64 is accepted;
// NaN and ±Inf are left to propagate through the kernels.
func (g *Grid) Set(r, c int, v float64) error {
	if !g.InBounds(r, c) {
		return fmt.Errorf("Set(%d,%d): %w", r, c, ErrOutOfRange)
	}
	g.data[g.Index(r, c)] = v

	return nil
}

// Flatten returns a row-major copy of the field (length N²).
func (g *Grid) Flatten() []float64 {
	return append([]float64(nil), g.data...)
}

// Raw exposes the backing buffer without copying. Read-only by contract.
func (g *Grid) Raw() []float64 { return g.data }

// Rows returns the field as a fresh [][]float64.
func (g *Grid) Rows() [][]float64 {
	out := make([][]float64, g.n)
	for r := range out {
		out[r] = append([]float64(nil), g.data[r*g.n:(r+1)*g.n]...)
	}

	return out
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, data: g.Flatten()}
}

// Sum returns the total of all cells (total heat).
func (g *Grid) Sum() float64 { return floats.Sum(g.data) }

// Max returns the largest cell value (the peak temperature), or 0 for an
// empty grid.
func (g *Grid) Max() float64 {
	if len(g.data) == 0 {
		return 0
	}

	return floats.Max(g.data)
}

// Padded returns an (N+2)×(N+2) copy with a zero border around the field.
// Complexity: O(N²).
func (g *Grid) Padded() *Grid {
	m := g.n + 2
	p := &Grid{n: m, data: make([]float64, m*m)}
	for r := 0; r < g.n; r++ {
		copy(p.data[(r+1)*m+1:(r+1)*m+1+g.n], g.data[r*g.n:(r+1)*g.n])
	}

	return p
}

// Equal reports exact element-wise equality. NaN cells never compare equal.
func (g *Grid) Equal(o *Grid) bool {
	return o != nil && g.n == o.n && floats.Equal(g.data, o.data)
}

// String renders one bracketed line per row; for logs and debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.n; r++ {
		b.WriteString("[")
		for c := 0; c < g.n; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", g.data[r*g.n+c])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
