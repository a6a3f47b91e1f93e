// SPDX-License-Identifier: MIT

// Package matrix - coordinate-format (COO) assembly.
//
// Purpose:
//   - Collect (row, col, value) entries in any order without allocating the
//     full rows×cols buffer.
//   - Compress into CSR once assembly is done (ToCSR).
//
// Policy:
//   - Duplicate coordinates are summed during compression.
//   - Explicit zeros appended by the caller are kept as structural entries.
//   - Append honors the finite-only numeric policy (WithNoValidateNaNInf relaxes it).
//
// Complexity quicksheet:
//   - Append: amortized O(1); ToCSR: O(k log k) for k appended entries.

package matrix

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	ctxTriplets = "Triplets"
	ctxToCSR    = "Triplets.ToCSR"
)

// Triplets is a growable COO buffer for a rows×cols sparse matrix.
// Not safe for concurrent Append; build on one goroutine, then share the CSR.
type Triplets struct {
	rows, cols int
	entries    []triplet
	opts       Options
}

// NewTriplets returns an empty COO buffer for a rows×cols matrix.
// capHint pre-sizes the entry slice (0 is fine).
//
// Errors:
//   - ErrInvalidDimensions for rows<=0 or cols<=0.
func NewTriplets(rows, cols, capHint int, opts ...Option) (*Triplets, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxTriplets, ErrInvalidDimensions)
	}
	if capHint < 0 {
		capHint = 0
	}

	return &Triplets{
		rows:    rows,
		cols:    cols,
		entries: make([]triplet, 0, capHint),
		opts:    gatherOptions(opts...),
	}, nil
}

// Rows returns the declared row count.
func (t *Triplets) Rows() int { return t.rows }

// Cols returns the declared column count.
func (t *Triplets) Cols() int { return t.cols }

// Len returns the number of appended entries (duplicates counted separately).
func (t *Triplets) Len() int { return len(t.entries) }

// Append records value v at (i, j).
//
// Errors:
//   - ErrOutOfRange when (i, j) lies outside the declared shape.
//   - ErrNaNInf when v is non-finite and validation is on.
func (t *Triplets) Append(i, j int, v float64) error {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		return fmt.Errorf("%s.Append(%d,%d): %w", ctxTriplets, i, j, ErrOutOfRange)
	}
	if t.opts.validateNaNInf && isNonFinite(v) {
		return fmt.Errorf("%s.Append(%d,%d): %w", ctxTriplets, i, j, ErrNaNInf)
	}
	t.entries = append(t.entries, triplet{i: i, j: j, v: v})

	return nil
}

// ToCSR compresses the buffer into a CSR matrix.
//
// Implementation:
//   - Stage 1: stable sort a copy of the entries by (row, col).
//   - Stage 2: sum runs of equal coordinates.
//   - Stage 3: fill row pointers from per-row counts.
//
// The Triplets buffer itself is left untouched and can keep growing.
func (t *Triplets) ToCSR() (*CSR, error) {
	sorted := slices.Clone(t.entries)
	slices.SortStableFunc(sorted, func(a, b triplet) int {
		if c := cmp.Compare(a.i, b.i); c != 0 {
			return c
		}
		return cmp.Compare(a.j, b.j)
	})

	indptr := make([]int, t.rows+1)
	indices := make([]int, 0, len(sorted))
	values := make([]float64, 0, len(sorted))

	for k := 0; k < len(sorted); {
		e := sorted[k]
		sum := e.v
		k++
		for k < len(sorted) && sorted[k].i == e.i && sorted[k].j == e.j {
			sum += sorted[k].v
			k++
		}
		indices = append(indices, e.j)
		values = append(values, sum)
		indptr[e.i+1]++
	}
	for i := 0; i < t.rows; i++ {
		indptr[i+1] += indptr[i]
	}

	out := &CSR{
		rows:    t.rows,
		cols:    t.cols,
		indptr:  indptr,
		indices: indices,
		values:  values,
	}
	if err := out.validate(); err != nil {
		return nil, matrixErrorf(ctxToCSR, err)
	}

	return out, nil
}
