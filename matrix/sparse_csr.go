// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse row (CSR) storage.
//
// Purpose:
//   - Store only structural entries: row i owns indices[indptr[i]:indptr[i+1]].
//   - Multiply vectors in O(nnz) instead of O(rows*cols).
//   - Convert to and from Dense for equivalence checks.
//
// Invariants (checked by validate):
//   - len(indptr) == rows+1, indptr[0] == 0, indptr non-decreasing, indptr[rows] == nnz.
//   - column indices inside a row are strictly increasing and in [0, cols).
//
// CSR is immutable after construction and safe for concurrent reads.

package matrix

import (
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

const (
	ctxCSR       = "CSR"
	ctxFromDense = "CSRFromDense"
	opMulVec     = "CSR.MulVec"
)

// CSR is a read-only compressed sparse row matrix.
type CSR struct {
	rows, cols int
	indptr     []int     // row pointers, len rows+1
	indices    []int     // column index per stored entry
	values     []float64 // value per stored entry
}

var _ LinearOperator = (*CSR)(nil)

// NewCSR builds a CSR from raw arrays (copied) and validates the format.
//
// Errors:
//   - ErrInvalidDimensions for rows<=0 or cols<=0.
//   - ErrCorruptCSR when the arrays violate the CSR invariants.
func NewCSR(rows, cols int, indptr, indices []int, values []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxCSR, ErrInvalidDimensions)
	}
	m := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  slices.Clone(indptr),
		indices: slices.Clone(indices),
		values:  slices.Clone(values),
	}
	if err := m.validate(); err != nil {
		return nil, matrixErrorf(ctxCSR, err)
	}

	return m, nil
}

// CSRFromDense compresses d, dropping entries with |v| ≤ DropTolerance
// (exact zeros only by default).
// Complexity: O(r*c).
func CSRFromDense(d *Dense, opts ...Option) (*CSR, error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(ctxFromDense, err)
	}
	o := gatherOptions(opts...)
	indptr := make([]int, d.r+1)
	var indices []int
	var values []float64
	var i, j, base int
	var v float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j]
			if v == 0 || (v <= o.dropTol && v >= -o.dropTol) {
				continue
			}
			indices = append(indices, j)
			values = append(values, v)
		}
		indptr[i+1] = len(indices)
	}

	return &CSR{rows: d.r, cols: d.c, indptr: indptr, indices: indices, values: values}, nil
}

// validate checks the CSR invariants listed in the file header.
func (m *CSR) validate() error {
	if len(m.indptr) != m.rows+1 || m.indptr[0] != 0 {
		return fmt.Errorf("indptr length/origin: %w", ErrCorruptCSR)
	}
	if len(m.indices) != len(m.values) || m.indptr[m.rows] != len(m.values) {
		return fmt.Errorf("nnz mismatch: %w", ErrCorruptCSR)
	}
	for i := 0; i < m.rows; i++ {
		lo, hi := m.indptr[i], m.indptr[i+1]
		if hi < lo {
			return fmt.Errorf("row %d pointers decrease: %w", i, ErrCorruptCSR)
		}
		for k := lo; k < hi; k++ {
			c := m.indices[k]
			if c < 0 || c >= m.cols {
				return fmt.Errorf("row %d column %d: %w", i, c, ErrCorruptCSR)
			}
			if k > lo && m.indices[k-1] >= c {
				return fmt.Errorf("row %d columns not strictly increasing: %w", i, ErrCorruptCSR)
			}
		}
	}

	return nil
}

// Rows returns the row count.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the column count.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.values) }

// RowNNZ returns the number of stored entries in row i (0 when out of range).
func (m *CSR) RowNNZ(i int) int {
	if i < 0 || i >= m.rows {
		return 0
	}

	return m.indptr[i+1] - m.indptr[i]
}

// At returns the entry at (i, j); absent entries read as 0.
// Complexity: O(log nnz(row)) via binary search on the sorted columns.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%s.At(%d,%d): %w", ctxCSR, i, j, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	if k, ok := slices.BinarySearch(m.indices[lo:hi], j); ok {
		return m.values[lo+k], nil
	}

	return 0, nil
}

// Row calls f(j, v) for each stored entry of row i in column order.
func (m *CSR) Row(i int, f func(j int, v float64)) {
	if i < 0 || i >= m.rows {
		return
	}
	for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
		f(m.indices[k], m.values[k])
	}
}

// ToDense materializes the matrix. Non-finite stored values are carried
// over as-is (the result uses the relaxed numeric policy in that case).
// Complexity: O(r*c) allocation + O(nnz) writes.
func (m *CSR) ToDense() *Dense {
	d := &Dense{
		r:              m.rows,
		c:              m.cols,
		data:           make([]float64, m.rows*m.cols),
		validateNaNInf: DefaultValidateNaNInf,
	}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			v := m.values[k]
			if isNonFinite(v) {
				d.validateNaNInf = false
			}
			d.data[base+m.indices[k]] = v
		}
	}

	return d
}

// MulVec computes y = m·x serially.
//
// Errors:
//   - ErrNilMatrix for nil x, ErrDimensionMismatch for len(x) != Cols.
//
// Complexity:
//   - Time O(nnz + rows), Space O(rows).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, m.rows)
	m.mulRows(x, y, 0, m.rows)

	return y, nil
}

// MulVecParallel computes y = m·x with rows split into contiguous bands
// evaluated on up to workers goroutines (workers ≤ 0 means GOMAXPROCS).
// Each band writes a disjoint slice of y, so the result is bitwise equal
// to MulVec.
func (m *CSR) MulVecParallel(x []float64, workers int) ([]float64, error) {
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	y := make([]float64, m.rows)
	band := (m.rows + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < m.rows; lo += band {
		lo := lo // per-iteration copy (Go 1.21 loop semantics)
		hi := min(lo+band, m.rows)
		g.Go(func() error {
			m.mulRows(x, y, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return y, nil
}

// mulRows writes y[i] for i in [lo, hi).
func (m *CSR) mulRows(x, y []float64, lo, hi int) {
	var acc float64
	for i := lo; i < hi; i++ {
		acc = ZeroSum
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.values[k] * x[m.indices[k]]
		}
		y[i] = acc
	}
}
