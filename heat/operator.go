// SPDX-License-Identifier: MIT

// Package heat - Operator Builder.
//
// Purpose:
//   - Build the N²×N² five-point Laplacian A for an N×N grid with fixed-zero
//     boundaries, in dense or CSR form.
//   - Row i = r*N + c holds −4 on the diagonal and +1 for each in-bounds axis
//     neighbour. Horizontal couplings across a grid-row boundary are zero.
//
// Both forms satisfy Operator, so steppers never care which one they hold.
// Operators are immutable after construction and safe for concurrent use.

package heat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heatlab/matrix"
)

// Operator is a Laplacian for one grid size.
type Operator interface {
	// Size returns the grid side length N.
	Size() int
	// Dim returns N², the operator's row and column count.
	Dim() int
	// Apply returns A·x as a fresh slice; len(x) must equal Dim.
	Apply(x []float64) ([]float64, error)
	// Dense returns an independent dense copy of A.
	Dense() *matrix.Dense
	// Kind reports the storage (KindDense or KindSparse).
	Kind() Kind
}

// rowVisitor walks the stored entries of one operator row.
type rowVisitor interface {
	visitRow(i int, f func(j int, v float64))
}

// DenseOperator stores A as a full row-major matrix.
type DenseOperator struct {
	n int
	m *matrix.Dense
}

// SparseOperator stores A in CSR form (at most five entries per row).
type SparseOperator struct {
	n       int
	m       *matrix.CSR
	workers int
}

var (
	_ Operator   = (*DenseOperator)(nil)
	_ Operator   = (*SparseOperator)(nil)
	_ rowVisitor = (*DenseOperator)(nil)
	_ rowVisitor = (*SparseOperator)(nil)
)

// BuildDense builds A densely from five diagonal bands.
//
// Implementation:
//   - Stage 1: main diagonal −4.
//   - Stage 2: ±1 bands set to 1, except positions i ≡ N−1 (mod N), which would
//     couple the last cell of a row to the first cell of the next.
//   - Stage 3: ±N bands set to 1 (vertical neighbours).
//
// Errors:
//   - ErrInvalidSize for n ≤ 0 or when N⁴ entries overflow int.
//
// Complexity:
//   - Time O(N⁴) for zeroing, Space O(N⁴).
func BuildDense(n int) (*DenseOperator, error) {
	dim, err := gridDim(n)
	if err == nil && dim > math.MaxInt/dim {
		err = fmt.Errorf("n=%d: dense operator overflows int: %w", n, ErrInvalidSize)
	}
	if err != nil {
		return nil, heatErrorf(opBuildDense, err)
	}
	m, err := matrix.NewDense(dim, dim)
	if err != nil {
		return nil, heatErrorf(opBuildDense, err)
	}
	if err = m.SetDiagonal(0, filled(dim, -4)); err != nil {
		return nil, heatErrorf(opBuildDense, err)
	}
	if n > 1 {
		horiz := filled(dim-1, 1)
		for i := n - 1; i < dim-1; i += n {
			horiz[i] = 0
		}
		vert := filled(dim-n, 1)
		for _, band := range []struct {
			k    int
			vals []float64
		}{{1, horiz}, {-1, horiz}, {n, vert}, {-n, vert}} {
			if err = m.SetDiagonal(band.k, band.vals); err != nil {
				return nil, heatErrorf(opBuildDense, err)
			}
		}
	}

	return &DenseOperator{n: n, m: m}, nil
}

// BuildSparse builds the same operator as BuildDense straight from
// coordinate triplets, without an N²×N² allocation.
// WithWorkers controls the goroutine budget of Apply on large operators.
//
// Complexity:
//   - Time O(N² log N), Space O(N²).
func BuildSparse(n int, opts ...Option) (*SparseOperator, error) {
	dim, err := gridDim(n)
	if err == nil && dim > math.MaxInt/5 {
		err = fmt.Errorf("n=%d: sparse operator overflows int: %w", n, ErrInvalidSize)
	}
	if err != nil {
		return nil, heatErrorf(opBuildSparse, err)
	}
	tr, err := matrix.NewTriplets(dim, dim, 5*dim)
	if err != nil {
		return nil, heatErrorf(opBuildSparse, err)
	}
	var r, c, i int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			i = r*n + c
			if err = tr.Append(i, i, -4); err != nil {
				return nil, heatErrorf(opBuildSparse, err)
			}
			for _, nb := range [4]struct {
				ok bool
				j  int
			}{
				{r > 0, i - n},
				{c > 0, i - 1},
				{c < n-1, i + 1},
				{r < n-1, i + n},
			} {
				if !nb.ok {
					continue
				}
				if err = tr.Append(i, nb.j, 1); err != nil {
					return nil, heatErrorf(opBuildSparse, err)
				}
			}
		}
	}
	csr, err := tr.ToCSR()
	if err != nil {
		return nil, heatErrorf(opBuildSparse, err)
	}

	return &SparseOperator{n: n, m: csr, workers: gatherOptions(opts...).workers}, nil
}

// FromDense compresses a dense operator, dropping exact zeros.
// d must be square with a perfect-square dimension (N²).
//
// Errors:
//   - ErrNilInput for nil d; ErrShapeMismatch when d is not N²×N².
func FromDense(d *matrix.Dense, opts ...Option) (*SparseOperator, error) {
	if d == nil {
		return nil, heatErrorf(opFromDense, ErrNilInput)
	}
	dim := d.Rows()
	n := int(math.Round(math.Sqrt(float64(dim))))
	if d.Cols() != dim || n*n != dim {
		return nil, heatErrorf(opFromDense, fmt.Errorf("%dx%d: %w", d.Rows(), d.Cols(), ErrShapeMismatch))
	}
	csr, err := matrix.CSRFromDense(d)
	if err != nil {
		return nil, heatErrorf(opFromDense, err)
	}

	return &SparseOperator{n: n, m: csr, workers: gatherOptions(opts...).workers}, nil
}

// BuildOperator picks dense or sparse storage for an n×n grid.
// KindAuto (the default) builds densely while n² ≤ DenseLimit.
//
// AI-Hints:
//   - Keep the dense form as the correctness oracle in tests; use sparse
//     for anything beyond a few thousand cells.
func BuildOperator(n int, opts ...Option) (Operator, error) {
	dim, err := gridDim(n)
	if err != nil {
		return nil, heatErrorf(opBuildOperator, err)
	}
	o := gatherOptions(opts...)
	if o.resolve(dim) == KindDense {
		return BuildDense(n)
	}

	return BuildSparse(n, opts...)
}

// Size returns N.
func (op *DenseOperator) Size() int { return op.n }

// Dim returns N².
func (op *DenseOperator) Dim() int { return op.n * op.n }

// Kind returns KindDense.
func (op *DenseOperator) Kind() Kind { return KindDense }

// Dense returns a copy of the backing matrix.
func (op *DenseOperator) Dense() *matrix.Dense { return op.m.Clone().(*matrix.Dense) }

// Apply returns A·x.
func (op *DenseOperator) Apply(x []float64) ([]float64, error) {
	if err := checkVec(x, op.Dim()); err != nil {
		return nil, err
	}
	y, err := op.m.MulVec(x)
	if err != nil {
		return nil, heatErrorf(opApply, err)
	}

	return y, nil
}

func (op *DenseOperator) visitRow(i int, f func(j int, v float64)) {
	dim := op.Dim()
	for j := 0; j < dim; j++ {
		if v, _ := op.m.At(i, j); v != 0 {
			f(j, v)
		}
	}
}

// Size returns N.
func (op *SparseOperator) Size() int { return op.n }

// Dim returns N².
func (op *SparseOperator) Dim() int { return op.n * op.n }

// Kind returns KindSparse.
func (op *SparseOperator) Kind() Kind { return KindSparse }

// Dense materializes A.
func (op *SparseOperator) Dense() *matrix.Dense { return op.m.ToDense() }

// CSR exposes the compressed matrix (read-only).
func (op *SparseOperator) CSR() *matrix.CSR { return op.m }

// Apply returns A·x. Large operators use banded parallel rows unless the
// operator was built WithWorkers(1); the result is identical either way.
func (op *SparseOperator) Apply(x []float64) ([]float64, error) {
	if err := checkVec(x, op.Dim()); err != nil {
		return nil, err
	}
	var y []float64
	var err error
	if op.workers != 1 && op.Dim() >= parallelMinDim {
		y, err = op.m.MulVecParallel(x, op.workers)
	} else {
		y, err = op.m.MulVec(x)
	}
	if err != nil {
		return nil, heatErrorf(opApply, err)
	}

	return y, nil
}

func (op *SparseOperator) visitRow(i int, f func(j int, v float64)) { op.m.Row(i, f) }

// OperatorStats summarizes an operator's structure.
type OperatorStats struct {
	Kind        Kind
	Dim         int
	NNZ         int       // stored non-zero entries
	Diagonal    []float64 // A[i][i] per row
	OffDiagonal []int     // non-zero off-diagonal entries per row
}

// Stats walks every row of op once.
// Returns ErrNilInput for a nil operator.
// Complexity: O(nnz) for sparse, O(N⁴) for dense.
func Stats(op Operator) (OperatorStats, error) {
	if op == nil {
		return OperatorStats{}, heatErrorf(opStats, ErrNilInput)
	}
	dim := op.Dim()
	st := OperatorStats{
		Kind:        op.Kind(),
		Dim:         dim,
		Diagonal:    make([]float64, dim),
		OffDiagonal: make([]int, dim),
	}
	rv, ok := op.(rowVisitor)
	if !ok {
		rv = &DenseOperator{n: op.Size(), m: op.Dense()}
	}
	for i := 0; i < dim; i++ {
		rv.visitRow(i, func(j int, v float64) {
			if v == 0 {
				return
			}
			st.NNZ++
			if j == i {
				st.Diagonal[i] = v
			} else {
				st.OffDiagonal[i]++
			}
		})
	}

	return st, nil
}

// gridDim returns N² for a valid side length. ErrInvalidSize covers n ≤ 0
// and an N² that does not fit in int.
func gridDim(n int) (int, error) {
	if n <= 0 || n > math.MaxInt/n {
		return 0, fmt.Errorf("n=%d: %w", n, ErrInvalidSize)
	}

	return n * n, nil
}

// checkVec rejects nil or wrong-length vectors with ErrShapeMismatch.
func checkVec(x []float64, dim int) error {
	if len(x) != dim {
		return heatErrorf(opApply, fmt.Errorf("len(x)=%d, dim=%d: %w", len(x), dim, ErrShapeMismatch))
	}

	return nil
}

// filled returns a slice of n copies of v.
func filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}

	return s
}
