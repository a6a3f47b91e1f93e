// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/heatlab/grid"
)

// StepMatrix advances u by one forward-Euler step in matrix form:
//
//	u' = u + eps·reshape(A·flatten(u))
//
// Implementation:
//   - Stage 1: reject nil inputs and A.Dim() != N².
//   - Stage 2: y = A·u on the flat buffer; y ← u + eps·y (floats.AddScaledTo).
//   - Stage 3: wrap y as a new N×N grid.
//
// eps is not validated; NaN or ±Inf propagate per IEEE-754.
// u and A are never mutated.
//
// Errors:
//   - ErrNilInput, ErrShapeMismatch.
//
// Complexity:
//   - O(N⁴) with a dense A, O(N²) with a sparse A.
func StepMatrix(A Operator, u *grid.Grid, eps float64) (*grid.Grid, error) {
	if A == nil || u == nil {
		return nil, heatErrorf(opStepMatrix, ErrNilInput)
	}
	if A.Dim() != u.Len() {
		return nil, heatErrorf(opStepMatrix,
			fmt.Errorf("operator dim %d, grid %dx%d: %w", A.Dim(), u.N(), u.N(), ErrShapeMismatch))
	}
	y, err := A.Apply(u.Raw())
	if err != nil {
		return nil, heatErrorf(opStepMatrix, err)
	}
	floats.AddScaledTo(y, u.Raw(), eps, y)

	out, err := grid.Adopt(u.N(), y)
	if err != nil {
		return nil, heatErrorf(opStepMatrix, err)
	}

	return out, nil
}

// MatrixStepper binds an operator once for repeated stepping.
// It holds no scratch state, so one stepper may serve many goroutines.
type MatrixStepper struct {
	op Operator
}

// NewMatrixStepper returns a stepper over A.
func NewMatrixStepper(A Operator) *MatrixStepper {
	return &MatrixStepper{op: A}
}

// Operator returns the bound operator.
func (s *MatrixStepper) Operator() Operator { return s.op }

// Step is StepMatrix with the bound operator.
func (s *MatrixStepper) Step(u *grid.Grid, eps float64) (*grid.Grid, error) {
	return StepMatrix(s.op, u, eps)
}
