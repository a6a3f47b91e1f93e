// SPDX-License-Identifier: MIT

package heat

import (
	"errors"
	"fmt"
)

// Sentinel errors. Kernels wrap them with an operation tag; match with errors.Is.
var (
	// ErrInvalidSize indicates a grid side length N ≤ 0.
	ErrInvalidSize = errors.New("heat: grid size must be > 0")

	// ErrShapeMismatch indicates an operator whose dimension is not N² for the
	// grid it is applied to (or a vector of the wrong length).
	ErrShapeMismatch = errors.New("heat: operator dimension does not match grid")

	// ErrNilInput indicates a nil operator or grid argument.
	ErrNilInput = errors.New("heat: nil operator or grid")

	// ErrUnknownMethod indicates a stepping method name that ParseMethod does not know.
	ErrUnknownMethod = errors.New("heat: unknown stepping method")
)

// Operation tags for error wrapping.
const (
	opBuildDense    = "BuildDense"
	opBuildSparse   = "BuildSparse"
	opBuildOperator = "BuildOperator"
	opFromDense     = "FromDense"
	opApply         = "Operator.Apply"
	opStats         = "Stats"
	opStepMatrix    = "StepMatrix"
	opStepStencil   = "StepStencil"
	opLaplacian     = "Laplacian"
	opNewStepper    = "NewStepper"
)

// heatErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func heatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
