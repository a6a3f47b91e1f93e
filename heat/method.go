// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/heatlab/grid"
)

// Method names one of the four ways to advance a grid.
type Method int

const (
	// MethodDense is the matrix form with a dense operator.
	MethodDense Method = iota
	// MethodSparse is the matrix form with a CSR operator.
	MethodSparse
	// MethodStencil is the serial 5-point stencil.
	MethodStencil
	// MethodParallel is the banded parallel stencil.
	MethodParallel
)

// Methods lists every Method in declaration order.
var Methods = []Method{MethodDense, MethodSparse, MethodStencil, MethodParallel}

var methodNames = [...]string{
	MethodDense:    "dense",
	MethodSparse:   "sparse",
	MethodStencil:  "stencil",
	MethodParallel: "parallel",
}

// String returns the lower-case method name.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a name (case-insensitive) to a Method.
// Returns ErrUnknownMethod for anything else.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for m, name := range methodNames {
		if name == key {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(methodNames) {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(m), ErrUnknownMethod)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Stepper advances a grid by one time step.
type Stepper interface {
	Step(u *grid.Grid, eps float64) (*grid.Grid, error)
}

// stencilStepper adapts the stencil kernels to Stepper for a fixed size.
type stencilStepper struct {
	n        int
	parallel bool
	workers  int
}

func (s stencilStepper) Step(u *grid.Grid, eps float64) (*grid.Grid, error) {
	if u == nil {
		return nil, heatErrorf(opStepStencil, ErrNilInput)
	}
	if u.N() != s.n {
		return nil, heatErrorf(opStepStencil,
			fmt.Errorf("stepper n=%d, grid n=%d: %w", s.n, u.N(), ErrShapeMismatch))
	}
	if s.parallel {
		return StepStencilParallel(u, eps, s.workers)
	}

	return StepStencil(u, eps)
}

// NewStepper returns a Stepper for n×n grids using method. Matrix methods
// build their operator once here; WithWorkers sets the goroutine budget of
// MethodSparse and MethodParallel.
//
// Errors:
//   - ErrInvalidSize for n ≤ 0 or an N² that overflows int.
//   - ErrUnknownMethod for an undefined method.
func NewStepper(method Method, n int, opts ...Option) (Stepper, error) {
	if _, err := gridDim(n); err != nil {
		return nil, heatErrorf(opNewStepper, err)
	}
	o := gatherOptions(opts...)
	switch method {
	case MethodDense:
		op, err := BuildDense(n)
		if err != nil {
			return nil, heatErrorf(opNewStepper, err)
		}
		return NewMatrixStepper(op), nil
	case MethodSparse:
		op, err := BuildSparse(n, opts...)
		if err != nil {
			return nil, heatErrorf(opNewStepper, err)
		}
		return NewMatrixStepper(op), nil
	case MethodStencil:
		return stencilStepper{n: n}, nil
	case MethodParallel:
		return stencilStepper{n: n, parallel: true, workers: o.workers}, nil
	default:
		return nil, heatErrorf(opNewStepper, fmt.Errorf("%v: %w", method, ErrUnknownMethod))
	}
}
