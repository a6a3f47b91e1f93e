// SPDX-License-Identifier: MIT

// Package heat advances a 2D heat-diffusion field by explicit finite
// differences on an N×N grid with fixed-zero (Dirichlet) boundaries.
//
// What:
//
//   - BuildDense / BuildSparse / BuildOperator: the N²×N² five-point
//     Laplacian A, dense or CSR, behind one Operator interface.
//   - StepMatrix / MatrixStepper: u + ε·reshape(A·flatten(u)).
//   - StepStencil / StepStencilParallel: the same update from the zero-padded
//     5-point stencil, without materializing A.
//   - Method / NewStepper: pick one of the four variants by name.
//
// All kernels are pure: inputs are never mutated and every step returns a
// fresh grid. ε is the caller's combined coefficient α·Δt/Δx²; it is not
// validated, and explicit Euler is only stable for ε ≤ 1/4.
//
// Errors:
//
//   - ErrInvalidSize: N ≤ 0.
//   - ErrShapeMismatch: operator dimension differs from N².
//   - ErrNilInput: nil operator or grid.
//   - ErrUnknownMethod: ParseMethod/NewStepper with an undefined method.
//
// The dense builder allocates N⁴ floats and is kept as the reference the
// sparse and stencil paths are tested against. Use KindSparse or the
// stencil for large grids.
package heat
