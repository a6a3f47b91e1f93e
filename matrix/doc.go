// SPDX-License-Identifier: MIT

// Package matrix offers the numeric storage used by the heat-diffusion kernels.
//
// The matrix package provides:
//
//   - Dense: a row-major rows×cols buffer with bounds-checked At/Set,
//     diagonal writers (SetDiagonal) and a finite-only numeric policy.
//   - Triplets: coordinate-format assembly; duplicates are summed by ToCSR.
//   - CSR: compressed sparse rows with O(nnz) MulVec, a banded parallel
//     MulVecParallel and exact Dense round-trips (CSRFromDense / ToDense).
//   - Validators and comparison kernels (AllClose, RowSums, ValidateSymmetric).
//
// Both Dense and CSR satisfy LinearOperator, the only surface the heat
// steppers need. All user-triggered failures are returned as wrapped
// sentinels (ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ...)
// and should be matched with errors.Is.
//
// Dense storage costs O(r*c) memory; for the N²×N² operators of large grids
// prefer CSR, which keeps at most five entries per row.
package matrix
