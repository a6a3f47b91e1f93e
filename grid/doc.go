// SPDX-License-Identifier: MIT

// Package grid holds the square scalar field the heat kernels operate on.
//
// What:
//
//   - Grid wraps an N×N float64 field in a row-major flat buffer
//     (Index(row, col) = row*N + col), the same layout the heat operators use
//     when they flatten a grid into a vector.
//   - Lattice helpers (InBounds, Coordinate, Neighbors) answer the
//     4-connectivity questions the Laplacian is built from.
//   - Padded returns the (N+2)×(N+2) zero-bordered copy used by the stencil.
//   - Support and Regions report where the field is non-negligible, which is
//     how diffusion tests check that an impulse spreads only to its neighbours.
//
// Complexity:
//
//   - At/Set/Index/Coordinate: O(1).
//   - Flatten/Clone/Padded/Sum/Max: O(N²).
//   - Regions: O(N²·4), Memory: O(N²).
//
// Errors:
//
//   - ErrInvalidSize: N ≤ 0.
//   - ErrNonSquare: FromRows input is empty, ragged or not square.
//   - ErrLength: FromFlat input length differs from N².
//   - ErrOutOfRange: At/Set outside the grid.
package grid
