// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive side length.
	ErrInvalidSize = errors.New("grid: size must be > 0")
	// ErrNonSquare indicates a row set that is empty, ragged or not N×N.
	ErrNonSquare = errors.New("grid: rows must form a non-empty square")
	// ErrLength indicates a flat buffer whose length is not N².
	ErrLength = errors.New("grid: flat length must equal n*n")
	// ErrOutOfRange indicates a (row, col) outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)
