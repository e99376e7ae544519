// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No function panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Context is
// attached with fmt.Errorf("ctx: %w", ErrX); errors.Is still matches.

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Swap*) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, a ragged
	// row set, or a scalar iterator that yields too few or too many values.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals a symmetry violation beyond the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix was passed in.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and >= 0")
)
