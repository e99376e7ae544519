// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
package matrix

// Matrix is a two-dimensional mutable array of T values.
// Elementary row/column operations are written against this surface so that
// callers may hand in their own storage; *Dense is the stock implementation.
//
// Complexity notes: all methods are expected O(1) except the swaps, which
// are O(cols) and O(rows) respectively.
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if either index is invalid.
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if either index is invalid.
	Set(i, j int, v T) error

	// SwapRows exchanges rows i and j in place.
	SwapRows(i, j int) error

	// SwapCols exchanges columns i and j in place.
	SwapCols(i, j int) error
}
