// SPDX-License-Identifier: MIT
// Package matrix provides field-generic kernels over Matrix implementations:
// multiplication, transpose, element mapping and equality.
//
// Notes:
//   - All kernels validate first and return sentinels wrapped via matrixErrorf.
//   - *Dense operands take a flat-slice fast path; other Matrix values are read through At.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/topolath/field"
)

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opEqual     = "Equal"
	opIsZero    = "IsZero"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a·b over f.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols) with f.Zero().
//   - Stage 2: i-k-j accumulation; zero entries of a are skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul[T any](f field.Field[T], a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := DenseOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := DenseOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(f, da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var av T
	for i := 0; i < da.r; i++ {
		rowA := i * da.c
		rowR := i * db.c
		for k := 0; k < da.c; k++ {
			av = da.data[rowA+k]
			if f.IsZero(av) {
				continue // skip zero for performance
			}
			rowB := k * db.c
			for j := 0; j < db.c; j++ {
				res.data[rowR+j] = f.Add(res.data[rowR+j], f.Mul(av, db.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
func Transpose[T any](m Matrix[T]) (*Dense[T], error) {
	d, err := DenseOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense[T]{r: d.c, c: d.r, data: make([]T, len(d.data))}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// Map applies fn to every entry, producing a matrix of the same shape.
// Used to move a boundary matrix between coefficient fields (e.g. Z → R).
func Map[T, U any](m *Dense[T], fn func(T) U) *Dense[U] {
	out := &Dense[U]{r: m.r, c: m.c, data: make([]U, len(m.data))}
	for i, v := range m.data {
		out.data[i] = fn(v)
	}

	return out
}

// Equal reports whether a and b share a shape and agree entry-wise under f.
// A shape difference is reported as (false, nil); nil operands are an error.
func Equal[T any](f field.Field[T], a, b Matrix[T]) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if !f.Equal(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsZero reports whether every entry of m is zero under f.
// Zero-sized matrices are trivially zero.
func IsZero[T any](f field.Field[T], m Matrix[T]) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsZero, err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return false, matrixErrorf(opIsZero, err)
			}
			if !f.IsZero(v) {
				return false, nil
			}
		}
	}

	return true, nil
}
