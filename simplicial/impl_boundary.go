// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// impl_boundary.go: boundary operator matrices.
//
// Contract:
//   • Rows index the (k-1)-simplices and columns the k-simplices, both in
//     canonical order.
//   • Entry (t, s) is BoundaryCoeff lifted into the field: 0, One or -One.
//   • ∂0 is the 0×|C_0| zero map, so ncols(∂0) counts vertices.
//   • Facets missing from a non-closed complex have no row and are skipped.

package simplicial

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
)

const methodBoundary = "Boundary"

// Boundary returns the matrix of ∂k: C_k → C_{k-1} over f.
//
// Implementation:
//   - Stage 1: collect C_k (columns) and C_{k-1} (rows) in canonical order.
//   - Stage 2: for each column s and each facet t of s, locate t's row by
//     binary search and store (-1)^p.
//
// ∂0 has one column per 0-simplex, not per entry of Vertices(). The two
// counts agree on closed complexes; on a non-closed one a vertex that only
// appears inside a higher simplex is not a 0-chain and gets no column.
//
// Errors:
//   - ErrNilComplex, ErrNegativeDimension.
//
// Complexity:
//   - Time O(|C_k| · k · (k + log |C_{k-1}|)), Space O(|C_{k-1}| · |C_k|).
func Boundary[V cmp.Ordered, T any](c *Complex[V], k int, f field.Field[T]) (*matrix.Dense[T], error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", methodBoundary, ErrNilComplex)
	}
	if k < 0 {
		return nil, fmt.Errorf("%s(%d): %w", methodBoundary, k, ErrNegativeDimension)
	}
	cols := c.DimSimplices(k)
	if k == 0 {
		return matrix.NewDense(f, 0, len(cols))
	}
	rows := c.DimSimplices(k - 1)
	m, err := matrix.NewDense(f, len(rows), len(cols))
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", methodBoundary, k, err)
	}

	one, negOne := f.One(), f.Neg(f.One())
	for j, s := range cols {
		for p, t := range s.Facets() {
			i, ok := slices.BinarySearchFunc(rows, t, Compare[V])
			if !ok {
				continue
			}
			v := one
			if p%2 == 1 {
				v = negOne
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s(%d): %w", methodBoundary, k, err)
			}
		}
	}

	return m, nil
}

// Boundary returns ∂k over the integers.
func (c *Complex[V]) Boundary(k int) (*matrix.Dense[int64], error) {
	return Boundary[V, int64](c, k, field.Z)
}
