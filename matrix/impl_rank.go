// SPDX-License-Identifier: MIT

// Package matrix - numeric rank with an absolute tolerance.
//
// Rank runs Gaussian elimination with partial pivoting on a private copy.
// A column whose largest remaining |entry| is <= tol contributes no pivot.
// Near-singular inputs can be misclassified; callers that need exact ranks
// should diagonalize over an exact field instead (see package reduce).

package matrix

import (
	"fmt"
	"math"
)

const opRank = "Rank"

// Rank returns the numeric rank of m. A zero-sized matrix has rank 0.
//
// Implementation:
//   - Stage 1: validate tol (finite, >= 0) and entries (finite); copy m.
//   - Stage 2: for each column, pick the row with the largest |entry| among the
//     unpivoted rows; stop the column if it is <= tol; otherwise swap it up and
//     eliminate below.
//
// Errors:
//   - ErrNilMatrix, ErrBadTolerance, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Rank(m *Dense[float64], tol float64) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrNilMatrix)
	}
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, matrixErrorf(opRank, fmt.Errorf("tol=%g: %w", tol, ErrBadTolerance))
	}
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if m.r == 0 || m.c == 0 {
		return 0, nil
	}

	a := m.Clone()
	rows, cols := a.r, a.c
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		// Partial pivoting: largest magnitude in the remaining rows.
		best, bestAbs := rank, math.Abs(a.data[rank*cols+col])
		for i := rank + 1; i < rows; i++ {
			if v := math.Abs(a.data[i*cols+col]); v > bestAbs {
				best, bestAbs = i, v
			}
		}
		if bestAbs <= tol {
			continue
		}
		if best != rank {
			a.swapRowData(best, rank)
		}

		pivot := a.data[rank*cols+col]
		for i := rank + 1; i < rows; i++ {
			factor := a.data[i*cols+col] / pivot
			if factor == 0 {
				continue
			}
			for j := col; j < cols; j++ {
				a.data[i*cols+j] -= factor * a.data[rank*cols+j]
			}
		}
		rank++
	}

	return rank, nil
}
