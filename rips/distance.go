// SPDX-License-Identifier: MIT
// Package: topolath/rips
//
// distance.go: Euclidean distance matrices from point clouds.

package rips

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/topolath/matrix"
)

const methodDistanceMatrix = "DistanceMatrix"

// DistanceMatrix returns the n×n Euclidean distance matrix of points.
// The result is exactly symmetric with a zero diagonal; no points yields 0×0.
//
// Errors:
//   - ErrRaggedPoints when points differ in dimension.
//   - matrix.ErrNaNInf for a non-finite coordinate.
//
// Complexity: O(n² · d).
func DistanceMatrix(points [][]float64) (*matrix.Dense[float64], error) {
	n := len(points)
	for i, p := range points {
		if len(p) != len(points[0]) {
			return nil, fmt.Errorf("%s: point %d has %d coordinates, want %d: %w",
				methodDistanceMatrix, i, len(p), len(points[0]), ErrRaggedPoints)
		}
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%s: point %d: %w", methodDistanceMatrix, i, matrix.ErrNaNInf)
			}
		}
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := range points[i] {
				diff := points[i][k] - points[j][k]
				sum += diff * diff
			}
			dij := math.Sqrt(sum)
			data[i*n+j] = dij
			data[j*n+i] = dij
		}
	}

	d, err := matrix.FromSeq(n, n, slices.Values(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDistanceMatrix, err)
	}

	return d, nil
}
