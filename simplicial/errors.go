// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// errors.go: sentinel errors for simplices, complexes and filtrations.

package simplicial

import "errors"

var (
	// ErrEmptySimplex indicates a simplex built from no vertices.
	ErrEmptySimplex = errors.New("simplicial: simplex has no vertices")

	// ErrNegativeDimension indicates a dimension argument below zero.
	ErrNegativeDimension = errors.New("simplicial: dimension must be >= 0")

	// ErrHollowPoint indicates Hollow(0): the boundary of a point is empty.
	ErrHollowPoint = errors.New("simplicial: hollow simplex needs dimension >= 1")

	// ErrDimensionTooLarge indicates a Solid/Hollow request whose face count
	// would not fit in memory.
	ErrDimensionTooLarge = errors.New("simplicial: dimension too large")

	// ErrNilComplex indicates a nil *Complex argument.
	ErrNilComplex = errors.New("simplicial: complex is nil")

	// ErrNotNested indicates filtration levels that are not subcomplexes of
	// their successors.
	ErrNotNested = errors.New("simplicial: filtration levels are not nested")

	// ErrLevelOutOfRange indicates a filtration index outside [0, Len()).
	ErrLevelOutOfRange = errors.New("simplicial: filtration level out of range")
)
