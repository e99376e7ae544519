// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// impl_generators.go: the standard simplex and its boundary.
//
// Solid(n) is built level by level: level 0 holds the n+1 vertices and each
// simplex of level k spawns one (k+1)-simplex per vertex larger than its
// last vertex. Every subset of {0..n} is therefore produced exactly once and
// no recursion is involved.

package simplicial

import "fmt"

const (
	methodSolid  = "Solid"
	methodHollow = "Hollow"

	// MaxGeneratedDim bounds Solid/Hollow: the full n-simplex has 2^(n+1)-1 faces.
	MaxGeneratedDim = 20
)

// Solid returns the full n-simplex on vertices 0..n with all of its faces.
//
// Errors:
//   - ErrNegativeDimension for n < 0.
//   - ErrDimensionTooLarge for n > MaxGeneratedDim.
//
// Complexity:
//   - Time O(2^(n+1) · n log), Space O(2^(n+1) · n).
func Solid(n int) (*Complex[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", methodSolid, n, ErrNegativeDimension)
	}
	if n > MaxGeneratedDim {
		return nil, fmt.Errorf("%s(%d): max %d: %w", methodSolid, n, MaxGeneratedDim, ErrDimensionTooLarge)
	}

	c := empty[int]()
	level := make([]Simplex[int], 0, n+1)
	for v := 0; v <= n; v++ {
		level = append(level, Simplex[int]{vs: []int{v}})
	}
	for len(level) > 0 {
		var next []Simplex[int]
		for _, s := range level {
			c.add(s)
			for v := s.vs[len(s.vs)-1] + 1; v <= n; v++ {
				next = append(next, s.AddVertex(v))
			}
		}
		level = next
	}

	return c, nil
}

// Hollow returns Solid(n) without its single top simplex {0..n}: the
// triangulated (n-1)-sphere.
//
// Errors:
//   - ErrHollowPoint for n < 1.
//   - ErrDimensionTooLarge for n > MaxGeneratedDim.
func Hollow(n int) (*Complex[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", methodHollow, n, ErrHollowPoint)
	}
	solid, err := Solid(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHollow, err)
	}
	top := make([]int, n+1)
	for i := range top {
		top[i] = i
	}

	return solid.Without(Simplex[int]{vs: top}), nil
}
