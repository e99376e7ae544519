// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// filtration.go: nested sequences of complexes.

package simplicial

import (
	"cmp"
	"fmt"
)

const (
	methodNewFiltration = "NewFiltration"
	methodFiltrationAt  = "Filtration.At"
)

// Filtration is an ordered sequence of complexes, each a subcomplex of the next.
type Filtration[V cmp.Ordered] struct {
	levels []*Complex[V]
}

// NewFiltration validates nesting and wraps levels. Zero levels is allowed.
//
// Errors:
//   - ErrNilComplex for a nil level.
//   - ErrNotNested when level i is not a subcomplex of level i+1.
func NewFiltration[V cmp.Ordered](levels ...*Complex[V]) (*Filtration[V], error) {
	for i, c := range levels {
		if c == nil {
			return nil, fmt.Errorf("%s: level %d: %w", methodNewFiltration, i, ErrNilComplex)
		}
		if i > 0 && !levels[i-1].IsSubcomplexOf(c) {
			return nil, fmt.Errorf("%s: level %d ⊄ level %d: %w", methodNewFiltration, i-1, i, ErrNotNested)
		}
	}

	return &Filtration[V]{levels: append([]*Complex[V](nil), levels...)}, nil
}

// Len returns the number of levels.
func (f *Filtration[V]) Len() int { return len(f.levels) }

// At returns level i.
func (f *Filtration[V]) At(i int) (*Complex[V], error) {
	if i < 0 || i >= len(f.levels) {
		return nil, fmt.Errorf("%s(%d) of %d: %w", methodFiltrationAt, i, len(f.levels), ErrLevelOutOfRange)
	}

	return f.levels[i], nil
}

// Levels returns the complexes in order. The complexes are shared; they are
// immutable.
func (f *Filtration[V]) Levels() []*Complex[V] { return append([]*Complex[V](nil), f.levels...) }

// BettiNumbers returns BettiNumbers() of every level.
func (f *Filtration[V]) BettiNumbers(opts ...Option) ([][]int, error) {
	out := make([][]int, len(f.levels))
	for i, c := range f.levels {
		b, err := c.BettiNumbers(opts...)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		out[i] = b
	}

	return out, nil
}
