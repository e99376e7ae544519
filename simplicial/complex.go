// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// complex.go: the Complex container.
//
// Contract:
//   • A Complex is immutable once built; every "modifying" method returns a
//     new Complex. Concurrent readers are safe.
//   • Simplices are stored in a red-black tree ordered by Compare, so every
//     enumeration is in canonical order.
//   • Closure under faces is NOT enforced. IsClosed reports it.

package simplicial

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

const methodSkeleton = "Skeleton"

// Complex is an ordered set of simplices together with its vertex set.
type Complex[V cmp.Ordered] struct {
	simplices *treeset.Set // of Simplex[V], ordered by Compare
	vertices  *treeset.Set // of V, ascending
}

func simplexComparator[V cmp.Ordered](a, b interface{}) int {
	return Compare(a.(Simplex[V]), b.(Simplex[V]))
}

func vertexComparator[V cmp.Ordered](a, b interface{}) int {
	return cmp.Compare(a.(V), b.(V))
}

func empty[V cmp.Ordered]() *Complex[V] {
	return &Complex[V]{
		simplices: treeset.NewWith(simplexComparator[V]),
		vertices:  treeset.NewWith(vertexComparator[V]),
	}
}

// add inserts s and its vertices. Only constructors call it.
func (c *Complex[V]) add(s Simplex[V]) {
	if s.Len() == 0 {
		return
	}
	c.simplices.Add(s)
	for _, v := range s.vs {
		c.vertices.Add(v)
	}
}

// New returns the complex holding exactly the given simplices. Duplicates
// collapse; zero-value simplices are ignored.
// Complexity: O(N log N · d).
func New[V cmp.Ordered](simplices ...Simplex[V]) *Complex[V] {
	c := empty[V]()
	for _, s := range simplices {
		c.add(s)
	}

	return c
}

// FromSeq collects every simplex yielded by seq into a new complex.
func FromSeq[V cmp.Ordered](seq iter.Seq[Simplex[V]]) *Complex[V] {
	c := empty[V]()
	for s := range seq {
		c.add(s)
	}

	return c
}

// FromVertexLists builds one simplex per list. An empty list is ErrEmptySimplex.
func FromVertexLists[V cmp.Ordered](lists ...[]V) (*Complex[V], error) {
	c := empty[V]()
	for _, vs := range lists {
		s, err := NewSimplex(vs...)
		if err != nil {
			return nil, err
		}
		c.add(s)
	}

	return c, nil
}

// All yields the simplices in canonical order.
func (c *Complex[V]) All() iter.Seq[Simplex[V]] {
	return func(yield func(Simplex[V]) bool) {
		it := c.simplices.Iterator()
		for it.Next() {
			if !yield(it.Value().(Simplex[V])) {
				return
			}
		}
	}
}

// Simplices returns every simplex in canonical order.
func (c *Complex[V]) Simplices() []Simplex[V] {
	out := make([]Simplex[V], 0, c.simplices.Size())
	for s := range c.All() {
		out = append(out, s)
	}

	return out
}

// Vertices returns the vertex set in ascending order.
func (c *Complex[V]) Vertices() []V {
	out := make([]V, 0, c.vertices.Size())
	it := c.vertices.Iterator()
	for it.Next() {
		out = append(out, it.Value().(V))
	}

	return out
}

// Len returns the number of simplices.
func (c *Complex[V]) Len() int { return c.simplices.Size() }

// NumVertices returns the size of the vertex set.
func (c *Complex[V]) NumVertices() int { return c.vertices.Size() }

// Contains reports whether s is one of the simplices.
// Complexity: O(log N · d).
func (c *Complex[V]) Contains(s Simplex[V]) bool {
	if s.Len() == 0 {
		return false
	}

	return c.simplices.Contains(s)
}

// HasVertex reports whether v belongs to some simplex.
func (c *Complex[V]) HasVertex(v V) bool { return c.vertices.Contains(v) }

// IsSubcomplexOf reports whether every simplex of c is a simplex of other.
// A nil other contains nothing.
func (c *Complex[V]) IsSubcomplexOf(other *Complex[V]) bool {
	if other == nil {
		return c.Len() == 0
	}
	if c.Len() > other.Len() {
		return false
	}
	for s := range c.All() {
		if !other.Contains(s) {
			return false
		}
	}

	return true
}

// Equal reports whether c and other hold the same simplices.
func (c *Complex[V]) Equal(other *Complex[V]) bool {
	if other == nil {
		return false
	}

	return c.Len() == other.Len() && c.IsSubcomplexOf(other)
}

// DimSimplices returns the k-dimensional simplices in canonical order.
// An absent dimension yields an empty slice, never an error.
func (c *Complex[V]) DimSimplices(k int) []Simplex[V] {
	var out []Simplex[V]
	for s := range c.All() {
		if s.Dim() == k {
			out = append(out, s)
		}
	}

	return out
}

// DimCounts returns |C_k| for k = 0..Dim().
func (c *Complex[V]) DimCounts() []int {
	counts := make([]int, c.Dim()+1)
	for s := range c.All() {
		counts[s.Dim()]++
	}

	return counts
}

// Dim returns the largest simplex dimension, or 0 for an empty complex.
func (c *Complex[V]) Dim() int {
	d := 0
	for s := range c.All() {
		d = max(d, s.Dim())
	}

	return d
}

// Euler returns the Euler characteristic Σ (-1)^k |C_k|.
func (c *Complex[V]) Euler() int {
	chi := 0
	for s := range c.All() {
		if s.Dim()%2 == 0 {
			chi++
		} else {
			chi--
		}
	}

	return chi
}

// IsClosed reports whether every facet of every simplex is also a simplex.
func (c *Complex[V]) IsClosed() bool {
	for s := range c.All() {
		for _, t := range s.Facets() {
			if !c.Contains(t) {
				return false
			}
		}
	}

	return true
}

// Skeleton returns the subcomplex of simplices with dimension <= k.
func (c *Complex[V]) Skeleton(k int) (*Complex[V], error) {
	if k < 0 {
		return nil, fmt.Errorf("%s(%d): %w", methodSkeleton, k, ErrNegativeDimension)
	}
	out := empty[V]()
	for s := range c.All() {
		if s.Dim() <= k {
			out.add(s)
		}
	}

	return out, nil
}

// With returns a new complex holding c's simplices plus the given ones.
func (c *Complex[V]) With(simplices ...Simplex[V]) *Complex[V] {
	out := c.clone()
	for _, s := range simplices {
		out.add(s)
	}

	return out
}

// Without returns a new complex with the given simplices removed. The
// vertex set is recomputed from what remains.
func (c *Complex[V]) Without(simplices ...Simplex[V]) *Complex[V] {
	drop := New(simplices...)
	out := empty[V]()
	for s := range c.All() {
		if !drop.Contains(s) {
			out.add(s)
		}
	}

	return out
}

// Union returns the complex holding the simplices of both c and other.
func (c *Complex[V]) Union(other *Complex[V]) *Complex[V] {
	out := c.clone()
	if other != nil {
		for s := range other.All() {
			out.add(s)
		}
	}

	return out
}

func (c *Complex[V]) clone() *Complex[V] {
	out := empty[V]()
	for s := range c.All() {
		out.add(s)
	}

	return out
}

// String renders the simplices in canonical order: "{[0] [0 1] [1]}".
func (c *Complex[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for s := range c.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(s.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
