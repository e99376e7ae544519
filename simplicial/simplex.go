// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// simplex.go: the Simplex value type.
//
// Contract:
//   • A valid Simplex holds at least one vertex in strictly ascending order.
//   • The zero value is the invalid "no simplex"; it has Dim() == -1 and is
//     rejected by every Complex constructor.
//   • Simplices are values: no method mutates the receiver.

package simplicial

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

const methodNewSimplex = "NewSimplex"

// Simplex is a finite non-empty set of vertices, stored sorted and unique.
type Simplex[V cmp.Ordered] struct {
	vs []V
}

// NewSimplex sorts and deduplicates vs. Returns ErrEmptySimplex for no vertices.
// Complexity: O(n log n).
func NewSimplex[V cmp.Ordered](vs ...V) (Simplex[V], error) {
	if len(vs) == 0 {
		return Simplex[V]{}, fmt.Errorf("%s: %w", methodNewSimplex, ErrEmptySimplex)
	}
	out := slices.Clone(vs)
	slices.Sort(out)

	return Simplex[V]{vs: slices.Compact(out)}, nil
}

// MustSimplex is NewSimplex for literals. Panics on an empty vertex list.
func MustSimplex[V cmp.Ordered](vs ...V) Simplex[V] {
	s, err := NewSimplex(vs...)
	if err != nil {
		panic(err)
	}

	return s
}

// SimplexFromSeq collects the vertices yielded by seq into a simplex.
func SimplexFromSeq[V cmp.Ordered](seq iter.Seq[V]) (Simplex[V], error) {
	return NewSimplex(slices.Collect(seq)...)
}

// Dim returns the vertex count minus one.
func (s Simplex[V]) Dim() int { return len(s.vs) - 1 }

// Len returns the vertex count.
func (s Simplex[V]) Len() int { return len(s.vs) }

// Vertices returns a copy of the ascending vertex list.
func (s Simplex[V]) Vertices() []V { return slices.Clone(s.vs) }

// All yields the vertices in ascending order.
func (s Simplex[V]) All() iter.Seq[V] { return slices.Values(s.vs) }

// Contains reports whether v is a vertex of s.
// Complexity: O(log n).
func (s Simplex[V]) Contains(v V) bool {
	_, ok := slices.BinarySearch(s.vs, v)

	return ok
}

// IsFace reports whether s is a face of other, i.e. every vertex of s is a
// vertex of other. A simplex is a face of itself.
// Complexity: O(|s| + |other|) merge walk.
func (s Simplex[V]) IsFace(other Simplex[V]) bool {
	if len(s.vs) > len(other.vs) {
		return false
	}
	j := 0
	for _, v := range s.vs {
		for j < len(other.vs) && other.vs[j] < v {
			j++
		}
		if j == len(other.vs) || other.vs[j] != v {
			return false
		}
		j++
	}

	return true
}

// Codim returns s.Dim() - face.Dim(). It does not check that face is a face.
func (s Simplex[V]) Codim(face Simplex[V]) int { return s.Dim() - face.Dim() }

// BoundaryCoeff returns the incidence coefficient of face in ∂s:
// (-1)^p when face is s with the vertex at position p removed, and 0 when
// face is not a codimension-one face of s.
//
// Implementation:
//   - Stage 1: reject anything that is not one vertex shorter.
//   - Stage 2: walk both lists; the first position where they disagree is
//     the removed vertex, and the remaining tails must match exactly.
//
// Complexity: O(|s|).
func (s Simplex[V]) BoundaryCoeff(face Simplex[V]) int {
	if len(face.vs) == 0 || len(face.vs)+1 != len(s.vs) {
		return 0
	}
	p := 0
	for p < len(face.vs) && face.vs[p] == s.vs[p] {
		p++
	}
	if !slices.Equal(face.vs[p:], s.vs[p+1:]) {
		return 0
	}
	if p%2 == 0 {
		return 1
	}

	return -1
}

// Facets returns the codimension-one faces of s in the order of the removed
// vertex position (0 first). A 0-simplex has no facets.
func (s Simplex[V]) Facets() []Simplex[V] {
	if len(s.vs) < 2 {
		return nil
	}
	out := make([]Simplex[V], len(s.vs))
	for p := range s.vs {
		vs := make([]V, 0, len(s.vs)-1)
		vs = append(vs, s.vs[:p]...)
		vs = append(vs, s.vs[p+1:]...)
		out[p] = Simplex[V]{vs: vs}
	}

	return out
}

// AddVertex returns s ∪ {v}. The receiver is unchanged; adding an existing
// vertex returns an equal simplex.
func (s Simplex[V]) AddVertex(v V) Simplex[V] {
	i, ok := slices.BinarySearch(s.vs, v)
	if ok {
		return Simplex[V]{vs: slices.Clone(s.vs)}
	}

	return Simplex[V]{vs: slices.Insert(slices.Clone(s.vs), i, v)}
}

// Equal reports whether s and other have the same vertices.
func (s Simplex[V]) Equal(other Simplex[V]) bool { return slices.Equal(s.vs, other.vs) }

// Compare orders simplices lexicographically over their sorted vertices;
// a proper prefix sorts first.
func Compare[V cmp.Ordered](a, b Simplex[V]) int { return slices.Compare(a.vs, b.vs) }

// String renders s as "[v0 v1 ...]".
func (s Simplex[V]) String() string {
	parts := make([]string, len(s.vs))
	for i, v := range s.vs {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
