// SPDX-License-Identifier: MIT

// Package simplicial models abstract simplicial complexes over an ordered
// vertex type and computes their boundary operators and Betti numbers.
//
// What:
//
//   - Simplex[V]: an immutable, non-empty, strictly ascending vertex set.
//     Its dimension is the vertex count minus one.
//   - Complex[V]: an immutable ordered set of simplices plus the derived
//     vertex set. Simplices are kept in canonical order: lexicographic over
//     the sorted vertex sequences, a proper prefix sorting first.
//   - Solid(n) and Hollow(n): the full n-simplex on vertices 0..n and its
//     boundary sphere.
//   - Boundary(c, k, f): the matrix of ∂k from k-chains to (k-1)-chains
//     over a field f. Rows are (k-1)-simplices and columns are k-simplices,
//     both in canonical order. The entry for face t of s is (-1)^p, where p
//     is the position of the vertex of s missing from t.
//   - Betti(k): ncols(∂k) - rank(∂k) - rank(∂k+1), with ranks taken over
//     float64 at a fixed tolerance, or exactly over any field via BettiOver.
//   - Filtration[V]: an ordered sequence of nested complexes.
//
// Why:
//
//   - Boundary matrices are the bridge between combinatorics and linear
//     algebra. Every homological quantity here reduces to ranks of them.
//
// Ordering:
//
//   - All enumeration (Simplices, DimSimplices, Vertices, boundary rows and
//     columns) follows the canonical order, so results are deterministic.
//
// Complexity:
//
//   - Membership and insertion: O(log N · d) on the red-black tree backing
//     a Complex. Solid(n) is O(2^(n+1) · n).
//   - Boundary(k): O(|C_k| · (k+1) · log N). Betti(k): dominated by two
//     rank computations, O(r·c·min(r,c)) each.
//
// Errors:
//
//   - ErrEmptySimplex, ErrNegativeDimension, ErrHollowPoint,
//     ErrDimensionTooLarge, ErrNilComplex, ErrNotNested, ErrLevelOutOfRange.
package simplicial
