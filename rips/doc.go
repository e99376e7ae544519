// SPDX-License-Identifier: MIT

// Package rips builds Vietoris–Rips complexes from a symmetric distance matrix.
//
// Given distances d and a threshold ε, two points are adjacent when
// d(i,j) <= ε, and the Vietoris–Rips complex is the clique complex of that
// graph: every set of pairwise adjacent points is a simplex.
//
// Construction is a fixpoint over passes:
//
//   - VietorisRips seeds one 0-simplex per point and, in each pass, extends
//     only the simplices of the current top dimension by every vertex
//     adjacent to all of theirs. It stops once a pass adds nothing.
//   - Step seeds with a prior complex (typically the result for a smaller
//     ε) and extends simplices of every dimension, since a larger threshold
//     can create new low-dimensional simplices too.
//   - NewFiltration chains Step over ascending thresholds.
//
// Extension within a pass is independent per simplex; WithWorkers fans it
// out over an errgroup. The merged result is identical to the sequential one.
//
// Complexity: one pass is O(|frontier| · n · d) adjacency checks plus the
// ordered-set merge; the pass count is bounded by the clique number.
package rips
