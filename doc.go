// Package topolath is an in-memory toolkit for computational topology:
// simplicial complexes, their boundary operators, Betti numbers, and
// Vietoris–Rips complexes built from point-cloud distances.
//
// What is in the box?
//
//   - field/      numeric fields: float64 reals with tolerance, exact
//     rationals, integers, and prime fields GF(p)
//   - matrix/     a generic row-major Dense[T] with field-aware Mul,
//     Transpose, Equal, numeric Rank and input validators
//   - reduce/     recorded elementary row/column operations and a
//     diagonalizing reducer with R·M·C = D
//   - simplicial/ Simplex, Complex, Solid/Hollow generators, boundary
//     matrices, Betti numbers, Euler characteristic, filtrations
//   - rips/       Vietoris–Rips construction, incremental Step,
//     filtrations over ascending thresholds, distance matrices
//   - cloud/      deterministic point clouds (circle, cube)
//
// Pipeline:
//
//	points ──rips.DistanceMatrix──▶ dist ──rips.VietorisRips(ε)──▶ Complex
//	Complex ──Boundary(k)──▶ ∂k ──Rank──▶ β_k = ncols(∂k) − rank ∂k − rank ∂k+1
//
// Quick example, a hexagon at ε = 1.2 is a loop:
//
//	pts, _ := cloud.Circle(6)
//	dist, _ := rips.DistanceMatrix(pts)
//	c, _ := rips.VietorisRips(dist, 1.2)
//	b, _ := c.BettiNumbers() // [1 1]
//
//	go get github.com/katalvlaran/topolath
package topolath
