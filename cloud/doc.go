// SPDX-License-Identifier: MIT

// Package cloud generates small deterministic point clouds for building
// Vietoris–Rips complexes.
//
//   - Circle(n): n points evenly spaced on a circle, optionally jittered.
//   - Cube(n, d): n points drawn uniformly from the d-dimensional cube.
//
// Every generator is reproducible: randomness comes from a seeded
// *rand.Rand (WithSeed, WithRand, or the package default seed), never from
// global state. Feed the result to rips.DistanceMatrix.
package cloud
