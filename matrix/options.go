// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon is the symmetry tolerance used by distance-matrix checks.
	DefaultEpsilon = 1e-9

	// DefaultRankTolerance is the absolute pivot threshold used by Rank when
	// callers do not choose one. Entries with |x| <= tol count as zero.
	DefaultRankTolerance = 1e-5
)
