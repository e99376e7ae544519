// SPDX-License-Identifier: MIT
// Package: topolath/rips
//
// errors.go: sentinel errors for Vietoris–Rips construction.

package rips

import "errors"

var (
	// ErrBadEpsilon indicates a NaN threshold.
	ErrBadEpsilon = errors.New("rips: epsilon is NaN")

	// ErrVertexOutOfRange indicates a prior complex vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("rips: prior vertex outside distance matrix")

	// ErrNilComplex indicates a nil prior complex passed to Step.
	ErrNilComplex = errors.New("rips: prior complex is nil")

	// ErrNoEpsilons indicates an empty threshold list for NewFiltration.
	ErrNoEpsilons = errors.New("rips: no thresholds")

	// ErrUnsortedEpsilons indicates thresholds that decrease.
	ErrUnsortedEpsilons = errors.New("rips: thresholds must be non-decreasing")

	// ErrRaggedPoints indicates points of differing dimension.
	ErrRaggedPoints = errors.New("rips: points have differing dimensions")
)
