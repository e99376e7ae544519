// SPDX-License-Identifier: MIT
// Package: topolath/cloud
//
// errors.go: sentinel errors for point-cloud generators.

package cloud

import "errors"

var (
	// ErrTooFewPoints indicates n < 1.
	ErrTooFewPoints = errors.New("cloud: need at least one point")

	// ErrBadDimension indicates an ambient dimension d < 1.
	ErrBadDimension = errors.New("cloud: dimension must be >= 1")
)
