// SPDX-License-Identifier: MIT
// Package: topolath/cloud
//
// generators.go: Circle and Cube.

package cloud

import (
	"fmt"
	"math"
)

// Circle returns n points at angles 2πi/n on the configured circle, each
// coordinate jittered by the configured noise.
//
// Errors:
//   - ErrTooFewPoints for n < 1.
//
// Complexity: O(n).
func Circle(n int, opts ...Option) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Circle(%d): %w", n, ErrTooFewPoints)
	}
	cfg := newConfig(opts...)
	out := make([][]float64, n)
	for i := range out {
		theta := 2 * math.Pi * float64(i) / float64(n)
		out[i] = []float64{
			cfg.jitter(cfg.cx + cfg.radius*math.Cos(theta)),
			cfg.jitter(cfg.cy + cfg.radius*math.Sin(theta)),
		}
	}

	return out, nil
}

// Cube returns n points drawn uniformly from [0, side]^d, then jittered.
//
// Errors:
//   - ErrTooFewPoints for n < 1, ErrBadDimension for d < 1.
//
// Complexity: O(n·d).
func Cube(n, d int, opts ...Option) ([][]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("Cube(%d, %d): %w", n, d, ErrTooFewPoints)
	}
	if d < 1 {
		return nil, fmt.Errorf("Cube(%d, %d): %w", n, d, ErrBadDimension)
	}
	cfg := newConfig(opts...)
	out := make([][]float64, n)
	for i := range out {
		p := make([]float64, d)
		for k := range p {
			p[k] = cfg.jitter(cfg.rng.Float64() * cfg.side)
		}
		out[i] = p
	}

	return out, nil
}
