// SPDX-License-Identifier: MIT
// Package: topolath/cloud
//
// options.go: functional options for the generators.
//
// Option constructors validate and panic on meaningless input; generators
// themselves return errors.

package cloud

import (
	"math"
	"math/rand"
)

// Option customizes a generator.
type Option func(*config)

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// WithRadius sets the circle radius. Panics unless r > 0 and finite.
func WithRadius(r float64) Option {
	if !finite(r) || r <= 0 {
		panic("cloud: WithRadius(r<=0)")
	}
	return func(c *config) {
		c.radius = r
	}
}

// WithCenter sets the circle center. Panics on non-finite coordinates.
func WithCenter(x, y float64) Option {
	if !finite(x) || !finite(y) {
		panic("cloud: WithCenter(non-finite)")
	}
	return func(c *config) {
		c.cx, c.cy = x, y
	}
}

// WithSide sets the cube edge length. Panics unless s > 0 and finite.
func WithSide(s float64) Option {
	if !finite(s) || s <= 0 {
		panic("cloud: WithSide(s<=0)")
	}
	return func(c *config) {
		c.side = s
	}
}

// WithNoise adds Gaussian jitter with standard deviation sigma to every
// coordinate. Panics on sigma < 0.
func WithNoise(sigma float64) Option {
	if !finite(sigma) || sigma < 0 {
		panic("cloud: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noise = sigma
	}
}

// WithSeed seeds a fresh *rand.Rand.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cloud: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
