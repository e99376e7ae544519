// SPDX-License-Identifier: MIT
// Package: topolath/cloud
//
// config.go: generator configuration and deterministic defaults.
//
// Deterministic defaults:
//   • radius = 1, center = (0, 0)
//   • side   = 1 (Cube spans [0, side]^d)
//   • noise  = 0
//   • rng    = rand.New(rand.NewSource(DefaultSeed))

package cloud

import "math/rand"

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

const (
	defaultRadius = 1.0
	defaultSide   = 1.0
	defaultNoise  = 0.0
)

// config aggregates all generator knobs. Passed by value.
type config struct {
	radius float64
	cx, cy float64
	side   float64
	noise  float64
	rng    *rand.Rand
}

// newConfig applies opts over the defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		radius: defaultRadius,
		side:   defaultSide,
		noise:  defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// jitter returns x plus Gaussian noise of the configured sigma.
func (c config) jitter(x float64) float64 {
	if c.noise == 0 {
		return x
	}

	return x + c.rng.NormFloat64()*c.noise
}
