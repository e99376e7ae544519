// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// options.go: functional options for Betti computations.

package simplicial

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/topolath/matrix"
)

// DefaultTolerance is the absolute pivot threshold for float64 ranks.
const DefaultTolerance = matrix.DefaultRankTolerance

const (
	panicBadTolerance = "simplicial: WithTolerance: tol must be finite and >= 0"
	panicNilLogger    = "simplicial: WithLogger(nil)"
)

// Option customizes Betti, BettiNumbers and BettiOver.
type Option func(*options)

type options struct {
	tol    float64
	logger *slog.Logger
}

// WithTolerance sets the rank tolerance used by the float64 Betti path.
// Panics on a negative, NaN or infinite tolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicBadTolerance)
	}
	return func(o *options) {
		o.tol = tol
	}
}

// WithLogger receives one debug record per Betti number.
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts ...Option) options {
	o := options{tol: DefaultTolerance, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
