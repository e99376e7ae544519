// SPDX-License-Identifier: MIT
// Package: topolath/rips
//
// options.go: functional options for VietorisRips, Step and NewFiltration.

package rips

import "log/slog"

const (
	// DefaultMaxDim leaves simplex dimension unbounded.
	DefaultMaxDim = -1

	// DefaultWorkers extends simplices sequentially.
	DefaultWorkers = 1
)

const (
	panicMaxDim  = "rips: WithMaxDim: dimension must be >= 0"
	panicWorkers = "rips: WithWorkers: workers must be >= 1"
	panicLogger  = "rips: WithLogger(nil)"
)

// Option customizes construction.
type Option func(*options)

type options struct {
	maxDim  int
	workers int
	logger  *slog.Logger
}

// WithMaxDim stops extension at dimension d: no simplex above d is built.
// Panics on d < 0.
func WithMaxDim(d int) Option {
	if d < 0 {
		panic(panicMaxDim)
	}
	return func(o *options) {
		o.maxDim = d
	}
}

// WithWorkers extends up to n simplices concurrently within a pass.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkers)
	}
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger receives one debug record per pass and per filtration level.
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLogger)
	}
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts ...Option) options {
	o := options{
		maxDim:  DefaultMaxDim,
		workers: DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
