// SPDX-License-Identifier: MIT
// Package: topolath/reduce
//
// options.go: functional options for Diagonalize.

package reduce

import "log/slog"

const panicNilLogger = "reduce: WithLogger(nil)"

// Option customizes a Diagonalize call.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes pivot-level debug records to logger.
// Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}
	return func(o *options) {
		o.logger = logger
	}
}

// newOptions resolves defaults then applies opts in order (last wins).
func newOptions(opts ...Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
