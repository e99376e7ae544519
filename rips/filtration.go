// SPDX-License-Identifier: MIT
// Package: topolath/rips
//
// filtration.go: Vietoris–Rips filtrations over ascending thresholds.

package rips

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/topolath/matrix"
	"github.com/katalvlaran/topolath/simplicial"
)

const methodNewFiltration = "NewFiltration"

// NewFiltration builds one complex per threshold: the first from scratch,
// each later one by Step from its predecessor.
//
// Errors:
//   - ErrNoEpsilons, ErrBadEpsilon, ErrUnsortedEpsilons.
//   - any error of VietorisRips or Step.
func NewFiltration(dist *matrix.Dense[float64], epsilons []float64, opts ...Option) (*simplicial.Filtration[int], error) {
	if len(epsilons) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewFiltration, ErrNoEpsilons)
	}
	for i, eps := range epsilons {
		if math.IsNaN(eps) {
			return nil, fmt.Errorf("%s: epsilons[%d]: %w", methodNewFiltration, i, ErrBadEpsilon)
		}
		if i > 0 && eps < epsilons[i-1] {
			return nil, fmt.Errorf("%s: epsilons[%d]=%g < %g: %w",
				methodNewFiltration, i, eps, epsilons[i-1], ErrUnsortedEpsilons)
		}
	}
	cfg := newOptions(opts...)

	levels := make([]*simplicial.Complex[int], len(epsilons))
	var err error
	for i, eps := range epsilons {
		if i == 0 {
			levels[i], err = VietorisRips(dist, eps, opts...)
		} else {
			levels[i], err = Step(dist, eps, levels[i-1], opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: level %d: %w", methodNewFiltration, i, err)
		}
		cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "rips level",
			slog.Int("level", i), slog.Float64("eps", eps), slog.Int("simplices", levels[i].Len()))
	}

	return simplicial.NewFiltration(levels...)
}
