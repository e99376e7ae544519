// SPDX-License-Identifier: MIT
// Package: topolath/simplicial
//
// impl_betti.go: Betti numbers from boundary ranks.
//
// β_k = ncols(∂k) - rank(∂k) - rank(∂k+1), with rank of a zero-sized
// matrix taken as 0. For k above the top dimension every term is zero.

package simplicial

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
	"github.com/katalvlaran/topolath/reduce"
)

const (
	methodBetti     = "Betti"
	methodBettiOver = "BettiOver"
)

// Betti returns β_k computed from float64 boundary matrices with the rank
// tolerance from opts (DefaultTolerance otherwise).
//
// Errors:
//   - ErrNegativeDimension for k < 0.
//
// Complexity:
//   - Two numeric ranks, O(r·c·min(r,c)) each.
func (c *Complex[V]) Betti(k int, opts ...Option) (int, error) {
	cfg := newOptions(opts...)

	return c.betti(k, cfg)
}

func (c *Complex[V]) betti(k int, cfg options) (int, error) {
	if k < 0 {
		return 0, fmt.Errorf("%s(%d): %w", methodBetti, k, ErrNegativeDimension)
	}
	rank := func(d int) (int, int, error) {
		m, err := Boundary[V, float64](c, d, field.Float64)
		if err != nil {
			return 0, 0, err
		}
		r, err := matrix.Rank(m, cfg.tol)
		if err != nil {
			return 0, 0, err
		}

		return m.Cols(), r, nil
	}

	cols, rk, err := rank(k)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", methodBetti, k, err)
	}
	_, rk1, err := rank(k + 1)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", methodBetti, k, err)
	}
	b := cols - rk - rk1
	cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "betti",
		slog.Int("k", k), slog.Int("chains", cols),
		slog.Int("rank_k", rk), slog.Int("rank_k1", rk1), slog.Int("betti", b))

	return b, nil
}

// BettiNumbers returns β_0..β_Dim(). An empty complex yields [0].
func (c *Complex[V]) BettiNumbers(opts ...Option) ([]int, error) {
	cfg := newOptions(opts...)
	out := make([]int, c.Dim()+1)
	for k := range out {
		b, err := c.betti(k, cfg)
		if err != nil {
			return nil, err
		}
		out[k] = b
	}

	return out, nil
}

// BettiOver returns β_k with ranks computed exactly by diagonalizing the
// boundary matrices over f. Over field.GF2 this is mod-2 homology; over
// field.Q it agrees with Betti whenever the float path is well conditioned.
//
// Errors:
//   - ErrNilComplex, ErrNegativeDimension.
//   - field.ErrNotInvertible when f is not a field (field.Z with a non-unit pivot).
func BettiOver[V cmp.Ordered, T any](c *Complex[V], k int, f field.Field[T], opts ...Option) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("%s: %w", methodBettiOver, ErrNilComplex)
	}
	if k < 0 {
		return 0, fmt.Errorf("%s(%d): %w", methodBettiOver, k, ErrNegativeDimension)
	}
	cfg := newOptions(opts...)
	rank := func(d int) (int, int, error) {
		m, err := Boundary(c, d, f)
		if err != nil {
			return 0, 0, err
		}
		red, err := reduce.Diagonalize(f, m, reduce.WithLogger(cfg.logger))
		if err != nil {
			return 0, 0, err
		}

		return m.Cols(), red.Rank(), nil
	}

	cols, rk, err := rank(k)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", methodBettiOver, k, err)
	}
	_, rk1, err := rank(k + 1)
	if err != nil {
		return 0, fmt.Errorf("%s(%d): %w", methodBettiOver, k, err)
	}

	return cols - rk - rk1, nil
}
