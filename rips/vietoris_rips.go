// SPDX-License-Identifier: MIT
// Package: topolath/rips
//
// vietoris_rips.go: clique-complex fixpoint.
//
// Contract:
//   • dist is square, finite and symmetric within matrix.DefaultEpsilon.
//   • Adjacency is d(i,j) <= ε for i != j; the diagonal is ignored.
//   • Inputs are never mutated; every result is a fresh immutable Complex.

package rips

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/topolath/matrix"
	"github.com/katalvlaran/topolath/simplicial"
)

const (
	methodVietorisRips = "VietorisRips"
	methodStep         = "Step"
)

// VietorisRips returns the Vietoris–Rips complex of dist at threshold eps.
//
// Implementation:
//   - Stage 1: validate dist and eps; build the boolean adjacency.
//   - Stage 2: seed with every 0-simplex and run passes that extend the
//     simplices of the current top dimension until nothing new appears.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
//     matrix.ErrAsymmetry, ErrBadEpsilon.
func VietorisRips(dist *matrix.Dense[float64], eps float64, opts ...Option) (*simplicial.Complex[int], error) {
	adj, err := adjacency(methodVietorisRips, dist, eps)
	if err != nil {
		return nil, err
	}
	cfg := newOptions(opts...)
	seed := make([]simplicial.Simplex[int], len(adj))
	for i := range seed {
		seed[i] = simplicial.MustSimplex(i)
	}
	b := &builder{adj: adj, cfg: cfg}

	return b.run(simplicial.New(seed...), seed)
}

// Step returns the Vietoris–Rips complex at eps, seeded with prior.
//
// prior is normally the complex for a smaller threshold on the same dist; any
// simplex of prior survives. Vertices missing from prior enter only through
// edges to vertices it has.
//
// Errors:
//   - as VietorisRips, plus ErrNilComplex and ErrVertexOutOfRange.
func Step(dist *matrix.Dense[float64], eps float64, prior *simplicial.Complex[int], opts ...Option) (*simplicial.Complex[int], error) {
	if prior == nil {
		return nil, fmt.Errorf("%s: %w", methodStep, ErrNilComplex)
	}
	adj, err := adjacency(methodStep, dist, eps)
	if err != nil {
		return nil, err
	}
	verts := prior.Vertices()
	if len(verts) > 0 && (verts[0] < 0 || verts[len(verts)-1] >= len(adj)) {
		return nil, fmt.Errorf("%s: vertices [%d, %d] with n=%d: %w",
			methodStep, verts[0], verts[len(verts)-1], len(adj), ErrVertexOutOfRange)
	}
	cfg := newOptions(opts...)
	b := &builder{adj: adj, cfg: cfg}

	return b.run(prior, prior.Simplices())
}

// adjacency validates inputs and returns adj[i][j] = i != j && d(i,j) <= eps.
func adjacency(method string, dist *matrix.Dense[float64], eps float64) ([][]bool, error) {
	if math.IsNaN(eps) {
		return nil, fmt.Errorf("%s: %w", method, ErrBadEpsilon)
	}
	if err := validateDistances(dist); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	n := dist.Rows()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	idx := 0
	for d := range dist.All() {
		i, j := idx/n, idx%n
		adj[i][j] = i != j && d <= eps
		idx++
	}

	return adj, nil
}

func validateDistances(dist *matrix.Dense[float64]) error {
	if err := matrix.ValidateNotNil[float64](dist); err != nil {
		return err
	}
	if err := matrix.ValidateSquare[float64](dist); err != nil {
		return err
	}
	if err := matrix.ValidateFinite(dist); err != nil {
		return err
	}

	return matrix.ValidateSymmetric(dist, matrix.DefaultEpsilon)
}

// builder runs the extension passes for one threshold.
type builder struct {
	adj [][]bool
	cfg options
}

// run extends frontier until a pass adds no simplex. Simplices added by a
// pass form the next frontier; older simplices cannot gain anything new
// under a fixed adjacency.
func (b *builder) run(current *simplicial.Complex[int], frontier []simplicial.Simplex[int]) (*simplicial.Complex[int], error) {
	frontier = b.belowCap(frontier)
	for pass := 0; len(frontier) > 0; pass++ {
		found, err := b.extendAll(frontier)
		if err != nil {
			return nil, err
		}
		var added []simplicial.Simplex[int]
		for s := range simplicial.New(found...).All() {
			if !current.Contains(s) {
				added = append(added, s)
			}
		}
		b.cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "rips pass",
			slog.Int("pass", pass), slog.Int("frontier", len(frontier)),
			slog.Int("added", len(added)), slog.Int("total", current.Len()+len(added)))
		if len(added) == 0 {
			break
		}
		current = current.With(added...)
		frontier = added
	}

	return current, nil
}

// belowCap drops seed simplices already at the dimension cap.
func (b *builder) belowCap(seed []simplicial.Simplex[int]) []simplicial.Simplex[int] {
	out := make([]simplicial.Simplex[int], 0, len(seed))
	for _, s := range seed {
		if b.cfg.maxDim < 0 || s.Dim() < b.cfg.maxDim {
			out = append(out, s)
		}
	}

	return out
}

// extendAll computes the one-vertex extensions of every frontier simplex,
// fanning out over up to cfg.workers goroutines.
func (b *builder) extendAll(frontier []simplicial.Simplex[int]) ([]simplicial.Simplex[int], error) {
	results := make([][]simplicial.Simplex[int], len(frontier))
	if b.cfg.workers <= 1 {
		for i, s := range frontier {
			results[i] = b.extend(s)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(b.cfg.workers)
		for i, s := range frontier {
			g.Go(func() error {
				results[i] = b.extend(s)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	var out []simplicial.Simplex[int]
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}

// extend returns s ∪ {v} for every v adjacent to all vertices of s, unless
// s is already at the dimension cap.
func (b *builder) extend(s simplicial.Simplex[int]) []simplicial.Simplex[int] {
	if b.cfg.maxDim >= 0 && s.Dim() >= b.cfg.maxDim {
		return nil
	}
	vs := s.Vertices()
	var out []simplicial.Simplex[int]
	for v := range b.adj {
		ok := true
		for _, u := range vs {
			if !b.adj[v][u] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, s.AddVertex(v))
		}
	}

	return out
}
