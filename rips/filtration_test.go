package rips_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/topolath/rips"
	"github.com/stretchr/testify/require"
)

// TestNewFiltration builds nested levels over the hexagon.
func TestNewFiltration(t *testing.T) {
	dist := hexagon(t)
	f, err := rips.NewFiltration(dist, []float64{0.5, 1.2, 1.2, 1.8, 2.1}, rips.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 5, f.Len())

	b, err := f.BettiNumbers()
	require.NoError(t, err)
	require.Equal(t, [][]int{
		{6},
		{1, 1},
		{1, 1},
		{1, 0, 1},
		{1, 0, 0, 0, 0, 0},
	}, b)

	for i, eps := range []float64{0.5, 1.2, 1.8, 2.1} {
		want, err := rips.VietorisRips(dist, eps)
		require.NoError(t, err)
		idx := i
		if i > 1 {
			idx = i + 1
		}
		got, err := f.At(idx)
		require.NoError(t, err)
		require.True(t, want.Equal(got), "eps=%g", eps)
	}
}

// TestNewFiltrationErrors rejects empty, NaN and decreasing thresholds.
func TestNewFiltrationErrors(t *testing.T) {
	dist := hexagon(t)
	_, err := rips.NewFiltration(dist, nil)
	require.ErrorIs(t, err, rips.ErrNoEpsilons)
	_, err = rips.NewFiltration(dist, []float64{1, math.NaN()})
	require.ErrorIs(t, err, rips.ErrBadEpsilon)
	_, err = rips.NewFiltration(dist, []float64{1, 0.5})
	require.ErrorIs(t, err, rips.ErrUnsortedEpsilons)
}
