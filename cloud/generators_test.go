package cloud_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/topolath/cloud"
	"github.com/stretchr/testify/require"
)

// TestCircleGeometry places points on the configured circle.
func TestCircleGeometry(t *testing.T) {
	pts, err := cloud.Circle(8, cloud.WithRadius(2), cloud.WithCenter(1, -1))
	require.NoError(t, err)
	require.Len(t, pts, 8)
	for _, p := range pts {
		require.Len(t, p, 2)
		require.InDelta(t, 2, math.Hypot(p[0]-1, p[1]+1), 1e-12)
	}
	require.InDelta(t, 3, pts[0][0], 1e-12)
	require.InDelta(t, -1, pts[0][1], 1e-12)
	require.InDelta(t, 1, pts[2][0], 1e-12)
	require.InDelta(t, 1, pts[2][1], 1e-12)
}

// TestCircleNoiseDeterministic repeats exactly under the same seed.
func TestCircleNoiseDeterministic(t *testing.T) {
	a, err := cloud.Circle(5, cloud.WithNoise(0.1), cloud.WithSeed(7))
	require.NoError(t, err)
	b, err := cloud.Circle(5, cloud.WithNoise(0.1), cloud.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := cloud.Circle(5, cloud.WithNoise(0.1), cloud.WithSeed(8))
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	plain, err := cloud.Circle(5)
	require.NoError(t, err)
	require.NotEqual(t, plain, a)
}

// TestCubeBounds keeps every coordinate inside [0, side].
func TestCubeBounds(t *testing.T) {
	pts, err := cloud.Cube(50, 3, cloud.WithSide(4), cloud.WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)
	require.Len(t, pts, 50)
	for _, p := range pts {
		require.Len(t, p, 3)
		for _, x := range p {
			require.GreaterOrEqual(t, x, 0.0)
			require.Less(t, x, 4.0)
		}
	}

	again, err := cloud.Cube(50, 3, cloud.WithSide(4), cloud.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, pts, again)
}

// TestGeneratorErrors rejects empty clouds and bad dimensions.
func TestGeneratorErrors(t *testing.T) {
	_, err := cloud.Circle(0)
	require.ErrorIs(t, err, cloud.ErrTooFewPoints)
	_, err = cloud.Cube(0, 2)
	require.ErrorIs(t, err, cloud.ErrTooFewPoints)
	_, err = cloud.Cube(3, 0)
	require.ErrorIs(t, err, cloud.ErrBadDimension)
}

// TestOptionPanics surfaces programmer errors at option construction.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { cloud.WithRadius(0) })
	require.Panics(t, func() { cloud.WithSide(-1) })
	require.Panics(t, func() { cloud.WithNoise(-0.5) })
	require.Panics(t, func() { cloud.WithCenter(math.NaN(), 0) })
	require.Panics(t, func() { cloud.WithRand(nil) })
}
