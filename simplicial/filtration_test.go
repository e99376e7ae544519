package simplicial_test

import (
	"testing"

	"github.com/katalvlaran/topolath/simplicial"
	"github.com/stretchr/testify/require"
)

// TestFiltrationNesting accepts nested levels and rejects the rest.
func TestFiltrationNesting(t *testing.T) {
	h2, err := simplicial.Hollow(2)
	require.NoError(t, err)
	s2, err := simplicial.Solid(2)
	require.NoError(t, err)
	pts := mustLists(t, []int{0}, []int{1}, []int{2})

	f, err := simplicial.NewFiltration(pts, h2, s2)
	require.NoError(t, err)
	require.Equal(t, 3, f.Len())
	lvl, err := f.At(1)
	require.NoError(t, err)
	require.True(t, lvl.Equal(h2))
	require.Len(t, f.Levels(), 3)

	_, err = f.At(3)
	require.ErrorIs(t, err, simplicial.ErrLevelOutOfRange)
	require.ErrorContains(t, err, "Filtration.At(3)")

	b, err := f.BettiNumbers()
	require.NoError(t, err)
	require.Equal(t, [][]int{{3}, {1, 1}, {1, 0, 0}}, b)

	_, err = simplicial.NewFiltration(s2, h2)
	require.ErrorIs(t, err, simplicial.ErrNotNested)
	_, err = simplicial.NewFiltration(h2, nil)
	require.ErrorIs(t, err, simplicial.ErrNilComplex)

	empty, err := simplicial.NewFiltration[int]()
	require.NoError(t, err)
	require.Zero(t, empty.Len())
}
