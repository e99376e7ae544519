// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math/big"
	"slices"
	"testing"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](field.Float64, -1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[float64](field.Float64, 5, -2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseZeroSized verifies that 0×n shapes are legal (boundary in dimension 0).
func TestNewDenseZeroSized(t *testing.T) {
	m, err := matrix.NewDense[int64](field.Z, 0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
	require.Equal(t, "", m.String())
}

// TestNewDenseUsesFieldZero ensures *big.Rat matrices never hold nil entries.
func TestNewDenseUsesFieldZero(t *testing.T) {
	m, err := matrix.NewDense[*big.Rat](field.Q, 2, 2)
	require.NoError(t, err)
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, 0, v.Sign())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[float64](field.Float64, 2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float64](field.Float64, 2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestFromSeq builds from a flat row-major iterator and rejects wrong lengths.
func TestFromSeq(t *testing.T) {
	m, err := matrix.FromSeq(2, 3, slices.Values([]int64{1, 2, 3, 4, 5, 6}))
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)

	_, err = matrix.FromSeq(2, 3, slices.Values([]int64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromSeq(1, 1, slices.Values([]int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromSeq(-1, 1, slices.Values([]int64{}))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromRows rejects ragged input and accepts an empty slice.
func TestFromRows(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.FromRows[float64](nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

// TestIdentity checks the diagonal and off-diagonal entries.
func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[int64](field.Z, 3)
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())
}

// TestSwapRowsCols exchanges rows and columns in place.
func TestSwapRowsCols(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, "[3, 4]\n[1, 2]\n", m.String())
	require.NoError(t, m.SwapCols(0, 1))
	require.Equal(t, "[4, 3]\n[2, 1]\n", m.String())
	require.NoError(t, m.SwapRows(1, 1))

	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapCols(-1, 0), matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)
}

// TestRowAndAll reads a row copy and iterates all entries.
func TestRowAndAll(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 4}, row)
	row[0] = 99
	v, _ := m.At(1, 0)
	require.Equal(t, int64(3), v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, []int64{1, 2, 3, 4}, slices.Collect(m.All()))
}

// TestDenseOfNil rejects nil inputs.
func TestDenseOfNil(t *testing.T) {
	_, err := matrix.DenseOf[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense[float64]
	_, err = matrix.DenseOf[float64](d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
