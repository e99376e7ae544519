package field_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/topolath/field"
	"github.com/stretchr/testify/require"
)

// TestRealsTolerance checks that IsZero/Equal honor the configured epsilon.
func TestRealsTolerance(t *testing.T) {
	r := field.NewReals(1e-6)
	require.True(t, r.IsZero(5e-7))
	require.False(t, r.IsZero(2e-6))
	require.True(t, r.Equal(1.0, 1.0+5e-7))

	exact := field.Reals{}
	require.False(t, exact.IsZero(1e-300))
}

// TestRealsInv covers the invertible and the zero case.
func TestRealsInv(t *testing.T) {
	inv, err := field.Float64.Inv(4)
	require.NoError(t, err)
	require.Equal(t, 0.25, inv)

	_, err = field.Float64.Inv(0)
	require.ErrorIs(t, err, field.ErrNotInvertible)
}

// TestNewRealsPanics ensures nonsensical tolerances fail fast.
func TestNewRealsPanics(t *testing.T) {
	require.Panics(t, func() { field.NewReals(-1) })
	require.Panics(t, func() { field.NewReals(math.NaN()) })
}

// TestRationalsExact verifies that 1/3 + 1/3 + 1/3 is exactly one.
func TestRationalsExact(t *testing.T) {
	q := field.Q
	third := field.Rat(1, 3)
	sum := q.Add(q.Add(third, third), third)
	require.True(t, q.Equal(sum, q.One()))

	inv, err := q.Inv(field.Rat(-2, 5))
	require.NoError(t, err)
	require.Equal(t, 0, inv.Cmp(big.NewRat(-5, 2)))

	_, err = q.Inv(q.Zero())
	require.ErrorIs(t, err, field.ErrNotInvertible)
	require.True(t, q.IsZero(nil))
}

// TestRationalsDoNotMutate confirms arguments are left untouched.
func TestRationalsDoNotMutate(t *testing.T) {
	a := field.Rat(1, 2)
	_ = field.Q.Add(a, a)
	_ = field.Q.Neg(a)
	require.Equal(t, 0, a.Cmp(big.NewRat(1, 2)))
}

// TestIntegersUnits checks that only ±1 invert in Z.
func TestIntegersUnits(t *testing.T) {
	for _, u := range []int64{1, -1} {
		inv, err := field.Z.Inv(u)
		require.NoError(t, err)
		require.Equal(t, field.Z.One(), field.Z.Mul(u, inv))
	}
	_, err := field.Z.Inv(2)
	require.ErrorIs(t, err, field.ErrNotInvertible)
}

// TestModP exercises arithmetic and inverses in GF(7).
func TestModP(t *testing.T) {
	f, err := field.NewModP(7)
	require.NoError(t, err)
	require.Equal(t, int64(7), f.Modulus())

	require.Equal(t, int64(1), f.Add(3, 5))
	require.Equal(t, int64(4), f.Neg(3))
	require.Equal(t, int64(6), f.Mul(3, 2))
	for a := int64(1); a < 7; a++ {
		inv, err := f.Inv(a)
		require.NoError(t, err)
		require.Equal(t, int64(1), f.Mul(a, inv), "a=%d", a)
	}
	_, err = f.Inv(14)
	require.ErrorIs(t, err, field.ErrNotInvertible)
	require.True(t, f.Equal(-1, 6))
}

// TestNewModPRejectsComposite checks modulus validation.
func TestNewModPRejectsComposite(t *testing.T) {
	for _, p := range []int64{-3, 0, 1, 4, 9, 1 << 40} {
		_, err := field.NewModP(p)
		require.ErrorIs(t, err, field.ErrNotPrime, "p=%d", p)
	}
}

// TestModPZeroValue keeps the unconfigured field from dividing by zero.
func TestModPZeroValue(t *testing.T) {
	var f field.ModP
	require.NotPanics(t, func() {
		require.Equal(t, int64(5), f.Add(2, 3))
		require.Equal(t, int64(-4), f.Neg(4))
		require.Equal(t, int64(6), f.Mul(2, 3))
		require.False(t, f.IsZero(1))
	})
	_, err := f.Inv(1)
	require.ErrorIs(t, err, field.ErrNotPrime)
}

// TestGF2 checks that 1 + 1 = 0 and -1 = 1 over Z/2.
func TestGF2(t *testing.T) {
	require.True(t, field.GF2.IsZero(field.GF2.Add(1, 1)))
	require.Equal(t, int64(1), field.GF2.Neg(1))
}

// TestFromSignAndInt lifts small integers into several fields.
func TestFromSignAndInt(t *testing.T) {
	require.Equal(t, 1.0, field.FromSign[float64](field.Float64, 1))
	require.Equal(t, -1.0, field.FromSign[float64](field.Float64, -1))
	require.Equal(t, 0.0, field.FromSign[float64](field.Float64, 0))
	require.Equal(t, int64(-1), field.FromSign[int64](field.Z, -1))

	require.Equal(t, int64(13), field.FromInt[int64](field.Z, 13))
	require.Equal(t, int64(-6), field.FromInt[int64](field.Z, -6))
	require.Equal(t, int64(1), field.FromInt[int64](field.GF2, 13))
	require.Equal(t, int64(0), field.FromInt[int64](field.Z, 0))
	require.True(t, field.Q.Equal(field.FromInt[*big.Rat](field.Q, 5), field.Rat(5, 1)))

	require.Equal(t, 2.5, field.Sub[float64](field.Float64, 4, 1.5))
}
