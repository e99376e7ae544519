package reduce_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
	"github.com/katalvlaran/topolath/reduce"
)

func randomDense(b *testing.B, n int) *matrix.Dense[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	m, err := matrix.NewDense[float64](field.Float64, n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rng.Float64())
		}
	}

	return m
}

// BenchmarkDiagonalize64 measures a dense 64×64 float reduction.
func BenchmarkDiagonalize64(b *testing.B) {
	m := randomDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reduce.Diagonalize[float64](field.Float64, m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSequenceRowMatrix measures materializing a recorded row sequence.
func BenchmarkSequenceRowMatrix(b *testing.B) {
	red, err := reduce.Diagonalize[float64](field.Float64, randomDense(b, 48))
	if err != nil {
		b.Fatal(err)
	}
	ops := red.RowOps()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ops.RowMatrix(field.Float64, 48); err != nil {
			b.Fatal(err)
		}
	}
}
