// Package matrix_test provides benchmarks for the dense kernels, using
// deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[float64]
	sinkI int
)

func fillRand(b *testing.B, n int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	m, err := matrix.NewDense[float64](field.Float64, n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rng.Float64())
		}
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := fillRand(b, n, 1337)
			B := fillRand(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul[float64](field.Float64, A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := fillRand(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.Rank(A, matrix.DefaultRankTolerance)
				if err != nil {
					b.Fatal(err)
				}
				sinkI = r
			}
		})
	}
}
