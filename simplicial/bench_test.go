package simplicial_test

import (
	"testing"

	"github.com/katalvlaran/topolath/simplicial"
)

// BenchmarkSolid8 measures generating the 8-simplex (511 faces).
func BenchmarkSolid8(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := simplicial.Solid(8); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBettiHollow6 measures all Betti numbers of the 5-sphere.
func BenchmarkBettiHollow6(b *testing.B) {
	c, err := simplicial.Hollow(6)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.BettiNumbers(); err != nil {
			b.Fatal(err)
		}
	}
}
