package matrix_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
)

// ExampleRank shows the numeric rank of a singular float matrix.
func ExampleRank() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{1, 0, 1},
	})
	r, _ := matrix.Rank(m, matrix.DefaultRankTolerance)
	fmt.Println("rank:", r)
	// Output:
	// rank: 2
}

// ExampleMul multiplies exact rationals.
func ExampleMul() {
	a, _ := matrix.FromRows([][]*big.Rat{{field.Rat(1, 2), field.Rat(1, 3)}})
	b, _ := matrix.FromRows([][]*big.Rat{{field.Rat(2, 1)}, {field.Rat(3, 1)}})
	p, _ := matrix.Mul[*big.Rat](field.Q, a, b)
	fmt.Print(matrix.Map(p, func(x *big.Rat) string { return x.RatString() }))
	// Output:
	// [2]
}
