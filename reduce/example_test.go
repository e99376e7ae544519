package reduce_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
	"github.com/katalvlaran/topolath/reduce"
)

// ExampleDiagonalize reduces a singular rational matrix and reports its rank.
func ExampleDiagonalize() {
	m, _ := matrix.FromRows([][]*big.Rat{
		{field.Rat(1, 1), field.Rat(1, 1), field.Rat(0, 1)},
		{field.Rat(1, 1), field.Rat(1, 1), field.Rat(0, 1)},
		{field.Rat(0, 1), field.Rat(0, 1), field.Rat(1, 1)},
	})
	red, _ := reduce.Diagonalize[*big.Rat](field.Q, m)
	fmt.Println("rank:", red.Rank())
	fmt.Print(matrix.Map(red.Result(), func(x *big.Rat) string { return x.RatString() }))
	// Output:
	// rank: 2
	// [1, 0, 0]
	// [0, 1, 0]
	// [0, 0, 0]
}

// ExampleSequence_Inv undoes a pair of row operations.
func ExampleSequence_Inv() {
	m, _ := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	s := reduce.NewSequence(reduce.Swap[int64](0, 1), reduce.Add[int64](1, 0, -1))
	_ = s.RowOp(field.Z, m)
	fmt.Print(m)
	inv, _ := s.Inv(field.Z)
	_ = inv.RowOp(field.Z, m)
	fmt.Print(m)
	// Output:
	// [3, 4]
	// [-2, -2]
	// [1, 2]
	// [3, 4]
}
