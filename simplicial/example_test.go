package simplicial_test

import (
	"fmt"

	"github.com/katalvlaran/topolath/simplicial"
)

// ExampleHollow computes the Betti numbers of the triangle boundary.
func ExampleHollow() {
	c, _ := simplicial.Hollow(2)
	fmt.Println(c)
	b, _ := c.BettiNumbers()
	fmt.Println("betti:", b, "euler:", c.Euler())
	// Output:
	// {[0] [0 1] [0 2] [1] [1 2] [2]}
	// betti: [1 1] euler: 0
}

// ExampleComplex_Boundary prints the signed incidence of edges on vertices.
func ExampleComplex_Boundary() {
	c, _ := simplicial.Solid(2)
	d1, _ := c.Boundary(1)
	fmt.Print(d1)
	// Output:
	// [-1, -1, 0]
	// [1, 0, -1]
	// [0, 1, 1]
}

// ExampleSimplex_BoundaryCoeff shows the alternating sign rule.
func ExampleSimplex_BoundaryCoeff() {
	s := simplicial.MustSimplex(0, 1, 2)
	for _, f := range s.Facets() {
		fmt.Println(f, s.BoundaryCoeff(f))
	}
	// Output:
	// [1 2] 1
	// [0 2] -1
	// [0 1] 1
}
