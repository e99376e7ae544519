// SPDX-License-Identifier: MIT
// Package: topolath/field
//
// impl_reals.go: float64 instantiation with an absolute tolerance.

package field

import (
	"math"
	"strconv"
)

// DefaultEpsilon is the tolerance carried by Float64. Entries with
// |x| <= DefaultEpsilon are treated as zero by the reducer.
const DefaultEpsilon = 1e-12

const panicRealsEpsilon = "field: NewReals: eps must be finite and non-negative"

// Float64 is the default floating instantiation used for rank/Betti work.
var Float64 = Reals{Eps: DefaultEpsilon}

// Reals is float64 arithmetic. Eps is the absolute tolerance used by IsZero
// and Equal; the zero value compares exactly.
type Reals struct {
	Eps float64
}

// NewReals returns Reals with the given tolerance.
// Panics on a negative or non-finite eps (programmer error).
func NewReals(eps float64) Reals {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicRealsEpsilon)
	}

	return Reals{Eps: eps}
}

func (Reals) Zero() float64            { return 0 }
func (Reals) One() float64             { return 1 }
func (Reals) Add(a, b float64) float64 { return a + b }
func (Reals) Neg(a float64) float64    { return -a }
func (Reals) Mul(a, b float64) float64 { return a * b }

// Inv returns 1/a, or ErrNotInvertible when a is zero within tolerance.
func (r Reals) Inv(a float64) (float64, error) {
	if r.IsZero(a) {
		return 0, ErrNotInvertible
	}

	return 1 / a, nil
}

// Equal reports |a-b| <= Eps.
func (r Reals) Equal(a, b float64) bool { return math.Abs(a-b) <= r.Eps }

// IsZero reports |a| <= Eps.
func (r Reals) IsZero(a float64) bool { return math.Abs(a) <= r.Eps }

func (r Reals) String() string { return "R(eps=" + strconv.FormatFloat(r.Eps, 'g', -1, 64) + ")" }
