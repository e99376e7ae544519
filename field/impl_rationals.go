// SPDX-License-Identifier: MIT
// Package: topolath/field

package field

import "math/big"

// Rationals is exact arithmetic over *big.Rat. A nil *big.Rat is read as 0.
// Every operation allocates its result; arguments are never mutated.
type Rationals struct{}

// Q is the shared Rationals instance.
var Q = Rationals{}

// Rat is a convenience constructor for a/b.
func Rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func (Rationals) Zero() *big.Rat { return new(big.Rat) }
func (Rationals) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(ratOrZero(a), ratOrZero(b)) }
func (Rationals) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(ratOrZero(a)) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(ratOrZero(a), ratOrZero(b)) }

// Inv returns 1/a, or ErrNotInvertible for zero.
func (q Rationals) Inv(a *big.Rat) (*big.Rat, error) {
	if q.IsZero(a) {
		return nil, ErrNotInvertible
	}

	return new(big.Rat).Inv(a), nil
}

func (Rationals) Equal(a, b *big.Rat) bool { return ratOrZero(a).Cmp(ratOrZero(b)) == 0 }
func (Rationals) IsZero(a *big.Rat) bool   { return a == nil || a.Sign() == 0 }
func (Rationals) String() string           { return "Q" }

var ratZero = new(big.Rat)

func ratOrZero(a *big.Rat) *big.Rat {
	if a == nil {
		return ratZero
	}

	return a
}
