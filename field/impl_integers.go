// SPDX-License-Identifier: MIT
// Package: topolath/field

package field

// Integers is the exact ring Z over int64. It is not a field: Inv succeeds
// only for the units ±1. Boundary matrices are built over Z by default.
type Integers struct{}

// Z is the shared Integers instance.
var Z = Integers{}

func (Integers) Zero() int64          { return 0 }
func (Integers) One() int64           { return 1 }
func (Integers) Add(a, b int64) int64 { return a + b }
func (Integers) Neg(a int64) int64    { return -a }
func (Integers) Mul(a, b int64) int64 { return a * b }

// Inv returns a for a ∈ {1, -1}; every other integer is a non-unit.
func (Integers) Inv(a int64) (int64, error) {
	if a == 1 || a == -1 {
		return a, nil
	}

	return 0, ErrNotInvertible
}

func (Integers) Equal(a, b int64) bool { return a == b }
func (Integers) IsZero(a int64) bool   { return a == 0 }
func (Integers) String() string        { return "Z" }
