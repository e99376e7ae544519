// SPDX-License-Identifier: MIT
// Package: topolath/field
//
// field.go: the Field[T] contract and helpers derived from it.

package field

// Field is the scalar contract consumed by the matrix, simplicial and reduce
// packages. Implementations must be pure: no operation mutates its inputs.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Add returns a + b.
	Add(a, b T) T
	// Neg returns -a.
	Neg(a T) T
	// Mul returns a * b.
	Mul(a, b T) T
	// Inv returns a⁻¹ or ErrNotInvertible.
	Inv(a T) (T, error)
	// Equal reports a == b (within tolerance for inexact fields).
	Equal(a, b T) bool
	// IsZero reports a == Zero() (within tolerance for inexact fields).
	IsZero(a T) bool
}

// Sub returns a - b in f.
func Sub[T any](f Field[T], a, b T) T {
	return f.Add(a, f.Neg(b))
}

// FromSign lifts an incidence sign into f: 0 → Zero, positive → One,
// negative → -One. Boundary coefficients only ever take these three values.
func FromSign[T any](f Field[T], s int) T {
	switch {
	case s > 0:
		return f.One()
	case s < 0:
		return f.Neg(f.One())
	default:
		return f.Zero()
	}
}

// FromInt embeds the integer n into f by double-and-add on One.
// Complexity: O(log |n|) field operations.
func FromInt[T any](f Field[T], n int) T {
	neg := n < 0
	if neg {
		n = -n
	}
	acc, base := f.Zero(), f.One()
	for n > 0 {
		if n&1 == 1 {
			acc = f.Add(acc, base)
		}
		base = f.Add(base, base)
		n >>= 1
	}
	if neg {
		return f.Neg(acc)
	}

	return acc
}
