// SPDX-License-Identifier: MIT
// Package: topolath/field
//
// errors.go: sentinel errors for the field package.
// Callers match with errors.Is; context is attached by wrapping with %w.

package field

import "errors"

var (
	// ErrNotInvertible is returned by Inv when the scalar has no
	// multiplicative inverse (zero in a field, a non-unit in a ring).
	ErrNotInvertible = errors.New("field: scalar is not invertible")

	// ErrNotPrime indicates a modulus that is not a prime, either passed to
	// NewModP or left unset in a zero-value ModP.
	ErrNotPrime = errors.New("field: modulus is not prime")
)
