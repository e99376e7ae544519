// SPDX-License-Identifier: MIT

// Package matrix: central validators. Every kernel validates through these
// so that the same sentinel is returned for the same violation everywhere.
package matrix

import (
	"fmt"
	"math"
)

const (
	valNotNil    = "ValidateNotNil"
	valSquare    = "ValidateSquare"
	valSymmetric = "ValidateSymmetric"
	valFinite    = "ValidateFinite"
	valMul       = "ValidateMulCompatible"
)

// validatorErrorf attaches a validator tag to a sentinel.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil catches both a nil interface and a typed-nil *Dense.
func isNil[T any](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense[T])

	return ok && d == nil
}

// ValidateNotNil returns ErrNilMatrix for a nil interface or nil *Dense.
func ValidateNotNil[T any](m Matrix[T]) error {
	if isNil(m) {
		return validatorErrorf(valNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrNonSquare unless Rows() == Cols().
func ValidateSquare[T any](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(valSquare, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateMulCompatible checks a.Cols() == b.Rows().
func ValidateMulCompatible[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(valMul, fmt.Errorf("%dx%d * %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
func ValidateFinite(m *Dense[float64]) error {
	if m == nil {
		return validatorErrorf(valFinite, ErrNilMatrix)
	}
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(valFinite, denseErrorf(ctxAt, idx/m.c, idx%m.c, ErrNaNInf))
		}
	}

	return nil
}

// ValidateSymmetric requires a square matrix with |m[i,j] - m[j,i]| <= eps.
// Complexity: O(n²/2).
func ValidateSymmetric(m *Dense[float64], eps float64) error {
	if m == nil {
		return validatorErrorf(valSymmetric, ErrNilMatrix)
	}
	if eps < 0 || math.IsNaN(eps) {
		return validatorErrorf(valSymmetric, ErrBadTolerance)
	}
	if err := ValidateSquare[float64](m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > eps {
				return validatorErrorf(valSymmetric, denseErrorf(ctxAt, i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}
