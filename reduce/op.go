// SPDX-License-Identifier: MIT
// Package: topolath/reduce
//
// op.go: elementary operations.
//
// Contract:
//   • RowOp/ColOp mutate the caller's matrix in place and validate indices
//     first, so a failing call leaves the matrix untouched.
//   • Inv is exact for exact fields; for Reals it is exact up to rounding.
//   • Ops are values; applying one never changes the Op.

package reduce

import (
	"fmt"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
)

const (
	methodRowOp = "RowOp"
	methodColOp = "ColOp"
	methodInv   = "Inv"
)

// Kind tags the three elementary operations.
type Kind uint8

const (
	// KindSwap exchanges row/column I and J.
	KindSwap Kind = iota
	// KindScale multiplies row/column I by Lambda.
	KindScale
	// KindAdd replaces row/column I with itself plus Lambda times row/column J.
	KindAdd
)

func (k Kind) String() string {
	switch k {
	case KindSwap:
		return "Swap"
	case KindScale:
		return "Scale"
	case KindAdd:
		return "Add"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Op is a tagged elementary operation. J is unused by Scale; Lambda is
// unused by Swap.
type Op[T any] struct {
	Kind   Kind
	I, J   int
	Lambda T
}

// Swap exchanges row/column i and j.
func Swap[T any](i, j int) Op[T] { return Op[T]{Kind: KindSwap, I: i, J: j} }

// Scale multiplies row/column i by lambda. lambda must be a unit for the
// operation to be invertible.
func Scale[T any](i int, lambda T) Op[T] { return Op[T]{Kind: KindScale, I: i, Lambda: lambda} }

// Add replaces row/column i with row/column i + lambda·(row/column j).
func Add[T any](i, j int, lambda T) Op[T] { return Op[T]{Kind: KindAdd, I: i, J: j, Lambda: lambda} }

func (op Op[T]) String() string {
	switch op.Kind {
	case KindSwap:
		return fmt.Sprintf("Swap(%d,%d)", op.I, op.J)
	case KindScale:
		return fmt.Sprintf("Scale(%d,%v)", op.I, op.Lambda)
	case KindAdd:
		return fmt.Sprintf("Add(%d,%d,%v)", op.I, op.J, op.Lambda)
	default:
		return op.Kind.String()
	}
}

// checkIndices validates the indices the op touches against bound n.
func (op Op[T]) checkIndices(method string, n int) error {
	if op.I < 0 || op.I >= n {
		return fmt.Errorf("%s %v: index %d of %d: %w", method, op, op.I, n, matrix.ErrOutOfRange)
	}
	if op.Kind != KindScale && (op.J < 0 || op.J >= n) {
		return fmt.Errorf("%s %v: index %d of %d: %w", method, op, op.J, n, matrix.ErrOutOfRange)
	}

	return nil
}

// RowOp applies op to the rows of m in place.
// Complexity: O(cols).
func (op Op[T]) RowOp(f field.Field[T], m matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", methodRowOp, err)
	}
	if err := op.checkIndices(methodRowOp, m.Rows()); err != nil {
		return err
	}
	switch op.Kind {
	case KindSwap:
		return m.SwapRows(op.I, op.J)
	case KindScale:
		for c := 0; c < m.Cols(); c++ {
			if err := update(m, op.I, c, func(x T) T { return f.Mul(x, op.Lambda) }); err != nil {
				return err
			}
		}
	case KindAdd:
		for c := 0; c < m.Cols(); c++ {
			r, err := m.At(op.J, c)
			if err != nil {
				return err
			}
			if err = update(m, op.I, c, func(x T) T { return f.Add(x, f.Mul(r, op.Lambda)) }); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%s: %w", methodRowOp, ErrUnknownKind)
	}

	return nil
}

// ColOp applies op to the columns of m in place.
// Complexity: O(rows).
func (op Op[T]) ColOp(f field.Field[T], m matrix.Matrix[T]) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", methodColOp, err)
	}
	if err := op.checkIndices(methodColOp, m.Cols()); err != nil {
		return err
	}
	switch op.Kind {
	case KindSwap:
		return m.SwapCols(op.I, op.J)
	case KindScale:
		for r := 0; r < m.Rows(); r++ {
			if err := update(m, r, op.I, func(x T) T { return f.Mul(x, op.Lambda) }); err != nil {
				return err
			}
		}
	case KindAdd:
		for r := 0; r < m.Rows(); r++ {
			c, err := m.At(r, op.J)
			if err != nil {
				return err
			}
			if err = update(m, r, op.I, func(x T) T { return f.Add(x, f.Mul(c, op.Lambda)) }); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%s: %w", methodColOp, ErrUnknownKind)
	}

	return nil
}

// update rewrites m[i,j] with fn(m[i,j]).
func update[T any](m matrix.Matrix[T], i, j int, fn func(T) T) error {
	x, err := m.At(i, j)
	if err != nil {
		return err
	}

	return m.Set(i, j, fn(x))
}

// Inv returns the operation undoing op: Swap is self-inverse, Scale(i, λ)
// inverts to Scale(i, λ⁻¹) and Add(i, j, λ) to Add(i, j, -λ).
// A non-unit λ yields field.ErrNotInvertible.
func (op Op[T]) Inv(f field.Field[T]) (Op[T], error) {
	switch op.Kind {
	case KindSwap:
		return op, nil
	case KindScale:
		inv, err := f.Inv(op.Lambda)
		if err != nil {
			return Op[T]{}, fmt.Errorf("%s %v: %w", methodInv, op, err)
		}
		return Scale(op.I, inv), nil
	case KindAdd:
		return Add(op.I, op.J, f.Neg(op.Lambda)), nil
	default:
		return Op[T]{}, fmt.Errorf("%s: %w", methodInv, ErrUnknownKind)
	}
}

// RowMatrix returns the n×n matrix E with E·M equal to op applied to M's rows.
func (op Op[T]) RowMatrix(f field.Field[T], n int) (*matrix.Dense[T], error) {
	m, err := identity(f, n)
	if err != nil {
		return nil, err
	}
	if err = op.RowOp(f, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ColMatrix returns the n×n matrix E with M·E equal to op applied to M's columns.
func (op Op[T]) ColMatrix(f field.Field[T], n int) (*matrix.Dense[T], error) {
	m, err := identity(f, n)
	if err != nil {
		return nil, err
	}
	if err = op.ColOp(f, m); err != nil {
		return nil, err
	}

	return m, nil
}

func identity[T any](f field.Field[T], n int) (*matrix.Dense[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNegativeSize)
	}

	return matrix.Identity(f, n)
}
