// SPDX-License-Identifier: MIT
// Package: topolath/reduce

package reduce

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
)

// Sequence is an ordered list of elementary operations applied in list order.
type Sequence[T any] struct {
	ops []Op[T]
}

// NewSequence returns a sequence holding ops in the given order.
func NewSequence[T any](ops ...Op[T]) *Sequence[T] {
	return &Sequence[T]{ops: append([]Op[T](nil), ops...)}
}

// Push appends op to the end of the sequence.
func (s *Sequence[T]) Push(op Op[T]) { s.ops = append(s.ops, op) }

// Len returns the number of operations.
func (s *Sequence[T]) Len() int { return len(s.ops) }

// Ops returns a copy of the operations in application order.
func (s *Sequence[T]) Ops() []Op[T] { return append([]Op[T](nil), s.ops...) }

// RowOp applies every operation, in order, to the rows of m.
// On error m reflects the operations applied before the failing one.
func (s *Sequence[T]) RowOp(f field.Field[T], m matrix.Matrix[T]) error {
	for i, op := range s.ops {
		if err := op.RowOp(f, m); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

// ColOp applies every operation, in order, to the columns of m.
func (s *Sequence[T]) ColOp(f field.Field[T], m matrix.Matrix[T]) error {
	for i, op := range s.ops {
		if err := op.ColOp(f, m); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	return nil
}

// Inv returns the reversed sequence of inverted operations, so that applying
// s and then s.Inv() is the identity transform.
func (s *Sequence[T]) Inv(f field.Field[T]) (*Sequence[T], error) {
	out := make([]Op[T], len(s.ops))
	for i, op := range s.ops {
		inv, err := op.Inv(f)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		out[len(s.ops)-1-i] = inv
	}

	return &Sequence[T]{ops: out}, nil
}

// RowMatrix materializes the sequence as the n×n matrix R with R·M equal to
// the sequence applied to M's rows (later operations multiply on the left).
func (s *Sequence[T]) RowMatrix(f field.Field[T], n int) (*matrix.Dense[T], error) {
	m, err := identity(f, n)
	if err != nil {
		return nil, err
	}
	if err = s.RowOp(f, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ColMatrix materializes the sequence as the n×n matrix C with M·C equal to
// the sequence applied to M's columns (later operations multiply on the right).
func (s *Sequence[T]) ColMatrix(f field.Field[T], n int) (*matrix.Dense[T], error) {
	m, err := identity(f, n)
	if err != nil {
		return nil, err
	}
	if err = s.ColOp(f, m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Sequence[T]) String() string {
	parts := make([]string, len(s.ops))
	for i, op := range s.ops {
		parts[i] = op.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}
