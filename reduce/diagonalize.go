// SPDX-License-Identifier: MIT
// Package: topolath/reduce
//
// diagonalize.go: pivoting reducer with recorded transforms.
//
// State machine over pivot index k = 0 .. min(rows, cols)-1:
//   1. Search rows i >= k, columns j >= k (row-major) for the first nonzero.
//   2. None found: the trailing block is zero and so is every later block; stop.
//   3. Swap the entry to (k, k): row Swap(i, k) if i != k, column Swap(j, k) if j != k.
//   4. Normalize: row Scale(k, 1/pivot) unless the pivot already equals one.
//   5. Clear row k with column Add(l, k, -m[k,l]), then column k with row Add(l, k, -m[l,k]).
// Every applied operation is recorded; nothing else touches the working copy.

package reduce

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/topolath/field"
	"github.com/katalvlaran/topolath/matrix"
)

const methodDiagonalize = "Diagonalize"

// Reduction is the immutable outcome of Diagonalize.
type Reduction[T any] struct {
	f      field.Field[T]
	input  *matrix.Dense[T]
	result *matrix.Dense[T]
	rowOps *Sequence[T]
	colOps *Sequence[T]
	rank   int
}

// Diagonalize reduces a copy of m to diagonal form over f.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - field.ErrNotInvertible when a pivot cannot be normalized (non-unit over Z).
//
// Complexity:
//   - Time O(min(r,c) · r · c) field operations, Space O(r·c + #ops).
func Diagonalize[T any](f field.Field[T], m matrix.Matrix[T], opts ...Option) (*Reduction[T], error) {
	cfg := newOptions(opts...)
	input, err := matrix.DenseOf(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodDiagonalize, err)
	}
	red := &Reduction[T]{
		f:      f,
		input:  input,
		result: input.Clone(),
		rowOps: NewSequence[T](),
		colOps: NewSequence[T](),
	}
	rows, cols := input.Shape()
	n := min(rows, cols)

	for k := 0; k < n; k++ {
		i, j, found, err := red.firstNonZero(k)
		if err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", methodDiagonalize, k, err)
		}
		if !found {
			cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "trailing block is zero",
				slog.Int("step", k))
			break
		}
		if err = red.pivot(k, i, j); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", methodDiagonalize, k, err)
		}
		red.rank++
		cfg.logger.LogAttrs(context.Background(), slog.LevelDebug, "pivot",
			slog.Int("step", k), slog.Int("row", i), slog.Int("col", j),
			slog.Int("row_ops", red.rowOps.Len()), slog.Int("col_ops", red.colOps.Len()))
	}

	return red, nil
}

// firstNonZero scans the trailing block rows >= k, cols >= k in row-major order.
func (r *Reduction[T]) firstNonZero(k int) (int, int, bool, error) {
	rows, cols := r.result.Shape()
	for i := k; i < rows; i++ {
		for j := k; j < cols; j++ {
			v, err := r.result.At(i, j)
			if err != nil {
				return 0, 0, false, err
			}
			if !r.f.IsZero(v) {
				return i, j, true, nil
			}
		}
	}

	return 0, 0, false, nil
}

// pivot moves (i, j) to (k, k), normalizes it and clears row and column k.
func (r *Reduction[T]) pivot(k, i, j int) error {
	if i != k {
		if err := r.applyRow(Swap[T](i, k)); err != nil {
			return err
		}
	}
	if j != k {
		if err := r.applyCol(Swap[T](j, k)); err != nil {
			return err
		}
	}

	t, err := r.result.At(k, k)
	if err != nil {
		return err
	}
	if !r.f.Equal(t, r.f.One()) {
		inv, err := r.f.Inv(t)
		if err != nil {
			return fmt.Errorf("pivot %v: %w", t, err)
		}
		if err = r.applyRow(Scale(k, inv)); err != nil {
			return err
		}
	}

	rows, cols := r.result.Shape()
	for l := k + 1; l < cols; l++ {
		c, err := r.result.At(k, l)
		if err != nil {
			return err
		}
		if !r.f.IsZero(c) {
			if err = r.applyCol(Add(l, k, r.f.Neg(c))); err != nil {
				return err
			}
		}
	}
	for l := k + 1; l < rows; l++ {
		c, err := r.result.At(l, k)
		if err != nil {
			return err
		}
		if !r.f.IsZero(c) {
			if err = r.applyRow(Add(l, k, r.f.Neg(c))); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Reduction[T]) applyRow(op Op[T]) error {
	if err := op.RowOp(r.f, r.result); err != nil {
		return err
	}
	r.rowOps.Push(op)

	return nil
}

func (r *Reduction[T]) applyCol(op Op[T]) error {
	if err := op.ColOp(r.f, r.result); err != nil {
		return err
	}
	r.colOps.Push(op)

	return nil
}

// Input returns a copy of the matrix that was reduced.
func (r *Reduction[T]) Input() *matrix.Dense[T] { return r.input.Clone() }

// Result returns a copy of the diagonal matrix.
func (r *Reduction[T]) Result() *matrix.Dense[T] { return r.result.Clone() }

// RowOps returns a copy of the recorded row operations.
func (r *Reduction[T]) RowOps() *Sequence[T] { return NewSequence(r.rowOps.ops...) }

// ColOps returns a copy of the recorded column operations.
func (r *Reduction[T]) ColOps() *Sequence[T] { return NewSequence(r.colOps.ops...) }

// Rank is the number of pivots found. Over a field this is the rank of the input.
func (r *Reduction[T]) Rank() int { return r.rank }

// Diagonal returns result[k,k] for k < min(rows, cols).
func (r *Reduction[T]) Diagonal() []T {
	rows, cols := r.result.Shape()
	out := make([]T, 0, min(rows, cols))
	idx := 0
	for v := range r.result.All() {
		if i, j := idx/cols, idx%cols; i == j {
			out = append(out, v)
		}
		idx++
	}

	return out
}

// RowMatrix returns R (rows×rows) with R · input · ColMatrix() = result.
func (r *Reduction[T]) RowMatrix() (*matrix.Dense[T], error) {
	return r.rowOps.RowMatrix(r.f, r.input.Rows())
}

// ColMatrix returns C (cols×cols) with RowMatrix() · input · C = result.
func (r *Reduction[T]) ColMatrix() (*matrix.Dense[T], error) {
	return r.colOps.ColMatrix(r.f, r.input.Cols())
}

// InverseRowMatrix returns R⁻¹, built from the inverted row sequence.
func (r *Reduction[T]) InverseRowMatrix() (*matrix.Dense[T], error) {
	inv, err := r.rowOps.Inv(r.f)
	if err != nil {
		return nil, err
	}

	return inv.RowMatrix(r.f, r.input.Rows())
}

// InverseColMatrix returns C⁻¹, built from the inverted column sequence.
func (r *Reduction[T]) InverseColMatrix() (*matrix.Dense[T], error) {
	inv, err := r.colOps.Inv(r.f)
	if err != nil {
		return nil, err
	}

	return inv.ColMatrix(r.f, r.input.Cols())
}
