// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Swap* return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); SwapRows: O(c); SwapCols: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/topolath/field"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewDense"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxSwapRows = "SwapRows"
	ctxSwapCols = "SwapCols"
	ctxFromSeq  = "FromSeq"
	ctxFromRows = "FromRows"
	ctxCopy     = "DenseOf"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T any] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[int64])(nil)
)

// NewDense creates an r×c matrix filled with f.Zero().
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and fill it with the field's zero.
//
// Behavior highlights:
//   - 0×n and n×0 are legal (boundary maps out of dimension 0 have no rows).
//   - The field's zero is used rather than Go's zero value, so *big.Rat
//     matrices never carry nil entries.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](f field.Field[T], rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxNew, rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	zero := f.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// FromSeq builds a rows×cols matrix from a flat row-major scalar iterator.
// The iterator must yield exactly rows*cols values; fewer or more is
// ErrDimensionMismatch. Iteration stops as soon as an extra value is seen.
// Complexity: O(r*c).
func FromSeq[T any](rows, cols int, seq iter.Seq[T]) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, denseErrorf(ctxFromSeq, rows, cols, ErrInvalidDimensions)
	}
	n := rows * cols
	buf := make([]T, 0, n)
	overflow := false
	for v := range seq {
		if len(buf) == n {
			overflow = true
			break
		}
		buf = append(buf, v)
	}
	if overflow || len(buf) != n {
		return nil, fmt.Errorf("%s: want %d values: %w", ctxFromSeq, n, ErrDimensionMismatch)
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows copies a rectangular [][]T into a new Dense.
// Ragged input is ErrDimensionMismatch; an empty slice yields a 0×0 matrix.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{}, nil
	}
	cols := len(rows[0])
	buf := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(row), cols, ErrDimensionMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: buf}, nil
}

// Identity returns the n×n identity over f.
func Identity[T any](f field.Field[T], n int) (*Dense[T], error) {
	m, err := NewDense(f, n, n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// DenseOf copies any Matrix[T] into a fresh Dense. A *Dense input is cloned
// directly; other implementations are read through At.
func DenseOf[T any](m Matrix[T]) (*Dense[T], error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxCopy, ErrNilMatrix)
	}
	if d, ok := m.(*Dense[T]); ok {
		if d == nil {
			return nil, fmt.Errorf("%s: %w", ctxCopy, ErrNilMatrix)
		}
		return d.Clone(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ctxCopy, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// The returned error carries the caller's method tag and coordinates.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SwapRows exchanges rows i and j. i == j is a no-op.
// Complexity: O(cols).
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i != j {
		m.swapRowData(i, j)
	}

	return nil
}

// swapRowData exchanges rows i and j; callers guarantee both are in range.
func (m *Dense[T]) swapRowData(i, j int) {
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// SwapCols exchanges columns i and j. i == j is a no-op.
// Complexity: O(rows).
func (m *Dense[T]) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return denseErrorf(ctxSwapCols, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	for r := 0; r < m.r; r++ {
		off := r * m.c
		m.data[off+i], m.data[off+j] = m.data[off+j], m.data[off+i]
	}

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// All iterates over every entry in row-major order.
func (m *Dense[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the matrix storage. Scalars themselves are
// shared, which is safe because field operations never mutate their inputs.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: buf}
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
