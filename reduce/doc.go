// Package reduce implements the algebra of elementary row/column operations
// and a diagonalizing reducer built on it.
//
// An Op is one of Swap(i, j), Scale(i, λ) or Add(i, j, λ) (row/column i
// gains λ times row/column j). Each Op applies in place to any
// matrix.Matrix[T] as a row operation or a column operation, and has an
// exact inverse when λ is a unit. A Sequence is an ordered list of Ops; its
// inverse is the reversed list of inverted Ops.
//
// Diagonalize pivots a copy of the input to diagonal form, recording the
// row sequence R and column sequence C so that
//
//	R · input · C = result
//
// and the inverse sequences reconstruct the input from the result.
//
// Pivot selection takes the first nonzero entry of the trailing block in
// row-major order and normalizes it to one. Over a field (Reals, Rationals,
// ModP) this is a full diagonalization and Rank counts the pivots. It is not
// a gcd-minimizing integer Smith normal form: over field.Integers a pivot
// other than ±1 cannot be normalized and Diagonalize returns
// field.ErrNotInvertible.
package reduce
