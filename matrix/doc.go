// Package matrix provides the dense, row-major matrix type consumed by the
// boundary builder, the elementary-operation algebra and the diagonal reducer.
//
// The package provides:
//
//   - Matrix[T]: the mutable surface (Rows/Cols/At/Set/SwapRows/SwapCols)
//     that elementary operations mutate in place.
//   - Dense[T]: a generic row-major implementation with safe accessors,
//     constructors from a flat scalar iterator (FromSeq) or nested rows,
//     and Identity over any field.Field[T].
//   - Kernels: Mul, Transpose, Map, IsZero, Equal, plus Rank with an absolute
//     tolerance for float64 matrices.
//   - Validators for square/symmetric/finite distance matrices.
//
// Zero-sized shapes (0×n, n×0) are legal: the boundary map in dimension 0
// is a matrix with no rows. Rank of a zero-sized matrix is 0.
//
// Matrices here are meant for the small, dense incidence matrices of
// combinatorial complexes; no sparse encoding is attempted.
package matrix
