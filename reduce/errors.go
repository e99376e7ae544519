// SPDX-License-Identifier: MIT
// Package: topolath/reduce
//
// errors.go: sentinel errors for the reduce package.

package reduce

import "errors"

var (
	// ErrUnknownKind indicates an Op whose Kind is not Swap, Scale or Add.
	ErrUnknownKind = errors.New("reduce: unknown operation kind")

	// ErrNegativeSize indicates a negative identity size for RowMatrix/ColMatrix.
	ErrNegativeSize = errors.New("reduce: size must be >= 0")
)
