// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Operations return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No operation panics on user input; panics
// are reserved for nonsensical Option values (programmer error).

package sparse

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency with the rest
// of the linear-algebra surface and to allow easy grepping across logs.
// Call sites wrap with matrixErrorf/entryErrorf; callers use errors.Is.

var (
	// ErrInvalidIndexType indicates a coordinate that is not a usable integer:
	// a non-integral row/col on the wire, or a negative row/col while the
	// negative-index policy is off.
	ErrInvalidIndexType = errors.New("matrix: row and column must be non-negative integers")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// declared number of columns.
	ErrDimensionMismatch = errors.New("matrix: vector length must match the number of columns")

	// ErrIndexOutOfBounds indicates a stored coordinate outside the allocated
	// result/vector of a product, or outside the grid of a dense view.
	ErrIndexOutOfBounds = errors.New("matrix: matrix indices out of bounds")

	// ErrInvalidArgumentType indicates that AddMovie received no usable
	// entry source (nil interface or nil *Matrix).
	ErrInvalidArgumentType = errors.New("matrix: input must be a sparse matrix")

	// ErrInvalidDimensions indicates negative declared dimensions.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNaNInf signals a NaN or ±Inf value while the finite-value policy is on.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilVector indicates a nil vector passed to a product.
	ErrNilVector = errors.New("matrix: nil vector")

	// ErrNilMatrix indicates a method call on a nil *Matrix.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDenseTooLarge indicates a dense view whose grid would exceed the
	// configured cell cap (see WithMaxDenseCells).
	ErrDenseTooLarge = errors.New("matrix: dense view exceeds the cell limit")
)
