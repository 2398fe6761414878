// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single source of truth for index, vector and value checks.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//    with matrixErrorf/entryErrorf.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package sparse

import (
	"fmt"
	"math"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// entryErrorf wraps err with the method tag and the offending coordinates.
func entryErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// validateIndex checks the coordinate policy for Set/Get.
// Negative row or col fails with ErrInvalidIndexType unless allowNegative.
// Complexity: O(1).
func validateIndex(row, col int, allowNegative bool) error {
	if allowNegative {
		return nil
	}
	if row < 0 || col < 0 {
		return fmt.Errorf("negative indices are not allowed: %w", ErrInvalidIndexType)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// Returns ErrNilVector or ErrDimensionMismatch.
// Complexity: O(1).
//
// AI-Hints: Use before any product to avoid ad hoc length code.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return ErrNilVector
	}
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// validateInGrid checks 0 ≤ row < rows and 0 ≤ col < cols.
func validateInGrid(row, col, rows, cols int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return ErrIndexOutOfBounds
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
