// SPDX-License-Identifier: MIT

// Package sparse - matrix-vector products over stored entries.
//
// Purpose:
//   - Recommend: score vector sized len(vector).
//   - MulVec: textbook y = A·x with len(y) == Rows().
//
// Determinism:
//   - Both products accumulate in row-major entry order, so float rounding is
//     identical across runs for the same entry set.
//
// Policy:
//   - Products always return their errors; the lenient policy does not apply.

package sparse

import "fmt"

// Recommend computes the sparse product result[i] += v * vector[j] over every
// stored entry (i, j) → v.
//
// Implementation:
//   - Stage 1: ValidateVecLen(vector, Cols()).
//   - Stage 2: allocate result with len(vector) zeros.
//   - Stage 3: accumulate in row-major entry order, bounds-checking each entry.
//
// Behavior highlights:
//   - The result has len(vector) elements, which equals Cols(); for a
//     non-square matrix rows beyond that length are out of bounds.
//   - No side effects on m.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (len(vector) != Cols()),
//   - ErrIndexOutOfBounds (entry row ≥ len(result) or col ≥ len(vector), or
//     negative coordinates stored under WithNegativeIndices),
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz log nnz + len(vector)), Space O(len(vector) + nnz).
//
// AI-Hints:
//   - Use MulVec when the score vector must be indexed by row.
func (m *Matrix) Recommend(vector []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opRecommend, ErrNilMatrix)
	}
	if err := ValidateVecLen(vector, m.c); err != nil {
		return nil, matrixErrorf(opRecommend, err)
	}
	result := make([]float64, len(vector))
	if err := m.accumulate(result, vector); err != nil {
		return nil, matrixErrorf(opRecommend, err)
	}

	return result, nil
}

// MulVec computes y = m·x with len(y) == Rows().
//
// Implementation:
//   - Stage 1: ValidateVecLen(x, Cols()).
//   - Stage 2: allocate y with Rows() zeros and accumulate entries.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch, ErrIndexOutOfBounds (stored entry
//     outside the declared shape), ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz log nnz + Rows()), Space O(Rows() + nnz).
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make([]float64, m.r)
	if err := m.accumulate(y, x); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return y, nil
}

// accumulate adds v*x[col] into dst[row] for every entry.
// Entries whose row is outside dst or col outside x fail with ErrIndexOutOfBounds;
// dst may be partially written when that happens.
func (m *Matrix) accumulate(dst, x []float64) error {
	for _, e := range m.Entries() {
		if e.Row < 0 || e.Row >= len(dst) || e.Col < 0 || e.Col >= len(x) {
			return fmt.Errorf("entry (%d,%d): %w", e.Row, e.Col, ErrIndexOutOfBounds)
		}
		dst[e.Row] += e.Value * x[e.Col]
	}

	return nil
}
