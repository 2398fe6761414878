// SPDX-License-Identifier: MIT

// Package sparse offers a coordinate-keyed sparse matrix for scoring and
// accumulating user/item weights.
//
// The sparse package provides:
//
//   - Matrix: a dictionary-of-keys store mapping (row, col) to non-zero
//     float64 values, with declared Rows/Cols that never change.
//   - Recommend and MulVec: sparse matrix-vector products over stored entries.
//   - AddMovie: in-place coordinate-wise accumulation of another EntrySource.
//   - ToDense, ToDenseFloat, ToDenseDeclared: dense materialization under the
//     bounding-box or declared shape.
//   - Transpose and Clone: independent copies of the entry set.
//   - A JSON wire codec (MarshalJSON, UnmarshalJSON, Decode).
//
// Error policy:
//
//	Every failure is a package sentinel (errors.go) wrapped with the operation
//	tag, so callers match with errors.Is. WithLenient switches Set, Get,
//	AddMovie and the dense views to log-and-recover through the configured
//	zerolog.Logger; products (Recommend, MulVec) always return their errors.
//
// Concurrency:
//
//	A *Matrix is not safe for concurrent use. Callers sharing one across
//	goroutines must serialize access themselves.
//
// Complexity quicksheet:
//   - Set/Get: O(1) average; Nnz: O(1).
//   - Recommend/MulVec/Entries/Do: O(nnz log nnz) (row-major ordering).
//   - AddMovie: O(nnz(other) log nnz(other)).
//   - ToDense*: O(nnz + R*C) for the materialized R×C grid.
//   - Transpose/Clone: O(nnz).
package sparse
