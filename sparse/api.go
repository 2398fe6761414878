// SPDX-License-Identifier: MIT
// Package sparse - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks (build, decode, merge, rank).
//   - Avoid logic duplication: each facade composes the canonical methods.
//
// AI-Hints:
//   - Merge leaves both inputs untouched; AddMovie mutates the receiver.
//   - TopN is the usual last step after Recommend.

package sparse

import (
	"math"
	"sort"
)

// FromEntries builds a rows×cols matrix and Sets every entry in order
// (later duplicates overwrite earlier ones; zero values delete).
// Under the default strict policy the first invalid entry aborts the build.
// Complexity: O(len(entries)).
func FromEntries(rows, cols int, entries []Entry, opts ...Option) (*Matrix, error) {
	m, err := NewMatrix(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Decode builds a matrix with the given policy from the JSON wire format.
func Decode(data []byte, opts ...Option) (*Matrix, error) {
	m := newMatrix(0, 0, gatherOptions(opts...), 0)
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}

	return m, nil
}

// Recommend is a function-style alias for m.Recommend(vector).
func Recommend(m *Matrix, vector []float64) ([]float64, error) {
	return m.Recommend(vector)
}

// Merge returns a new matrix holding a + b coordinate-wise.
// The result takes a's declared dims and policy; neither input is mutated.
// Complexity: O(nnz(a) + nnz(b) log nnz(b)).
func Merge(a, b *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opMerge, ErrNilMatrix)
	}
	out := a.Clone()
	if _, err := out.AddMovie(b); err != nil {
		return nil, matrixErrorf(opMerge, err)
	}

	return out, nil
}

// EqualEntries reports whether a and b store exactly the same coordinates
// and values. Declared dims and policy are ignored.
// Complexity: O(nnz).
func EqualEntries(a, b *Matrix) bool {
	if a.Nnz() != b.Nnz() {
		return false
	}
	if a == nil || b == nil {
		return a.Nnz() == 0 // both empty (nil counts as empty)
	}
	for k, v := range a.entries {
		if w, ok := b.entries[k]; !ok || w != v {
			return false
		}
	}

	return true
}

// TopN ranks scores by value (descending, ties by index ascending) and
// returns the first n. n <= 0 or n > len(scores) returns every component.
// NaN scores (possible under WithNoValidateNaNInf) rank after every number,
// in index order.
// Complexity: O(k log k) for k = len(scores).
//
// AI-Hints:
//   - Feed it the output of Recommend to get the best-scoring items.
func TopN(scores []float64, n int) []Score {
	ranked := make([]Score, len(scores))
	for i, s := range scores {
		ranked[i] = Score{Index: i, Score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return rankBefore(ranked[a], ranked[b])
	})
	if n <= 0 || n > len(ranked) {
		return ranked
	}

	return ranked[:n]
}

// rankBefore orders by score descending with NaN lowest, then by index.
func rankBefore(x, y Score) bool {
	xNaN, yNaN := math.IsNaN(x.Score), math.IsNaN(y.Score)
	switch {
	case xNaN != yNaN:
		return yNaN
	case !xNaN && x.Score != y.Score:
		return x.Score > y.Score
	}

	return x.Index < y.Index
}
