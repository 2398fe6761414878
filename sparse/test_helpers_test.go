// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the coordinate matrix.
//   • Keep all data finite and integral so float comparisons stay exact.

package sparse_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparserec/sparse"
)

// MustMatrix ALLOCATES an empty rows×cols *Matrix or fails the test.
func MustMatrix(t *testing.T, rows, cols int, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()
	m, err := sparse.NewMatrix(rows, cols, opts...)
	if err != nil {
		t.Fatalf("NewMatrix(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustFill SETS every entry on m or fails the test.
func MustFill(t *testing.T, m *sparse.Matrix, entries ...sparse.Entry) *sparse.Matrix {
	t.Helper()
	for _, e := range entries {
		if err := m.Set(e.Row, e.Col, e.Value); err != nil {
			t.Fatalf("Set(%d,%d,%g): %v", e.Row, e.Col, e.Value, err)
		}
	}

	return m
}

// MustGet READS (row, col) or fails the test.
func MustGet(t *testing.T, m *sparse.Matrix, row, col int) float64 {
	t.Helper()
	v, err := m.Get(row, col)
	if err != nil {
		t.Fatalf("Get(%d,%d): %v", row, col, err)
	}

	return v
}

// e is a compact Entry literal for fixtures.
func e(row, col int, v float64) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: v}
}

// recommendFixture is the 3×4 scenario whose Recommend([1,2,3,4]) is [13,8,6,0].
func recommendFixture(t *testing.T, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()

	return MustFill(t, MustMatrix(t, 3, 4, opts...),
		e(0, 0, 1), e(0, 3, 3),
		e(1, 1, 2), e(1, 3, 1),
		e(2, 0, 6),
	)
}

// captureLogger returns a JSON zerolog logger writing into the returned buffer.
func captureLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return zerolog.New(buf).Level(zerolog.DebugLevel), buf
}
