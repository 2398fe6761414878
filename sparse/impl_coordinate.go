// SPDX-License-Identifier: MIT

// Package sparse - coordinate (dictionary-of-keys) storage & safe accessors.
//
// Purpose:
//   - Keep only non-zero values in a map keyed by Coord.
//   - Guarantee safety at the public surface: Set/Get return errors instead of
//     panicking, or log and recover under the lenient policy.
//   - Keep traversal deterministic: every walk over entries is row-major.
//
// Complexity quicksheet:
//   - NewMatrix: O(1); Set/Get: O(1) average; Clone: O(nnz);
//     Entries/Do/String: O(nnz log nnz).

package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- operation tags ----------

const (
	opNew             = "NewMatrix"
	opSet             = "Set"
	opGet             = "Get"
	opRecommend       = "Recommend"
	opMulVec          = "MulVec"
	opAddMovie        = "AddMovie"
	opToDense         = "ToDense"
	opToDenseFloat    = "ToDenseFloat"
	opToDenseDeclared = "ToDenseDeclared"
	opTranspose       = "Transpose"
	opUnmarshal       = "UnmarshalJSON"
	opMarshal         = "MarshalJSON"
	opMerge           = "Merge"
)

// ZeroValue is the additive identity; storing it deletes the entry.
const ZeroValue = 0.0

// Matrix is a sparse coordinate matrix.
//   - r,c hold the declared dimensions (metadata, never used to bound Set/Get).
//   - entries holds only non-zero values.
//   - opts carries the resolved error/index/numeric/shape policy.
type Matrix struct {
	r, c    int               // declared row and column counts (>= 0)
	entries map[Coord]float64 // non-zero values keyed by coordinate
	opts    Options           // resolved policy
	ready   bool              // set by constructors; zero-value matrices resolve defaults lazily
}

// Compile-time assertions.
var (
	_ EntrySource  = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// NewMatrix creates an empty rows×cols sparse matrix.
//
// Implementation:
//   - Stage 1: validate rows >= 0 && cols >= 0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate the entry map.
//
// Behavior highlights:
//   - 0×0 is legal: declared dims never bound Set/Get.
//
// Errors:
//   - ErrInvalidDimensions (negative dims).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewMatrix(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNew, rows, cols, ErrInvalidDimensions)
	}

	return newMatrix(rows, cols, gatherOptions(opts...), 0), nil
}

// newMatrix builds a matrix with already-resolved options and a size hint.
func newMatrix(rows, cols int, o Options, hint int) *Matrix {
	return &Matrix{
		r:       rows,
		c:       cols,
		entries: make(map[Coord]float64, hint),
		opts:    o,
		ready:   true,
	}
}

// init resolves defaults for a zero-value Matrix (e.g. a json.Unmarshal target).
func (m *Matrix) init() {
	if m.ready {
		return
	}
	m.opts = defaultOptions()
	m.ready = true
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the declared column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// Nnz returns the number of stored (non-zero) entries.
func (m *Matrix) Nnz() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Options returns the resolved policy of m.
func (m *Matrix) Options() Options {
	m.init()

	return m.opts
}

// Set stores v at (row, col); v == 0 deletes the entry.
//
// Implementation:
//   - Stage 1: validate the coordinate policy and the numeric policy.
//   - Stage 2: delete on zero (no-op if absent), else insert/overwrite.
//
// Behavior highlights:
//   - Declared dims are not consulted; no resizing happens.
//   - Lenient policy: failures are logged and the call becomes a no-op.
//
// Errors:
//   - ErrInvalidIndexType (negative index, default policy),
//   - ErrNaNInf (non-finite v, default policy),
//   - ErrNilMatrix (nil receiver).
//
// Complexity:
//   - Time O(1) average, Space O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if m == nil {
		return matrixErrorf(opSet, ErrNilMatrix)
	}
	m.init()
	if err := m.set(row, col, v); err != nil {
		if m.absorbAt(opSet, row, col, err) {
			return nil
		}

		return err
	}

	return nil
}

// set is the strict kernel behind Set; callers decide on recovery.
func (m *Matrix) set(row, col int, v float64) error {
	if err := m.check(row, col, v); err != nil {
		return err
	}
	m.put(row, col, v)

	return nil
}

// check validates (row, col, v) against the policy without mutating m.
func (m *Matrix) check(row, col int, v float64) error {
	if err := validateIndex(row, col, m.opts.allowNegative); err != nil {
		return entryErrorf(opSet, row, col, err)
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return entryErrorf(opSet, row, col, ErrNaNInf)
	}

	return nil
}

// put writes an already-validated value, deleting on zero.
func (m *Matrix) put(row, col int, v float64) {
	k := Coord{Row: row, Col: col}
	if v == ZeroValue { // also catches -0
		delete(m.entries, k)

		return
	}
	if m.entries == nil {
		m.entries = make(map[Coord]float64)
	}
	m.entries[k] = v
}

// Get returns the value at (row, col), or 0 when nothing is stored there.
// Absence is never an error.
//
// Errors:
//   - ErrInvalidIndexType (negative index, default policy),
//   - ErrNilMatrix (nil receiver).
//
// Notes:
//   - Lenient policy: failures are logged and (0, nil) is returned.
//
// Complexity:
//   - Time O(1) average, Space O(1).
func (m *Matrix) Get(row, col int) (float64, error) {
	if m == nil {
		return ZeroValue, matrixErrorf(opGet, ErrNilMatrix)
	}
	m.init()
	v, err := m.get(row, col)
	if err != nil {
		if m.absorbAt(opGet, row, col, err) {
			return ZeroValue, nil
		}

		return ZeroValue, err
	}

	return v, nil
}

// get is the strict kernel behind Get.
func (m *Matrix) get(row, col int) (float64, error) {
	if err := validateIndex(row, col, m.opts.allowNegative); err != nil {
		return ZeroValue, entryErrorf(opGet, row, col, err)
	}

	return m.entries[Coord{Row: row, Col: col}], nil // nil map reads are legal
}

// Entries returns a row-major sorted copy of all stored entries.
// Complexity: O(nnz log nnz).
func (m *Matrix) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.Row, Col: k.Col, Value: v})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}

		return out[a].Col < out[b].Col
	})

	return out
}

// Do visits each stored entry in row-major order and calls f(row, col, v).
// Iteration runs over a snapshot, so f may mutate m (e.g. m.AddMovie(m)).
// Stops early when f returns false.
func (m *Matrix) Do(f func(row, col int, v float64) bool) {
	for _, e := range m.Entries() {
		if !f(e.Row, e.Col, e.Value) {
			return // early exit requested by caller
		}
	}
}

// Clone returns an independent copy with the same dims, entries and policy.
// Complexity: O(nnz).
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	m.init()
	cp := newMatrix(m.r, m.c, m.opts, len(m.entries))
	for k, v := range m.entries {
		cp.entries[k] = v
	}

	return cp
}

// String renders the declared shape followed by one "(row, col): value" line
// per entry in row-major order. Intended for logs and debugging.
func (m *Matrix) String() string {
	if m == nil {
		return "Matrix(nil)"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d, nnz=%d)\n", m.r, m.c, len(m.entries))
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, "(%d, %d): %g\n", e.Row, e.Col, e.Value)
	}

	return b.String()
}

// absorbAt logs err for a coordinate-level operation when lenient.
// It reports whether the caller should swallow err.
func (m *Matrix) absorbAt(op string, row, col int, err error) bool {
	if !m.opts.lenient {
		return false
	}
	m.opts.logger.Warn().
		Err(err).
		Str("op", op).
		Int("row", row).
		Int("col", col).
		Msg("sparse: recovered from invalid entry")

	return true
}

// absorb logs err for a whole-matrix operation when lenient.
func (m *Matrix) absorb(op string, err error) bool {
	if !m.opts.lenient {
		return false
	}
	m.opts.logger.Warn().
		Err(err).
		Str("op", op).
		Int("rows", m.r).
		Int("cols", m.c).
		Msg("sparse: recovered from failed operation")

	return true
}
