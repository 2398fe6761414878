// SPDX-License-Identifier: MIT

// Package sparse - in-place accumulation and transposition.

package sparse

// AddMovie adds every entry of other into m coordinate-wise:
// m[r,c] = m.Get(r,c) + other[r,c], deleting cells whose sum is zero.
//
// Implementation:
//   - Stage 1: reject a nil source with ErrInvalidArgumentType.
//   - Stage 2: stage every sum, validating each against m's policy.
//   - Stage 3: write the staged sums.
//
// Behavior highlights:
//   - Returns the receiver for chaining.
//   - Declared dims are NOT compared: entries merge by coordinate only, so
//     keeping shapes compatible is the caller's responsibility.
//   - Strict policy: all-or-nothing; on the first invalid entry nothing is
//     written and the error is returned.
//   - Lenient policy: invalid entries are logged and skipped; the rest merge.
//   - m.AddMovie(m) doubles every entry (the source is walked as a snapshot).
//
// Errors:
//   - ErrInvalidArgumentType (nil source), ErrInvalidIndexType / ErrNaNInf
//     (an entry or sum rejected by m's policy), ErrNilMatrix.
//
// Complexity:
//   - Time O(k log k) for k source entries, Space O(k).
func (m *Matrix) AddMovie(other EntrySource) (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opAddMovie, ErrNilMatrix)
	}
	m.init()
	if isNilSource(other) {
		err := matrixErrorf(opAddMovie, ErrInvalidArgumentType)
		if m.absorb(opAddMovie, err) {
			return m, nil
		}

		return m, err
	}

	// Pending sums shadow stored values so a source repeating a coordinate
	// still accumulates every occurrence.
	pending := make(map[Coord]float64)
	order := make([]Coord, 0)
	var firstErr error
	other.Do(func(row, col int, v float64) bool {
		k := Coord{Row: row, Col: col}
		base, seen := pending[k]
		if !seen {
			base = m.entries[k]
		}
		sum := base + v
		if err := m.check(row, col, sum); err != nil {
			err = matrixErrorf(opAddMovie, err)
			if m.absorbAt(opAddMovie, row, col, err) {
				return true // skip this entry, keep merging
			}
			firstErr = err

			return false
		}
		if !seen {
			order = append(order, k)
		}
		pending[k] = sum

		return true
	})
	if firstErr != nil {
		return m, firstErr
	}
	for _, k := range order {
		m.put(k.Row, k.Col, pending[k])
	}

	return m, nil
}

// isNilSource reports a nil interface or a typed nil *Matrix.
func isNilSource(src EntrySource) bool {
	if src == nil {
		return true
	}
	if mm, ok := src.(*Matrix); ok && mm == nil {
		return true
	}

	return false
}

// Transpose returns a new matrix whose entries are (col, row) → v for every
// stored (row, col) → v. The receiver is not mutated.
//
// Behavior highlights:
//   - TransposeSwap (default): an r×c matrix yields a c×r transpose.
//   - TransposeKeep: the result keeps the receiver's r×c (legacy behavior).
//   - The result inherits m's policy.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func (m *Matrix) Transpose() (*Matrix, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	m.init()
	rows, cols := m.r, m.c
	if m.opts.transposeShape == TransposeSwap {
		rows, cols = m.c, m.r
	}
	t := newMatrix(rows, cols, m.opts, len(m.entries))
	for k, v := range m.entries {
		t.entries[Coord{Row: k.Col, Col: k.Row}] = v
	}

	return t, nil
}
