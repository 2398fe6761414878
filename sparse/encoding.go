// SPDX-License-Identifier: MIT

// Package sparse - JSON wire codec.
//
// Wire format:
//
//	{"rows":3,"columns":4,"entries":[{"row":0,"col":0,"value":1}, ...]}
//
// Entries are emitted in row-major order. Decoding is the one boundary where
// an index can arrive as something other than an integer, so row/col are read
// raw and anything that is not an integral JSON number fails with
// ErrInvalidIndexType. Decoding always returns its errors, regardless of the
// lenient policy, and replaces the receiver's content only on success.

package sparse

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// wireEntry is the encoded form of one entry.
type wireEntry struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Value float64 `json:"value"`
}

// wireMatrix is the encoded form of a Matrix.
type wireMatrix struct {
	Rows    int         `json:"rows"`
	Columns int         `json:"columns"`
	Entries []wireEntry `json:"entries"`
}

// rawEntry defers index parsing so non-integral indices map to
// ErrInvalidIndexType rather than a generic JSON type error.
type rawEntry struct {
	Row   json.RawMessage `json:"row"`
	Col   json.RawMessage `json:"col"`
	Value float64         `json:"value"`
}

// rawMatrix mirrors wireMatrix with deferred entries.
type rawMatrix struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Entries []rawEntry `json:"entries"`
}

// MarshalJSON encodes m in the wire format (row-major entries).
func (m *Matrix) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	src := m.Entries()
	w := wireMatrix{Rows: m.r, Columns: m.c, Entries: make([]wireEntry, len(src))}
	for i, e := range src {
		w.Entries[i] = wireEntry{Row: e.Row, Col: e.Col, Value: e.Value}
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, matrixErrorf(opMarshal, err)
	}

	return b, nil
}

// UnmarshalJSON decodes the wire format into m.
//
// Implementation:
//   - Stage 1: decode the envelope; validate rows/columns >= 0.
//   - Stage 2: parse every row/col as an integer and apply it through the
//     strict Set kernel of a staging matrix that carries m's policy.
//   - Stage 3: swap the staged content into m.
//
// Behavior highlights:
//   - A zero-value Matrix target resolves the default policy.
//   - Zero values on the wire are accepted and simply not stored.
//
// Errors:
//   - ErrInvalidIndexType (non-integral or missing row/col, or negative under
//     the default policy), ErrInvalidDimensions, ErrNaNInf, JSON syntax errors.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	if m == nil {
		return matrixErrorf(opUnmarshal, ErrNilMatrix)
	}
	m.init()

	var raw rawMatrix
	if err := json.Unmarshal(data, &raw); err != nil {
		return matrixErrorf(opUnmarshal, err)
	}
	if raw.Rows < 0 || raw.Columns < 0 {
		return fmt.Errorf("%s: rows=%d columns=%d: %w", opUnmarshal, raw.Rows, raw.Columns, ErrInvalidDimensions)
	}

	staged := newMatrix(raw.Rows, raw.Columns, m.opts, len(raw.Entries))
	for i, re := range raw.Entries {
		row, err := parseIndex(re.Row)
		if err != nil {
			return fmt.Errorf("%s: entries[%d].row: %w", opUnmarshal, i, err)
		}
		col, err := parseIndex(re.Col)
		if err != nil {
			return fmt.Errorf("%s: entries[%d].col: %w", opUnmarshal, i, err)
		}
		if err = staged.set(row, col, re.Value); err != nil {
			return fmt.Errorf("%s: entries[%d]: %w", opUnmarshal, i, err)
		}
	}

	m.r, m.c, m.entries = staged.r, staged.c, staged.entries

	return nil
}

// parseIndex accepts only an integral JSON number literal.
func parseIndex(raw json.RawMessage) (int, error) {
	s := string(bytes.TrimSpace(raw))
	if s == "" || s == "null" {
		return 0, fmt.Errorf("missing index: %w", ErrInvalidIndexType)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index %s: %w", s, ErrInvalidIndexType)
	}

	return n, nil
}
