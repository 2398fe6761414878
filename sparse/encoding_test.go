// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the JSON wire codec.

package sparse_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparserec/sparse"
)

// TestMarshalJSONRowMajor checks the exact wire output.
func TestMarshalJSONRowMajor(t *testing.T) {
	m := MustFill(t, MustMatrix(t, 2, 3), e(1, 0, 1), e(0, 1, 2.5))
	got, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"rows":2,"columns":3,"entries":[{"row":0,"col":1,"value":2.5},{"row":1,"col":0,"value":1}]}`,
		string(got))
}

// TestMarshalJSONEmptyAndNil ensures empty entries encode as [] and nil as null.
func TestMarshalJSONEmptyAndNil(t *testing.T) {
	got, err := json.Marshal(MustMatrix(t, 0, 0))
	require.NoError(t, err)
	require.JSONEq(t, `{"rows":0,"columns":0,"entries":[]}`, string(got))

	var m *sparse.Matrix
	got, err = m.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, "null", string(got))
}

// TestJSONRoundTrip ensures decode(encode(m)) stores the same entries and dims.
func TestJSONRoundTrip(t *testing.T) {
	m := recommendFixture(t)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	back, err := sparse.Decode(data)
	require.NoError(t, err)
	require.True(t, sparse.EqualEntries(m, back))
	require.Equal(t, m.Rows(), back.Rows())
	require.Equal(t, m.Cols(), back.Cols())
}

// TestUnmarshalZeroValueTarget ensures a plain json.Unmarshal target works.
func TestUnmarshalZeroValueTarget(t *testing.T) {
	var m sparse.Matrix
	err := json.Unmarshal([]byte(`{"rows":3,"columns":3,"entries":[{"row":1,"col":2,"value":3},{"row":0,"col":0,"value":0}]}`), &m)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 1, m.Nnz()) // zero value on the wire is not stored
	require.Equal(t, 3.0, MustGet(t, &m, 1, 2))
}

// TestDecodeInvalidIndex covers the decode boundary for indices.
func TestDecodeInvalidIndex(t *testing.T) {
	cases := map[string]string{
		"fractional row": `{"rows":2,"columns":2,"entries":[{"row":1.5,"col":0,"value":1}]}`,
		"string col":     `{"rows":2,"columns":2,"entries":[{"row":0,"col":"1","value":1}]}`,
		"missing col":    `{"rows":2,"columns":2,"entries":[{"row":0,"value":1}]}`,
		"null row":       `{"rows":2,"columns":2,"entries":[{"row":null,"col":0,"value":1}]}`,
		"exponent row":   `{"rows":2,"columns":2,"entries":[{"row":1e0,"col":0,"value":1}]}`,
		"negative row":   `{"rows":2,"columns":2,"entries":[{"row":-1,"col":0,"value":1}]}`,
	}
	for name, data := range cases {
		_, err := sparse.Decode([]byte(data))
		require.ErrorIs(t, err, sparse.ErrInvalidIndexType, name)
	}
}

// TestDecodeErrorNamesEntry ensures the failing entry is identified.
func TestDecodeErrorNamesEntry(t *testing.T) {
	_, err := sparse.Decode([]byte(`{"rows":2,"columns":2,"entries":[{"row":0,"col":0,"value":1},{"row":0,"col":0.5,"value":1}]}`))
	require.ErrorIs(t, err, sparse.ErrInvalidIndexType)
	require.Contains(t, err.Error(), "entries[1].col")
}

// TestDecodeNegativeAllowed ensures the index policy applies at decode time.
func TestDecodeNegativeAllowed(t *testing.T) {
	m, err := sparse.Decode([]byte(`{"rows":2,"columns":2,"entries":[{"row":-1,"col":0,"value":4}]}`),
		sparse.WithNegativeIndices())
	require.NoError(t, err)
	require.Equal(t, 4.0, MustGet(t, m, -1, 0))
}

// TestDecodeInvalidDimensions ensures negative dims are rejected.
func TestDecodeInvalidDimensions(t *testing.T) {
	_, err := sparse.Decode([]byte(`{"rows":-1,"columns":2,"entries":[]}`))
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

// TestDecodeSyntaxError ensures malformed JSON fails.
func TestDecodeSyntaxError(t *testing.T) {
	_, err := sparse.Decode([]byte(`{"rows":2,`))
	require.Error(t, err)
}

// TestDecodeIgnoresLenient ensures decoding always returns its errors.
func TestDecodeIgnoresLenient(t *testing.T) {
	_, err := sparse.Decode([]byte(`{"rows":1,"columns":1,"entries":[{"row":-3,"col":0,"value":1}]}`),
		sparse.WithLenient())
	require.ErrorIs(t, err, sparse.ErrInvalidIndexType)
}

// TestUnmarshalFailureKeepsContent ensures a failed decode leaves m untouched.
func TestUnmarshalFailureKeepsContent(t *testing.T) {
	m := MustFill(t, MustMatrix(t, 2, 2), e(1, 1, 7))
	err := m.UnmarshalJSON([]byte(`{"rows":5,"columns":5,"entries":[{"row":0,"col":0,"value":1},{"row":"x","col":0,"value":1}]}`))
	require.ErrorIs(t, err, sparse.ErrInvalidIndexType)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, []sparse.Entry{e(1, 1, 7)}, m.Entries())

	// A successful decode replaces everything.
	require.NoError(t, m.UnmarshalJSON([]byte(`{"rows":5,"columns":5,"entries":[{"row":4,"col":4,"value":1}]}`)))
	require.Equal(t, 5, m.Rows())
	require.Equal(t, []sparse.Entry{e(4, 4, 1)}, m.Entries())
}

// TestParseIndex exercises the private index parser directly.
func TestParseIndex(t *testing.T) {
	n, err := sparse.ExportedParseIndex(json.RawMessage(" 12 "))
	require.NoError(t, err)
	require.Equal(t, 12, n)

	n, err = sparse.ExportedParseIndex(json.RawMessage("-4"))
	require.NoError(t, err)
	require.Equal(t, -4, n) // sign policy is applied later by Set

	_, err = sparse.ExportedParseIndex(nil)
	require.ErrorIs(t, err, sparse.ErrInvalidIndexType)
	require.Contains(t, err.Error(), "missing index")
}
