// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the container, its options and the
// facades. Errors and options live in dedicated files (errors.go, options.go).
package sparse

import (
	"fmt"
	"strings"
)

// Coord is a (row, col) key of the entry map.
// Using a small comparable struct keeps the key compact and hash-friendly.
type Coord struct {
	Row int // row index
	Col int // column index
}

// Entry is one stored (row, col) → value triple.
type Entry struct {
	Row   int     // row index
	Col   int     // column index
	Value float64 // non-zero stored value
}

// EntrySource is anything that can enumerate coordinate entries.
// AddMovie accepts it so that callers can merge matrices or ad-hoc adapters.
//
// Do must call f for every entry it holds and stop as soon as f returns false.
type EntrySource interface {
	Do(f func(row, col int, v float64) bool)
}

// Score is one ranked component of a Recommend result.
type Score struct {
	Index int     `json:"index"` // position in the score vector
	Score float64 `json:"score"` // accumulated weight
}

// TransposeShape selects the declared shape of a Transpose result.
type TransposeShape int

const (
	// TransposeSwap gives an r×c matrix a c×r transpose.
	TransposeSwap TransposeShape = iota

	// TransposeKeep keeps the receiver's declared r×c on the transpose
	// (legacy behavior; entries still swap coordinates).
	TransposeKeep
)

// transposeShapeNames maps policy values to their config spelling.
var transposeShapeNames = map[TransposeShape]string{
	TransposeSwap: "swap",
	TransposeKeep: "keep",
}

// String returns the config spelling ("swap" or "keep").
func (s TransposeShape) String() string {
	if name, ok := transposeShapeNames[s]; ok {
		return name
	}

	return fmt.Sprintf("TransposeShape(%d)", int(s))
}

// valid reports whether s is one of the declared policies.
func (s TransposeShape) valid() bool {
	_, ok := transposeShapeNames[s]

	return ok
}

// ParseTransposeShape converts "swap"/"keep" (case-insensitive) to a policy.
func ParseTransposeShape(s string) (TransposeShape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "swap":
		return TransposeSwap, nil
	case "keep":
		return TransposeKeep, nil
	default:
		return TransposeSwap, fmt.Errorf("sparse: unknown transpose shape %q", s)
	}
}
