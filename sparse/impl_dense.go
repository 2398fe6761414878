// SPDX-License-Identifier: MIT

// Package sparse - dense materialization.
//
// Purpose:
//   - ToDense: compatibility view. Shape is the bounding box of stored
//     coordinates, values truncated toward zero to int64.
//   - ToDenseFloat: same bounding box, float64 values untouched.
//   - ToDenseDeclared: declared Rows()×Cols() shape, int64 values.
//
// Notes:
//   - The bounding box ignores declared dims: a 3×3 matrix holding only (1,2)
//     yields a 2×3 grid, and entries beyond the declared dims expand it.
//   - Negative coordinates (WithNegativeIndices) cannot be placed on a grid
//     and fail with ErrIndexOutOfBounds.
//   - Every grid is checked against Options.MaxDenseCells before allocation;
//     a coordinate at math.MaxInt or a shape above the cap fails with
//     ErrDenseTooLarge instead of overflowing or exhausting memory.
//   - Lenient policy: failures are logged and an empty grid is returned.

package sparse

import (
	"fmt"
	"math"
)

// ToDense materializes the bounding box (maxRow+1)×(maxCol+1) of stored
// coordinates as an int64 grid; an empty matrix yields an empty grid.
//
// Implementation:
//   - Stage 1: scan entries for the max row/col (reject negatives).
//   - Stage 2: check the shape against the cell cap.
//   - Stage 3: allocate a zero grid and write each value truncated toward zero.
//
// Errors:
//   - ErrIndexOutOfBounds (negative stored coordinate), ErrDenseTooLarge,
//     ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz + R*C), Space O(R*C).
func (m *Matrix) ToDense() ([][]int64, error) {
	if m == nil {
		return nil, matrixErrorf(opToDense, ErrNilMatrix)
	}
	m.init()
	rows, cols, err := m.boundingBox()
	if err == nil {
		err = m.checkCells(rows, cols)
	}
	if err != nil {
		return m.recoverInt(opToDense, err)
	}

	return m.intGrid(rows, cols), nil
}

// ToDenseFloat is ToDense without integer truncation.
//
// Errors:
//   - ErrIndexOutOfBounds (negative stored coordinate), ErrDenseTooLarge,
//     ErrNilMatrix.
func (m *Matrix) ToDenseFloat() ([][]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opToDenseFloat, ErrNilMatrix)
	}
	m.init()
	rows, cols, err := m.boundingBox()
	if err == nil {
		err = m.checkCells(rows, cols)
	}
	if err != nil {
		err = matrixErrorf(opToDenseFloat, err)
		if m.absorb(opToDenseFloat, err) {
			return [][]float64{}, nil
		}

		return nil, err
	}

	grid := zeroGrid[float64](rows, cols)
	for k, v := range m.entries {
		grid[k.Row][k.Col] = v
	}

	return grid, nil
}

// ToDenseDeclared materializes the declared Rows()×Cols() shape as an int64
// grid. Entries outside the declared shape fail with ErrIndexOutOfBounds.
//
// Errors:
//   - ErrIndexOutOfBounds, ErrDenseTooLarge (declared shape above the cap),
//     ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz + Rows()*Cols()), Space O(Rows()*Cols()).
func (m *Matrix) ToDenseDeclared() ([][]int64, error) {
	if m == nil {
		return nil, matrixErrorf(opToDenseDeclared, ErrNilMatrix)
	}
	m.init()
	if err := m.checkCells(m.r, m.c); err != nil {
		return m.recoverInt(opToDenseDeclared, err)
	}
	for k := range m.entries {
		if err := validateInGrid(k.Row, k.Col, m.r, m.c); err != nil {
			return m.recoverInt(opToDenseDeclared, fmt.Errorf("entry (%d,%d): %w", k.Row, k.Col, err))
		}
	}

	return m.intGrid(m.r, m.c), nil
}

// boundingBox returns (maxRow+1, maxCol+1) over stored coordinates, or (0, 0)
// for an empty matrix. A coordinate at math.MaxInt has no representable
// extent and fails with ErrDenseTooLarge.
func (m *Matrix) boundingBox() (rows, cols int, err error) {
	for k := range m.entries {
		if k.Row < 0 || k.Col < 0 {
			return 0, 0, fmt.Errorf("entry (%d,%d): %w", k.Row, k.Col, ErrIndexOutOfBounds)
		}
		if k.Row == math.MaxInt || k.Col == math.MaxInt {
			return 0, 0, fmt.Errorf("entry (%d,%d): %w", k.Row, k.Col, ErrDenseTooLarge)
		}
		if k.Row+1 > rows {
			rows = k.Row + 1
		}
		if k.Col+1 > cols {
			cols = k.Col + 1
		}
	}

	return rows, cols, nil
}

// checkCells rejects a rows×cols grid above the cell cap. Rows are bounded on
// their own so that an N×0 grid cannot allocate N row headers.
func (m *Matrix) checkCells(rows, cols int) error {
	limit := m.opts.maxDenseCells
	if rows > limit || (rows != 0 && cols > limit/rows) {
		return fmt.Errorf("%dx%d grid, limit %d cells: %w", rows, cols, limit, ErrDenseTooLarge)
	}

	return nil
}

// intGrid writes every entry, truncated toward zero, into a rows×cols grid.
// Callers guarantee all entries fit.
func (m *Matrix) intGrid(rows, cols int) [][]int64 {
	grid := zeroGrid[int64](rows, cols)
	for k, v := range m.entries {
		grid[k.Row][k.Col] = int64(v) // Go conversion truncates toward zero
	}

	return grid
}

// recoverInt wraps err with op and either absorbs it (lenient, empty grid)
// or returns it.
func (m *Matrix) recoverInt(op string, err error) ([][]int64, error) {
	err = matrixErrorf(op, err)
	if m.absorb(op, err) {
		return [][]int64{}, nil
	}

	return nil, err
}

// zeroGrid allocates a rows×cols grid backed by one flat slice.
// Callers bound rows*cols with checkCells first.
func zeroGrid[T int64 | float64](rows, cols int) [][]T {
	grid := make([][]T, rows)
	flat := make([]T, rows*cols)
	for i := range grid {
		grid[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return grid
}
