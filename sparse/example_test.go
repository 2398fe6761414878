package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/sparserec/sparse"
)

// ExampleMatrix_Recommend scores items for a user profile and ranks them.
func ExampleMatrix_Recommend() {
	// 1) 3 users × 4 movies, only the non-zero ratings are stored
	m, _ := sparse.FromEntries(3, 4, []sparse.Entry{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 3, Value: 3},
		{Row: 1, Col: 1, Value: 2}, {Row: 1, Col: 3, Value: 1},
		{Row: 2, Col: 0, Value: 6},
	})

	// 2) Weight vector over the 4 movies
	scores, err := m.Recommend([]float64{1, 2, 3, 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("scores:", scores)

	// 3) Best two
	for _, s := range sparse.TopN(scores, 2) {
		fmt.Printf("#%d -> %g\n", s.Index, s.Score)
	}

	// Output:
	// scores: [13 8 6 0]
	// #0 -> 13
	// #1 -> 8
}

// ExampleMatrix_AddMovie merges one rating matrix into another.
func ExampleMatrix_AddMovie() {
	m1, _ := sparse.FromEntries(3, 3, []sparse.Entry{{Row: 1, Col: 2, Value: 3}, {Row: 2, Col: 1, Value: 2}})
	m2, _ := sparse.FromEntries(3, 3, []sparse.Entry{{Row: 1, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 4}})

	if _, err := m1.AddMovie(m2); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m1)

	// Output:
	// Matrix(3x3, nnz=4)
	// (0, 1): 4
	// (1, 0): 1
	// (1, 2): 3
	// (2, 1): 2
}

// ExampleMatrix_ToDense materializes the bounding box of stored entries.
func ExampleMatrix_ToDense() {
	m, _ := sparse.FromEntries(3, 3, []sparse.Entry{{Row: 1, Col: 2, Value: 3}, {Row: 2, Col: 1, Value: 2}})
	grid, _ := m.ToDense()
	for _, row := range grid {
		fmt.Println(row)
	}

	// Output:
	// [0 0 0]
	// [0 0 3]
	// [0 2 0]
}

// ExampleMatrix_Get shows the default negative-index policy.
func ExampleMatrix_Get() {
	m, _ := sparse.NewMatrix(2, 2)
	_ = m.Set(1, 1, 5)

	v, _ := m.Get(1, 1)
	fmt.Println(v)

	_, err := m.Get(-1, 0)
	fmt.Println(err)

	// Output:
	// 5
	// Matrix.Get(-1,0): negative indices are not allowed: matrix: row and column must be non-negative integers
}
