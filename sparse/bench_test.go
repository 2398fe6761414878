// Package sparse_test provides benchmarks for the hot paths of the coordinate
// matrix, using deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparserec/sparse"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{128, 512, 2048}

// benchDensity is the fraction of cells holding a value.
const benchDensity = 0.01

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.Matrix
	sinkV []float64
	sinkI [][]int64
)

// randomMatrix fills an n×n matrix at benchDensity with a fixed seed.
func randomMatrix(b *testing.B, n int, seed int64) *sparse.Matrix {
	b.Helper()
	m, err := sparse.NewMatrix(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	nnz := int(float64(n*n) * benchDensity)
	for i := 0; i < nnz; i++ {
		if err = m.Set(rng.Intn(n), rng.Intn(n), float64(rng.Intn(9)+1)); err != nil {
			b.Fatal(err)
		}
	}

	return m
}

func BenchmarkSet(b *testing.B) {
	b.ReportAllocs()
	m, _ := sparse.NewMatrix(1024, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Set(i%1024, (i/1024)%1024, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecommend(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomMatrix(b, n, 1337)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i%7) + 1
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := m.Recommend(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkAddMovie(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomMatrix(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dst := randomMatrix(b, n, 11)
				out, err := dst.AddMovie(src)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = out
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randomMatrix(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				t, err := m.Transpose()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = t
			}
		})
	}
}

func BenchmarkToDense(b *testing.B) {
	b.ReportAllocs()
	m := randomMatrix(b, 512, 99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := m.ToDense()
		if err != nil {
			b.Fatal(err)
		}
		sinkI = g
	}
}
