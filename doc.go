// Package sparserec is a small toolkit for recommendation scoring over sparse
// rating matrices.
//
// What is in the box?
//
//	sparse/            - coordinate (dictionary-of-keys) matrix: Set/Get,
//	                     Recommend, AddMovie, Transpose, dense views, JSON codec
//	internal/config/   - koanf-layered CLI configuration (defaults → YAML → env)
//	internal/logging/  - zerolog logger construction
//	cmd/sparserec/     - CLI: decode, merge, score, rank, print JSON
//	examples/          - runnable walkthrough
//
// Quick ASCII example:
//
//	          M0  M1  M2  M3           weights            scores
//	    V0  [  1   ·   ·   3 ]        [ 1 2 3 4 ]   →   [ 13 8 6 0 ]
//	    V1  [  ·   2   ·   1 ]
//	    V2  [  6   ·   ·   · ]
//
// Only non-zero ratings are stored; everything else reads as 0.
//
// Errors are strict by default: every failure comes back as a wrapped
// sentinel (errors.Is friendly). sparse.WithLenient switches accessors to
// log-and-recover through a zerolog.Logger.
//
//	go get github.com/katalvlaran/sparserec/sparse
package sparserec
