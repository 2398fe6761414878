// SPDX-License-Identifier: MIT

// Package config loads sparserec CLI configuration.
//
// Sources, lowest to highest priority:
//
//  1. built-in defaults (defaultConfig)
//  2. an optional YAML file
//  3. SPARSEREC_* environment variables
//
// Keys use dotted koanf paths (matrix.lenient, output.top_n, ...). An env
// var maps by dropping the prefix, lowercasing, and turning the first "_"
// into ".": SPARSEREC_MATRIX_ALLOW_NEGATIVE → matrix.allow_negative.
package config

import "github.com/katalvlaran/sparserec/sparse"

// Config is the full CLI configuration.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Matrix  MatrixConfig  `koanf:"matrix"`
	Input   InputConfig   `koanf:"input"`
	Output  OutputConfig  `koanf:"output"`
}

// LoggingConfig mirrors logging.Config for the fields exposed to users.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"loglevel"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// MatrixConfig selects the sparse.Matrix policy.
type MatrixConfig struct {
	Lenient        bool   `koanf:"lenient"`
	AllowNegative  bool   `koanf:"allow_negative"`
	ValidateNaNInf bool   `koanf:"validate_nan_inf"`
	TransposeShape string `koanf:"transpose_shape" validate:"oneof=swap keep"`
	DenseShape     string `koanf:"dense_shape" validate:"oneof=bbox declared float"`
	MaxDenseCells  int    `koanf:"max_dense_cells" validate:"gt=0"`
}

// Dense view names accepted by matrix.dense_shape.
const (
	DenseBoundingBox = "bbox"
	DenseDeclared    = "declared"
	DenseFloat       = "float"
)

// InputConfig names the JSON files the CLI reads.
type InputConfig struct {
	MatrixPath string   `koanf:"matrix_path" validate:"required"`
	VectorPath string   `koanf:"vector_path" validate:"required"`
	MergePaths []string `koanf:"merge_paths" validate:"dive,required"`
}

// OutputConfig shapes the JSON document written to stdout.
type OutputConfig struct {
	TopN             int  `koanf:"top_n" validate:"gte=0"`
	IncludeDense     bool `koanf:"include_dense"`
	IncludeTranspose bool `koanf:"include_transpose"`
}

// defaultConfig returns the built-in defaults. Input paths have no default
// and must come from the file or the environment.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Matrix: MatrixConfig{
			ValidateNaNInf: true,
			TransposeShape: "swap",
			DenseShape:     DenseBoundingBox,
			MaxDenseCells:  sparse.DefaultMaxDenseCells,
		},
		Output: OutputConfig{
			TopN: 10,
		},
	}
}
