// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparserec/internal/config"
	"github.com/katalvlaran/sparserec/internal/logging"
	"github.com/katalvlaran/sparserec/sparse"
)

// result is the JSON document written to stdout.
type result struct {
	Scores     []float64      `json:"scores"`
	Top        []sparse.Score `json:"top"`
	Dense      any            `json:"dense,omitempty"`
	Transposed *sparse.Matrix `json:"transposed,omitempty"`
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sparserec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})

	opts, err := matrixOptions(cfg.Matrix, logger)
	if err != nil {
		return err
	}

	m, err := loadMatrix(cfg.Input, opts, logger)
	if err != nil {
		return err
	}

	vector, err := loadVector(cfg.Input.VectorPath)
	if err != nil {
		return err
	}

	scores, err := m.Recommend(vector)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	out := result{
		Scores: scores,
		Top:    sparse.TopN(scores, cfg.Output.TopN),
	}

	if cfg.Output.IncludeDense {
		if out.Dense, err = denseView(m, cfg.Matrix.DenseShape); err != nil {
			return fmt.Errorf("dense view: %w", err)
		}
	}
	if cfg.Output.IncludeTranspose {
		if out.Transposed, err = m.Transpose(); err != nil {
			return fmt.Errorf("transpose: %w", err)
		}
	}

	logger.Info().
		Int("rows", m.Rows()).
		Int("cols", m.Cols()).
		Int("nnz", m.Nnz()).
		Int("top", len(out.Top)).
		Msg("recommendation computed")

	if err = json.NewEncoder(stdout).Encode(out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// matrixOptions translates the matrix section into sparse options.
func matrixOptions(mc config.MatrixConfig, logger zerolog.Logger) ([]sparse.Option, error) {
	shape, err := sparse.ParseTransposeShape(mc.TransposeShape)
	if err != nil {
		return nil, err
	}
	opts := []sparse.Option{
		sparse.WithLogger(logger),
		sparse.WithTransposeShape(shape),
	}
	if mc.Lenient {
		opts = append(opts, sparse.WithLenient())
	}
	if mc.AllowNegative {
		opts = append(opts, sparse.WithNegativeIndices())
	}
	if !mc.ValidateNaNInf {
		opts = append(opts, sparse.WithNoValidateNaNInf())
	}
	if mc.MaxDenseCells > 0 {
		opts = append(opts, sparse.WithMaxDenseCells(mc.MaxDenseCells))
	}

	return opts, nil
}

// loadMatrix decodes the main matrix and adds every merge matrix into it.
func loadMatrix(in config.InputConfig, opts []sparse.Option, logger zerolog.Logger) (*sparse.Matrix, error) {
	m, err := decodeMatrixFile(in.MatrixPath, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", in.MatrixPath).Int("nnz", m.Nnz()).Msg("matrix loaded")

	for _, p := range in.MergePaths {
		other, err := decodeMatrixFile(p, opts)
		if err != nil {
			return nil, err
		}
		if _, err = m.AddMovie(other); err != nil {
			return nil, fmt.Errorf("merge %s: %w", p, err)
		}
		logger.Debug().Str("path", p).Int("nnz", m.Nnz()).Msg("matrix merged")
	}

	return m, nil
}

// decodeMatrixFile reads one wire-format matrix.
func decodeMatrixFile(path string, opts []sparse.Option) (*sparse.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read matrix %s: %w", path, err)
	}
	m, err := sparse.Decode(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to decode matrix %s: %w", path, err)
	}

	return m, nil
}

// loadVector reads a JSON array of numbers.
func loadVector(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vector %s: %w", path, err)
	}
	var v []float64
	if err = json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode vector %s: %w", path, err)
	}

	return v, nil
}

// denseView materializes m in the configured shape.
func denseView(m *sparse.Matrix, shape string) (any, error) {
	switch shape {
	case config.DenseDeclared:
		return m.ToDenseDeclared()
	case config.DenseFloat:
		return m.ToDenseFloat()
	default:
		return m.ToDense()
	}
}
