// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the coordinate matrix.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that applies options in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Options fields are unexported; public entry points accept ...Option.
//
// Notes:
//   - Error policy is orthogonal to index/numeric policy:
//   - lenient controls whether failures are logged and absorbed or returned.
//   - allowNegative controls whether negative coordinates are legal keys.
//   - validateNaNInf controls whether Set rejects NaN/±Inf.
//   - maxDenseCells bounds the grids the ToDense* views may allocate.
//   - Products (Recommend, MulVec) ignore lenient and always return errors.
package sparse

import "github.com/rs/zerolog"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLenient keeps the strict policy: every failure is returned.
	DefaultLenient = false

	// DefaultAllowNegative rejects negative coordinates with ErrInvalidIndexType.
	DefaultAllowNegative = false

	// DefaultValidateNaNInf rejects NaN/±Inf values in Set.
	DefaultValidateNaNInf = true

	// DefaultTransposeShape swaps declared dims on Transpose.
	DefaultTransposeShape = TransposeSwap

	// DefaultMaxDenseCells caps a dense grid at 16Mi cells (128 MiB of int64).
	DefaultMaxDenseCells = 1 << 24
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTransposeShapeInvalid = "sparse: WithTransposeShape: unknown shape policy"
	panicMaxDenseCellsInvalid  = "sparse: WithMaxDenseCells: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; resolve them with NewOptions.
type Options struct {
	// error policy
	lenient bool           // DefaultLenient
	logger  zerolog.Logger // zerolog.Nop() unless WithLogger

	// index & numeric policy
	allowNegative  bool // DefaultAllowNegative
	validateNaNInf bool // DefaultValidateNaNInf

	// shape policy
	transposeShape TransposeShape // DefaultTransposeShape
	maxDenseCells  int            // DefaultMaxDenseCells
}

// ---------- Constructors (WithX) ----------

// WithLenient switches Set, Get, AddMovie and the dense views to
// log-and-recover.
//
// Behavior highlights:
//   - Set: invalid input is logged; the call is a no-op returning nil.
//   - Get: invalid input is logged; returns (0, nil).
//   - AddMovie: a nil source is logged and the receiver is returned; invalid
//     entries are logged one by one and skipped, the rest are merged.
//   - ToDense*: failures are logged; an empty grid is returned.
//
// Notes:
//   - Recommend and MulVec are unaffected: they always return their errors.
//
// AI-Hints:
//   - Pair with WithLogger to actually see the recovered failures.
func WithLenient() Option {
	return func(o *Options) { o.lenient = true }
}

// WithStrict restores the default policy (return every failure).
func WithStrict() Option {
	return func(o *Options) { o.lenient = false }
}

// WithLogger sets the sink for lenient-mode reports.
// The logger is stored by value, as zerolog loggers are meant to be copied.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithNegativeIndices treats negative rows/cols as ordinary keys.
//
// Notes:
//   - Products then fail with ErrIndexOutOfBounds on those entries, and the
//     dense views fail because a grid cannot hold negative coordinates.
func WithNegativeIndices() Option {
	return func(o *Options) { o.allowNegative = true }
}

// WithoutNegativeIndices restores the default rejection of negative indices.
func WithoutNegativeIndices() Option {
	return func(o *Options) { o.allowNegative = false }
}

// WithValidateNaNInf enables strict finite-value validation in Set (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set store NaN/±Inf.
//
// AI-Hints:
//   - Leave validation on unless the input is sanitized later; NaN poisons
//     every product it touches.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithTransposeShape selects the declared shape of Transpose results.
// Panics on values other than TransposeSwap/TransposeKeep.
func WithTransposeShape(s TransposeShape) Option {
	if !s.valid() {
		panic(panicTransposeShapeInvalid)
	}

	return func(o *Options) { o.transposeShape = s }
}

// WithMaxDenseCells caps the number of cells (rows*cols) a ToDense* view may
// allocate; larger grids fail with ErrDenseTooLarge. Panics if n <= 0.
//
// AI-Hints:
//   - Coordinates come straight from decoded input, so a single entry at
//     (1<<32, 1<<32) asks for an exabyte-sized grid. Keep the cap unless the
//     data is trusted.
func WithMaxDenseCells(n int) Option {
	if n <= 0 {
		panic(panicMaxDenseCellsInvalid)
	}

	return func(o *Options) { o.maxDenseCells = n }
}

// WithLegacyBehavior bundles the behavior of the first sparserec release:
// lenient error policy, negative indices as ordinary keys and unswapped
// transpose dims. Later options still override individual switches.
func WithLegacyBehavior() Option {
	return func(o *Options) {
		o.lenient = true
		o.allowNegative = true
		o.transposeShape = TransposeKeep
	}
}

// ---------- Resolution ----------

// NewOptions resolves opts over the documented defaults (last writer wins).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Lenient reports whether the log-and-recover policy is active.
func (o Options) Lenient() bool { return o.lenient }

// AllowNegative reports whether negative coordinates are legal keys.
func (o Options) AllowNegative() bool { return o.allowNegative }

// ValidateNaNInf reports whether Set rejects NaN/±Inf.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// TransposeShape reports the Transpose shape policy.
func (o Options) TransposeShape() TransposeShape { return o.transposeShape }

// MaxDenseCells reports the cell cap of the dense views.
func (o Options) MaxDenseCells() int { return o.maxDenseCells }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		lenient:        DefaultLenient,
		logger:         zerolog.Nop(),
		allowNegative:  DefaultAllowNegative,
		validateNaNInf: DefaultValidateNaNInf,
		transposeShape: DefaultTransposeShape,
		maxDenseCells:  DefaultMaxDenseCells,
	}
}

// gatherOptions applies user options over defaults in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
