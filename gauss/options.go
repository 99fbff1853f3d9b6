// SPDX-License-Identifier: MIT

package gauss

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/gausstrace/matrix"
)

// DefaultEpsilon is the tolerance used for pivot and coefficient tests.
const DefaultEpsilon = matrix.DefaultEpsilon

const (
	panicEpsilonInvalid = "gauss: WithEpsilon: eps must be finite, positive"
	panicNilLogger      = "gauss: WithLogger: logger must not be nil"
)

// Option configures Solve.
type Option func(*Options)

// Options is the resolved solver configuration.
type Options struct {
	eps            float64
	failOnSingular bool
	logger         *slog.Logger
}

// WithEpsilon overrides DefaultEpsilon. Panics on zero, negative, NaN or ±Inf
// values: comparisons are strict (|a-b| < eps), so eps == 0 would classify
// nothing as zero or one.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithFailOnSingular makes Solve return an error instead of an invalid trace
// when a column has no non-zero pivot.
func WithFailOnSingular() Option {
	return func(o *Options) { o.failOnSingular = true }
}

// WithLogger routes solver records to l: one debug record per step and one
// info record per finished solve. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// FailOnSingular reports whether strict mode is on.
func (o Options) FailOnSingular() bool { return o.failOnSingular }

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user options over defaults in order (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
