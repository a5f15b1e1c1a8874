// Package sweep: core types, sentinel errors, and options.
package sweep

import (
	"errors"

	"github.com/mjsms/otimizacao/model"
	"github.com/mjsms/otimizacao/solver"
)

// Factory builds a fresh, independent Model parametrized by one perturbation
// value (for example, one cost coefficient replaced). It must not reuse
// variables, expressions, or builders across calls.
type Factory func(value float64) (*model.Model, error)

// Metric reads the quantity of interest out of a Solution: the objective, a
// single variable, or a group total via SumOver.
type Metric func(s *solver.Solution) float64

// Point is one sweep sample: the perturbation input and the derived metric.
type Point struct {
	Input  float64
	Metric float64
}

// Result is the ordered sequence of sweep samples, one per input value, in
// the order the values were supplied.
type Result []Point

// Inputs returns the perturbation inputs in order.
func (r Result) Inputs() []float64 {
	out := make([]float64, len(r))
	for i := range r {
		out[i] = r[i].Input
	}

	return out
}

// Metrics returns the derived metrics in order.
func (r Result) Metrics() []float64 {
	out := make([]float64, len(r))
	for i := range r {
		out[i] = r[i].Metric
	}

	return out
}

// Sentinel errors returned by Sweep.
var (
	// ErrNilFactory indicates a nil model factory.
	ErrNilFactory = errors.New("sweep: factory is nil")

	// ErrNilMetric indicates a nil metric extractor.
	ErrNilMetric = errors.New("sweep: metric is nil")

	// ErrNotOptimal indicates that one iteration's solve did not finish
	// Optimal; the wrapping error names the offending input value.
	// Suppressed by WithAllowNonOptimal.
	ErrNotOptimal = errors.New("sweep: solve was not optimal")
)

// Options configures a sweep.
//
// MaxConcurrency  – number of iterations solved concurrently (default 1,
//                   i.e. sequential; observable results are identical).
// SolveOptions    – forwarded verbatim to every solver.Solve call.
// AllowNonOptimal – pass non-Optimal solutions to the metric instead of
//                   failing the sweep.
type Options struct {
	MaxConcurrency  int
	SolveOptions    []solver.Option
	AllowNonOptimal bool
}

// Option is a functional option for configuring Sweep.
type Option func(*Options)

// WithMaxConcurrency allows up to n iterations in flight at once.
// Must be ≥ 1; smaller values cause a panic.
func WithMaxConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("sweep: MaxConcurrency must be at least 1")
		}
		o.MaxConcurrency = n
	}
}

// WithSolveOptions forwards solver options (tolerance, time limit, verbose)
// to every iteration.
func WithSolveOptions(opts ...solver.Option) Option {
	return func(o *Options) {
		o.SolveOptions = append(o.SolveOptions, opts...)
	}
}

// WithAllowNonOptimal lets the metric see Infeasible/Unbounded/NotSolved
// solutions instead of aborting the sweep.
func WithAllowNonOptimal() Option {
	return func(o *Options) {
		o.AllowNonOptimal = true
	}
}

// DefaultOptions returns the default sweep configuration: sequential,
// default solver options, strict about optimality.
func DefaultOptions() Options {
	return Options{MaxConcurrency: 1}
}
