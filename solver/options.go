package solver

import "time"

// Options configures a solve.
//
// Eps       – zero/feasibility tolerance (must be > 0; default DefaultEps).
// TimeLimit – soft time budget, checked at branch-and-bound node boundaries;
//             0 means unlimited. Expiry yields status NotSolved.
// Verbose   – emit zerolog debug events (relaxation results, incumbents,
//             node counts) through the logger package.
type Options struct {
	Eps       float64
	TimeLimit time.Duration
	Verbose   bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithEps overrides the zero/feasibility tolerance.
// Must be positive; non-positive values cause a panic, signaling an invalid
// configuration early.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic("solver: Eps must be positive")
		}
		o.Eps = eps
	}
}

// WithTimeLimit sets a soft time budget. Zero means unlimited; negative
// values cause a panic.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic("solver: TimeLimit must be non-negative")
		}
		o.TimeLimit = d
	}
}

// WithVerbose enables debug logging of solve progress.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns the default solve configuration:
// Eps = DefaultEps, no time limit, no logging.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps}
}
