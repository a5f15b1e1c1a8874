package sweep

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mjsms/otimizacao/logger"
	"github.com/mjsms/otimizacao/solver"
)

// Sweep re-solves a parametrized model family once per value and collects
// (value, metric) pairs in input order.
//
// Contract:
//
//   - factory(v) must return a fresh Model for every call; nothing is shared
//     between iterations, which is what rules out perturbation carryover.
//   - values are processed in the given order (concurrently when configured,
//     but results are reassembled in input order before returning).
//   - an empty values slice yields an empty Result and no error.
//
// Errors: ErrNilFactory, ErrNilMetric; factory and solve failures abort the
// sweep wrapped with the offending input value; a non-Optimal status aborts
// with ErrNotOptimal unless WithAllowNonOptimal is set.
//
// Complexity: one model build + one solve per value; memory O(len(values)).
func Sweep(factory Factory, values []float64, metric Metric, opts ...Option) (Result, error) {
	// 1) Validate the functional inputs.
	if factory == nil {
		return nil, ErrNilFactory
	}
	if metric == nil {
		return nil, ErrNilMetric
	}

	// 2) Assemble options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	log := logger.Logger().With().Str("component", "sweep").Logger()
	log.Debug().Int("points", len(values)).Int("workers", cfg.MaxConcurrency).Msg("sweep started")

	// 3) Pre-size the result so every iteration writes its own slot; slot
	//    indexing is what keeps the output in input order under concurrency.
	out := make(Result, len(values))
	if len(values) == 0 {
		return out, nil
	}

	// 4) Run. Sequential mode shares the code path with a worker limit of 1.
	var g errgroup.Group
	g.SetLimit(cfg.MaxConcurrency)

	for i := range values {
		g.Go(func() error {
			return runOne(factory, metric, cfg, values[i], &out[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Int("points", len(out)).Msg("sweep finished")

	return out, nil
}

// runOne builds, solves, and measures a single sweep iteration.
func runOne(factory Factory, metric Metric, cfg Options, value float64, slot *Point) error {
	m, err := factory(value)
	if err != nil {
		return fmt.Errorf("sweep: building model for value %g: %w", value, err)
	}

	sol, err := solver.Solve(m, cfg.SolveOptions...)
	if err != nil {
		return fmt.Errorf("sweep: solving for value %g: %w", value, err)
	}
	if sol.Status() != solver.Optimal && !cfg.AllowNonOptimal {
		return fmt.Errorf("%w: value %g finished %s", ErrNotOptimal, value, sol.Status())
	}

	*slot = Point{Input: value, Metric: metric(sol)}

	return nil
}
