// Package sweep drives parametrized sensitivity analysis by controlled
// re-solving.
//
// A sweep takes a model factory, a list of perturbation values, and a metric
// extractor. For every value it builds a completely fresh Model, solves it,
// and records the (value, metric) pair. Results always come back in the order
// the values were supplied.
//
// The rebuild-from-scratch pattern is deliberate and load-bearing: because no
// Model, expression, or variable is shared between iterations, one scenario
// can never leak a perturbed coefficient into the next. Warm-starting or
// incremental re-solving is intentionally not offered.
//
// Iterations are independent pure computations, so they may run concurrently
// (WithMaxConcurrency) without changing observable results: each worker
// builds and solves its own Model and the driver reassembles results in
// input order before returning.
//
// By default a non-Optimal solve aborts the sweep with ErrNotOptimal — a
// silent NaN in the middle of a sensitivity curve is worse than a loud error.
// Callers that want to inspect Infeasible/Unbounded points themselves can opt
// out with WithAllowNonOptimal.
//
// Example usage:
//
//	res, err := sweep.Sweep(
//	    func(cost float64) (*model.Model, error) { return buildPlan(cost) },
//	    []float64{3, 3.5, 4, 4.5, 5},
//	    func(s *solver.Solution) float64 { return s.ObjectiveValue() },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range res {
//	    fmt.Printf("%.1f → %.2f\n", p.Input, p.Metric)
//	}
package sweep
