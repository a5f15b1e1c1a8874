package solver

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/mjsms/otimizacao/logger"
	"github.com/mjsms/otimizacao/model"
)

// Solve optimizes m and returns an immutable Solution. The model is read,
// never written; solving the same Model twice yields identical results.
//
// Dispatch:
//
//   - no Integer/Binary variables → one continuous simplex solve;
//   - otherwise → continuous relaxation, then branch-and-bound (see bb.go).
//
// Errors: ErrNilModel, ErrNumerical. Infeasible, Unbounded, and NotSolved
// (expired time budget) are statuses on the returned Solution, not errors.
func Solve(m *model.Model, opts ...Option) (*Solution, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	log := logger.Logger().With().Str("component", "solver").Logger()
	if !cfg.Verbose {
		log = log.Level(zerolog.Disabled)
	}

	nf := newNormalForm(m)
	lower, upper := nf.bounds()

	// Continuous path: a single relaxation IS the problem.
	if len(nf.integral) == 0 {
		_, x, st, err := nf.relax(lower, upper, cfg.Eps)
		if err != nil {
			return nil, err
		}
		log.Debug().Stringer("status", st).Msg("continuous solve finished")

		return newSolution(nf, st, x, cfg.Eps), nil
	}

	// Integer path: branch-and-bound owns the search.
	e := newBBEngine(nf, cfg, log)
	st := e.run(lower, upper)
	if e.err != nil {
		return nil, e.err
	}
	log.Debug().
		Stringer("status", st).
		Int("nodes", e.nodes).
		Msg("branch-and-bound finished")

	return newSolution(nf, st, e.bestX, cfg.Eps), nil
}

// newSolution assembles the immutable result. Assignment values within eps
// of zero are reported as exact zeros; integral variables are reported as
// exact integers (branch-and-bound already snapped them).
func newSolution(nf *normalForm, st Status, x []float64, eps float64) *Solution {
	s := &Solution{
		status:    st,
		objective: math.NaN(),
		values:    make(map[model.Variable]float64, len(nf.vars)),
	}
	if st != Optimal || x == nil {
		return s
	}

	var (
		i int
		v float64
	)
	for i = range nf.vars {
		v = x[i]
		if math.Abs(v) < eps {
			v = 0
		}
		s.values[nf.vars[i]] = v
	}
	s.objective = nf.objectiveValue(x)

	return s
}
