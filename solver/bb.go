// Package solver — depth-first branch-and-bound over the continuous
// relaxation.
//
// The search keeps all policy and state in a dedicated engine struct:
//  1. Every node solves its LP relaxation under the node's bound box.
//  2. Nodes whose relaxed bound cannot improve on the incumbent are pruned
//     (minimize-space comparison with tolerance eps).
//  3. Integer-feasible relaxations become the new incumbent when strictly
//     better; values are snapped to exact integers before acceptance.
//  4. Fractional nodes branch on the integral variable farthest from an
//     integer, ties broken by the lowest variable name; the floor child is
//     explored before the ceil child. For Binary variables this degenerates
//     to fixing the variable at 0 and then at 1.
//  5. An optional soft time budget is checked at every node boundary; expiry
//     abandons the search and reports NotSolved, never a partial Optimal.
//
// Recursion depth is bounded by the number of integral variables for binary
// models and by the shrinking integral bound boxes in general; each branch
// removes at least one unit of box width on its variable.
package solver

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// bbEngine holds all search data and policies for one branch-and-bound run.
type bbEngine struct {
	nf  *normalForm
	eps float64

	// Time budget
	useDeadline bool
	deadline    time.Time

	// Incumbent (minimize-space objective and variable-space point)
	bestObj float64
	bestX   []float64
	found   bool

	// Run outcome flags and counters
	timedOut bool
	err      error
	nodes    int

	log zerolog.Logger
}

// newBBEngine prepares an engine with an empty incumbent.
func newBBEngine(nf *normalForm, cfg Options, log zerolog.Logger) *bbEngine {
	e := &bbEngine{
		nf:      nf,
		eps:     cfg.Eps,
		bestObj: math.Inf(1),
		log:     log,
	}
	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}

	return e
}

// expired reports whether the time budget is exhausted; checked once per
// node boundary (each node already pays for a full LP solve, so the clock
// read is negligible).
func (e *bbEngine) expired() bool {
	return e.useDeadline && time.Now().After(e.deadline)
}

// run drives the search from the root bound box and returns the final
// status. The root relaxation decides Infeasible/Unbounded for the whole
// integer problem before any branching happens.
func (e *bbEngine) run(lower, upper []float64) Status {
	if e.expired() {
		e.timedOut = true

		return NotSolved
	}

	objMin, x, st, err := e.nf.relax(lower, upper, e.eps)
	if err != nil {
		e.err = err

		return NotSolved
	}
	if st != Optimal {
		return st // the integer problem inherits Infeasible/Unbounded
	}

	e.expand(objMin, x, lower, upper)

	switch {
	case e.err != nil:
		return NotSolved
	case e.timedOut:
		return NotSolved
	case !e.found:
		return Infeasible
	default:
		return Optimal
	}
}

// dfs solves one child node and, when its relaxation is optimal, expands it.
func (e *bbEngine) dfs(lower, upper []float64) {
	if e.timedOut || e.err != nil {
		return
	}
	if e.expired() {
		e.timedOut = true

		return
	}

	objMin, x, st, err := e.nf.relax(lower, upper, e.eps)
	if err != nil {
		e.err = err

		return
	}
	if st != Optimal {
		// Infeasible children are simply exhausted branches. Unbounded cannot
		// occur below a bounded root (children shrink the feasible region),
		// so it is treated the same way defensively.
		return
	}

	e.expand(objMin, x, lower, upper)
}

// expand processes a node with a solved relaxation: prune, accept, or branch.
func (e *bbEngine) expand(objMin float64, x, lower, upper []float64) {
	e.nodes++

	// Prune: the relaxed bound cannot improve on the incumbent.
	if objMin >= e.bestObj-e.eps {
		return
	}

	j := e.branchVar(x)
	if j < 0 {
		e.accept(x)

		return
	}

	floor := math.Floor(x[j])
	ceil := math.Ceil(x[j])

	e.log.Debug().
		Int("node", e.nodes).
		Str("var", e.nf.vars[j].Name()).
		Float64("value", x[j]).
		Msg("branching")

	// Floor child: tighten the upper bound.
	childLo, childHi := cloneBounds(lower, upper)
	if floor < childHi[j] {
		childHi[j] = floor
	}
	e.dfs(childLo, childHi)

	// Ceil child: tighten the lower bound.
	childLo, childHi = cloneBounds(lower, upper)
	if ceil > childLo[j] {
		childLo[j] = ceil
	}
	e.dfs(childLo, childHi)
}

// branchVar picks the integral variable whose relaxed value is farthest from
// an integer; ties break toward the lowest variable name for determinism.
// Returns -1 when every integral variable is within intTol of an integer.
func (e *bbEngine) branchVar(x []float64) int {
	best := -1
	bestFrac := intTol

	var (
		i    int
		frac float64
	)
	for _, i = range e.nf.integral {
		frac = math.Abs(x[i] - math.Round(x[i]))
		switch {
		case frac > bestFrac:
			best, bestFrac = i, frac
		case best >= 0 && frac == bestFrac && e.nf.vars[i].Name() < e.nf.vars[best].Name():
			best = i
		}
	}

	return best
}

// accept snaps integral values to exact integers and commits a new incumbent
// when the snapped objective improves on the current one.
func (e *bbEngine) accept(x []float64) {
	snapped := make([]float64, len(x))
	copy(snapped, x)

	var i int
	for _, i = range e.nf.integral {
		snapped[i] = math.Round(snapped[i])
	}

	objMin := e.nf.minimized(e.nf.objectiveValue(snapped))
	if objMin >= e.bestObj {
		return
	}
	e.bestObj = objMin
	e.bestX = snapped
	e.found = true

	e.log.Debug().
		Int("node", e.nodes).
		Float64("objective", e.nf.objectiveValue(snapped)).
		Msg("new incumbent")
}

// cloneBounds copies a bound box so children never alias their parent.
func cloneBounds(lower, upper []float64) (lo, hi []float64) {
	lo = make([]float64, len(lower))
	hi = make([]float64, len(upper))
	copy(lo, lower)
	copy(hi, upper)

	return lo, hi
}
