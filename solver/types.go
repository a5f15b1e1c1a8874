// Package solver: statuses, sentinel errors, and numeric policy constants.
package solver

import "errors"

// Status is the outcome of a solve.
type Status uint8

const (
	// NotSolved means the engine did not reach a conclusion — currently only
	// produced when a configured time budget expires mid-search.
	NotSolved Status = iota

	// Optimal means an assignment satisfying every constraint within
	// tolerance was found and proven optimal.
	Optimal

	// Infeasible means no assignment satisfies all constraints.
	Infeasible

	// Unbounded means the objective improves without limit inside the
	// feasible region.
	Unbounded
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case NotSolved:
		return "NotSolved"
	default:
		return "Unknown"
	}
}

// Sentinel errors returned by Solve. Solve-time outcomes (Infeasible,
// Unbounded, NotSolved) are statuses, not errors.
var (
	// ErrNilModel indicates that a nil *model.Model was passed to Solve.
	ErrNilModel = errors.New("solver: model is nil")

	// ErrNumerical indicates that the simplex kernel failed numerically.
	// Tolerance handling keeps this off every well-scaled small instance;
	// it surfaces only on pathologically conditioned input.
	ErrNumerical = errors.New("solver: numerical failure in LP kernel")
)

// DefaultEps is the zero/feasibility tolerance: assignment values within
// DefaultEps of zero are reported as zero, and simplex comparisons treat
// |x| < DefaultEps as zero.
const DefaultEps = 1e-9

// intTol is the integrality acceptance tolerance for branch-and-bound: a
// relaxed value within intTol of an integer counts as integral and is
// snapped. Kept separate from the simplex feasibility tolerance, which is
// orders of magnitude tighter than LP round-off on integral vertices.
const intTol = 1e-6
