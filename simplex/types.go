// Package simplex: sentinel error set and numeric policy constants.
// All entry points MUST return these sentinels and tests MUST check them via
// errors.Is. User input never causes a panic.
package simplex

import "errors"

// Sentinel errors returned by the simplex solver.
var (
	// ErrBadInput indicates a shape mismatch between c, A, and b, a NaN or
	// ±Inf entry, or an empty column set.
	ErrBadInput = errors.New("simplex: invalid input")

	// ErrInfeasible indicates that no x ≥ 0 satisfies A·x = b.
	ErrInfeasible = errors.New("simplex: problem is infeasible")

	// ErrUnbounded indicates that the objective decreases without limit
	// inside the feasible region.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrNumerical indicates that pivoting exceeded the iteration guard or a
	// Phase I ray was detected; both signal numerical degeneracy beyond what
	// this dense kernel is built to handle.
	ErrNumerical = errors.New("simplex: numerical failure")
)

// DefaultTol is the zero/feasibility tolerance used when the caller passes a
// non-positive tolerance.
const DefaultTol = 1e-9

// iterGuard bounds pivot counts as a defense against numerical stalls:
// Bland's rule terminates in theory, but a corrupted tableau (extreme
// conditioning) could loop. The guard scales with problem size.
const iterGuard = 10000
