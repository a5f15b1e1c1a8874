// Package simplex implements a dense two-phase primal simplex method for
// linear programs in standard form:
//
//	minimize   c·x
//	subject to A·x = b
//	           x ≥ 0
//
// Phase I introduces one artificial variable per row and minimizes their sum
// to find an initial basic feasible solution (or prove infeasibility).
// Phase II optimizes the true objective from that basis. Pivoting follows
// Bland's rule throughout — smallest eligible column index enters, smallest
// basic index leaves on ratio ties — which guarantees finite termination and
// makes every run bit-for-bit reproducible.
//
// The package targets small, dense instances (tens of rows and columns).
// Inequalities, variable bounds, and maximization are handled by the caller's
// translation into standard form; see the solver package.
//
// Complexity:
//
//   - Per pivot: O(m·N) row eliminations over an (m+1)×(N+1) tableau.
//   - Pivot count: finite under Bland's rule; typically O(m+n) on the small
//     well-conditioned instances this package is built for.
//   - Space: O(m·N) for the tableau, N = n + m artificials in Phase I.
//
// Errors (sentinel):
//
//	– ErrBadInput    for shape mismatches, NaN/Inf entries, or n == 0.
//	– ErrInfeasible  when Phase I terminates with a positive artificial sum.
//	– ErrUnbounded   when Phase II finds an improving ray with no leaving row.
//	– ErrNumerical   when pivoting stalls beyond the iteration guard.
package simplex
