// Package solver turns an immutable model.Model into a Solution.
//
// The engine is a pure function of its input: the model is never mutated, no
// I/O is performed, and identical inputs produce identical outputs. Dispatch
// is driven by the variable domains:
//
//   - All-continuous models are translated into standard form (lower-bound
//     shift, upper-bound rows, slack/surplus columns) and handed to the
//     two-phase simplex in the simplex package.
//   - Models with Integer or Binary variables solve the continuous
//     relaxation first. An infeasible or unbounded relaxation decides the
//     integer problem as-is. Otherwise a depth-first branch-and-bound search
//     runs: branch on the integral variable whose relaxed value is farthest
//     from an integer (ties go to the lowest variable name), tighten its
//     bounds to ≤ floor and ≥ ceil in the two children (which for Binary
//     amounts to fixing 0 and 1), keep the best integer-feasible objective as
//     the incumbent, and prune any node whose relaxed bound cannot beat it.
//
// Outcomes versus errors:
//
// Infeasible and Unbounded are regular solve outcomes encoded in
// Solution.Status, never errors. Errors are reserved for a nil model and for
// numerical failures inside the simplex kernel. An expired time budget
// (WithTimeLimit) yields status NotSolved — never a partial Optimal.
//
// Goal programming is a modeling pattern, not an engine feature: soft targets
// are expressed with two non-negative deviation variables, an equality
// constraint "target expression + under − over = target value", and weighted
// penalty terms in the objective. A weight of zero leaves that side of the
// deviation unpenalized. See ExampleSolve_goalProgramming for the full
// pattern; the engine treats such models like any other.
//
// Determinism: the simplex pivots with Bland's rule over a fixed column
// order and branch-and-bound explores the floor child before the ceil child,
// so repeated solves of one Model are bit-identical, and ties between
// multiple optima are resolved by traversal order.
package solver
