// Package otimizacao is an in-process toolkit for formulating and solving
// small linear and mixed-integer optimization problems — assignment,
// transportation and goal programming — plus parametrized sensitivity
// analysis by controlled re-solving.
//
// 🚀 What is otimizacao?
//
//	A deterministic, cgo-free optimization core that brings together:
//		• Modeling primitives: variables, linear expressions, constraints, objectives
//		• A validating model builder with strict ownership rules
//		• A dense two-phase simplex solver for continuous LPs
//		• Branch-and-bound for integer and binary variables
//		• A sensitivity-sweep driver that re-solves fresh models per scenario
//
// ✨ Why choose otimizacao?
//
//   - Deterministic – fixed pivot and branching rules, name-ordered tie-breaks
//   - Strict sentinels – every failure mode is a package-level error or status
//   - Pure value semantics – expressions never mutate, models never alias
//   - Small on purpose – tens of variables and constraints, solved exactly
//
// Under the hood, everything is organized under five subpackages:
//
//	model/   — Variable, LinearExpr, Constraint, Objective, Builder & Model
//	simplex/ — dense two-phase primal simplex on standard form (gonum-backed)
//	solver/  — Solve(Model) → Solution: normalization, dispatch, branch-and-bound
//	sweep/   — sensitivity sweeps: rebuild, re-solve, collect (input, metric) pairs
//	logger/  — zerolog-based process logging shared by solver and sweep
//
// Quick sketch of the data flow:
//
//	Builder ──Build()──▶ Model ──Solve()──▶ Solution ──metric──▶ SweepResult
//
// The examples/ directory reproduces three full case studies (transportation,
// assignment, goal programming) on top of the public read APIs only.
//
//	go get github.com/mjsms/otimizacao
package otimizacao
