// Package solver_test drives Solve over the continuous path: a wine-cellar
// transportation study with a hand-verified optimum, plus the status corners
// (infeasible demand, unbounded objective) and the numeric policies
// (objective constants, negative lower bounds, zero snapping, idempotence).
package solver_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjsms/otimizacao/model"
	"github.com/mjsms/otimizacao/solver"
)

const delta = 1e-6

var (
	warehouses = []string{"A1", "A2"}
	centers    = []string{"CD1", "CD2", "CD3"}
	supply     = map[string]float64{"A1": 300, "A2": 500}
	demand     = map[string]float64{"CD1": 200, "CD2": 250, "CD3": 250}
	shipCost   = map[[2]string]float64{
		{"A1", "CD1"}: 2.0, {"A1", "CD2"}: 3.5, {"A1", "CD3"}: 3.0,
		{"A2", "CD1"}: 2.5, {"A2", "CD2"}: 2.0, {"A2", "CD3"}: 4.0,
	}
)

// buildTransportation assembles the transportation study with one cost cell
// overridable (the sensitivity sweeps vary A2→CD3).
func buildTransportation(t *testing.T, costA2CD3 float64) *model.Model {
	t.Helper()

	b := model.NewBuilder()
	x := make(map[[2]string]model.Variable, len(shipCost))
	var obj model.LinearExpr

	for _, w := range warehouses {
		for _, c := range centers {
			v, err := b.AddVariable("x_"+w+"_"+c, model.Continuous)
			require.NoError(t, err)
			x[[2]string{w, c}] = v

			cost := shipCost[[2]string{w, c}]
			if w == "A2" && c == "CD3" {
				cost = costA2CD3
			}
			obj = obj.AddTerm(v, cost)
		}
	}

	for _, w := range warehouses {
		e := model.NewExpr()
		for _, c := range centers {
			e = e.AddTerm(x[[2]string{w, c}], 1)
		}
		require.NoError(t, b.AddConstraint(
			model.NewConstraint(e, model.LessEq, supply[w]).WithLabel("supply_"+w)))
	}
	for _, c := range centers {
		e := model.NewExpr()
		for _, w := range warehouses {
			e = e.AddTerm(x[[2]string{w, c}], 1)
		}
		require.NoError(t, b.AddConstraint(
			model.NewConstraint(e, model.Equal, demand[c]).WithLabel("demand_"+c)))
	}
	require.NoError(t, b.SetObjective(model.Minimize, obj))

	m, err := b.Build()
	require.NoError(t, err)

	return m
}

func TestSolve_NilModel(t *testing.T) {
	_, err := solver.Solve(nil)
	assert.ErrorIs(t, err, solver.ErrNilModel)
}

func TestSolve_Transportation(t *testing.T) {
	m := buildTransportation(t, shipCost[[2]string{"A2", "CD3"}])

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, sol.Status())
	assert.InDelta(t, 1725, sol.ObjectiveValue(), delta)

	// The optimal plan is unique for this cost table.
	flow := func(w, c string) float64 {
		v, ok := m.Variable("x_" + w + "_" + c)
		require.True(t, ok)

		return sol.Value(v)
	}
	assert.InDelta(t, 50, flow("A1", "CD1"), delta)
	assert.InDelta(t, 250, flow("A1", "CD3"), delta)
	assert.InDelta(t, 150, flow("A2", "CD1"), delta)
	assert.InDelta(t, 250, flow("A2", "CD2"), delta)

	// Unused lanes are snapped to exact zero.
	assert.Equal(t, 4, sol.NonzeroCount())

	// Every constraint of the model holds under the reported assignment.
	asg := sol.Assignment()
	for _, c := range m.Constraints() {
		lhs := c.Expr().Eval(asg)
		switch c.Op() {
		case model.LessEq:
			assert.LessOrEqual(t, lhs, c.RHS()+delta, c.Label())
		case model.GreaterEq:
			assert.GreaterOrEqual(t, lhs, c.RHS()-delta, c.Label())
		case model.Equal:
			assert.InDelta(t, c.RHS(), lhs, delta, c.Label())
		}
	}

	// SumOver: total shipped out of A2 is 150 + 250.
	fromA2 := sol.SumOver(func(v model.Variable) bool {
		return strings.HasPrefix(v.Name(), "x_A2_")
	})
	assert.InDelta(t, 400, fromA2, delta)
}

func TestSolve_InfeasibleDemand(t *testing.T) {
	// Shrink the supplies below total demand.
	b := model.NewBuilder()
	x, err := b.AddVariable("x", model.Continuous)
	require.NoError(t, err)
	y, err := b.AddVariable("y", model.Continuous)
	require.NoError(t, err)

	require.NoError(t, b.AddConstraint(model.NewConstraint(
		model.Sum(model.Term{Var: x, Coeff: 1}, model.Term{Var: y, Coeff: 1}),
		model.LessEq, 100,
	)))
	require.NoError(t, b.AddConstraint(model.NewConstraint(
		model.Sum(model.Term{Var: x, Coeff: 1}, model.Term{Var: y, Coeff: 1}),
		model.Equal, 700,
	)))
	require.NoError(t, b.SetObjective(model.Minimize,
		model.Sum(model.Term{Var: x, Coeff: 1})))

	m, err := b.Build()
	require.NoError(t, err)

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, solver.Infeasible, sol.Status())
	assert.True(t, math.IsNaN(sol.ObjectiveValue()))
	assert.Zero(t, sol.Value(x))
}

func TestSolve_Unbounded(t *testing.T) {
	b := model.NewBuilder()
	x, err := b.AddVariable("x", model.Continuous) // [0, +Inf)
	require.NoError(t, err)
	require.NoError(t, b.SetObjective(model.Maximize,
		model.Sum(model.Term{Var: x, Coeff: 1})))

	m, err := b.Build()
	require.NoError(t, err)

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, solver.Unbounded, sol.Status())
	assert.True(t, math.IsNaN(sol.ObjectiveValue()))
}

func TestSolve_ObjectiveConstant(t *testing.T) {
	// min x + 10 subject to x ≥ 2: value 12, the constant rides along.
	b := model.NewBuilder()
	x, err := b.AddVariable("x", model.Continuous)
	require.NoError(t, err)
	require.NoError(t, b.AddConstraint(model.NewConstraint(
		model.Sum(model.Term{Var: x, Coeff: 1}), model.GreaterEq, 2,
	)))
	require.NoError(t, b.SetObjective(model.Minimize,
		model.Sum(model.Term{Var: x, Coeff: 1}).AddConstant(10)))

	m, err := b.Build()
	require.NoError(t, err)

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, sol.Status())
	assert.InDelta(t, 12, sol.ObjectiveValue(), delta)
	assert.InDelta(t, 2, sol.Value(x), delta)
}

func TestSolve_NegativeLowerBound(t *testing.T) {
	// min x over x ∈ [−5, 5]: the shifted standard form must recover −5.
	b := model.NewBuilder()
	x, err := b.AddVariableWithBounds("x", model.Continuous, -5, 5)
	require.NoError(t, err)
	require.NoError(t, b.SetObjective(model.Minimize,
		model.Sum(model.Term{Var: x, Coeff: 1})))

	m, err := b.Build()
	require.NoError(t, err)

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, sol.Status())
	assert.InDelta(t, -5, sol.ObjectiveValue(), delta)
	assert.InDelta(t, -5, sol.Value(x), delta)
}

func TestSolve_MaximizeUpperBound(t *testing.T) {
	b := model.NewBuilder()
	x, err := b.AddVariableWithBounds("x", model.Continuous, 0, 7)
	require.NoError(t, err)
	require.NoError(t, b.SetObjective(model.Maximize,
		model.Sum(model.Term{Var: x, Coeff: 3})))

	m, err := b.Build()
	require.NoError(t, err)

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	require.Equal(t, solver.Optimal, sol.Status())
	assert.InDelta(t, 21, sol.ObjectiveValue(), delta)
	assert.InDelta(t, 7, sol.Value(x), delta)
}

// TestSolve_Idempotent re-solves one Model and demands bit-identical results.
func TestSolve_Idempotent(t *testing.T) {
	m := buildTransportation(t, shipCost[[2]string{"A2", "CD3"}])

	ref, err := solver.Solve(m)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		sol, err := solver.Solve(m)
		require.NoError(t, err)
		assert.Equal(t, ref.Status(), sol.Status())
		assert.Equal(t, ref.ObjectiveValue(), sol.ObjectiveValue())
		assert.Equal(t, ref.Assignment(), sol.Assignment())
	}
}

func TestSolve_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { solver.WithEps(0)(&solver.Options{}) })
	assert.Panics(t, func() { solver.WithEps(-1)(&solver.Options{}) })
	assert.Panics(t, func() { solver.WithTimeLimit(-1)(&solver.Options{}) })
}
