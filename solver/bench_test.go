package solver_test

import (
	"fmt"
	"testing"

	"github.com/mjsms/otimizacao/model"
	"github.com/mjsms/otimizacao/solver"
)

// benchModel builds an n×n transportation LP with unit supplies/demands and
// deterministic costs. Continuous, so it measures the simplex path alone.
func benchModel(n int) *model.Model {
	b := model.NewBuilder()
	x := make([][]model.Variable, n)
	var obj model.LinearExpr

	for i := 0; i < n; i++ {
		x[i] = make([]model.Variable, n)
		for j := 0; j < n; j++ {
			v, err := b.AddVariable(fmt.Sprintf("x_%d_%d", i, j), model.Continuous)
			if err != nil {
				panic(err)
			}
			x[i][j] = v
			obj = obj.AddTerm(v, float64(1+(i*7+j*3)%11))
		}
	}
	for i := 0; i < n; i++ {
		rowExpr, colExpr := model.NewExpr(), model.NewExpr()
		for j := 0; j < n; j++ {
			rowExpr = rowExpr.AddTerm(x[i][j], 1)
			colExpr = colExpr.AddTerm(x[j][i], 1)
		}
		if err := b.AddConstraint(model.NewConstraint(rowExpr, model.LessEq, 1)); err != nil {
			panic(err)
		}
		if err := b.AddConstraint(model.NewConstraint(colExpr, model.Equal, 1)); err != nil {
			panic(err)
		}
	}
	if err := b.SetObjective(model.Minimize, obj); err != nil {
		panic(err)
	}

	m, err := b.Build()
	if err != nil {
		panic(err)
	}

	return m
}

// BenchmarkSolve_TransportationLP measures the continuous path on an 8×8
// transportation instance (64 variables, 16 rows).
func BenchmarkSolve_TransportationLP(b *testing.B) {
	m := benchModel(8)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Assignment4x4 measures branch-and-bound on the binary 4×4
// assignment study (root relaxation plus any branching it triggers).
func BenchmarkSolve_Assignment4x4(b *testing.B) {
	m := benchAssignment()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

// benchAssignment mirrors the assignment study without testing.T plumbing.
func benchAssignment() *model.Model {
	b := model.NewBuilder()
	var obj model.LinearExpr
	x := make(map[[2]string]model.Variable, len(taskCost))

	for _, w := range workers {
		for _, tk := range tasks {
			v, err := b.AddVariable("x_"+w+"_"+tk, model.Binary)
			if err != nil {
				panic(err)
			}
			x[[2]string{w, tk}] = v
			obj = obj.AddTerm(v, taskCost[[2]string{w, tk}])
		}
	}
	for _, w := range workers {
		e := model.NewExpr()
		for _, tk := range tasks {
			e = e.AddTerm(x[[2]string{w, tk}], 1)
		}
		if err := b.AddConstraint(model.NewConstraint(e, model.Equal, 1)); err != nil {
			panic(err)
		}
	}
	for _, tk := range tasks {
		e := model.NewExpr()
		for _, w := range workers {
			e = e.AddTerm(x[[2]string{w, tk}], 1)
		}
		if err := b.AddConstraint(model.NewConstraint(e, model.Equal, 1)); err != nil {
			panic(err)
		}
	}
	if err := b.SetObjective(model.Minimize, obj); err != nil {
		panic(err)
	}

	m, err := b.Build()
	if err != nil {
		panic(err)
	}

	return m
}
