// Package model_test — property-based checks of the expression algebra over
// randomly drawn coefficients.
package model_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mjsms/otimizacao/model"
)

// exprEq compares two expressions coefficient-by-coefficient within tol.
func exprEq(a, b model.LinearExpr, vars []model.Variable, tol float64) bool {
	if math.Abs(a.ConstantTerm()-b.ConstantTerm()) > tol {
		return false
	}
	for _, v := range vars {
		if math.Abs(a.Coefficient(v)-b.Coefficient(v)) > tol {
			return false
		}
	}

	return true
}

func TestExprAlgebra_Properties(t *testing.T) {
	b := model.NewBuilder()
	x, _ := b.AddVariable("x", model.Continuous)
	y, _ := b.AddVariable("y", model.Continuous)
	vars := []model.Variable{x, y}

	mk := func(cx, cy, k float64) model.LinearExpr {
		return model.Sum(
			model.Term{Var: x, Coeff: cx},
			model.Term{Var: y, Coeff: cy},
		).AddConstant(k)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(1) // deterministic runs

	coeff := gen.Float64Range(-1e3, 1e3)
	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a1, a2, a3, b1, b2, b3 float64) bool {
			ea, eb := mk(a1, a2, a3), mk(b1, b2, b3)

			return exprEq(ea.Add(eb), eb.Add(ea), vars, 1e-9)
		},
		coeff, coeff, coeff, coeff, coeff, coeff,
	))

	properties.Property("scaling distributes over addition", prop.ForAll(
		func(a1, a2, a3, b1, b2, b3, k float64) bool {
			ea, eb := mk(a1, a2, a3), mk(b1, b2, b3)
			lhs := ea.Add(eb).Scale(k)
			rhs := ea.Scale(k).Add(eb.Scale(k))

			return exprEq(lhs, rhs, vars, 1e-6)
		},
		coeff, coeff, coeff, coeff, coeff, coeff, gen.Float64Range(-100, 100),
	))

	properties.Property("neutral element is an additive identity", prop.ForAll(
		func(a1, a2, a3 float64) bool {
			ea := mk(a1, a2, a3)

			return exprEq(ea.Add(model.NewExpr()), ea, vars, 0)
		},
		coeff, coeff, coeff,
	))

	properties.TestingRun(t)
}
