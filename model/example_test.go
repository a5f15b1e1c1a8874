package model_test

import (
	"fmt"

	"github.com/mjsms/otimizacao/model"
)

// ExampleBuilder assembles a tiny production-mix model and prints it.
func ExampleBuilder() {
	b := model.NewBuilder()
	x, _ := b.AddVariable("x", model.Continuous)
	y, _ := b.AddVariable("y", model.Continuous)

	_ = b.AddConstraint(model.NewConstraint(
		model.Sum(model.Term{Var: x, Coeff: 1}, model.Term{Var: y, Coeff: 2}),
		model.LessEq, 14,
	).WithLabel("machine-hours"))
	_ = b.SetObjective(model.Maximize,
		model.Sum(model.Term{Var: x, Coeff: 3}, model.Term{Var: y, Coeff: 4}))

	m, _ := b.Build()
	for _, c := range m.Constraints() {
		fmt.Println(c)
	}
	fmt.Println(m.Objective().Sense(), m.Objective().Expr())

	// Output:
	// machine-hours: 1*x + 2*y <= 14
	// maximize 3*x + 4*y
}

// ExampleSum shows that repeated variables merge and cancellation drops terms.
func ExampleSum() {
	b := model.NewBuilder()
	x, _ := b.AddVariable("x", model.Continuous)
	y, _ := b.AddVariable("y", model.Continuous)

	e := model.Sum(
		model.Term{Var: x, Coeff: 2},
		model.Term{Var: y, Coeff: 5},
		model.Term{Var: x, Coeff: 3},
		model.Term{Var: y, Coeff: -5},
	)
	fmt.Println(e)
	fmt.Println(e.NumTerms())

	// Output:
	// 5*x
	// 1
}
