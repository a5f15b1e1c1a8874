// Package model provides the building blocks for linear optimization models:
// variables, linear expressions, constraints, objectives, and a validating
// builder that assembles them into an immutable Model.
//
// Design principles:
//
//   - Pure value semantics: LinearExpr operations (Add, Scale, Sum) never
//     mutate their inputs; every operation returns a fresh expression.
//     Coefficients for the same variable merge by addition, never duplicate.
//   - Single source of truth for identity: a Variable is created exactly once
//     by a Builder and carried by value inside expressions. Two variables are
//     the same iff they were created by the same Builder under the same name.
//   - Lazy validation: expressions and constraints may be composed freely;
//     ownership and shape are checked when a constraint or objective is
//     attached to the Builder, and re-checked at Build time.
//   - Immutability after Build: a Model is never mutated once built.
//     Sensitivity analysis constructs a new Model per scenario instead of
//     patching an existing one, which rules out aliasing bugs across
//     re-solves by construction.
//
// Errors (sentinel):
//
//	– ErrDuplicateVariable if a variable name is registered twice.
//	– ErrEmptyName         if a variable name is empty.
//	– ErrBadBounds         if bounds are NaN, inverted, or illegal for the domain.
//	– ErrForeignVariable   if an expression references a variable from another model.
//	– ErrEmptyConstraint   if a constraint references no variable at all.
//	– ErrUnboundObjective  if Build is called before SetObjective.
//
// Example usage:
//
//	b := model.NewBuilder()
//	x, _ := b.AddVariable("x", model.Continuous)
//	y, _ := b.AddVariable("y", model.Continuous)
//	_ = b.AddConstraint(model.NewConstraint(
//	    model.Sum(model.Term{Var: x, Coeff: 1}, model.Term{Var: y, Coeff: 2}),
//	    model.LessEq, 14,
//	).WithLabel("capacity"))
//	_ = b.SetObjective(model.Minimize, model.Sum(
//	    model.Term{Var: x, Coeff: 3}, model.Term{Var: y, Coeff: 4},
//	))
//	m, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
package model
