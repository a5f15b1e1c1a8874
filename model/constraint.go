package model

import (
	"fmt"
	"strconv"
)

// Constraint couples a linear expression with a relational operator and a
// right-hand-side constant. The optional label is carried for diagnostics
// only and has no effect on feasibility.
//
// Construction performs no validation: expressions may be composed freely and
// attached later. Ownership and shape are verified by Builder.AddConstraint.
type Constraint struct {
	expr  LinearExpr
	op    Op
	rhs   float64
	label string
}

// NewConstraint builds the constraint "expr op rhs".
// A constant term inside expr is folded into the right-hand side at
// normalization time (expr + k op rhs ⇔ expr op rhs − k).
func NewConstraint(expr LinearExpr, op Op, rhs float64) Constraint {
	return Constraint{expr: expr, op: op, rhs: rhs}
}

// WithLabel returns a copy of the constraint tagged with a diagnostic label.
func (c Constraint) WithLabel(label string) Constraint {
	c.label = label

	return c
}

// Expr returns the left-hand-side expression.
func (c Constraint) Expr() LinearExpr { return c.expr }

// Op returns the relational operator.
func (c Constraint) Op() Op { return c.op }

// RHS returns the right-hand-side constant.
func (c Constraint) RHS() float64 { return c.rhs }

// Label returns the diagnostic label ("" when unset).
func (c Constraint) Label() string { return c.label }

// String renders the constraint for diagnostics, label first when present.
func (c Constraint) String() string {
	if c.label != "" {
		return fmt.Sprintf("%s: %s %s %s", c.label, c.expr, c.op, trimFloat(c.rhs))
	}

	return fmt.Sprintf("%s %s %s", c.expr, c.op, trimFloat(c.rhs))
}

// Objective couples an optimization sense with a linear expression.
// A constant term in the expression is carried through into the reported
// objective value.
type Objective struct {
	sense Sense
	expr  LinearExpr
}

// NewObjective builds an objective. Validation happens at SetObjective time.
func NewObjective(sense Sense, expr LinearExpr) Objective {
	return Objective{sense: sense, expr: expr}
}

// Sense returns the optimization direction.
func (o Objective) Sense() Sense { return o.sense }

// Expr returns the objective expression.
func (o Objective) Expr() LinearExpr { return o.expr }

// trimFloat renders f with the shortest representation that round-trips.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
