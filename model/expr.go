package model

import (
	"sort"
	"strings"
)

// LinearExpr is an immutable linear expression: a coefficient per referenced
// variable plus a constant term.
//
// The zero value (no terms, constant 0) is a valid neutral element: adding it
// to any expression returns an equal expression. All operations copy — an
// expression handed to Add or Scale is never modified, so expressions can be
// shared freely across constraints, objectives, and models.
type LinearExpr struct {
	terms    map[Variable]float64
	constant float64
}

// Term is a (Variable, coefficient) pair used by Sum.
type Term struct {
	Var   Variable
	Coeff float64
}

// NewExpr returns the neutral expression: no terms, constant 0.
func NewExpr() LinearExpr {
	return LinearExpr{}
}

// Constant returns an expression holding only the constant c.
func Constant(c float64) LinearExpr {
	return LinearExpr{constant: c}
}

// Sum builds an expression from (Variable, coefficient) pairs. Repeated
// variables merge by adding their coefficients; zero-coefficient results are
// dropped so that structurally equal expressions compare equal.
//
// Complexity: O(k) over the number of pairs.
func Sum(terms ...Term) LinearExpr {
	if len(terms) == 0 {
		return LinearExpr{}
	}
	out := make(map[Variable]float64, len(terms))

	var t Term
	for _, t = range terms {
		out[t.Var] += t.Coeff
		if out[t.Var] == 0 {
			delete(out, t.Var)
		}
	}

	return LinearExpr{terms: out}
}

// Add returns e + other. Neither input is mutated.
//
// Complexity: O(|e| + |other|).
func (e LinearExpr) Add(other LinearExpr) LinearExpr {
	out := make(map[Variable]float64, len(e.terms)+len(other.terms))

	var (
		v Variable
		c float64
	)
	for v, c = range e.terms {
		out[v] = c
	}
	for v, c = range other.terms {
		out[v] += c
		if out[v] == 0 {
			delete(out, v)
		}
	}

	return LinearExpr{terms: out, constant: e.constant + other.constant}
}

// AddTerm returns e + coeff·v. The receiver is not mutated.
func (e LinearExpr) AddTerm(v Variable, coeff float64) LinearExpr {
	return e.Add(Sum(Term{Var: v, Coeff: coeff}))
}

// AddConstant returns e + c. The receiver is not mutated.
func (e LinearExpr) AddConstant(c float64) LinearExpr {
	return LinearExpr{terms: e.terms, constant: e.constant + c}
}

// Scale returns k·e (constant included). The receiver is not mutated.
// Scaling by 0 yields the neutral expression.
//
// Complexity: O(|e|).
func (e LinearExpr) Scale(k float64) LinearExpr {
	if k == 0 {
		return LinearExpr{}
	}
	out := make(map[Variable]float64, len(e.terms))

	var (
		v Variable
		c float64
	)
	for v, c = range e.terms {
		out[v] = c * k
	}

	return LinearExpr{terms: out, constant: e.constant * k}
}

// Coefficient returns the coefficient of v, or 0 if v is absent.
func (e LinearExpr) Coefficient(v Variable) float64 {
	return e.terms[v]
}

// ConstantTerm returns the constant term of the expression.
func (e LinearExpr) ConstantTerm() float64 {
	return e.constant
}

// NumTerms returns the number of variables with a non-zero coefficient.
func (e LinearExpr) NumTerms() int {
	return len(e.terms)
}

// Variables returns the referenced variables sorted by name. The slice is
// freshly allocated; mutating it does not affect the expression.
func (e LinearExpr) Variables() []Variable {
	out := make([]Variable, 0, len(e.terms))
	for v := range e.terms {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })

	return out
}

// Eval computes the expression value under the given assignment. Variables
// missing from the assignment contribute 0.
func (e LinearExpr) Eval(assignment map[Variable]float64) float64 {
	total := e.constant

	var (
		v Variable
		c float64
	)
	for v, c = range e.terms {
		total += c * assignment[v]
	}

	return total
}

// String renders the expression in name order, e.g. "2*x + 3*y + 5".
func (e LinearExpr) String() string {
	var sb strings.Builder
	for i, v := range e.Variables() {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(trimFloat(e.terms[v]))
		sb.WriteString("*")
		sb.WriteString(v.name)
	}
	if e.constant != 0 || len(e.terms) == 0 {
		if sb.Len() > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(trimFloat(e.constant))
	}

	return sb.String()
}
