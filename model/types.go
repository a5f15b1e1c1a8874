// Package model: enumerations and sentinel error set (unified, consistent).
// All constructors and the Builder MUST return these sentinels and tests MUST
// check them via errors.Is. No code in this package panics on user input.
package model

import "errors"

// Domain describes the admissible value set of a decision variable.
type Domain uint8

const (
	// Continuous variables range over the reals within their bounds.
	Continuous Domain = iota

	// Integer variables take integral values within their bounds.
	Integer

	// Binary variables take values in {0, 1}.
	Binary
)

// String returns the lowercase name of the domain.
func (d Domain) String() string {
	switch d {
	case Continuous:
		return "continuous"
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Sense describes the optimization direction of an objective.
type Sense uint8

const (
	// Minimize seeks the smallest objective value.
	Minimize Sense = iota

	// Maximize seeks the largest objective value.
	Maximize
)

// String returns the lowercase name of the sense.
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Op is the relational operator of a constraint.
type Op uint8

const (
	// LessEq constrains the expression to be ≤ the right-hand side.
	LessEq Op = iota

	// Equal constrains the expression to be = the right-hand side.
	Equal

	// GreaterEq constrains the expression to be ≥ the right-hand side.
	GreaterEq
)

// String returns the operator symbol.
func (o Op) String() string {
	switch o {
	case LessEq:
		return "<="
	case Equal:
		return "="
	case GreaterEq:
		return ">="
	default:
		return "?"
	}
}

// Sentinel errors returned by the model package.
var (
	// ErrDuplicateVariable indicates that a variable name was registered twice
	// within the same Builder.
	ErrDuplicateVariable = errors.New("model: duplicate variable name")

	// ErrEmptyName indicates that an empty variable name was supplied.
	ErrEmptyName = errors.New("model: variable name is empty")

	// ErrBadBounds indicates NaN bounds, lower > upper, a non-finite lower
	// bound, an unknown domain, or binary bounds outside [0, 1].
	ErrBadBounds = errors.New("model: invalid variable bounds")

	// ErrForeignVariable indicates that an expression references a variable
	// that was not created by this Builder.
	ErrForeignVariable = errors.New("model: variable not owned by this model")

	// ErrEmptyConstraint indicates that a constraint expression references no
	// variable at all.
	ErrEmptyConstraint = errors.New("model: constraint references no variable")

	// ErrUnboundObjective indicates that Build was called before SetObjective.
	ErrUnboundObjective = errors.New("model: objective not set")

	// ErrBadCoefficient indicates a NaN or ±Inf coefficient, constant, or
	// right-hand side in an expression or constraint.
	ErrBadCoefficient = errors.New("model: coefficient is NaN or Inf")
)
