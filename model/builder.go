package model

import (
	"fmt"
	"math"
)

// Builder accumulates variables, constraints, and an objective, validating
// ownership and shape as pieces are attached, and finally assembles an
// immutable Model.
//
// A Builder is not safe for concurrent use. Build may be called more than
// once; each call snapshots the current state into an independent Model.
type Builder struct {
	vars        map[string]Variable
	order       []string // variable names in insertion order
	constraints []Constraint
	objective   Objective
	hasObj      bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{vars: make(map[string]Variable)}
}

// AddVariable registers a variable with domain-default bounds:
// [0, +Inf) for Continuous and Integer, [0, 1] for Binary.
//
// Errors: ErrEmptyName, ErrDuplicateVariable, ErrBadBounds (unknown domain).
func (b *Builder) AddVariable(name string, domain Domain) (Variable, error) {
	switch domain {
	case Continuous, Integer:
		return b.AddVariableWithBounds(name, domain, 0, math.Inf(1))
	case Binary:
		return b.AddVariableWithBounds(name, domain, 0, 1)
	default:
		return Variable{}, fmt.Errorf("%w: unknown domain %d", ErrBadBounds, domain)
	}
}

// AddVariableWithBounds registers a variable with explicit bounds.
//
// Bound contract:
//   - neither bound may be NaN, and lower must be finite (the standard-form
//     translation shifts variables by their lower bound),
//   - lower ≤ upper,
//   - Binary bounds must stay within [0, 1].
//
// Errors: ErrEmptyName, ErrDuplicateVariable, ErrBadBounds.
func (b *Builder) AddVariableWithBounds(name string, domain Domain, lower, upper float64) (Variable, error) {
	// Stage 1: name checks.
	if name == "" {
		return Variable{}, ErrEmptyName
	}
	if _, exists := b.vars[name]; exists {
		return Variable{}, fmt.Errorf("%w: %q", ErrDuplicateVariable, name)
	}

	// Stage 2: domain and bound checks.
	if domain != Continuous && domain != Integer && domain != Binary {
		return Variable{}, fmt.Errorf("%w: unknown domain %d", ErrBadBounds, domain)
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) {
		return Variable{}, fmt.Errorf("%w: %q [%g, %g]", ErrBadBounds, name, lower, upper)
	}
	if lower > upper {
		return Variable{}, fmt.Errorf("%w: %q lower %g > upper %g", ErrBadBounds, name, lower, upper)
	}
	if domain == Binary && (lower < 0 || upper > 1) {
		return Variable{}, fmt.Errorf("%w: binary %q must stay within [0,1]", ErrBadBounds, name)
	}

	v := Variable{name: name, domain: domain, lower: lower, upper: upper, owner: b}
	b.vars[name] = v
	b.order = append(b.order, name)

	return v, nil
}

// AddConstraint attaches a constraint after validating that every referenced
// variable is owned by this Builder and that the constraint is well-formed.
//
// Errors: ErrForeignVariable, ErrEmptyConstraint, ErrBadCoefficient.
func (b *Builder) AddConstraint(c Constraint) error {
	if c.expr.NumTerms() == 0 {
		return b.wrapLabel(ErrEmptyConstraint, c.label)
	}
	if math.IsNaN(c.rhs) || math.IsInf(c.rhs, 0) {
		return b.wrapLabel(ErrBadCoefficient, c.label)
	}
	if err := b.validateExpr(c.expr); err != nil {
		return b.wrapLabel(err, c.label)
	}
	b.constraints = append(b.constraints, c)

	return nil
}

// SetObjective sets (or replaces) the objective. An objective expression with
// no terms is permitted: the model degenerates to a feasibility check with a
// constant objective value.
//
// Errors: ErrForeignVariable, ErrBadCoefficient.
func (b *Builder) SetObjective(sense Sense, expr LinearExpr) error {
	if err := b.validateExpr(expr); err != nil {
		return err
	}
	b.objective = Objective{sense: sense, expr: expr}
	b.hasObj = true

	return nil
}

// Build performs the final cross-reference check and snapshots the current
// state into an immutable Model.
//
// Errors: ErrUnboundObjective, plus any attach-time sentinel if the Builder
// was manipulated into an inconsistent state.
func (b *Builder) Build() (*Model, error) {
	if !b.hasObj {
		return nil, ErrUnboundObjective
	}

	// Re-run the cross-reference check over everything attached so far.
	// AddConstraint/SetObjective already validated each piece, but Build is
	// the documented point where the whole-model invariant is guaranteed.
	var c Constraint
	for _, c = range b.constraints {
		if err := b.validateExpr(c.expr); err != nil {
			return nil, b.wrapLabel(err, c.label)
		}
	}
	if err := b.validateExpr(b.objective.expr); err != nil {
		return nil, err
	}

	m := &Model{
		byName:      make(map[string]Variable, len(b.vars)),
		vars:        make([]Variable, 0, len(b.order)),
		constraints: make([]Constraint, len(b.constraints)),
		objective:   b.objective,
	}
	var name string
	for _, name = range b.order {
		m.vars = append(m.vars, b.vars[name])
		m.byName[name] = b.vars[name]
	}
	copy(m.constraints, b.constraints)

	return m, nil
}

// validateExpr checks ownership and numeric sanity of every term.
func (b *Builder) validateExpr(e LinearExpr) error {
	if math.IsNaN(e.constant) || math.IsInf(e.constant, 0) {
		return ErrBadCoefficient
	}

	var (
		v Variable
		c float64
	)
	for v, c = range e.terms {
		if v.owner != b {
			return fmt.Errorf("%w: %q", ErrForeignVariable, v.name)
		}
		if registered, ok := b.vars[v.name]; !ok || registered != v {
			return fmt.Errorf("%w: %q", ErrForeignVariable, v.name)
		}
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: term %q", ErrBadCoefficient, v.name)
		}
	}

	return nil
}

// wrapLabel adds the constraint label to an error when one is present.
func (b *Builder) wrapLabel(err error, label string) error {
	if label == "" {
		return err
	}

	return fmt.Errorf("%w (constraint %q)", err, label)
}

// Model is an immutable optimization model: a set of uniquely named
// variables, an ordered sequence of constraints (order affects diagnostics
// only), and exactly one objective.
type Model struct {
	vars        []Variable
	byName      map[string]Variable
	constraints []Constraint
	objective   Objective
}

// Variables returns the variables in insertion order. The slice is a copy.
func (m *Model) Variables() []Variable {
	out := make([]Variable, len(m.vars))
	copy(out, m.vars)

	return out
}

// Variable looks up a variable by name.
func (m *Model) Variable(name string) (Variable, bool) {
	v, ok := m.byName[name]

	return v, ok
}

// Constraints returns the constraints in attachment order. The slice is a copy.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.constraints))
	copy(out, m.constraints)

	return out
}

// ConstraintByLabel returns the first constraint carrying the given label.
func (m *Model) ConstraintByLabel(label string) (Constraint, bool) {
	var c Constraint
	for _, c = range m.constraints {
		if c.label == label {
			return c, true
		}
	}

	return Constraint{}, false
}

// Objective returns the model objective.
func (m *Model) Objective() Objective { return m.objective }

// NumVariables returns the number of registered variables.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumConstraints returns the number of attached constraints.
func (m *Model) NumConstraints() int { return len(m.constraints) }

// HasIntegral reports whether any variable is Integer or Binary.
func (m *Model) HasIntegral() bool {
	var v Variable
	for _, v = range m.vars {
		if v.IsIntegral() {
			return true
		}
	}

	return false
}
