package model

import "fmt"

// Variable is an immutable decision-variable handle.
//
// A Variable is created by Builder.AddVariable and is only meaningful inside
// expressions and constraints of the model that created it. The zero value is
// not a valid variable. Variables are comparable and may be used as map keys;
// equality means "same name registered on the same Builder".
type Variable struct {
	name   string
	domain Domain
	lower  float64
	upper  float64
	owner  *Builder
}

// Name returns the model-unique variable name.
func (v Variable) Name() string { return v.name }

// Domain returns the admissible value set of the variable.
func (v Variable) Domain() Domain { return v.domain }

// Lower returns the lower bound. Defaults: 0 for all domains.
func (v Variable) Lower() float64 { return v.lower }

// Upper returns the upper bound. Defaults: +Inf for continuous and integer
// variables, 1 for binary variables.
func (v Variable) Upper() float64 { return v.upper }

// IsIntegral reports whether the variable is Integer or Binary.
func (v Variable) IsIntegral() bool { return v.domain == Integer || v.domain == Binary }

// String renders the variable as "name[domain: lo..hi]" for diagnostics.
func (v Variable) String() string {
	return fmt.Sprintf("%s[%s: %g..%g]", v.name, v.domain, v.lower, v.upper)
}
