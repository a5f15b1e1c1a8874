package solver

import (
	"math"

	"github.com/mjsms/otimizacao/model"
)

// Solution is the immutable result of a solve: a status, an objective value,
// and one value per model variable. It is produced once by Solve and only
// read afterwards.
type Solution struct {
	status    Status
	objective float64
	values    map[model.Variable]float64
}

// Status returns the solve outcome.
func (s *Solution) Status() Status { return s.status }

// ObjectiveValue returns the optimal objective value, including any constant
// term of the objective expression. It is defined only when Status is
// Optimal; otherwise NaN is returned.
func (s *Solution) ObjectiveValue() float64 {
	if s.status != Optimal {
		return math.NaN()
	}

	return s.objective
}

// Value returns the solved value of v, or 0 when v has no entry (foreign
// variable, or a non-Optimal solution).
func (s *Solution) Value(v model.Variable) float64 {
	return s.values[v]
}

// Assignment returns a copy of the full variable assignment. Mutating the
// returned map does not affect the Solution.
func (s *Solution) Assignment() map[model.Variable]float64 {
	out := make(map[model.Variable]float64, len(s.values))

	var (
		v model.Variable
		x float64
	)
	for v, x = range s.values {
		out[v] = x
	}

	return out
}

// SumOver aggregates the values of every variable matching pred. Typical use
// is per-group totals in reports, e.g. everything shipped from one source:
//
//	total := sol.SumOver(func(v model.Variable) bool {
//	    return strings.HasPrefix(v.Name(), "x_A2_")
//	})
func (s *Solution) SumOver(pred func(model.Variable) bool) float64 {
	var (
		total float64
		v     model.Variable
		x     float64
	)
	for v, x = range s.values {
		if pred(v) {
			total += x
		}
	}

	return total
}

// NonzeroCount returns the number of variables with a non-zero solved value.
// Zero snapping already happened at solve time, so exact comparison is safe.
func (s *Solution) NonzeroCount() int {
	var (
		n int
		x float64
	)
	for _, x = range s.values {
		if x != 0 {
			n++
		}
	}

	return n
}
