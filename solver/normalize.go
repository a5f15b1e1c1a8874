package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mjsms/otimizacao/model"
	"github.com/mjsms/otimizacao/simplex"
)

// normalForm is the model flattened into dense coefficient arrays with a
// fixed variable order (model insertion order). It is built once per solve;
// branch-and-bound children only vary the bound vectors passed to relax, so
// the flattening never needs to be redone.
type normalForm struct {
	vars     []model.Variable
	obj      []float64 // objective coefficients in model sense
	objConst float64
	sense    model.Sense
	rows     []nfRow
	integral []int // indices of Integer/Binary variables
}

// nfRow is one constraint with dense coefficients, constant term folded into
// the right-hand side.
type nfRow struct {
	coeffs []float64
	op     model.Op
	rhs    float64
}

// newNormalForm flattens m. The model was validated at Build time, so no
// ownership re-checks happen here.
func newNormalForm(m *model.Model) *normalForm {
	vars := m.Variables()
	nf := &normalForm{
		vars:     vars,
		obj:      make([]float64, len(vars)),
		objConst: m.Objective().Expr().ConstantTerm(),
		sense:    m.Objective().Sense(),
	}

	var (
		i int
		v model.Variable
	)
	for i, v = range vars {
		nf.obj[i] = m.Objective().Expr().Coefficient(v)
		if v.IsIntegral() {
			nf.integral = append(nf.integral, i)
		}
	}

	constraints := m.Constraints()
	nf.rows = make([]nfRow, len(constraints))
	var c model.Constraint
	for ri := range constraints {
		c = constraints[ri]
		row := nfRow{
			coeffs: make([]float64, len(vars)),
			op:     c.Op(),
			rhs:    c.RHS() - c.Expr().ConstantTerm(),
		}
		for i, v = range vars {
			row.coeffs[i] = c.Expr().Coefficient(v)
		}
		nf.rows[ri] = row
	}

	return nf
}

// bounds returns fresh lower/upper vectors seeded from the variable bounds.
func (nf *normalForm) bounds() (lower, upper []float64) {
	lower = make([]float64, len(nf.vars))
	upper = make([]float64, len(nf.vars))

	var (
		i int
		v model.Variable
	)
	for i, v = range nf.vars {
		lower[i] = v.Lower()
		upper[i] = v.Upper()
	}

	return lower, upper
}

// objectiveValue evaluates the objective (model sense, constant included)
// at a variable-space point.
func (nf *normalForm) objectiveValue(x []float64) float64 {
	total := nf.objConst

	var i int
	for i = range nf.obj {
		total += nf.obj[i] * x[i]
	}

	return total
}

// minimized maps a model-sense objective value into minimize-space, the
// space in which branch-and-bound bounds and incumbents compare.
func (nf *normalForm) minimized(objective float64) float64 {
	if nf.sense == model.Maximize {
		return -objective
	}

	return objective
}

// relax solves the continuous relaxation under the given bound vectors.
//
// Translation into standard form:
//   - substitute x_i = lower_i + y_i so every y_i ≥ 0;
//   - a finite upper bound becomes the row y_i ≤ upper_i − lower_i;
//   - ≤ rows gain a slack column (+1), ≥ rows a surplus column (−1);
//   - right-hand sides absorb the lower-bound shift.
//
// Returns the minimize-space objective, the variable-space point, and the
// node status. err is non-nil only for numerical failures.
func (nf *normalForm) relax(lower, upper []float64, eps float64) (objMin float64, x []float64, st Status, err error) {
	n := len(nf.vars)

	// Empty bound boxes (floor below a ceil-tightened lower bound) are
	// infeasible before any LP is set up.
	var i int
	for i = 0; i < n; i++ {
		if lower[i] > upper[i] {
			return 0, nil, Infeasible, nil
		}
	}

	// Count columns and rows of the standard form.
	ubRows := 0
	for i = 0; i < n; i++ {
		if !math.IsInf(upper[i], 1) {
			ubRows++
		}
	}
	slacks := ubRows
	var r nfRow
	for _, r = range nf.rows {
		if r.op != model.Equal {
			slacks++
		}
	}
	mRows := len(nf.rows) + ubRows
	cols := n + slacks

	c := make([]float64, cols)
	for i = 0; i < n; i++ {
		c[i] = nf.obj[i]
		if nf.sense == model.Maximize {
			c[i] = -c[i]
		}
	}

	// A model with no rows and no finite upper bounds has an empty standard
	// form; the kernel handles the unconstrained case directly.
	var a *mat.Dense
	if mRows > 0 {
		a = mat.NewDense(mRows, cols, nil)
	}
	b := make([]float64, mRows)

	// Model rows first, then upper-bound rows; slack columns are assigned in
	// that same order so the column layout is deterministic.
	ri, si := 0, n
	var j int
	for _, r = range nf.rows {
		shift := 0.0
		for j = 0; j < n; j++ {
			a.Set(ri, j, r.coeffs[j])
			shift += r.coeffs[j] * lower[j]
		}
		b[ri] = r.rhs - shift
		switch r.op {
		case model.LessEq:
			a.Set(ri, si, 1)
			si++
		case model.GreaterEq:
			a.Set(ri, si, -1)
			si++
		case model.Equal:
			// no slack
		}
		ri++
	}
	for i = 0; i < n; i++ {
		if math.IsInf(upper[i], 1) {
			continue
		}
		a.Set(ri, i, 1)
		a.Set(ri, si, 1)
		b[ri] = upper[i] - lower[i]
		si++
		ri++
	}

	// Hand off to the simplex kernel and translate outcomes. The interface
	// argument must stay untyped-nil when there are no rows.
	var am mat.Matrix
	if a != nil {
		am = a
	}
	_, y, serr := simplex.Solve(c, am, b, eps)
	switch {
	case serr == nil:
		// fallthrough below
	case errors.Is(serr, simplex.ErrInfeasible):
		return 0, nil, Infeasible, nil
	case errors.Is(serr, simplex.ErrUnbounded):
		return 0, nil, Unbounded, nil
	default:
		return 0, nil, NotSolved, ErrNumerical
	}

	x = make([]float64, n)
	for i = 0; i < n; i++ {
		x[i] = lower[i] + y[i]
	}

	return nf.minimized(nf.objectiveValue(x)), x, Optimal, nil
}
