package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve minimizes c·x subject to A·x = b, x ≥ 0 using the two-phase primal
// simplex method with Bland's rule.
//
// Inputs:
//
//   - c: objective coefficients, len(c) == number of columns of a.
//   - a: dense constraint matrix; may be nil when b is empty (no constraints).
//   - b: right-hand sides, len(b) == number of rows of a. Signs are
//     normalized internally; callers need not pre-arrange b ≥ 0.
//   - tol: zero/feasibility tolerance; values within tol of zero are treated
//     as zero. Non-positive tol selects DefaultTol.
//
// Returns the optimal objective value and a minimizing x. On ErrUnbounded the
// objective is −Inf and x is nil; on ErrInfeasible the objective is NaN.
//
// Determinism: identical inputs produce identical pivots and therefore an
// identical optimal vertex, even across degenerate optimal plateaus.
func Solve(c []float64, a mat.Matrix, b []float64, tol float64) (float64, []float64, error) {
	if tol <= 0 {
		tol = DefaultTol
	}

	// Stage 1: shape and finiteness validation.
	n := len(c)
	if n == 0 {
		return math.NaN(), nil, ErrBadInput
	}
	var m int
	if a != nil {
		var an int
		m, an = a.Dims()
		if an != n {
			return math.NaN(), nil, ErrBadInput
		}
	}
	if len(b) != m {
		return math.NaN(), nil, ErrBadInput
	}
	if err := checkFinite(c, a, b); err != nil {
		return math.NaN(), nil, err
	}

	// Stage 2: trivial unconstrained case. With x ≥ 0 only, any negative cost
	// coefficient gives an improving ray; otherwise x = 0 is optimal.
	if m == 0 {
		var cj float64
		for _, cj = range c {
			if cj < -tol {
				return math.Inf(-1), nil, ErrUnbounded
			}
		}

		return 0, make([]float64, n), nil
	}

	// Stage 3: Phase I tableau. One artificial column per row; rows are
	// sign-flipped so the right-hand side is non-negative and the artificial
	// basis is feasible.
	cols := n + m
	t := mat.NewDense(m+1, cols+1, nil)
	basis := make([]int, m)

	var (
		i, j int
		sign float64
	)
	for i = 0; i < m; i++ {
		sign = 1
		if b[i] < 0 {
			sign = -1
		}
		row := t.RawRowView(i)
		for j = 0; j < n; j++ {
			row[j] = sign * a.At(i, j)
		}
		row[n+i] = 1
		row[cols] = sign * b[i]
		basis[i] = n + i
	}

	// Phase I reduced costs: start from c_I = (0,…,0,1,…,1) and eliminate the
	// artificial basis by subtracting every constraint row.
	obj := t.RawRowView(m)
	for i = 0; i < m; i++ {
		obj[n+i] = 1
	}
	for i = 0; i < m; i++ {
		floats.Sub(obj, t.RawRowView(i))
	}

	if err := iterate(t, basis, cols, tol); err != nil {
		// Phase I is bounded below by zero, so an unbounded ray here means the
		// tableau degenerated numerically rather than a property of the input.
		if err == ErrUnbounded {
			return math.NaN(), nil, ErrNumerical
		}

		return math.NaN(), nil, err
	}

	// Stage 4: feasibility decision. The Phase I optimum is the minimal
	// attainable artificial sum; anything beyond tolerance is infeasibility.
	if artificialSum := -obj[cols]; artificialSum > tol {
		return math.NaN(), nil, ErrInfeasible
	}

	// Stage 5: drive remaining artificials out of the basis. A row with a
	// basic artificial and no structural pivot candidate is linearly
	// redundant and is dropped when the Phase II tableau is assembled.
	for i = 0; i < m; i++ {
		if basis[i] < n {
			continue
		}
		row := t.RawRowView(i)
		for j = 0; j < n; j++ {
			if math.Abs(row[j]) > tol {
				pivot(t, basis, i, j)

				break
			}
		}
	}

	// Stage 6: Phase II tableau over structural columns only.
	kept := make([]int, 0, m)
	for i = 0; i < m; i++ {
		if basis[i] < n {
			kept = append(kept, i)
		}
	}
	m2 := len(kept)
	t2 := mat.NewDense(m2+1, n+1, nil)
	basis2 := make([]int, m2)

	var k int
	for k, i = range kept {
		src := t.RawRowView(i)
		dst := t2.RawRowView(k)
		copy(dst[:n], src[:n])
		dst[n] = src[cols]
		basis2[k] = basis[i]
	}

	// Phase II reduced costs: copy c, then eliminate each basic column.
	obj2 := t2.RawRowView(m2)
	copy(obj2[:n], c)
	var f float64
	for k = 0; k < m2; k++ {
		f = obj2[basis2[k]]
		if f != 0 {
			floats.AddScaled(obj2, -f, t2.RawRowView(k))
		}
	}

	if err := iterate(t2, basis2, n, tol); err != nil {
		if err == ErrUnbounded {
			return math.Inf(-1), nil, ErrUnbounded
		}

		return math.NaN(), nil, err
	}

	// Stage 7: read the optimal vertex off the basis. Tiny negative basics
	// are a tolerance artifact and are clamped to zero.
	x := make([]float64, n)
	var v float64
	for k = 0; k < m2; k++ {
		v = t2.At(k, n)
		if v < 0 {
			v = 0
		}
		x[basis2[k]] = v
	}

	return floats.Dot(c, x), x, nil
}

// iterate runs simplex pivots until optimality, unboundedness, or the
// iteration guard. Entering columns are restricted to indices < limit, which
// excludes artificial columns during Phase II.
func iterate(t *mat.Dense, basis []int, limit int, tol float64) error {
	rows, cs := t.Dims()
	m := rows - 1
	rhs := cs - 1
	obj := t.RawRowView(m)

	var (
		iter, col, r, i int
		piv, ratio      float64
		best            float64
	)
	for iter = 0; ; iter++ {
		if iter > iterGuard {
			return ErrNumerical
		}

		// Entering column: Bland's rule, smallest index with negative reduced cost.
		col = -1
		for i = 0; i < limit; i++ {
			if obj[i] < -tol {
				col = i

				break
			}
		}
		if col < 0 {
			return nil // optimal
		}

		// Leaving row: minimal ratio; ties resolved toward the smallest basic
		// index (Bland), so degenerate plateaus cannot cycle in practice.
		r = -1
		for i = 0; i < m; i++ {
			piv = t.At(i, col)
			if piv <= tol {
				continue
			}
			ratio = t.At(i, rhs) / piv
			switch {
			case r < 0:
				r, best = i, ratio
			case ratio < best-tol:
				r, best = i, ratio
			case math.Abs(ratio-best) <= tol && basis[i] < basis[r]:
				r, best = i, ratio
			}
		}
		if r < 0 {
			return ErrUnbounded
		}

		pivot(t, basis, r, col)
	}
}

// pivot normalizes row r on column col and eliminates col from every other
// row, including the reduced-cost row, then records the basis change.
func pivot(t *mat.Dense, basis []int, r, col int) {
	rows, _ := t.Dims()
	prow := t.RawRowView(r)
	floats.Scale(1/prow[col], prow)

	var (
		i int
		f float64
	)
	for i = 0; i < rows; i++ {
		if i == r {
			continue
		}
		row := t.RawRowView(i)
		f = row[col]
		if f != 0 {
			floats.AddScaled(row, -f, prow)
		}
	}
	basis[r] = col
}

// checkFinite rejects NaN and ±Inf anywhere in the problem data.
func checkFinite(c []float64, a mat.Matrix, b []float64) error {
	var x float64
	for _, x = range c {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrBadInput
		}
	}
	for _, x = range b {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrBadInput
		}
	}
	if a == nil {
		return nil
	}
	m, n := a.Dims()

	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			x = a.At(i, j)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return ErrBadInput
			}
		}
	}

	return nil
}
