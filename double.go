package kelly

import "math"

// Double - jointly optimal Kelly fractions for two independent bets.
//
// Description:
//
//	Finds (f1*, f2*) maximizing Σᵢ Σⱼ p1[i]·p2[j]·log(1 + r1[i]·f1 + r2[j]·f2),
//	the expected log-growth when both wagers ride the same bankroll
//	simultaneously. Even though the bets are independent, the shared
//	denominator couples the optima, so the joint solution sits near — but
//	not exactly at — the per-bet single solutions.
//
// Algorithm Outline:
//  1. Solve each bet alone with Single; the results bracket the joint
//     optimum and expose degenerate cases early.
//  2. Sentinel shortcuts: an unbounded single bet stays unbounded no
//     matter what the other does. One unbounded ⇒ (unbounded, 0); both ⇒
//     both tags pass through. The 2-D machinery never runs on an
//     ill-posed bracket.
//  3. Brackets [0, fsᵢ] (or [fsᵢ, 0] when short), midpoint fsᵢ/2.
//  4. 2-D bisection: each bracket tightens independently on the sign of
//     its own partial from GrowthGrad. The partials are treated as
//     uncoupled — a deliberate near-diagonal-dominance heuristic that
//     holds because the bets are independent. The loop runs while BOTH
//     widths exceed BisectTol, so one coordinate may exit
//     under-converged; the Newton phase corrects it.
//  5. Newton refinement via doubleStep (closed-form 2×2 Jacobian, Cramer
//     solve) until both coordinate deltas drop below NewtonTol.
//
// Errors:
//   - ErrEmptyDistribution, ErrLengthMismatch, ErrNegativeProbability —
//     malformed input (either distribution).
//   - ErrNonConvergence — a phase exceeded Options.MaxIter.
//
// Complexity: O(n·m) per gradient/step evaluation over the outcome
// cross-product; phase iteration counts as in Single.
func Double(returns1, returns2, probs1, probs2 []float64, opts Options) (Fraction, Fraction, error) {
	var o = opts.normalized()

	// Per-bet solutions double as validation, brackets and shortcuts.
	fs1, err := Single(returns1, probs1, o)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	fs2, err := Single(returns2, probs2, o)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}

	// Unbounded single bets short-circuit the joint solve.
	if fs1.Unbounded() {
		if fs2.Unbounded() {
			return fs1, fs2, nil
		}

		return fs1, Fraction{Bound: Bounded}, nil
	}
	if fs2.Unbounded() {
		return Fraction{Bound: Bounded}, fs2, nil
	}

	// Bet 1 bracket: between zero and the single-bet solution.
	var xmin, xmax float64
	if fs1.Value > 0 {
		xmax = fs1.Value
		xmin = 0
	} else {
		xmax = 0
		xmin = fs1.Value
	}
	var x = fs1.Value / 2.0

	// Bet 2 bracket, same construction.
	var ymin, ymax float64
	if fs2.Value > 0 {
		ymax = fs2.Value
		ymin = 0
	} else {
		ymax = 0
		ymin = fs2.Value
	}
	var y = fs2.Value / 2.0

	// 2-D bisection: tighten both boxes until either converges.
	var (
		g1, g2 float64
		iter   int
	)
	for iter = 0; (xmax-xmin) > o.BisectTol && (ymax-ymin) > o.BisectTol; iter++ {
		if iter >= o.MaxIter {
			return Fraction{}, Fraction{}, ErrNonConvergence
		}
		g1, g2 = GrowthGrad(returns1, returns2, probs1, probs2, x, y)
		if g1 > 0 {
			xmin = x
		} else {
			xmax = x
		}
		if g2 > 0 {
			ymin = y
		} else {
			ymax = y
		}
		x = (xmax + xmin) / 2.0
		y = (ymax + ymin) / 2.0
	}

	// Zero in on both coordinates with the Newton refinement.
	var (
		x0, y0 = x, y
		ok     bool
	)
	x, y, ok = doubleStep(returns1, returns2, probs1, probs2, x0, y0)
	if !ok {
		// Degenerate Jacobian: the bisection iterate is the best answer.
		return Fraction{Value: x0, Bound: Bounded}, Fraction{Value: y0, Bound: Bounded}, nil
	}
	for iter = 0; math.Abs(x-x0) > o.NewtonTol || math.Abs(y-y0) > o.NewtonTol; iter++ {
		if iter >= o.MaxIter {
			return Fraction{}, Fraction{}, ErrNonConvergence
		}
		x0, y0 = x, y
		x, y, ok = doubleStep(returns1, returns2, probs1, probs2, x0, y0)
		if !ok {
			break
		}
	}

	return Fraction{Value: x, Bound: Bounded}, Fraction{Value: y, Bound: Bounded}, nil
}

// doubleStep performs one Newton iteration of the 2-D refinement.
//
// Seven running sums over the outcome cross-product assemble the gradient
// system's closed-form 2×2 Jacobian. With R = r[k]/den, S = s[l]/den,
// den = 1 + r[k]·x + s[l]·y and joint weight p = p1[k]·p2[l]:
//
//	s1 = Σ R        s2 = Σ S
//	s3 = Σ p·R      s4 = Σ p·S
//	s5 = Σ (p·R)·R  s6 = Σ (p·S)·S  s7 = Σ (p·R)·S
//
// Jacobian entries (partials of the two gradient components):
//
//	fx = s1·s3 − s5   fy = s2·s3 − s7
//	gx = s1·s4 − s7   gy = s2·s4 − s6
//
// The step (dx,dy) solves the 2×2 system by Cramer's rule with
// det = fx·gy − fy·gx. Nearly parallel gradient surfaces make det vanish
// and would blow the step up, so |det| < detEpsilon reports ok=false and
// the caller keeps its current iterate. A zero bankroll-multiplier
// denominator is substituted with denomEpsilon, as in singleStep.
//
// Complexity: O(n·m).
func doubleStep(returns1, returns2, probs1, probs2 []float64, x, y float64) (float64, float64, bool) {
	var (
		s1, s2, s3, s4, s5, s6, s7 float64
		den                        float64
		rkl, skl, prkl, pskl       float64
		k, l                       int
	)
	for k = 0; k < len(probs1); k++ {
		for l = 0; l < len(probs2); l++ {
			den = 1.0 + returns1[k]*x + returns2[l]*y
			if den == 0 {
				den = denomEpsilon
			}
			rkl = returns1[k] / den
			skl = returns2[l] / den
			prkl = probs1[k] * probs2[l] * rkl
			pskl = probs1[k] * probs2[l] * skl
			s1 += rkl
			s2 += skl
			s3 += prkl
			s4 += pskl
			s5 += prkl * rkl
			s6 += pskl * skl
			s7 += prkl * skl
		}
	}

	var (
		fx  = s1*s3 - s5
		fy  = s2*s3 - s7
		gx  = s1*s4 - s7
		gy  = s2*s4 - s6
		det = fx*gy - fy*gx
	)
	if math.Abs(det) < detEpsilon {
		return x, y, false
	}

	var (
		dx = (s4*fy - s3*gy) / det
		dy = (s3*gx - s4*fx) / det
	)

	return x + dx, y + dy, true
}
