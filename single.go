package kelly

import "math"

// Single - optimal Kelly fraction for one discrete-outcome bet.
//
// Description:
//
//	Finds the fraction f* maximizing expected log-growth
//	G(f) = Σ p[k]·log(1 + r[k]·f) by driving the growth derivative
//	GrowthDeriv to zero.
//
// Algorithm Outline:
//  1. Degenerate shortcuts: all returns ≤ 0 ⇒ UnboundedShort; all
//     returns ≥ 0 ⇒ UnboundedLong (checked in that order). Neither has a
//     finite optimum — the caller must treat them as "go to the position
//     limit".
//  2. Bracket: if Expectation ≥ 0 the optimum lies in (0, −1/min r) —
//     long, bounded where the worst outcome bankrupts; otherwise in
//     (−1/max r, 0) — the symmetric short bound. Start at the midpoint.
//  3. Bisection: the derivative is monotone decreasing (concave G), so a
//     positive midpoint value tightens the lower bound, negative the
//     upper, until the bracket is narrower than BisectTol. This hands
//     Newton a start it cannot diverge or oscillate from.
//  4. Refinement: the self-consistent fixed-point step singleStep until
//     successive iterates differ by less than NewtonTol.
//
// Errors:
//   - ErrEmptyDistribution, ErrLengthMismatch, ErrNegativeProbability —
//     malformed input.
//   - ErrNonConvergence — a phase exceeded Options.MaxIter.
//
// Complexity: O(n) per evaluation; bisection takes
// O(log(bracket/BisectTol)) evaluations, refinement a handful more.
func Single(returns, probs []float64, opts Options) (Fraction, error) {
	if err := validateDistribution(returns, probs); err != nil {
		return Fraction{}, err
	}
	var o = opts.normalized()

	// Locate the return extremes for the shortcuts and the bracket bound.
	var (
		rmin = returns[0]
		rmax = returns[0]
		i    int
	)
	for i = 1; i < len(returns); i++ {
		if returns[i] < rmin {
			rmin = returns[i]
		}
		if returns[i] > rmax {
			rmax = returns[i]
		}
	}

	// One-sided distributions have no interior optimum.
	if rmax <= 0 {
		return Fraction{Bound: UnboundedShort}, nil
	}
	if rmin >= 0 {
		return Fraction{Bound: UnboundedLong}, nil
	}

	// Initial bracket from the sign of the raw expectation.
	var xmin, xmax, x float64
	if Expectation(probs, returns) >= 0 {
		xmax = -1.0 / rmin
		xmin = 0.0
		x = xmax / 2.0
	} else {
		xmax = 0.0
		xmin = -1.0 / rmax
		x = xmin / 2.0
	}

	// Bisection: tighten the box around the root by derivative sign.
	var iter int
	for iter = 0; (xmax - xmin) > o.BisectTol; iter++ {
		if iter >= o.MaxIter {
			return Fraction{}, ErrNonConvergence
		}
		if GrowthDeriv(returns, probs, x) > 0 {
			xmin = x
		} else {
			xmax = x
		}
		x = (xmax + xmin) / 2.0
	}

	// Zero in with the fixed-point refinement.
	var (
		x0 = x
		x1 = singleStep(returns, probs, x)
	)
	for iter = 0; math.Abs(x1-x0) > o.NewtonTol; iter++ {
		if iter >= o.MaxIter {
			return Fraction{}, ErrNonConvergence
		}
		x0 = x1
		x1 = singleStep(returns, probs, x1)
	}

	return Fraction{Value: x1, Bound: Bounded}, nil
}

// singleStep performs one self-consistent refinement iteration for the
// 1-D solver. Three running sums over the distribution assemble the
// closed-form update
//
//	x' = x − s2 / (s1·s2 − s3)
//
// where, with d = r[k]/(1 + r[k]·x):
//
//	s1 = Σ d      s2 = Σ p[k]·d      s3 = Σ d·(p[k]·d)
//
// s2 is exactly GrowthDeriv(x); the composite denominator damps the raw
// Newton step near the bracket edges where the second derivative alone
// would overshoot. A denominator 1 + r[k]·x that lands on exactly zero is
// replaced by denomEpsilon rather than rejected.
//
// Complexity: O(n).
func singleStep(returns, probs []float64, x float64) float64 {
	var (
		s1, s2, s3 float64
		d1, d2, d3 float64
		k          int
	)
	for k = 0; k < len(probs); k++ {
		d1 = 1.0 + returns[k]*x
		if d1 == 0 {
			d1 = denomEpsilon
		}
		d2 = returns[k] / d1
		d3 = probs[k] * d2
		s1 += d2
		s2 += d3
		s3 += d2 * d3
	}

	return x - s2/(s1*s2-s3)
}
