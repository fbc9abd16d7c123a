package kelly

// Expectation returns the unconditional return expectation Σ p[k]·r[k] —
// the scalar product of a probability vector and a return vector.
//
// Precondition: len(probs) ≤ len(returns); entries beyond len(probs) are
// ignored, a shorter returns slice panics on index. Callers that need
// validation should go through Single/Double, which validate up front.
//
// Complexity: O(n).
func Expectation(probs, returns []float64) float64 {
	var (
		e float64
		i int
	)
	for i = 0; i < len(probs); i++ {
		e += probs[i] * returns[i]
	}

	return e
}

// GrowthDeriv evaluates dG/df — the derivative of expected log-growth
// G(f) = Σ p[k]·log(1 + r[k]·f) with respect to the bet fraction f:
//
//	dG/df = Σ p[k]·r[k] / (1 + r[k]·f)
//
// Its zero crossing is the Kelly-optimal fraction. The function is
// monotonically decreasing in f on the open interval where every
// denominator stays positive (log-growth is concave there), which is what
// lets the bisection phase steer by sign alone.
//
// No epsilon guard: bisection only ever evaluates this at bracket
// midpoints, which stay strictly inside the singularity-free interval by
// construction of the initial bracket.
//
// Precondition: equal-length sequences (see Expectation).
//
// Complexity: O(n).
func GrowthDeriv(returns, probs []float64, f float64) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(probs); i++ {
		sum += probs[i] * returns[i] / (1.0 + returns[i]*f)
	}

	return sum
}

// GrowthGrad evaluates the gradient (∂G/∂f1, ∂G/∂f2) of expected
// log-growth for two simultaneous independent bets:
//
//	G(f1,f2) = Σᵢ Σⱼ p1[i]·p2[j]·log(1 + r1[i]·f1 + r2[j]·f2)
//
// Independence means the joint probability is the product p1[i]·p2[j] and
// both bets share one bankroll multiplier denominator.
//
// Precondition: each pair of sequences has equal length (see Expectation).
//
// Complexity: O(n·m) over the outcome cross-product.
func GrowthGrad(returns1, returns2, probs1, probs2 []float64, f1, f2 float64) (float64, float64) {
	var (
		sum1 float64
		sum2 float64
		d    float64
		i    int
		j    int
	)
	for i = 0; i < len(returns1); i++ {
		for j = 0; j < len(returns2); j++ {
			d = probs1[i] * probs2[j] / (1.0 + returns1[i]*f1 + returns2[j]*f2)
			sum1 += returns1[i] * d
			sum2 += returns2[j] * d
		}
	}

	return sum1, sum2
}
