package simulate

// Trajectory - bankroll path for one bet played at a fixed fraction.
//
// Description:
//
//	Plays opts.Rounds sequential bets, each multiplying the bankroll by
//	1 + fraction·r[k] for an outcome k sampled from the distribution.
//	The returned slice has length Rounds+1; index 0 is the initial
//	bankroll, index t the bankroll after round t.
//
// The fraction is taken as given — it need not be the Kelly optimum;
// sweeping fractions around the optimum is exactly how over-betting is
// visualized (see FractionSweep).
//
// Errors: ErrEmptyDistribution, ErrLengthMismatch, ErrNegativeProbability,
// ErrZeroWeight, ErrBadRounds, ErrBadBankroll.
//
// Complexity: O(Rounds·n) time, O(Rounds) space.
func Trajectory(returns, probs []float64, fraction float64, opts Options) ([]float64, error) {
	total, err := validateDistribution(returns, probs)
	if err != nil {
		return nil, err
	}
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	var (
		rng  = rngFromSeed(o.Seed)
		path = make([]float64, o.Rounds+1)
		bank = o.InitialBankroll
		t    int
		k    int
	)
	path[0] = bank
	for t = 1; t <= o.Rounds; t++ {
		k = sample(probs, total, rng)
		bank *= 1.0 + fraction*returns[k]
		path[t] = bank
	}

	return path, nil
}

// DoubleTrajectory - bankroll path for two simultaneous independent bets.
//
// Each round samples one outcome per bet independently and multiplies the
// bankroll by 1 + f1·r1[k] + f2·r2[l] — the same joint multiplier the
// Double solver optimizes. Slice shape as in Trajectory.
//
// Errors: as Trajectory, for either distribution.
//
// Complexity: O(Rounds·(n+m)) time, O(Rounds) space.
func DoubleTrajectory(returns1, returns2, probs1, probs2 []float64, f1, f2 float64, opts Options) ([]float64, error) {
	total1, err := validateDistribution(returns1, probs1)
	if err != nil {
		return nil, err
	}
	total2, err := validateDistribution(returns2, probs2)
	if err != nil {
		return nil, err
	}
	o, err := opts.normalized()
	if err != nil {
		return nil, err
	}

	var (
		rng  = rngFromSeed(o.Seed)
		path = make([]float64, o.Rounds+1)
		bank = o.InitialBankroll
		t    int
		k, l int
	)
	path[0] = bank
	for t = 1; t <= o.Rounds; t++ {
		k = sample(probs1, total1, rng)
		l = sample(probs2, total2, rng)
		bank *= 1.0 + f1*returns1[k] + f2*returns2[l]
		path[t] = bank
	}

	return path, nil
}

// FractionSweep - final bankrolls across an even fraction grid.
//
// Description:
//
//	Evaluates steps grid points spaced evenly over [0, maxFraction]
//	(endpoints included; the classical sweep runs to twice the Kelly
//	fraction). Each point plays opts.Rounds sequential bets on its own
//	deterministic RNG stream derived from opts.Seed, so the grid
//	resolution never perturbs individual points.
//
// Returns the grid and the final bankroll per point, same length.
//
// Errors: as Trajectory, plus ErrBadSteps for steps < 2.
//
// Complexity: O(steps·Rounds·n) time, O(steps) space.
func FractionSweep(returns, probs []float64, maxFraction float64, steps int, opts Options) (fractions, finals []float64, err error) {
	var total float64
	total, err = validateDistribution(returns, probs)
	if err != nil {
		return nil, nil, err
	}
	var o Options
	o, err = opts.normalized()
	if err != nil {
		return nil, nil, err
	}
	if steps < 2 {
		return nil, nil, ErrBadSteps
	}

	fractions = make([]float64, steps)
	finals = make([]float64, steps)

	var (
		i    int
		t    int
		k    int
		f    float64
		bank float64
	)
	for i = 0; i < steps; i++ {
		f = maxFraction * float64(i) / float64(steps-1)
		fractions[i] = f

		var rng = streamRNG(o.Seed, uint64(i))
		bank = o.InitialBankroll
		for t = 0; t < o.Rounds; t++ {
			k = sample(probs, total, rng)
			bank *= 1.0 + f*returns[k]
		}
		finals[i] = bank
	}

	return fractions, finals, nil
}

// DoubleFractionSweep - final bankrolls across a 2-D fraction grid for
// two simultaneous independent bets.
//
// Description:
//
//	Evaluates steps1×steps2 grid points, bet 1 spaced evenly over
//	[0, maxF1] and bet 2 over [0, maxF2] (endpoints included). Each
//	point plays opts.Rounds sequential joint bets — multiplier
//	1 + f1·r1[k] + f2·r2[l] per round — on its own deterministic RNG
//	stream derived from opts.Seed and the point's grid position, so the
//	grid resolution of one axis never perturbs points on the other.
//
// Returns both grids and the finals matrix indexed finals[i][j] for
// (fractions1[i], fractions2[j]) — raw data only; aggregation and
// rendering are the caller's concern.
//
// Errors: as DoubleTrajectory, plus ErrBadSteps when either axis has
// fewer than two grid points.
//
// Complexity: O(steps1·steps2·Rounds·(n+m)) time, O(steps1·steps2) space.
func DoubleFractionSweep(returns1, returns2, probs1, probs2 []float64, maxF1, maxF2 float64, steps1, steps2 int, opts Options) (fractions1, fractions2 []float64, finals [][]float64, err error) {
	var total1, total2 float64
	total1, err = validateDistribution(returns1, probs1)
	if err != nil {
		return nil, nil, nil, err
	}
	total2, err = validateDistribution(returns2, probs2)
	if err != nil {
		return nil, nil, nil, err
	}
	var o Options
	o, err = opts.normalized()
	if err != nil {
		return nil, nil, nil, err
	}
	if steps1 < 2 || steps2 < 2 {
		return nil, nil, nil, ErrBadSteps
	}

	fractions1 = make([]float64, steps1)
	fractions2 = make([]float64, steps2)
	finals = make([][]float64, steps1)

	var (
		i, j   int
		t      int
		k, l   int
		f1, f2 float64
		bank   float64
	)
	for i = 0; i < steps1; i++ {
		fractions1[i] = maxF1 * float64(i) / float64(steps1-1)
	}
	for j = 0; j < steps2; j++ {
		fractions2[j] = maxF2 * float64(j) / float64(steps2-1)
	}

	for i = 0; i < steps1; i++ {
		finals[i] = make([]float64, steps2)
		f1 = fractions1[i]
		for j = 0; j < steps2; j++ {
			f2 = fractions2[j]

			// Stream id encodes the grid position; steps2 is part of the
			// caller's grid identity, so reusing it as the row stride keeps
			// ids unique within one sweep.
			var rng = streamRNG(o.Seed, uint64(i)*uint64(steps2)+uint64(j))
			bank = o.InitialBankroll
			for t = 0; t < o.Rounds; t++ {
				k = sample(probs1, total1, rng)
				l = sample(probs2, total2, rng)
				bank *= 1.0 + f1*returns1[k] + f2*returns2[l]
			}
			finals[i][j] = bank
		}
	}

	return fractions1, fractions2, finals, nil
}
