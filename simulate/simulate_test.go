package simulate_test

import (
	"testing"

	"github.com/katalvlaran/kelly/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrajectory_Shape verifies the path has Rounds+1 entries and starts
// at the initial bankroll.
func TestTrajectory_Shape(t *testing.T) {
	opts := simulate.Options{Rounds: 50, InitialBankroll: 500, Seed: 7}

	path, err := simulate.Trajectory([]float64{1, -1}, []float64{0.6, 0.4}, 0.2, opts)
	require.NoError(t, err)

	assert.Len(t, path, 51, "path must hold initial bankroll plus one entry per round")
	assert.Equal(t, 500.0, path[0], "path must start at the initial bankroll")
}

// TestTrajectory_Deterministic verifies that equal seeds reproduce the
// exact same path and different seeds diverge.
func TestTrajectory_Deterministic(t *testing.T) {
	returns := []float64{1, -1}
	probs := []float64{0.6, 0.4}
	opts := simulate.DefaultOptions()
	opts.Rounds = 100
	opts.Seed = 42

	a, err := simulate.Trajectory(returns, probs, 0.2, opts)
	require.NoError(t, err)
	b, err := simulate.Trajectory(returns, probs, 0.2, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the identical path")

	opts.Seed = 43
	c, err := simulate.Trajectory(returns, probs, 0.2, opts)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "a different seed must produce a different path")
}

// TestTrajectory_ZeroFractionIsFlat verifies that staking nothing leaves
// the bankroll untouched every round.
func TestTrajectory_ZeroFractionIsFlat(t *testing.T) {
	opts := simulate.Options{Rounds: 20, InitialBankroll: 100}

	path, err := simulate.Trajectory([]float64{1, -1}, []float64{0.5, 0.5}, 0, opts)
	require.NoError(t, err)

	for i, bank := range path {
		assert.Equal(t, 100.0, bank, "round %d: zero stake must not move the bankroll", i)
	}
}

// TestTrajectory_StaysPositive verifies that fractions inside the
// ruin-free interval keep every bankroll multiplier strictly positive.
func TestTrajectory_StaysPositive(t *testing.T) {
	opts := simulate.DefaultOptions()
	opts.Rounds = 500
	opts.Seed = 9

	path, err := simulate.Trajectory([]float64{1, -1}, []float64{0.6, 0.4}, 0.2, opts)
	require.NoError(t, err)

	for i, bank := range path {
		require.Greater(t, bank, 0.0, "round %d: bankroll must stay positive at f=0.2", i)
	}
}

// TestTrajectory_ValidationErrors exercises the input sentinels.
func TestTrajectory_ValidationErrors(t *testing.T) {
	opts := simulate.DefaultOptions()

	_, err := simulate.Trajectory(nil, nil, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrEmptyDistribution)

	_, err = simulate.Trajectory([]float64{1, -1}, []float64{1}, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrLengthMismatch)

	_, err = simulate.Trajectory([]float64{1, -1}, []float64{-0.5, 1.5}, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrNegativeProbability)

	_, err = simulate.Trajectory([]float64{1, -1}, []float64{0, 0}, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrZeroWeight)

	opts.Rounds = -1
	_, err = simulate.Trajectory([]float64{1, -1}, []float64{0.5, 0.5}, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrBadRounds)

	opts = simulate.DefaultOptions()
	opts.InitialBankroll = -10
	_, err = simulate.Trajectory([]float64{1, -1}, []float64{0.5, 0.5}, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrBadBankroll)
}

// TestDoubleTrajectory_Shape verifies shape and determinism for the
// two-bet simulator.
func TestDoubleTrajectory_Shape(t *testing.T) {
	returns1 := []float64{1, -1}
	returns2 := []float64{0.5, -0.5}
	probs1 := []float64{0.6, 0.4}
	probs2 := []float64{0.7, 0.3}
	opts := simulate.Options{Rounds: 64, InitialBankroll: 1000, Seed: 5}

	a, err := simulate.DoubleTrajectory(returns1, returns2, probs1, probs2, 0.15, 0.4, opts)
	require.NoError(t, err)
	assert.Len(t, a, 65)
	assert.Equal(t, 1000.0, a[0])

	b, err := simulate.DoubleTrajectory(returns1, returns2, probs1, probs2, 0.15, 0.4, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the identical joint path")
}

// TestDoubleTrajectory_ValidationCoversBothBets verifies either
// distribution can trip validation.
func TestDoubleTrajectory_ValidationCoversBothBets(t *testing.T) {
	good := []float64{1, -1}
	probs := []float64{0.5, 0.5}
	opts := simulate.DefaultOptions()

	_, err := simulate.DoubleTrajectory(nil, good, nil, probs, 0.1, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrEmptyDistribution)

	_, err = simulate.DoubleTrajectory(good, []float64{1}, probs, probs, 0.1, 0.1, opts)
	assert.ErrorIs(t, err, simulate.ErrLengthMismatch)
}

// TestFractionSweep_Grid verifies grid shape, endpoints and determinism.
func TestFractionSweep_Grid(t *testing.T) {
	returns := []float64{1, -1}
	probs := []float64{0.6, 0.4}
	opts := simulate.Options{Rounds: 200, InitialBankroll: 1000, Seed: 11}

	fractions, finals, err := simulate.FractionSweep(returns, probs, 0.4, 21, opts)
	require.NoError(t, err)

	require.Len(t, fractions, 21)
	require.Len(t, finals, 21)
	assert.Equal(t, 0.0, fractions[0], "grid must start at zero")
	assert.InDelta(t, 0.4, fractions[20], 1e-12, "grid must end at maxFraction")
	assert.Equal(t, 1000.0, finals[0], "zero fraction leaves the bankroll unchanged")

	_, finals2, err := simulate.FractionSweep(returns, probs, 0.4, 21, opts)
	require.NoError(t, err)
	assert.Equal(t, finals, finals2, "same seed must reproduce the sweep")
}

// TestFractionSweep_StreamIndependence verifies that refining the grid
// does not perturb a shared endpoint's stream (per-point derived seeds).
func TestFractionSweep_StreamIndependence(t *testing.T) {
	returns := []float64{1, -1}
	probs := []float64{0.6, 0.4}
	opts := simulate.Options{Rounds: 100, InitialBankroll: 1000, Seed: 3}

	_, coarse, err := simulate.FractionSweep(returns, probs, 0.4, 5, opts)
	require.NoError(t, err)
	_, fine, err := simulate.FractionSweep(returns, probs, 0.4, 9, opts)
	require.NoError(t, err)

	// Grid point 0 is f=0 in both sweeps and stream id 0 in both.
	assert.Equal(t, coarse[0], fine[0], "stream 0 must be identical across grid resolutions")
}

// TestDoubleFractionSweep_Grid verifies grid shapes, endpoints and
// determinism for the 2-D sweep.
func TestDoubleFractionSweep_Grid(t *testing.T) {
	returns1 := []float64{1, -1}
	returns2 := []float64{0.5, -0.5}
	probs1 := []float64{0.6, 0.4}
	probs2 := []float64{0.7, 0.3}
	opts := simulate.Options{Rounds: 100, InitialBankroll: 1000, Seed: 11}

	f1, f2, finals, err := simulate.DoubleFractionSweep(returns1, returns2, probs1, probs2, 0.4, 1.6, 5, 9, opts)
	require.NoError(t, err)

	require.Len(t, f1, 5)
	require.Len(t, f2, 9)
	require.Len(t, finals, 5)
	for i := range finals {
		require.Len(t, finals[i], 9, "row %d must span the bet 2 grid", i)
	}
	assert.Equal(t, 0.0, f1[0], "bet 1 grid must start at zero")
	assert.InDelta(t, 0.4, f1[4], 1e-12, "bet 1 grid must end at maxF1")
	assert.Equal(t, 0.0, f2[0], "bet 2 grid must start at zero")
	assert.InDelta(t, 1.6, f2[8], 1e-12, "bet 2 grid must end at maxF2")
	assert.Equal(t, 1000.0, finals[0][0], "staking nothing on both bets leaves the bankroll unchanged")

	_, _, finals2, err := simulate.DoubleFractionSweep(returns1, returns2, probs1, probs2, 0.4, 1.6, 5, 9, opts)
	require.NoError(t, err)
	assert.Equal(t, finals, finals2, "same seed must reproduce the 2-D sweep")
}

// TestDoubleFractionSweep_ValidationCoversBothBets verifies either
// distribution can trip validation and both axes enforce the minimum
// grid size.
func TestDoubleFractionSweep_ValidationCoversBothBets(t *testing.T) {
	good := []float64{1, -1}
	probs := []float64{0.5, 0.5}
	opts := simulate.DefaultOptions()

	_, _, _, err := simulate.DoubleFractionSweep(nil, good, nil, probs, 0.4, 0.4, 5, 5, opts)
	assert.ErrorIs(t, err, simulate.ErrEmptyDistribution)

	_, _, _, err = simulate.DoubleFractionSweep(good, []float64{1}, probs, probs, 0.4, 0.4, 5, 5, opts)
	assert.ErrorIs(t, err, simulate.ErrLengthMismatch)

	_, _, _, err = simulate.DoubleFractionSweep(good, good, probs, probs, 0.4, 0.4, 1, 5, opts)
	assert.ErrorIs(t, err, simulate.ErrBadSteps)

	_, _, _, err = simulate.DoubleFractionSweep(good, good, probs, probs, 0.4, 0.4, 5, 1, opts)
	assert.ErrorIs(t, err, simulate.ErrBadSteps)
}

// TestFractionSweep_BadSteps verifies the minimum grid size sentinel.
func TestFractionSweep_BadSteps(t *testing.T) {
	_, _, err := simulate.FractionSweep([]float64{1, -1}, []float64{0.5, 0.5}, 0.4, 1, simulate.DefaultOptions())
	assert.ErrorIs(t, err, simulate.ErrBadSteps)
}
