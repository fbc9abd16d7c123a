package simulate

import "errors"

// Sentinel errors returned by the simulators. Match with errors.Is.
var (
	// ErrEmptyDistribution indicates an outcome distribution with no entries.
	ErrEmptyDistribution = errors.New("simulate: empty outcome distribution")

	// ErrLengthMismatch indicates probability and return sequences of
	// different lengths.
	ErrLengthMismatch = errors.New("simulate: probability/return length mismatch")

	// ErrNegativeProbability indicates a probability below zero.
	ErrNegativeProbability = errors.New("simulate: negative probability")

	// ErrZeroWeight indicates probabilities summing to zero — there is
	// nothing to sample from.
	ErrZeroWeight = errors.New("simulate: probabilities sum to zero")

	// ErrBadRounds indicates a negative round count.
	ErrBadRounds = errors.New("simulate: rounds must not be negative")

	// ErrBadBankroll indicates a negative initial bankroll.
	ErrBadBankroll = errors.New("simulate: initial bankroll must not be negative")

	// ErrBadSteps indicates a fraction sweep with fewer than two grid points.
	ErrBadSteps = errors.New("simulate: sweep needs at least two steps")
)

// Default simulation parameters. Zero-valued Options fields fall back to
// these; negative fields are rejected.
const (
	// DefaultRounds is the number of sequential bets per trajectory.
	DefaultRounds = 1000

	// DefaultInitialBankroll is the starting bankroll.
	DefaultInitialBankroll = 1000.0
)

// Options configures a simulation run.
//
// Fields:
//   - Rounds          — sequential bets per trajectory (0 ⇒ DefaultRounds).
//   - InitialBankroll — starting bankroll (0 ⇒ DefaultInitialBankroll).
//   - Seed            — RNG seed; 0 selects the fixed default stream, so
//     every run is reproducible unless the caller opts into a seed.
type Options struct {
	Rounds          int
	InitialBankroll float64
	Seed            int64
}

// DefaultOptions returns the canonical simulation configuration.
func DefaultOptions() Options {
	return Options{
		Rounds:          DefaultRounds,
		InitialBankroll: DefaultInitialBankroll,
	}
}

// normalized fills zero fields with defaults and rejects negatives.
func (o Options) normalized() (Options, error) {
	if o.Rounds < 0 {
		return o, ErrBadRounds
	}
	if o.InitialBankroll < 0 {
		return o, ErrBadBankroll
	}
	if o.Rounds == 0 {
		o.Rounds = DefaultRounds
	}
	if o.InitialBankroll == 0 {
		o.InitialBankroll = DefaultInitialBankroll
	}

	return o, nil
}

// validateDistribution checks one outcome distribution and returns the
// total probability weight for the sampler.
//
// Complexity: O(n).
func validateDistribution(returns, probs []float64) (float64, error) {
	if len(returns) == 0 || len(probs) == 0 {
		return 0, ErrEmptyDistribution
	}
	if len(returns) != len(probs) {
		return 0, ErrLengthMismatch
	}

	var (
		total float64
		i     int
	)
	for i = 0; i < len(probs); i++ {
		if probs[i] < 0 {
			return 0, ErrNegativeProbability
		}
		total += probs[i]
	}
	if total <= 0 {
		return 0, ErrZeroWeight
	}

	return total, nil
}
