package kelly

// validateDistribution checks one outcome distribution.
//
// Contracts enforced:
//   - both sequences non-empty;
//   - equal lengths;
//   - every probability ≥ 0 (weights need not sum to one — the solver is
//     scale-invariant in the probability vector).
//
// Complexity: O(n).
func validateDistribution(returns, probs []float64) error {
	if len(returns) == 0 || len(probs) == 0 {
		return ErrEmptyDistribution
	}
	if len(returns) != len(probs) {
		return ErrLengthMismatch
	}

	var i int
	for i = 0; i < len(probs); i++ {
		if probs[i] < 0 {
			return ErrNegativeProbability
		}
	}

	return nil
}
