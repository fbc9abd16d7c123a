package kelly

import "errors"

// Sentinel errors returned by Single and Double. Match with errors.Is.
var (
	// ErrEmptyDistribution indicates an outcome distribution with no entries.
	ErrEmptyDistribution = errors.New("kelly: empty outcome distribution")

	// ErrLengthMismatch indicates probability and return sequences of
	// different lengths.
	ErrLengthMismatch = errors.New("kelly: probability/return length mismatch")

	// ErrNegativeProbability indicates a probability below zero.
	ErrNegativeProbability = errors.New("kelly: negative probability")

	// ErrNonConvergence indicates a bisection or refinement loop exceeded
	// Options.MaxIter without meeting its tolerance.
	ErrNonConvergence = errors.New("kelly: solver failed to converge")
)
