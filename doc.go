// Package kelly solves optimal bankroll allocation fractions (Kelly
// fractions) for one or two independent discrete-outcome bets.
//
// 🚀 What is a Kelly fraction?
//
//	The fraction of bankroll that maximizes expected long-run logarithmic
//	growth of wealth under repeated independent bets. Betting more risks
//	ruin; betting less leaves growth on the table. The optimum is the zero
//	crossing of the growth derivative dG/df.
//
// ✨ Key features:
//   - Single: 1-D hybrid solver — bracketing bisection for stability,
//     then a closed-form fixed-point refinement for precision
//   - Double: joint solver for two simultaneous independent bets —
//     2-D bisection plus a Newton step with an analytic 2×2 Jacobian
//   - Tagged results: Bounded / UnboundedLong / UnboundedShort instead of
//     magic sentinel numbers (a ±1e6 legacy bridge is still available)
//   - Strict sentinels: every failure mode is a comparable error value
//   - Deterministic: no randomness, no global state, reentrant solves
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kelly"
//
//	// 60/40 even-money bet: classic edge/odds = 0.2
//	f, err := kelly.Single([]float64{1, -1}, []float64{0.6, 0.4}, kelly.DefaultOptions())
//	if err != nil {
//	  // handle ErrEmptyDistribution / ErrLengthMismatch / ErrNonConvergence
//	}
//	fmt.Println(f.Value) // ≈ 0.2
//
// Subpackages:
//
//	simulate/ — Monte Carlo bankroll trajectories under repeated betting
//	cmd/kellyd — HTTP service exposing the solver and the simulator
//
// See example_test.go for runnable scenarios and README.md for the maths.
package kelly
