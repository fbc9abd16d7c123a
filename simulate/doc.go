// Package simulate generates Monte Carlo bankroll trajectories under
// repeated discrete-outcome betting at fixed fractions.
//
// 🚀 Why simulate?
//
//	The solver in the parent package gives the growth-optimal fraction;
//	simulation shows what repeated play at any fraction actually does to
//	a bankroll — how over-betting past the Kelly point turns compounding
//	growth into drawdown.
//
// ✨ Key features:
//   - Trajectory / DoubleTrajectory: bankroll path over N sequential
//     rounds for one bet or two simultaneous independent bets
//   - FractionSweep: final bankrolls across an even fraction grid
//     (classically 0..2× the Kelly fraction), one independent
//     deterministic RNG stream per grid point
//   - Determinism: same seed ⇒ identical paths across platforms; no
//     time-based randomness anywhere
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kelly/simulate"
//
//	opts := simulate.DefaultOptions()
//	opts.Seed = 42
//	path, err := simulate.Trajectory([]float64{1, -1}, []float64{0.6, 0.4}, 0.2, opts)
//
// Out of scope by design: trajectory statistics (percentiles, means) and
// plotting — consumers aggregate and render paths themselves.
package simulate
