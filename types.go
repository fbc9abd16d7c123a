package kelly

// Bound classifies a solved fraction.
//
//   - Bounded       — a true numeric optimum; Value holds the fraction.
//   - UnboundedLong — every outcome returns ≥ 0: no finite optimum exists,
//     the growth derivative stays positive for any stake. Go long to the
//     position limit.
//   - UnboundedShort — every outcome returns ≤ 0: symmetric case, go short
//     to the position limit.
//
// The unbounded tags replace the legacy ±1,000,000 sentinel convention;
// Fraction.Sentinel bridges back to it for consumers that still compare
// magic numbers.
type Bound uint8

const (
	// Bounded marks a converged numeric optimum.
	Bounded Bound = iota

	// UnboundedLong marks an all-non-negative return distribution.
	UnboundedLong

	// UnboundedShort marks an all-non-positive return distribution.
	UnboundedShort
)

// String returns the wire-stable name of the bound tag.
func (b Bound) String() string {
	switch b {
	case UnboundedLong:
		return "unbounded_long"
	case UnboundedShort:
		return "unbounded_short"
	default:
		return "bounded"
	}
}

// legacySentinel is the magnitude of the historical "go to the max" marker.
// Kept only for Fraction.Sentinel round-tripping; solver logic never
// compares against it.
const legacySentinel = 1_000_000.0

// Fraction is the outcome of a solve: a bankroll fraction plus its bound tag.
//
// Value is meaningful only when Bound == Bounded. For unbounded results
// Value is zero and the tag carries the direction.
type Fraction struct {
	// Value is the bankroll fraction (negative = short).
	Value float64

	// Bound tags whether Value is a real optimum or the bet is unbounded.
	Bound Bound
}

// Unbounded reports whether the fraction is a position-limit marker rather
// than a converged value.
func (f Fraction) Unbounded() bool { return f.Bound != Bounded }

// Sentinel renders the fraction in the legacy magic-number convention:
// the value itself when bounded, ±1,000,000 when unbounded.
func (f Fraction) Sentinel() float64 {
	switch f.Bound {
	case UnboundedLong:
		return legacySentinel
	case UnboundedShort:
		return -legacySentinel
	default:
		return f.Value
	}
}

// Default solver tolerances. Zero-valued Options fields fall back to these.
const (
	// DefaultBisectTol is the bracket width at which bisection stops.
	DefaultBisectTol = 1e-8

	// DefaultNewtonTol is the iterate delta at which refinement stops.
	DefaultNewtonTol = 1e-10

	// DefaultMaxIter bounds every bisection and refinement loop.
	// Well-posed inputs bisect a unit-scale bracket in ~50 steps and refine
	// in a handful more; the cap only trips on pathological distributions.
	DefaultMaxIter = 1000
)

// denomEpsilon substitutes for an exactly-zero bankroll-multiplier
// denominator 1 + r·f inside the refinement iterations.
const denomEpsilon = 1e-6

// detEpsilon is the smallest Jacobian determinant the 2-D Newton step will
// divide by; below it the step would explode, so refinement stops on the
// bisection-tight iterate instead.
const detEpsilon = 1e-12

// Options configures a solve.
//
// Fields:
//   - BisectTol — bracket width tolerance for the bisection phase.
//   - NewtonTol — successive-iterate tolerance for the refinement phase.
//   - MaxIter   — hard cap on each phase's loop; exceeding it returns
//     ErrNonConvergence instead of spinning forever.
//
// Zero or negative fields mean "use the default".
type Options struct {
	BisectTol float64
	NewtonTol float64
	MaxIter   int
}

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{
		BisectTol: DefaultBisectTol,
		NewtonTol: DefaultNewtonTol,
		MaxIter:   DefaultMaxIter,
	}
}

// normalized fills zero/negative fields with defaults. Called once per solve.
func (o Options) normalized() Options {
	if o.BisectTol <= 0 {
		o.BisectTol = DefaultBisectTol
	}
	if o.NewtonTol <= 0 {
		o.NewtonTol = DefaultNewtonTol
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}

	return o
}
