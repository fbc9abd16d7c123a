package kelly_test

import (
	"testing"

	"github.com/katalvlaran/kelly"
)

// syntheticDistribution builds an n-outcome mixed-sign distribution with
// uniform weights. Returns span a predictable ramp so every size has both
// gains and losses and a bounded optimum.
func syntheticDistribution(n int) (returns, probs []float64) {
	returns = make([]float64, n)
	probs = make([]float64, n)
	for i := 0; i < n; i++ {
		returns[i] = -0.9 + 2.0*float64(i)/float64(n-1) // ramp from -0.9 to +1.1
		probs[i] = 1.0 / float64(n)
	}

	return returns, probs
}

// benchmarkSingle runs Single on an n-outcome synthetic distribution.
func benchmarkSingle(b *testing.B, n int) {
	returns, probs := syntheticDistribution(n)
	opts := kelly.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kelly.Single(returns, probs, opts); err != nil {
			b.Fatalf("Single failed: %v", err)
		}
	}
}

// benchmarkDouble runs Double on two n-outcome synthetic distributions
// (gradient cost is O(n²) per evaluation).
func benchmarkDouble(b *testing.B, n int) {
	returns, probs := syntheticDistribution(n)
	opts := kelly.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := kelly.Double(returns, returns, probs, probs, opts); err != nil {
			b.Fatalf("Double failed: %v", err)
		}
	}
}

// BenchmarkSingle_Binary benchmarks the common two-outcome case.
func BenchmarkSingle_Binary(b *testing.B) { benchmarkSingle(b, 2) }

// BenchmarkSingle_Wide benchmarks a 100-outcome distribution.
func BenchmarkSingle_Wide(b *testing.B) { benchmarkSingle(b, 100) }

// BenchmarkDouble_Binary benchmarks the common two-by-two joint case.
func BenchmarkDouble_Binary(b *testing.B) { benchmarkDouble(b, 2) }

// BenchmarkDouble_Wide benchmarks a 50×50 outcome cross-product.
func BenchmarkDouble_Wide(b *testing.B) { benchmarkDouble(b, 50) }
