package minima_test

import (
	"testing"

	"github.com/katalvlaran/smawk/builder"
	"github.com/katalvlaran/smawk/matrix"
	"github.com/katalvlaran/smawk/minima"
)

// benchmarkRowMinima runs fn on a random n×n Monge matrix.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkRowMinima(b *testing.B, n int, fn func(matrix.Matrix[int]) ([]int, error)) {
	m := randomMonge(b, n, n, builder.WithSeed(1))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := fn(m); err != nil {
			b.Fatalf("row minima failed: %v", err)
		}
	}
}

func BenchmarkBruteForce_100(b *testing.B) { benchmarkRowMinima(b, 100, minima.BruteForceRowMinima[int]) }
func BenchmarkRecursive_100(b *testing.B)  { benchmarkRowMinima(b, 100, minima.RecursiveRowMinima[int]) }
func BenchmarkSMAWK_100(b *testing.B)      { benchmarkRowMinima(b, 100, minima.SMAWKRowMinima[int]) }
func BenchmarkBruteForce_400(b *testing.B) { benchmarkRowMinima(b, 400, minima.BruteForceRowMinima[int]) }
func BenchmarkRecursive_400(b *testing.B)  { benchmarkRowMinima(b, 400, minima.RecursiveRowMinima[int]) }
func BenchmarkSMAWK_400(b *testing.B)      { benchmarkRowMinima(b, 400, minima.SMAWKRowMinima[int]) }

// BenchmarkOnline_1000 measures the online engine on a convex DP of size 1000.
func BenchmarkOnline_1000(b *testing.B) {
	fn := func(done []minima.Minimum[int], i, j int) int {
		d := j - i - 10
		return done[i].Value + d*d
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := minima.OnlineColumnMinima(0, 1000, fn); err != nil {
			b.Fatalf("online minima failed: %v", err)
		}
	}
}
