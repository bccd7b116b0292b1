package minima_test

import (
	"testing"

	"github.com/katalvlaran/smawk/builder"
	"github.com/katalvlaran/smawk/matrix"
	"github.com/katalvlaran/smawk/minima"
	"github.com/stretchr/testify/require"
)

// dense wraps a literal as a matrix.Matrix[int].
func dense(rows [][]int) matrix.Matrix[int] {
	return matrix.MustDense(rows)
}

// strategy pairs the row and column entry points of one algorithm.
type strategy struct {
	name string
	rows func(matrix.Matrix[int]) ([]int, error)
	cols func(matrix.Matrix[int]) ([]int, error)
}

// strategies lists every offline algorithm under test.
var strategies = []strategy{
	{"brute-force", minima.BruteForceRowMinima[int], minima.BruteForceColumnMinima[int]},
	{"recursive", minima.RecursiveRowMinima[int], minima.RecursiveColumnMinima[int]},
	{"smawk", minima.SMAWKRowMinima[int], minima.SMAWKColumnMinima[int]},
}

// agreementSizes are the side lengths combined pairwise in agreement tests.
var agreementSizes = []int{1, 2, 3, 4, 5, 10, 15, 20, 30}

// randomMonge draws a Monge fixture widened to int.
func randomMonge(t testing.TB, rows, cols int, opts ...builder.BuilderOption) *matrix.Dense[int] {
	t.Helper()
	m, err := builder.RandomMonge[int](rows, cols, opts...)
	require.NoError(t, err)
	return m
}

// onlineFixture turns a square Monge matrix into input for the online engine:
// entries on and below the diagonal are raised to the matrix maximum so every
// true column minimum lies strictly above the diagonal, and column 0 is set
// to initial so brute force reports what the engine returns for v(0).
func onlineFixture(m *matrix.Dense[int], initial int) {
	size := m.Rows()
	hi := 0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			hi = max(hi, m.At(i, j))
		}
	}
	for i := 0; i < size; i++ {
		m.Fill(i, i+1, 0, i+1, hi)
	}
	m.Fill(0, size, 0, 1, initial)
}

// plain adapts a materialized matrix to an OnlineFunc ignoring done.
func plain(m matrix.Matrix[int]) minima.OnlineFunc[int] {
	return func(_ []minima.Minimum[int], i, j int) int {
		return m.At(i, j)
	}
}
