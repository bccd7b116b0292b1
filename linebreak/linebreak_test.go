package linebreak_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/katalvlaran/smawk/internal/logger"
	"github.com/katalvlaran/smawk/linebreak"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadraticOptimum evaluates the optimal-fit recurrence directly in O(n²)
// and returns the minimum total cost.
func quadraticOptimum(widths []int, opts linebreak.Options) int {
	n := len(widths)
	v := make([]int, n+1)
	for j := 1; j <= n; j++ {
		best := -1
		for i := 0; i < j; i++ {
			width := -1
			for _, w := range widths[i:j] {
				width += w + 1
			}
			var c int
			if width <= opts.LineWidth {
				c = (opts.LineWidth - width) * (opts.LineWidth - width)
			} else {
				c = opts.OverflowPenalty * (width - opts.LineWidth)
			}
			if best < 0 || v[i]+c < best {
				best = v[i] + c
			}
		}
		v[j] = best
	}
	return v[n]
}

// TestBreaks_BeatsGreedy checks the textbook case where filling the first
// line greedily is not optimal.
func TestBreaks_BeatsGreedy(t *testing.T) {
	opts := linebreak.DefaultOptions()
	opts.LineWidth = 6
	widths := []int{3, 2, 2, 5} // "aaa bb cc ddddd"

	ends, err := linebreak.Breaks(widths, &opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, ends)

	cost, err := linebreak.TotalCost(widths, ends, &opts)
	require.NoError(t, err)
	assert.Equal(t, 11, cost)

	greedy, err := linebreak.TotalCost(widths, []int{2, 3, 4}, &opts)
	require.NoError(t, err)
	assert.Equal(t, 17, greedy, "greedy layout aaa bb | cc | ddddd")
}

// TestBreaks_MatchesQuadraticDP compares the linear-time layout with the
// direct recurrence on random paragraphs.
func TestBreaks_MatchesQuadraticDP(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, lineWidth := range []int{5, 10, 20, 37} {
		for _, penalty := range []int{0, 3, 2500} {
			for round := 0; round < 10; round++ {
				n := 1 + rng.Intn(120)
				widths := make([]int, n)
				for k := range widths {
					widths[k] = rng.Intn(12)
				}
				opts := linebreak.Options{LineWidth: lineWidth, OverflowPenalty: penalty}

				ends, err := linebreak.Breaks(widths, &opts)
				require.NoError(t, err)
				require.NotEmpty(t, ends)
				assert.Equal(t, n, ends[len(ends)-1])

				got, err := linebreak.TotalCost(widths, ends, &opts)
				require.NoError(t, err)
				assert.Equal(t, quadraticOptimum(widths, opts), got,
					"L=%d penalty=%d widths=%v", lineWidth, penalty, widths)
			}
		}
	}
}

// TestBreaks_Degenerate covers empty input and single words.
func TestBreaks_Degenerate(t *testing.T) {
	ends, err := linebreak.Breaks(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, ends)

	ends, err = linebreak.Breaks([]int{500}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ends, "an overlong word still gets its own line")

	ends, err = linebreak.Breaks([]int{0, 0, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ends)
}

// TestBreaks_Errors checks option and width validation.
func TestBreaks_Errors(t *testing.T) {
	bad := linebreak.DefaultOptions()
	bad.LineWidth = 0
	_, err := linebreak.Breaks([]int{1}, &bad)
	assert.ErrorIs(t, err, linebreak.ErrBadLineWidth)

	bad = linebreak.DefaultOptions()
	bad.OverflowPenalty = -1
	_, err = linebreak.Breaks([]int{1}, &bad)
	assert.ErrorIs(t, err, linebreak.ErrBadPenalty)

	_, err = linebreak.Breaks([]int{1, -3}, nil)
	assert.ErrorIs(t, err, linebreak.ErrBadWidth)
}

// TestTotalCost_Errors rejects layouts that do not partition the words.
func TestTotalCost_Errors(t *testing.T) {
	widths := []int{1, 2, 3}
	for _, ends := range [][]int{
		nil,
		{1, 2},
		{2, 2, 3},
		{2, 1, 3},
		{1, 4},
	} {
		_, err := linebreak.TotalCost(widths, ends, nil)
		assert.ErrorIs(t, err, linebreak.ErrBadBreaks, "ends %v", ends)
	}

	cost, err := linebreak.TotalCost(nil, nil, nil)
	require.NoError(t, err)
	assert.Zero(t, cost)
}

// TestWrap verifies word splitting, rune widths and line joining.
func TestWrap(t *testing.T) {
	opts := linebreak.DefaultOptions()
	opts.LineWidth = 6

	lines, err := linebreak.Wrap("  aaa\tbb cc\n ddddd ", &opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa", "bb cc", "ddddd"}, lines)

	// Same layout with multi-byte runes: widths are counted in runes.
	lines, err = linebreak.Wrap("ééé ßß çç ñññññ", &opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"ééé", "ßß çç", "ñññññ"}, lines)

	lines, err = linebreak.Wrap(" \n\t ", nil)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// TestBreaks_Tracing verifies the logger receives online engine steps.
func TestBreaks_Tracing(t *testing.T) {
	var buf bytes.Buffer
	opts := linebreak.DefaultOptions()
	opts.LineWidth = 6
	opts.Logger = logger.NewWithOutput(&buf, logrus.TraceLevel)

	_, err := linebreak.Breaks([]int{3, 2, 2, 5}, &opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "online column minima step")
}
