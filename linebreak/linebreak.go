// SPDX-License-Identifier: MIT

package linebreak

import (
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/smawk/minima"
	"github.com/pkg/errors"
)

// Breaks returns the exclusive end index of every line in an optimal-fit
// layout of words with the given widths. The last element is len(widths).
// A nil opts means DefaultOptions(). An empty widths slice yields no lines.
//
// Errors:
//   - ErrBadLineWidth, ErrBadPenalty — invalid options.
//   - ErrBadWidth                    — a negative width.
//
// Complexity: O(n) time and memory.
func Breaks(widths []int, opts *Options) ([]int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	for k, w := range widths {
		if w < 0 {
			return nil, errors.Wrapf(ErrBadWidth, "word %d has width %d", k, w)
		}
	}
	n := len(widths)
	if n == 0 {
		return nil, nil
	}

	// prefix[k] = Σ_{t<k} (widths[t] + 1)
	prefix := make([]int, n+1)
	for k, w := range widths {
		prefix[k+1] = prefix[k] + w + 1
	}

	cost := func(done []minima.Minimum[int], i, j int) int {
		return done[i].Value + lineCost(prefix[j]-prefix[i]-1, o.LineWidth, o.OverflowPenalty)
	}

	var mopts []minima.Option
	if o.Logger != nil {
		mopts = append(mopts, minima.WithLogger(o.Logger))
	}
	best, err := minima.OnlineColumnMinima[int](0, n+1, cost, mopts...)
	if err != nil {
		return nil, errors.Wrap(err, "linebreak: optimal fit")
	}

	return backtrack(best), nil
}

// Wrap splits text on whitespace and returns the optimal-fit lines, words
// joined by single spaces. Word widths are rune counts.
//
// Errors: as Breaks.
func Wrap(text string, opts *Options) ([]string, error) {
	words := strings.Fields(text)
	widths := make([]int, len(words))
	for k, w := range words {
		widths[k] = utf8.RuneCountInString(w)
	}

	ends, err := Breaks(widths, opts)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(ends))
	start := 0
	for _, end := range ends {
		lines = append(lines, strings.Join(words[start:end], " "))
		start = end
	}

	return lines, nil
}

// lineCost prices a line of the given width against target width.
func lineCost(width, target, penalty int) int {
	if width <= target {
		gap := target - width
		return gap * gap
	}
	return penalty * (width - target)
}

// backtrack follows the minimizing rows from the last position back to 0
// and returns the line ends in increasing order.
func backtrack(best []minima.Minimum[int]) []int {
	var ends []int
	for j := len(best) - 1; j > 0; j = best[j].Row {
		ends = append(ends, j)
	}
	for l, r := 0, len(ends)-1; l < r; l, r = l+1, r-1 {
		ends[l], ends[r] = ends[r], ends[l]
	}

	return ends
}

// TotalCost returns the layout cost of the given line ends; useful to compare
// layouts produced by different strategies.
//
// Errors: invalid options, or ErrBadBreaks when ends is not strictly
// increasing, empty lines included, or does not finish at len(widths).
func TotalCost(widths, ends []int, opts *Options) (int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, err
	}

	if len(widths) > 0 && (len(ends) == 0 || ends[len(ends)-1] != len(widths)) {
		return 0, errors.Wrapf(ErrBadBreaks, "layout must end at %d", len(widths))
	}

	total, start := 0, 0
	for _, end := range ends {
		if end <= start || end > len(widths) {
			return 0, errors.Wrapf(ErrBadBreaks, "line end %d after %d", end, start)
		}
		width := -1
		for _, w := range widths[start:end] {
			width += w + 1
		}
		total += lineCost(width, o.LineWidth, o.OverflowPenalty)
		start = end
	}

	return total, nil
}
