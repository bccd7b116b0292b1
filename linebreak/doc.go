// Package linebreak breaks a sequence of words into lines minimizing a
// global raggedness cost (optimal fit), the classic dynamic program behind
// Knuth–Plass style paragraph layout.
//
// 🚀 How it works
//
//	Let P be the prefix widths of the words (each word plus one space).
//	A line holding words [i, j) has width W = P[j] - P[i] - 1 and costs
//
//	  (L - W)²                  if W ≤ L
//	  OverflowPenalty·(W - L)   otherwise
//
//	The optimum v(j) of the first j words is min_i { v(i) + cost(i, j) }.
//	cost is a convex function of a prefix-sum difference, so the matrix
//	M[i,j] = v(i) + cost(i,j) is Monge and minima.OnlineColumnMinima
//	evaluates the recurrence in O(n) instead of O(n²).
//
// ⚙️ Usage:
//
//	opts := linebreak.DefaultOptions()
//	opts.LineWidth = 40
//	lines, err := linebreak.Wrap(text, &opts)
//
// Widths are measured in runes; callers needing display widths can call
// Breaks with their own measurements.
package linebreak
