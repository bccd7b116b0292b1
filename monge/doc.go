// Package monge verifies the Monge property of integer matrices.
//
// A matrix M is Monge when, for all rows i < i' and columns j < j',
//
//	M[i,j] + M[i',j'] ≤ M[i,j'] + M[i',j]
//
// i.e. in every rectangle the main-diagonal corners sum to at most the
// anti-diagonal corners. Every Monge matrix is totally monotone, which makes
// it valid input for minima.SMAWKRowMinima and friends.
//
// The inequality telescopes: it holds for all rectangles iff it holds for
// every adjacent 2×2 window, so verification costs O(m·n).
//
// Sums are overflow-checked:
//
//	left fits, right fits         → compare normally
//	left fits, right overflows    → holds (an overflowed sum is "larger")
//	left overflows, right fits    → fails
//	both overflow                 → compare the wrapped sums
//
// Overflow is treated as running past the top of the range; a signed sum
// that wraps below the minimum gets the same verdict. The last row is an
// approximation and can misjudge adversarial input whose corner sums both
// leave the range of T. It never crashes.
package monge
