package monge

import "golang.org/x/exp/constraints"

// checkedAdd returns a+b and whether the addition overflowed T (in either
// direction). On overflow the returned sum is the wrapped value.
//
// For b ≥ 0 the true sum is ≥ a, so a wrapped result shows up as s < a; for
// b < 0 (signed only) the mirror holds. Unsigned b is never < 0, which makes
// the same test correct for both kinds of integer.
//
// Complexity: O(1).
func checkedAdd[T constraints.Integer](a, b T) (T, bool) {
	s := a + b
	if b >= 0 {
		return s, s < a
	}
	return s, s > a
}
