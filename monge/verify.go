// SPDX-License-Identifier: MIT

package monge

import (
	"github.com/katalvlaran/smawk/matrix"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// IsMonge reports whether m satisfies the Monge inequality. A nil matrix is
// not Monge; matrices with fewer than two rows or columns always are.
//
// Complexity: O(m·n) time, O(1) space.
func IsMonge[T constraints.Integer](m matrix.Matrix[T]) bool {
	return Verify(m) == nil
}

// Verify returns nil if m is Monge, otherwise ErrNotMonge wrapped with the
// top-left coordinate of the first failing 2×2 window in row-major order.
//
// Errors:
//   - ErrNilMatrix — m is nil.
//   - ErrNotMonge  — some window violates the inequality.
//
// Complexity: O(m·n) time, O(1) space.
func Verify[T constraints.Integer](m matrix.Matrix[T]) error {
	if m == nil {
		return errors.Wrap(ErrNilMatrix, "Verify")
	}

	rows, cols := m.Rows(), m.Cols()
	for i := 0; i+1 < rows; i++ {
		for j := 0; j+1 < cols; j++ {
			if !windowHolds(m.At(i, j), m.At(i+1, j+1), m.At(i, j+1), m.At(i+1, j)) {
				return errors.Wrapf(ErrNotMonge, "window at (%d, %d)", i, j)
			}
		}
	}

	return nil
}

// windowHolds checks x + y ≤ z + w where x, y are the main-diagonal corners
// and z, w the anti-diagonal corners of a 2×2 window.
func windowHolds[T constraints.Integer](x, y, z, w T) bool {
	lhs, lhsOver := checkedAdd(x, y)
	rhs, rhsOver := checkedAdd(z, w)

	switch {
	case !lhsOver && !rhsOver:
		return lhs <= rhs
	case !lhsOver && rhsOver:
		return true
	case lhsOver && !rhsOver:
		return false
	default:
		// Both wrapped; documented approximation.
		return lhs <= rhs
	}
}
