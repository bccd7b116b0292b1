package minima

import (
	"github.com/katalvlaran/smawk/matrix"
	"golang.org/x/exp/constraints"
)

// BruteForceRowMinima returns, for every row, the column of its left-most
// minimum. Correct for any matrix; use it as a reference oracle.
//
// Errors:
//   - ErrNilMatrix  — m is nil.
//   - ErrEmptyInput — m has zero columns.
//
// Complexity: O(m·n) time, O(m) space for the result.
func BruteForceRowMinima[T constraints.Ordered](m matrix.Matrix[T]) ([]int, error) {
	if err := validate("BruteForceRowMinima", m, Rows); err != nil {
		return nil, err
	}

	return bruteForce(orient(m, Rows)), nil
}

// BruteForceColumnMinima returns, for every column, the row of its left-most
// minimum. Correct for any matrix.
//
// Errors:
//   - ErrNilMatrix  — m is nil.
//   - ErrEmptyInput — m has zero rows.
//
// Complexity: O(m·n) time, O(n) space for the result.
func BruteForceColumnMinima[T constraints.Ordered](m matrix.Matrix[T]) ([]int, error) {
	if err := validate("BruteForceColumnMinima", m, Columns); err != nil {
		return nil, err
	}

	return bruteForce(orient(m, Columns)), nil
}

// bruteForce scans each column of a independently.
func bruteForce[T constraints.Ordered](a accessor[T]) []int {
	minima := make([]int, a.cols)
	for j := range minima {
		minima[j] = scanLane(a.at, j, 0, a.rows)
	}

	return minima
}
