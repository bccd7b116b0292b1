package minima

import (
	"github.com/katalvlaran/smawk/matrix"
	"golang.org/x/exp/constraints"
)

// RecursiveRowMinima computes row minima of a totally monotone matrix by
// divide and conquer.
//
// Algorithm:
//  1. Scan the middle row; its minimum column c splits the matrix.
//  2. Rows above have their minimum in columns [0, c]; rows below in
//     [c, n). Recurse into both quadrants.
//  3. A quadrant without rows stops the recursion.
//
// Results are written straight into the output slice; quadrants are disjoint
// so no merge step exists.
//
// The matrix MUST be totally monotone; this is not checked.
//
// Errors: ErrNilMatrix, ErrEmptyInput (zero columns).
//
// Complexity: O(m + n log m) time, O(log m) recursion depth.
func RecursiveRowMinima[T constraints.Ordered](m matrix.Matrix[T]) ([]int, error) {
	if err := validate("RecursiveRowMinima", m, Rows); err != nil {
		return nil, err
	}

	return recursive(orient(m, Rows)), nil
}

// RecursiveColumnMinima computes column minima of a totally monotone matrix
// by divide and conquer. See RecursiveRowMinima.
//
// Errors: ErrNilMatrix, ErrEmptyInput (zero rows).
//
// Complexity: O(n + m log n) time, O(log n) recursion depth.
func RecursiveColumnMinima[T constraints.Ordered](m matrix.Matrix[T]) ([]int, error) {
	if err := validate("RecursiveColumnMinima", m, Columns); err != nil {
		return nil, err
	}

	return recursive(orient(m, Columns)), nil
}

func recursive[T constraints.Ordered](a accessor[T]) []int {
	minima := make([]int, a.cols)
	recurse(a.at, 0, a.cols, 0, a.rows, minima)

	return minima
}

// recurse resolves columns [c0,c1) whose minima are known to lie in rows
// [r0,r1). minima is indexed by absolute column.
func recurse[T constraints.Ordered](at func(i, j int) T, c0, c1, r0, r1 int, minima []int) {
	if c0 >= c1 {
		return
	}

	mid := c0 + (c1-c0)/2
	row := scanLane(at, mid, r0, r1)
	minima[mid] = row

	recurse(at, c0, mid, r0, row+1, minima) // top-left
	recurse(at, mid+1, c1, row, r1, minima) // bottom-right
}
