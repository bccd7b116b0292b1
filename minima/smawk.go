package minima

import (
	"github.com/katalvlaran/smawk/matrix"
	"golang.org/x/exp/constraints"
)

// SMAWKRowMinima computes row minima of a totally monotone matrix in linear
// time.
//
// The SMAWK algorithm is from Aggarwal, Klawe, Moran, Shor and Wilbur,
// "Geometric applications of a matrix-searching algorithm",
// Algorithmica 2, pp. 195-208 (1987).
//
// The matrix MUST be totally monotone. This is NOT checked: other input
// yields unspecified indices without an error. See monge.Verify.
//
// Errors: ErrNilMatrix, ErrEmptyInput (zero columns).
//
// Complexity: O(m + n) time, O(m + n) extra space.
func SMAWKRowMinima[T constraints.Ordered](m matrix.Matrix[T]) ([]int, error) {
	if err := validate("SMAWKRowMinima", m, Rows); err != nil {
		return nil, err
	}

	return smawkMinima(orient(m, Rows)), nil
}

// SMAWKColumnMinima computes column minima of a totally monotone matrix in
// linear time. Same contract as SMAWKRowMinima.
//
// Errors: ErrNilMatrix, ErrEmptyInput (zero rows).
//
// Complexity: O(m + n) time, O(m + n) extra space.
func SMAWKColumnMinima[T constraints.Ordered](m matrix.Matrix[T]) ([]int, error) {
	if err := validate("SMAWKColumnMinima", m, Columns); err != nil {
		return nil, err
	}

	return smawkMinima(orient(m, Columns)), nil
}

func smawkMinima[T constraints.Ordered](a accessor[T]) []int {
	minima := make([]int, a.cols)
	smawk(a.at, indexRange(0, a.rows), indexRange(0, a.cols), minima)

	return minima
}

// indexRange returns [lo, hi) as a slice.
func indexRange(lo, hi int) []int {
	out := make([]int, hi-lo)
	for k := range out {
		out[k] = lo + k
	}

	return out
}

// smawk writes, for every column c in cols, the row of its left-most minimum
// among rows into minima[c]. rows and cols are increasing index lists; minima
// is indexed by absolute column. rows must be non-empty when cols is not.
//
// Reduce: scan rows keeping a stack of candidates. The top row is popped
// while it is strictly worse than the new row in the column aligned with the
// stack depth; by total monotonicity it can then win no remaining column.
// A row is pushed only while the stack is shorter than cols, so at most
// len(cols) rows survive.
//
// Conquer: recurse on the odd-positioned columns, then resolve each
// even-positioned column by scanning only the surviving rows between the
// minima of its odd neighbours. Consecutive scans share one endpoint, so
// this pass touches O(len(rows) + len(cols)) entries.
func smawk[T constraints.Ordered](at func(i, j int) T, rows, cols []int, minima []int) {
	if len(cols) == 0 {
		return
	}

	// Reduce.
	stack := make([]int, 0, len(cols))
	for _, r := range rows {
		for len(stack) > 0 {
			top, c := stack[len(stack)-1], cols[len(stack)-1]
			if at(top, c) <= at(r, c) {
				break
			}
			stack = stack[:len(stack)-1]
		}
		if len(stack) < len(cols) {
			stack = append(stack, r)
		}
	}
	rows = stack

	// Conquer odd positions.
	odd := make([]int, 0, len(cols)/2)
	for k := 1; k < len(cols); k += 2 {
		odd = append(odd, cols[k])
	}
	smawk(at, rows, odd, minima)

	// Fill even positions between neighbouring odd minima.
	r := 0
	for k := 0; k < len(cols); k += 2 {
		col := cols[k]
		last := rows[len(rows)-1]
		if k+1 < len(cols) {
			last = minima[cols[k+1]]
		}

		row := rows[r]
		best, bestVal := row, at(row, col)
		for row != last {
			r++
			row = rows[r]
			if v := at(row, col); v < bestVal { // strict: lower row wins ties
				best, bestVal = row, v
			}
		}
		minima[col] = best
	}
}
