package minima

import (
	"github.com/katalvlaran/smawk/matrix"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// accessor is the internal view every algorithm works on: column minima of
// a rows×cols grid addressed by at(i, j). Row minima run on the transposed
// accessor, so each algorithm is written once.
type accessor[T any] struct {
	at         func(i, j int) T
	rows, cols int
}

// orient builds the accessor whose column minima answer dir for m.
func orient[T any](m matrix.Matrix[T], dir Direction) accessor[T] {
	if dir == Rows {
		return accessor[T]{
			at:   func(i, j int) T { return m.At(j, i) },
			rows: m.Cols(),
			cols: m.Rows(),
		}
	}

	return accessor[T]{at: m.At, rows: m.Rows(), cols: m.Cols()}
}

// validate rejects nil matrices and lanes with nothing to scan.
// The orthogonal dimension must be ≥ 1 even when there are no lanes at all.
func validate[T any](method string, m matrix.Matrix[T], dir Direction) error {
	if m == nil {
		return errors.Wrap(ErrNilMatrix, method)
	}
	if dir == Rows && m.Cols() == 0 {
		return errors.Wrapf(ErrEmptyInput, "%s: %d×0 matrix has no columns", method, m.Rows())
	}
	if dir == Columns && m.Rows() == 0 {
		return errors.Wrapf(ErrEmptyInput, "%s: 0×%d matrix has no rows", method, m.Cols())
	}

	return nil
}

// LaneMinimum returns the index of the left-most minimum of lane.
// Returns ErrEmptyInput for an empty lane.
// Complexity: O(n) time, O(1) space.
func LaneMinimum[T constraints.Ordered](lane []T) (int, error) {
	if len(lane) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "LaneMinimum")
	}

	best := 0
	for i := 1; i < len(lane); i++ {
		if lane[i] < lane[best] { // strict: earlier index wins ties
			best = i
		}
	}

	return best, nil
}

// scanLane returns the row in [lo,hi) holding the left-most minimum of
// column col. Requires lo < hi.
func scanLane[T constraints.Ordered](at func(i, j int) T, col, lo, hi int) int {
	best, bestVal := lo, at(lo, col)
	for i := lo + 1; i < hi; i++ {
		if v := at(i, col); v < bestVal {
			best, bestVal = i, v
		}
	}

	return best
}
