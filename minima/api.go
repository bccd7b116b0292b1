package minima

import (
	"github.com/katalvlaran/smawk/matrix"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// RowMinima returns the column of the left-most minimum of every row using
// the configured Strategy (default SMAWK).
//
// Recursive and SMAWK require a totally monotone matrix (unchecked).
//
// Errors: ErrNilMatrix, ErrEmptyInput (zero columns), ErrUnknownStrategy.
func RowMinima[T constraints.Ordered](m matrix.Matrix[T], opts ...Option) ([]int, error) {
	return Find(m, Rows, opts...)
}

// ColumnMinima returns the row of the left-most minimum of every column
// using the configured Strategy (default SMAWK).
//
// Errors: ErrNilMatrix, ErrEmptyInput (zero rows), ErrUnknownStrategy.
func ColumnMinima[T constraints.Ordered](m matrix.Matrix[T], opts ...Option) ([]int, error) {
	return Find(m, Columns, opts...)
}

// Find computes minima along dir with the configured Strategy.
//
// Errors: ErrUnknownStrategy, ErrUnknownDirection, then the errors of
// RowMinima / ColumnMinima.
func Find[T constraints.Ordered](m matrix.Matrix[T], dir Direction, opts ...Option) ([]int, error) {
	cfg := newConfig(opts...)

	var solve func(accessor[T]) []int
	switch cfg.strategy {
	case SMAWK:
		solve = smawkMinima[T]
	case Recursive:
		solve = recursive[T]
	case BruteForce:
		solve = bruteForce[T]
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "Find: %v", cfg.strategy)
	}
	if dir != Rows && dir != Columns {
		return nil, errors.Wrapf(ErrUnknownDirection, "Find: %v", dir)
	}
	if err := validate("Find", m, dir); err != nil {
		return nil, err
	}

	if cfg.tracing(logrus.DebugLevel) {
		cfg.log.WithFields(logrus.Fields{
			"prefix":    "minima",
			"strategy":  cfg.strategy,
			"direction": dir,
			"rows":      m.Rows(),
			"cols":      m.Cols(),
		}).Debug("finding minima")
	}

	return solve(orient(m, dir)), nil
}
