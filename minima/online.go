// SPDX-License-Identifier: MIT

package minima

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// OnlineColumnMinima computes upper-right column minima of a totally
// monotone size×size matrix whose entries may depend on earlier minima:
//
//	v(0) = initial
//	v(j) = min { M[i,j] | i < j }   for 0 < j < size
//
// Entry j of the result is {Row: r(j), Value: v(j)} where r(j) is the
// smallest row attaining v(j); entry 0 is {0, initial}.
//
// fn(done, i, j) is only called with i < j < size and only after v(i) is
// final; done holds v(0..k) for some k ≥ i. This makes the engine suitable
// for DP recurrences of the form v(j) = min_i { v(i) + w(i, j) }.
//
// State (amortized O(size) overall):
//   - finished:  highest column whose minimum is final.
//   - base:      lowest row that may still supply a future minimum.
//   - tentative: highest column holding a provisional minimum.
//
// Each step handles column i = finished+1:
//  1. i > tentative: run SMAWK on rows [base, finished] against the next
//     block of columns, keep strictly smaller values.
//  2. M[i-1,i] beats the provisional v(i): it is final and rows above i-1
//     are dead; base = i-1, tentative = i.
//  3. M[i-1,tentative] is no better than v(tentative): row i-1 helps no
//     pending column.
//  4. Otherwise row i-1 wins at tentative; fold older rows into base and
//     collapse tentative to i.
//
// The matrix MUST be totally monotone; this is not checked.
//
// Errors:
//   - ErrEmptyInput        — size < 1.
//   - ErrNilMatrix         — fn is nil.
//   - ErrNotAboveDiagonal  — an access with i >= j (internal contract breach).
//   - ErrOutOfRange        — an access outside [0,size) or to an unfinished row.
//
// A contract breach aborts the whole computation; no partial result is
// returned.
//
// Options: WithLogger traces each step at Trace level. WithStrategy is ignored.
func OnlineColumnMinima[T constraints.Ordered](initial T, size int, fn OnlineFunc[T], opts ...Option) ([]Minimum[T], error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrEmptyInput, "OnlineColumnMinima: size %d", size)
	}
	if fn == nil {
		return nil, errors.Wrap(ErrNilMatrix, "OnlineColumnMinima")
	}

	e := &onlineEngine[T]{
		fn:     fn,
		size:   size,
		result: make([]Minimum[T], 1, size),
		cfg:    newConfig(opts...),
	}
	e.result[0] = Minimum[T]{Row: 0, Value: initial}

	if err := e.guard(e.run); err != nil {
		return nil, errors.Wrap(err, "OnlineColumnMinima")
	}

	return e.result, nil
}

// accessViolation carries a contract breach from deep inside the SMAWK
// recursion up to the OnlineColumnMinima boundary.
type accessViolation struct {
	err error
}

// guard runs f and converts an accessViolation panic into its error. Any
// other panic (e.g. from the caller's fn) propagates unchanged.
func (e *onlineEngine[T]) guard(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(accessViolation)
			if !ok {
				panic(r)
			}
			err = v.err
		}
	}()
	f()

	return nil
}

// onlineEngine is the mutable state of one OnlineColumnMinima call.
type onlineEngine[T constraints.Ordered] struct {
	fn     OnlineFunc[T]
	size   int
	result []Minimum[T]
	cfg    config

	finished  int
	base      int
	tentative int
}

// at evaluates M[i,j] after checking the access contract.
func (e *onlineEngine[T]) at(i, j int) T {
	if i >= j {
		panic(accessViolation{errors.Wrapf(ErrNotAboveDiagonal, "(i, j) = (%d, %d)", i, j)})
	}
	if i < 0 || j >= e.size {
		panic(accessViolation{errors.Wrapf(ErrOutOfRange, "(i, j) = (%d, %d), size %d", i, j, e.size)})
	}
	if i > e.finished {
		panic(accessViolation{errors.Wrapf(ErrOutOfRange, "row %d not finalized (finished %d)", i, e.finished)})
	}

	done := e.result[: e.finished+1 : e.finished+1]
	return e.fn(done, i, j)
}

func (e *onlineEngine[T]) run() {
	for e.finished < e.size-1 {
		i := e.finished + 1

		// Case 1: past the tentative frontier; solve a fresh block.
		if i > e.tentative {
			e.advanceBlock(i)
			continue
		}

		// Case 2: new minimum on the diagonal.
		if diag := e.at(i-1, i); diag < e.result[i].Value {
			e.result[i] = Minimum[T]{Row: i - 1, Value: diag}
			e.trace("diagonal", i)
			e.base, e.tentative, e.finished = i-1, i, i
			continue
		}

		// Case 3: row i-1 supplies nothing up to tentative.
		if e.at(i-1, e.tentative) >= e.result[e.tentative].Value {
			e.trace("skip", i)
			e.finished = i
			continue
		}

		// Case 4: row i-1 wins at tentative.
		e.trace("fold", i)
		e.base, e.tentative, e.finished = i-1, i, i
	}
}

// advanceBlock runs SMAWK on rows [base, finished] against the largest
// square block of columns to the right of finished and merges the result.
func (e *onlineEngine[T]) advanceBlock(i int) {
	rows := indexRange(e.base, e.finished+1)
	e.tentative = min(e.finished+len(rows), e.size-1)
	cols := indexRange(e.finished+1, e.tentative+1)
	e.trace("block", i)

	minima := make([]int, e.tentative+1)
	smawk(e.at, rows, cols, minima)
	for _, col := range cols {
		row := minima[col]
		v := e.at(row, col)
		switch {
		case col >= len(e.result):
			e.result = append(e.result, Minimum[T]{Row: row, Value: v})
		case v < e.result[col].Value:
			e.result[col] = Minimum[T]{Row: row, Value: v}
		}
	}
	e.finished = i
}

func (e *onlineEngine[T]) trace(step string, i int) {
	if !e.cfg.tracing(logrus.TraceLevel) {
		return
	}
	e.cfg.log.WithFields(logrus.Fields{
		"prefix":    "online",
		"step":      step,
		"column":    i,
		"finished":  e.finished,
		"base":      e.base,
		"tentative": e.tentative,
	}).Trace("online column minima step")
}
