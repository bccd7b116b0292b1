// SPDX-License-Identifier: MIT
// Package minima: sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Call sites attach context with github.com/pkg/errors (Wrap/Wrapf),
//     which keeps the sentinel reachable through Unwrap.
//   - A non-totally-monotone input is NOT an error class: it is an unchecked
//     caller contract and yields unspecified indices.

package minima

import "errors"

var (
	// ErrEmptyInput indicates a lane set with nothing to scan: zero columns
	// for row minima, zero rows for column minima, an empty lane, or
	// size < 1 for the online engine.
	ErrEmptyInput = errors.New("minima: empty input")

	// ErrNilMatrix indicates a nil matrix or accessor function.
	ErrNilMatrix = errors.New("minima: nil matrix")

	// ErrOutOfRange indicates an online matrix access with an index outside
	// [0,size) or with a row whose minimum is not finalized yet.
	ErrOutOfRange = errors.New("minima: matrix access out of range")

	// ErrNotAboveDiagonal indicates an online matrix access (i, j) with i >= j.
	ErrNotAboveDiagonal = errors.New("minima: matrix access not above diagonal")

	// ErrUnknownStrategy indicates a Strategy value outside the declared set.
	ErrUnknownStrategy = errors.New("minima: unknown strategy")

	// ErrUnknownDirection indicates a Direction value other than Rows or Columns.
	ErrUnknownDirection = errors.New("minima: unknown direction")
)
