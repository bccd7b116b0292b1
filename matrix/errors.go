// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; context is attached via fmt.Errorf("ctx: %w", ErrX).

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Checked indexers (Get/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates rows of unequal length in NewDenseFrom.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
