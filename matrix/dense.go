// Package matrix provides core primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T any] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to the zero value of T.
// Zero-sized shapes are legal (they model degenerate inputs); negative sizes
// return ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]T into a new Dense.
// All rows must have equal length, otherwise ErrDimensionMismatch.
// A nil or empty outer slice yields a 0×0 matrix.
// Complexity: O(r*c).
func NewDenseFrom[T any](rows [][]T) (*Dense[T], error) {
	var r, c int
	r = len(rows)
	if r > 0 {
		c = len(rows[0])
	}

	m := &Dense[T]{r: r, c: c, data: make([]T, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d columns, want %d: %w",
				i, len(row), c, ErrDimensionMismatch)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// MustDense is NewDenseFrom that panics on error. Intended for literals in
// tests and examples.
func MustDense[T any](rows [][]T) *Dense[T] {
	m, err := NewDenseFrom(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// At returns the element at (row, col) without a bounds check beyond the
// slice's own. Use Get for a checked read.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) T {
	return m.data[row*m.c+col]
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// Get retrieves the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Get(row, col int) (T, error) {
	idx, err := m.indexOf("Get", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a view of row i sharing storage with m.
// Returns ErrOutOfRange for an invalid i.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Fill sets every element of the half-open block [r0,r1)×[c0,c1) to v.
// Bounds are clamped to the matrix; an empty block is a no-op.
// Complexity: O((r1-r0)*(c1-c0)).
func (m *Dense[T]) Fill(r0, r1, c0, c1 int, v T) {
	r0, r1 = max(r0, 0), min(r1, m.r)
	c0, c1 = max(c0, 0), min(c1, m.c)
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			m.data[i*m.c+j] = v
		}
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
