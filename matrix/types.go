// SPDX-License-Identifier: MIT

package matrix

// Matrix is a rectangular grid of values addressed by zero-based (row, col).
//
// Implementations must be deterministic: repeated At calls with the same
// indices return the same value. At with an index outside [0,Rows())×[0,Cols())
// is a programmer error and may panic.
//
// Complexity: all methods are expected O(1).
type Matrix[T any] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At returns the element at (i, j).
	At(i, j int) T
}

// funcMatrix adapts a function into a Matrix.
type funcMatrix[T any] struct {
	r, c int
	fn   func(i, j int) T
}

// Func returns a rows×cols Matrix whose entries are computed by fn on demand.
// Nothing is cached; fn is called on every At.
// Returns nil if fn is nil or a dimension is negative.
//
// Example:
//
//	m := matrix.Func(3, 4, func(i, j int) int { return (i - j) * (i - j) })
func Func[T any](rows, cols int, fn func(i, j int) T) Matrix[T] {
	if fn == nil || rows < 0 || cols < 0 {
		return nil
	}

	return &funcMatrix[T]{r: rows, c: cols, fn: fn}
}

func (m *funcMatrix[T]) Rows() int { return m.r }
func (m *funcMatrix[T]) Cols() int { return m.c }
func (m *funcMatrix[T]) At(i, j int) T { return m.fn(i, j) }

// transposed swaps the axes of an underlying Matrix without copying.
type transposed[T any] struct {
	m Matrix[T]
}

// Transpose returns a zero-copy view of m with rows and columns swapped.
// Transposing a transposed view unwraps it. Returns nil for a nil m.
// Complexity: O(1).
func Transpose[T any](m Matrix[T]) Matrix[T] {
	if m == nil {
		return nil
	}
	if t, ok := m.(*transposed[T]); ok {
		return t.m
	}

	return &transposed[T]{m: m}
}

func (t *transposed[T]) Rows() int { return t.m.Cols() }
func (t *transposed[T]) Cols() int { return t.m.Rows() }
func (t *transposed[T]) At(i, j int) T { return t.m.At(j, i) }

// compile-time interface checks
var (
	_ Matrix[int] = (*Dense[int])(nil)
	_ Matrix[int] = (*funcMatrix[int])(nil)
	_ Matrix[int] = (*transposed[int])(nil)
)
