package minima

import "fmt"

// Direction selects which lanes are searched.
type Direction int

const (
	// Rows computes one column index per row.
	Rows Direction = iota
	// Columns computes one row index per column.
	Columns
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Rows:
		return "rows"
	case Columns:
		return "columns"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Strategy names a minima-finding algorithm.
type Strategy int

const (
	// SMAWK runs in O(m+n) on totally monotone input. Default.
	SMAWK Strategy = iota
	// Recursive runs in O(m + n log m) on totally monotone input.
	Recursive
	// BruteForce runs in O(m·n) on any input.
	BruteForce
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case SMAWK:
		return "smawk"
	case Recursive:
		return "recursive"
	case BruteForce:
		return "brute-force"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Minimum is one entry of an online result: the minimum Value of a column
// and the Row it was found in.
type Minimum[T any] struct {
	Row   int
	Value T
}

// OnlineFunc yields entry (i, j) of an upper-triangular matrix, i < j.
// done holds the finalized minima v(0..k) with k ≥ i, so the entry may be
// defined in terms of earlier optimal values. done is read-only.
type OnlineFunc[T any] func(done []Minimum[T], i, j int) T
