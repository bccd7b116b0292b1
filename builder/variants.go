package builder

import "fmt"

// MongePrim enumerates the primitive Monge building blocks.
// The set is closed; PrimitiveMatrix dispatches on it in one switch.
type MongePrim int

const (
	// ConstantRows fills each row with one random value.
	ConstantRows MongePrim = iota
	// ConstantCols fills each column with one random value.
	ConstantCols
	// UpperRightOnes sets a random block [0,i)×[n-j,n) to one.
	UpperRightOnes
	// LowerLeftOnes sets a random block [m-i,m)×[0,j) to one.
	LowerLeftOnes
)

// String implements fmt.Stringer.
func (p MongePrim) String() string {
	switch p {
	case ConstantRows:
		return "ConstantRows"
	case ConstantCols:
		return "ConstantCols"
	case UpperRightOnes:
		return "UpperRightOnes"
	case LowerLeftOnes:
		return "LowerLeftOnes"
	default:
		return fmt.Sprintf("MongePrim(%d)", int(p))
	}
}

// Shape is a rows×cols request for RandomMongeSet.
type Shape struct {
	Rows int
	Cols int
}
