package builder

// Constructor names used to prefix errors.
const (
	// MethodPrimitiveMatrix is the canonical name for PrimitiveMatrix.
	MethodPrimitiveMatrix = "PrimitiveMatrix"
	// MethodRandomMonge is the canonical name for RandomMonge.
	MethodRandomMonge = "RandomMonge"
	// MethodRandomMongeSet is the canonical name for RandomMongeSet.
	MethodRandomMongeSet = "RandomMongeSet"
)

// DefaultMaxValue bounds the random values written by ConstantRows and
// ConstantCols: draws are uniform in [0, DefaultMaxValue).
const DefaultMaxValue int64 = 256
