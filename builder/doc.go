// Package builder synthesizes Monge matrices for tests, benchmarks and
// examples, using "functional-options"-style configuration.
//
// A Monge matrix satisfies M[i,j] + M[i',j'] ≤ M[i,j'] + M[i',j] for all
// i < i', j < j'. Non-negative sums of Monge matrices are Monge, so every
// such matrix can be assembled from four primitive building blocks:
//
//   - ConstantRows:   every row holds one random value.
//   - ConstantCols:   every column holds one random value.
//   - UpperRightOnes: ones in a random top-right block, zeros elsewhere.
//   - LowerLeftOnes:  ones in a random bottom-left block, zeros elsewhere.
//
// The package offers:
//
//   - PrimitiveMatrix: one primitive of a given shape.
//   - RandomMonge:     rows+cols random ones-blocks summed together.
//   - RandomMongeSet:  several shapes, each from its own derived RNG stream.
//   - Options:         WithSeed / WithRand (required), WithMaxValue.
//
// Guarantees:
//
//   - Determinism: same seed and call order ⇒ identical matrices.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrBadSize, ErrNeedRandSource, ErrUnknownPrimitive)
//     wrapped with the constructor name for context.
//
// This package is test-support infrastructure; production callers supply
// their own matrices.
package builder
