// SPDX-License-Identifier: MIT
// Package: smawk/builder
//
// impl_monge.go — primitive and random Monge matrix constructors.
//
// Determinism:
//   • Draw order is fixed: rows (or cols) in index order for constant
//     primitives; block height before width for ones-blocks.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/smawk/matrix"
	"golang.org/x/exp/constraints"
)

// PrimitiveMatrix returns a rows×cols Monge matrix built from a single
// primitive. Zero-sized shapes return an empty matrix without touching the RNG.
//
// Errors:
//   - ErrBadSize          — rows < 0 or cols < 0.
//   - ErrUnknownPrimitive — p is not one of the declared primitives.
//   - ErrNeedRandSource   — no WithSeed/WithRand option.
//
// Complexity: O(rows·cols) time and memory.
func PrimitiveMatrix[T constraints.Integer](p MongePrim, rows, cols int, opts ...BuilderOption) (*matrix.Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, builderErrorf(MethodPrimitiveMatrix, ErrBadSize, "%d×%d", rows, cols)
	}
	if p < ConstantRows || p > LowerLeftOnes {
		return nil, builderErrorf(MethodPrimitiveMatrix, ErrUnknownPrimitive, "%v", p)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodPrimitiveMatrix, ErrNeedRandSource, "%v", p)
	}

	m, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	addPrimitive(m, p, cfg)

	return m, nil
}

// RandomMonge returns a random rows×cols Monge matrix: the sum of rows+cols
// primitives, each UpperRightOnes or LowerLeftOnes with equal probability.
// Entries lie in [0, rows+cols].
//
// Errors: ErrBadSize, ErrNeedRandSource.
//
// Complexity: O((rows+cols)·rows·cols) time, O(rows·cols) memory.
func RandomMonge[T constraints.Integer](rows, cols int, opts ...BuilderOption) (*matrix.Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, builderErrorf(MethodRandomMonge, ErrBadSize, "%d×%d", rows, cols)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomMonge, ErrNeedRandSource, "%d×%d", rows, cols)
	}

	return randomMonge[T](rows, cols, cfg)
}

// RandomMongeSet returns one RandomMonge matrix per shape. Each matrix is
// drawn from its own stream derived from the configured RNG, so the matrix
// for shapes[k] does not depend on the sizes of shapes[0..k-1].
//
// Errors: ErrBadSize (first offending shape), ErrNeedRandSource.
func RandomMongeSet[T constraints.Integer](shapes []Shape, opts ...BuilderOption) ([]*matrix.Dense[T], error) {
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomMongeSet, ErrNeedRandSource, "%d shapes", len(shapes))
	}
	for k, s := range shapes {
		if s.Rows < 0 || s.Cols < 0 {
			return nil, builderErrorf(MethodRandomMongeSet, ErrBadSize, "shape %d is %d×%d", k, s.Rows, s.Cols)
		}
	}

	out := make([]*matrix.Dense[T], len(shapes))
	for k, s := range shapes {
		sub := cfg
		sub.rng = deriveRNG(cfg.rng, uint64(k))
		m, err := randomMonge[T](s.Rows, s.Cols, sub)
		if err != nil {
			return nil, err
		}
		out[k] = m
	}

	return out, nil
}

func randomMonge[T constraints.Integer](rows, cols int, cfg builderConfig) (*matrix.Dense[T], error) {
	m, err := matrix.NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		return m, nil
	}

	for k := 0; k < rows+cols; k++ {
		p := UpperRightOnes
		if cfg.rng.Intn(2) == 0 {
			p = LowerLeftOnes
		}
		addPrimitive(m, p, cfg)
	}

	return m, nil
}

// addPrimitive adds primitive p onto m in place. Requires a validated p and
// a non-nil cfg.rng.
func addPrimitive[T constraints.Integer](m *matrix.Dense[T], p MongePrim, cfg builderConfig) {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return
	}

	switch p {
	case ConstantRows:
		for i := 0; i < rows; i++ {
			addBlock(m, i, i+1, 0, cols, drawValue[T](cfg))
		}
	case ConstantCols:
		for j := 0; j < cols; j++ {
			addBlock(m, 0, rows, j, j+1, drawValue[T](cfg))
		}
	case UpperRightOnes:
		h, w := drawBlock(cfg.rng, rows, cols)
		addBlock(m, 0, h, cols-w, cols, 1)
	case LowerLeftOnes:
		h, w := drawBlock(cfg.rng, rows, cols)
		addBlock(m, rows-h, rows, 0, w, 1)
	}
}

// drawValue returns a uniform draw in [0, cfg.maxValue) converted to T.
func drawValue[T constraints.Integer](cfg builderConfig) T {
	return T(cfg.rng.Int63n(cfg.maxValue))
}

// drawBlock returns a block height in [0,rows] and width in [0,cols].
func drawBlock(rng *rand.Rand, rows, cols int) (int, int) {
	h := rng.Intn(rows + 1)
	w := rng.Intn(cols + 1)
	return h, w
}

// addBlock adds delta to every element of [r0,r1)×[c0,c1).
func addBlock[T constraints.Integer](m *matrix.Dense[T], r0, r1, c0, c1 int, delta T) {
	for i := r0; i < r1; i++ {
		row, _ := m.Row(i)
		for j := c0; j < c1; j++ {
			row[j] += delta
		}
	}
}
