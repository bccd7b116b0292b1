// SPDX-License-Identifier: MIT
// Package: smawk/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating a builderConfig before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic *rand.Rand. Seed 0 maps to a fixed
// default seed (see rngFromSeed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithMaxValue bounds ConstantRows/ConstantCols draws to [0, v).
// Values that do not fit the element type wrap on conversion.
// Panics if v <= 0.
func WithMaxValue(v int64) BuilderOption {
	if v <= 0 {
		panic("builder: WithMaxValue(v<=0)")
	}
	return func(c *builderConfig) {
		c.maxValue = v
	}
}
