// SPDX-License-Identifier: MIT
// Package: smawk/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil              (stochastic constructors then fail)
//   • maxValue = DefaultMaxValue

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Exclusive upper bound of constant-row/column draws; > 0.
	maxValue int64
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		maxValue: DefaultMaxValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
