// Package builder - RNG utilities shared by the stochastic constructors.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; use deriveRNG to create independent streams.
package builder

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic stream from base and a
// stream identifier. base.Int63() is consumed once so that reusing a stream
// id on the same base still yields distinct children.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}
