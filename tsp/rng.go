// Package tsp - RNG utilities for the annealer.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs.
//   - Encapsulation: the annealer never touches the global math/rand source;
//     the caller owns and injects the stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRand to create independent streams for independent runs.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer (Vigna 2014 constants).
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

// DeriveRand creates an independent deterministic stream from base and a stream id.
// If base==nil, defaultRNGSeed is the parent; otherwise base.Int63() is consumed
// once so that reusing a stream id still yields distinct children.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// distinctPair draws i ≠ j uniformly from [1, n−1]. Requires n ≥ 3.
// The second draw skips over i instead of retrying, so it costs exactly two draws.
//
// Complexity: O(1).
func distinctPair(r *rand.Rand, n int) (int, int) {
	i := 1 + r.Intn(n-1)
	j := 1 + r.Intn(n-2)
	if j >= i {
		j++
	}

	return i, j
}
