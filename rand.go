// rand.go: per-invocation pseudo-random source
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"math/rand/v2"
	"sync/atomic"

	"gonum.org/v1/gonum/mathext/prng"
)

// seedSequence distinguishes invocations that read the same cached clock
// value; go-timecache serves time at a coarse granularity, and two
// back-to-back shuffles must not end up identically seeded.
var seedSequence atomic.Uint64

// newRand returns the generator for one shuffle invocation.
//
// We don't use a cryptographically secure source of randomness here, as
// there's no need for one when shuffling a playlist. When the caller did
// not inject a source, each invocation gets its own Mersenne Twister seeded
// from the time provider, so invocations never contend on shared state.
func newRand(src rand.Source, tp TimeProvider) *rand.Rand {
	if src == nil {
		mt := prng.NewMT19937()
		// #nosec G115 - seed quality, not range, matters here
		mt.Seed(uint64(tp.Now()) + seedSequence.Add(1)*0x9e3779b97f4a7c15)
		src = mt
	}
	return rand.New(src)
}

// NewSeededSource returns a Mersenne Twister source seeded with seed,
// suitable for Config.Source when reproducible shuffles are needed
// (typically in tests).
func NewSeededSource(seed uint64) rand.Source {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return mt
}
