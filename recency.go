// recency.go: the recency test deciding whether a drawn bucket may emit
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "math"

// recencyPolicy suppresses keys that were emitted too recently. The
// suppression window is a FIFO cache sized proportionally to the number of
// distinct groups: more groups tolerate a longer cooldown because
// alternatives are plentiful. A skip-count fallback bounds how long any one
// bucket can be rejected, so a dominant or unlucky group is never starved.
//
// One policy instance belongs to one shuffle invocation.
type recencyPolicy[K comparable] struct {
	cache RecencyCache[K]
}

// newRecencyPolicy sizes the cache as ceil(ratio * groups), clamped to at
// least one slot. With the default ratio the cache always leaves a fraction
// of the keys unmarked, so the selection loop cannot reach a state where
// every bucket is suppressed at once.
func newRecencyPolicy[K comparable](groups int, ratio float64) *recencyPolicy[K] {
	capacity := int(math.Ceil(ratio * float64(groups)))
	return &recencyPolicy[K]{cache: newFIFOCache[K](capacity)}
}

// shouldEmit applies the recency test to a drawn bucket:
//   - key not recently used: accept
//   - key recently used but skipped more times than the cache holds keys:
//     unmark it and accept (forced), guaranteeing progress
//   - otherwise: count the rejection and skip
//
// skipped is the drawn bucket's rejection counter; it is incremented here
// on a skip and reset by markEmitted on emission.
func (p *recencyPolicy[K]) shouldEmit(key K, skipped *int) (accept, forced bool) {
	if !p.cache.Contains(key) {
		return true, false
	}
	if *skipped > p.cache.Capacity() {
		p.cache.Remove(key)
		return true, true
	}
	*skipped++
	return false, false
}

// markEmitted records an actual emission of key. The key is marked only
// here, not on acceptance, since an accepted draw may still land on a
// filler slot and produce nothing. Resetting the skip counter on emission
// keeps the fallback a rarity rather than a steady state: without the
// reset, a counter that crossed the threshold once would force-accept on
// every later draw and the spacing behavior would decay to a plain
// uniform shuffle.
func (p *recencyPolicy[K]) markEmitted(key K, skipped *int) {
	*skipped = 0
	p.cache.Insert(key)
}
