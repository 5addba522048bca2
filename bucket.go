// bucket.go: grouping and equalization stages of the shuffle pipeline
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// slot is one schedulable entry inside a bucket. Real slots carry the
// position of the item in the caller's slice; filler slots are tagged with
// pad and are never emitted (their value is a copy of the bucket's first
// item purely so the field holds a valid instance of T).
type slot[T any] struct {
	index int
	value T
	pad   bool
}

// bucket holds the ordered slots of one group key, plus the number of times
// the recency test has rejected it since its last emission.
type bucket[T any, K comparable] struct {
	key     K
	slots   []slot[T]
	skipped int
}

// groupByKey partitions values[drop:] into per-key buckets, preserving the
// original relative order of items within each bucket (stable partition).
// Slot indexes are positions in the full values slice, so the dropped
// prefix keeps its original numbering. Buckets are returned in order of
// first appearance, which keeps the whole pipeline deterministic for a
// seeded random source.
func groupByKey[T any, K comparable](values []T, drop int, keyOf func(T) K) []*bucket[T, K] {
	byKey := make(map[K]*bucket[T, K])
	buckets := make([]*bucket[T, K], 0)
	for i, v := range values[drop:] {
		k := keyOf(v)
		b := byKey[k]
		if b == nil {
			b = &bucket[T, K]{key: k}
			byKey[k] = b
			buckets = append(buckets, b)
		}
		b.slots = append(b.slots, slot[T]{index: drop + i, value: v})
	}
	return buckets
}

// equalize pads every bucket to the length of the largest with filler
// slots. Equal bucket length removes size bias from uniform-random bucket
// selection: the probability of drawing a given key becomes uniform across
// keys, which is the weighting that keeps large groups from dominating
// consecutive emissions.
//
// Returns an internal invariant error when no buckets exist; groupByKey
// on a validated input cannot produce that, so reaching it means an engine
// bug rather than a caller mistake.
func equalize[T any, K comparable](buckets []*bucket[T, K]) error {
	if len(buckets) == 0 {
		return NewErrNoBuckets(0)
	}

	maxLen := 0
	for _, b := range buckets {
		if len(b.slots) > maxLen {
			maxLen = len(b.slots)
		}
	}

	for _, b := range buckets {
		filler := slot[T]{value: b.slots[0].value, pad: true}
		for len(b.slots) < maxLen {
			b.slots = append(b.slots, filler)
		}
	}
	return nil
}
