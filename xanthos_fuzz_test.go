// xanthos_fuzz_test.go - Fuzz testing for the shuffle engine
//
// FUZZING PHILOSOPHY:
// The engine takes arbitrary input sizes, drop counts, and key spreads from
// callers. Whatever the combination, the engine must either reject it
// synchronously with an invalid-argument error or produce an exact
// permutation: no panics, no duplicates, no omissions, no stalls.
//
// FUZZING TARGETS:
// - Argument validation boundaries (empty input, drop at/over the edges)
// - Permutation integrity across group counts from one to all-distinct
// - Prefix pass-through under every valid drop count
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "testing"

// FuzzShuffledIndexes checks the core contract over arbitrary sizes, drop
// counts, and key spreads.
func FuzzShuffledIndexes(f *testing.F) {
	f.Add(10, 0, 3)
	f.Add(10, 9, 1)
	f.Add(0, 0, 4)
	f.Add(5, 5, 2)
	f.Add(100, 17, 100)
	f.Add(1, 0, 1)
	f.Add(7, -2, 2)

	f.Fuzz(func(t *testing.T, size, drop, spread int) {
		// Keep inputs small enough for the corpus to explore widely.
		if size < 0 || size > 500 {
			t.Skip()
		}
		if spread < 1 {
			spread = 1
		}

		values := make([]int, size)
		for i := range values {
			values[i] = i
		}
		keyOf := func(v int) int { return v % spread }

		seq, err := ShuffledIndexes(values, drop, keyOf)

		if size == 0 || drop < 0 || drop >= size {
			if err == nil {
				t.Fatalf("size=%d drop=%d: expected invalid-argument error", size, drop)
			}
			if !IsInvalidArgument(err) {
				t.Fatalf("size=%d drop=%d: wrong error class: %v", size, drop, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("size=%d drop=%d: unexpected error: %v", size, drop, err)
		}

		out := seq.Materialize()
		if len(out) != size {
			t.Fatalf("size=%d drop=%d: got %d indexes", size, drop, len(out))
		}
		seen := make([]bool, size)
		for pos, idx := range out {
			if idx < 0 || idx >= size {
				t.Fatalf("index %d out of range", idx)
			}
			if seen[idx] {
				t.Fatalf("index %d duplicated", idx)
			}
			seen[idx] = true
			if pos < drop && idx != pos {
				t.Fatalf("position %d: dropped prefix not passed through (got %d)", pos, idx)
			}
		}
	})
}
