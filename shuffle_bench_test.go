// shuffle_bench_test.go: benchmarks for the shuffle engine
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"testing"
)

// BenchmarkShuffledIndexes measures a full drain at library-like sizes.
func BenchmarkShuffledIndexes(b *testing.B) {
	for _, size := range []int{100, 1000, 10_000} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			values := make([]int, size)
			for i := range values {
				values[i] = i
			}
			keyOf := func(v int) int { return v % 25 }

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				seq, err := ShuffledIndexes(values, 0, keyOf)
				if err != nil {
					b.Fatal(err)
				}
				seq.Materialize()
			}
		})
	}
}

// BenchmarkShuffledIndexes_Prefix measures lazy partial consumption: only
// the first 20 positions are pulled from a large shuffle.
func BenchmarkShuffledIndexes_Prefix(b *testing.B) {
	values := make([]int, 10_000)
	for i := range values {
		values[i] = i
	}
	keyOf := func(v int) int { return v % 25 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, err := ShuffledIndexes(values, 0, keyOf)
		if err != nil {
			b.Fatal(err)
		}
		for j := 0; j < 20; j++ {
			seq.At(j)
		}
		seq.Stop()
	}
}

// BenchmarkFIFOCache measures the recency cache hot path.
func BenchmarkFIFOCache(b *testing.B) {
	c := newFIFOCache[int](64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert(i % 100)
		c.Contains(i % 100)
	}
}
