// Package xanthos implements a statistically fair, group-aware shuffle.
//
// # Overview
//
// A uniform random shuffle of a media library frequently places two tracks
// by the same artist back to back: with k equally sized groups, roughly 1/k
// of all adjacent pairs share a group. Xanthos produces permutations whose
// adjacent-same-group rate is measurably lower than uniform shuffling, while
// never stalling, looping, or dropping items. It is designed for:
//   - Spacing: items sharing a group key are discouraged from being adjacent
//   - Fairness: no group is ever starved, even when one group dominates
//   - Laziness: results are produced one at a time and can be read partially
//   - Type Safety: generic API over any item and any comparable key type
//
// # Algorithm
//
// The engine partitions the input into per-key buckets, pads every bucket to
// the length of the largest with non-emittable filler entries (so a uniform
// random bucket pick selects each *key* with equal probability regardless of
// group size), and then repeatedly draws a bucket at random. A bounded
// first-in-first-out recency cache suppresses keys emitted too recently; a
// skip-count fallback forces acceptance after a bounded number of rejections
// so a dominant or unlucky group always makes progress. Every draw that
// passes the recency test removes one entry, so the loop terminates after
// exactly maxBucketSize x bucketCount removals.
//
// # Quick Start
//
//	import "github.com/agilira/xanthos"
//
//	type Track struct {
//	    Title  string
//	    Artist string
//	}
//
//	func main() {
//	    playlist, err := xanthos.ShuffledList(tracks, 0, func(t Track) string {
//	        return t.Artist
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, t := range playlist {
//	        fmt.Println(t.Title)
//	    }
//	}
//
// # Lazy Consumption
//
// ShuffledIndexes and ShuffledItems return a *Seq, a lazy memoizing view of
// the shuffled order. The underlying selection loop runs only as far as the
// consumer pulls; reading the first K elements of a 10,000 item shuffle does
// the work for roughly K elements. Previously produced elements are cached
// and can be re-read by position with At without recomputation.
//
//	seq, _ := xanthos.ShuffledIndexes(tracks, 0, keyOf)
//	first, _ := seq.At(0)  // runs the engine one step
//	again, _ := seq.At(0)  // memoized, no work
//	seq.Stop()             // done early, release the producer
//
// # Configured Engines
//
// The package-level functions use DefaultConfig. For deterministic seeding,
// custom logging, metrics, or a tuned recency window, construct a Shuffler:
//
//	sh, err := xanthos.New(keyOf, xanthos.Config{
//	    RecencyRatio: 0.5,
//	    Source:       mt,   // any math/rand/v2 Source, e.g. a seeded MT19937
//	})
//	seq, err := sh.Indexes(tracks, 0)
//
// # Dropped Prefix
//
// The drop argument passes the first drop items through unshuffled: output
// positions [0, drop) are exactly the input positions [0, drop) in order,
// and only the remainder is permuted. This supports "keep what is already
// playing" use cases.
//
// # Guarantees and Non-Guarantees
//
// The output is always an exact permutation of the input. Adjacent items
// sharing a group key are not forbidden, only made statistically rare; a
// collection dominated by one group cannot avoid them entirely. Each call
// owns its working state, so concurrent calls on one Shuffler are safe; a
// single returned Seq must be consumed by one goroutine at a time.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos
