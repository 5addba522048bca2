// shuffle.go: the shuffle engine and its public call surface
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"iter"
	"math"
	"sync/atomic"
)

// Shuffler is a reusable group-spacing shuffle engine for items of type T
// keyed by K. A Shuffler carries only configuration and counters; every
// invocation allocates its own working state, so concurrent invocations on
// one Shuffler are safe as long as Config.Source is nil (an injected
// source is a single shared stream and restricts the engine to one
// invocation at a time).
type Shuffler[T any, K comparable] struct {
	keyOf func(T) K
	cfg   Config

	// recencyRatio is read by every invocation and written by hot reload,
	// hence the atomic float bits.
	recencyRatio atomic.Uint64

	// Atomic statistics counters
	runs          atomic.Uint64
	emitted       atomic.Uint64
	skips         atomic.Uint64
	forcedAccepts atomic.Uint64
	paddingDraws  atomic.Uint64
}

// New creates a shuffle engine with the given key extraction function and
// configuration. Config values outside their valid ranges are normalized
// to defaults (see Config.Validate); a nil keyOf is the only rejected
// argument.
func New[T any, K comparable](keyOf func(T) K, cfg Config) (*Shuffler[T, K], error) {
	if keyOf == nil {
		return nil, NewErrNilKeyFunc()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Shuffler[T, K]{keyOf: keyOf, cfg: cfg}
	s.recencyRatio.Store(math.Float64bits(cfg.RecencyRatio))
	return s, nil
}

// SetRecencyRatio replaces the recency cache sizing ratio for subsequent
// invocations. Values outside (0, 1] are ignored. Implements Tunable.
func (s *Shuffler[T, K]) SetRecencyRatio(ratio float64) {
	if ratio <= 0 || ratio > 1 {
		s.cfg.Logger.Warn("ignoring out-of-range recency ratio", "ratio", ratio)
		return
	}
	s.recencyRatio.Store(math.Float64bits(ratio))
}

// GetRecencyRatio returns the ratio currently in effect. Implements Tunable.
func (s *Shuffler[T, K]) GetRecencyRatio() float64 {
	return math.Float64frombits(s.recencyRatio.Load())
}

// Indexes returns a lazy sequence of distinct positions forming a
// permutation of [0, len(values)). The first drop positions are passed
// through in original order; the remainder is shuffled with group spacing.
// Argument errors surface here, before any lazy work begins.
func (s *Shuffler[T, K]) Indexes(values []T, drop int) (*Seq[int], error) {
	slots, err := s.run(values, drop)
	if err != nil {
		return nil, err
	}
	return newSeq(func(yield func(int) bool) {
		for i := 0; i < drop; i++ {
			if !yield(i) {
				return
			}
		}
		for sl := range slots {
			if !yield(sl.index) {
				return
			}
		}
	}), nil
}

// Items is Indexes yielding the item values instead of their positions.
func (s *Shuffler[T, K]) Items(values []T, drop int) (*Seq[T], error) {
	slots, err := s.run(values, drop)
	if err != nil {
		return nil, err
	}
	return newSeq(func(yield func(T) bool) {
		for i := 0; i < drop; i++ {
			if !yield(values[i]) {
				return
			}
		}
		for sl := range slots {
			if !yield(sl.value) {
				return
			}
		}
	}), nil
}

// List is the eager variant of Items: it drains the whole sequence and
// returns it as a slice.
func (s *Shuffler[T, K]) List(values []T, drop int) ([]T, error) {
	seq, err := s.Items(values, drop)
	if err != nil {
		return nil, err
	}
	return seq.Materialize(), nil
}

// run validates the arguments, builds the equalized buckets, and returns
// the selection loop as a one-shot lazy producer of real slots. All
// validation and grouping happens eagerly here; only the loop itself is
// deferred to consumption.
func (s *Shuffler[T, K]) run(values []T, drop int) (iter.Seq[slot[T]], error) {
	if len(values) == 0 {
		return nil, NewErrEmptyInput()
	}
	if drop < 0 || drop >= len(values) {
		return nil, NewErrInvalidDrop(drop, len(values))
	}

	buckets := groupByKey(values, drop, s.keyOf)
	if len(buckets) == 0 {
		return nil, NewErrNoBuckets(len(values) - drop)
	}
	if err := equalize(buckets); err != nil {
		return nil, err
	}

	rng := newRand(s.cfg.Source, s.cfg.TimeProvider)

	// Shuffle the initial bucket order so output never structurally
	// favors the key that happened to appear first in the input.
	rng.Shuffle(len(buckets), func(i, j int) {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	})

	policy := newRecencyPolicy[K](len(buckets), s.GetRecencyRatio())

	s.runs.Add(1)
	s.cfg.MetricsCollector.RecordRun(len(buckets))
	s.cfg.Logger.Debug("shuffle started",
		"items", len(values), "drop", drop,
		"groups", len(buckets), "recency_capacity", policy.cache.Capacity())

	return func(yield func(slot[T]) bool) {
		working := buckets
		for len(working) > 0 {
			i := rng.IntN(len(working))
			b := working[i]

			accept, forced := policy.shouldEmit(b.key, &b.skipped)
			if !accept {
				s.skips.Add(1)
				s.cfg.MetricsCollector.RecordSkip()
				continue
			}
			if forced {
				s.forcedAccepts.Add(1)
				s.cfg.MetricsCollector.RecordForcedAccept()
			}

			// Pop a uniformly random slot. Within-bucket order does not
			// matter past this point, so swap-remove is fine.
			j := rng.IntN(len(b.slots))
			sl := b.slots[j]
			b.slots[j] = b.slots[len(b.slots)-1]
			b.slots = b.slots[:len(b.slots)-1]

			if len(b.slots) == 0 {
				working[i] = working[len(working)-1]
				working = working[:len(working)-1]
			}

			if sl.pad {
				s.paddingDraws.Add(1)
				s.cfg.MetricsCollector.RecordPaddingDraw()
				continue
			}

			policy.markEmitted(b.key, &b.skipped)
			s.emitted.Add(1)
			s.cfg.MetricsCollector.RecordEmit()
			if !yield(sl) {
				return
			}
		}
	}, nil
}

// Stats returns a snapshot of the engine's cumulative counters.
func (s *Shuffler[T, K]) Stats() Stats {
	return Stats{
		Runs:          s.runs.Load(),
		Emitted:       s.emitted.Load(),
		Skips:         s.skips.Load(),
		ForcedAccepts: s.forcedAccepts.Load(),
		PaddingDraws:  s.paddingDraws.Load(),
	}
}

// Stats provides cumulative statistics about an engine's shuffles.
type Stats struct {
	// Runs is the number of shuffle invocations started
	Runs uint64

	// Emitted is the number of items yielded to output sequences
	Emitted uint64

	// Skips is the number of bucket draws rejected by the recency test
	Skips uint64

	// ForcedAccepts is the number of emissions forced by the skip-count
	// fallback
	ForcedAccepts uint64

	// PaddingDraws is the number of draws that consumed an equalization
	// filler entry without producing output
	PaddingDraws uint64
}

// SkipRatio returns the fraction of draws rejected by the recency test
// (0.0-1.0). Returns 0.0 before any draw has happened. A persistently high
// ratio suggests lowering Config.RecencyRatio.
func (s Stats) SkipRatio() float64 {
	total := s.Emitted + s.PaddingDraws + s.Skips
	if total == 0 {
		return 0
	}
	return float64(s.Skips) / float64(total)
}

// ShuffledIndexes produces a lazy permutation of [0, len(values)) with
// group spacing, using a default-configured engine: positions [0, drop)
// pass through in order, the remainder is shuffled so that items whose
// keyOf values match are spaced apart. Fails with an invalid-argument
// error when values is empty, drop is out of range, or keyOf is nil.
func ShuffledIndexes[T any, K comparable](values []T, drop int, keyOf func(T) K) (*Seq[int], error) {
	s, err := New(keyOf, DefaultConfig())
	if err != nil {
		return nil, err
	}
	return s.Indexes(values, drop)
}

// ShuffledItems is ShuffledIndexes yielding item values instead of
// positions.
func ShuffledItems[T any, K comparable](values []T, drop int, keyOf func(T) K) (*Seq[T], error) {
	s, err := New(keyOf, DefaultConfig())
	if err != nil {
		return nil, err
	}
	return s.Items(values, drop)
}

// ShuffledList is the eager variant of ShuffledItems, returning the fully
// shuffled slice.
func ShuffledList[T any, K comparable](values []T, drop int, keyOf func(T) K) ([]T, error) {
	s, err := New(keyOf, DefaultConfig())
	if err != nil {
		return nil, err
	}
	return s.List(values, drop)
}
