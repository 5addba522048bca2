// lazyseq.go: lazy memoizing sequence over a pull-based producer
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import "iter"

// Seq is a lazy, memoizing view over a finite sequence. The source producer
// is evaluated on demand, one element per pull, and every produced element
// is cached so it can be re-read by position without recomputation.
//
// A Seq has a single logical consumer: its methods must not be called from
// multiple goroutines concurrently. Partial consumption is first-class;
// abandoning a Seq after reading a prefix leaks nothing, though calling
// Stop releases the producer immediately rather than at garbage collection.
type Seq[T any] struct {
	next     func() (T, bool)
	stop     func()
	memo     []T
	finished bool
}

// newSeq wraps a one-shot producer. The producer is not started until the
// first pull.
func newSeq[T any](src iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(src)
	return &Seq[T]{next: next, stop: stop}
}

// At returns the element at position i, running the producer just far
// enough to reach it. Positions already produced are served from the memo.
// Returns the zero value and false when i is negative, past the end of the
// sequence, or past the point where Stop was called.
func (s *Seq[T]) At(i int) (T, bool) {
	if i < 0 {
		var zero T
		return zero, false
	}
	s.pullTo(i)
	if i < len(s.memo) {
		return s.memo[i], true
	}
	var zero T
	return zero, false
}

// All returns an iterator over the full sequence from the beginning:
// memoized elements first, then fresh ones pulled from the producer.
// The Seq keeps memoizing, so All may be ranged over more than once.
func (s *Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			v, ok := s.At(i)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Materialize drains the producer to completion and returns the whole
// sequence as a fresh slice. May be long-running for large inputs; callers
// needing non-blocking behavior should offload the call themselves.
func (s *Seq[T]) Materialize() []T {
	for !s.finished {
		s.pullTo(len(s.memo))
	}
	out := make([]T, len(s.memo))
	copy(out, s.memo)
	return out
}

// Len returns the number of elements produced so far. Only after the
// producer is exhausted (or stopped) is this the final length.
func (s *Seq[T]) Len() int {
	return len(s.memo)
}

// Stop releases the producer. Elements already produced remain readable;
// further positions report absent. Stop is idempotent.
func (s *Seq[T]) Stop() {
	if !s.finished {
		s.finished = true
		s.stop()
	}
}

// pullTo advances the producer until position i is memoized or the
// sequence ends.
func (s *Seq[T]) pullTo(i int) {
	for !s.finished && len(s.memo) <= i {
		v, ok := s.next()
		if !ok {
			s.finished = true
			s.stop()
			return
		}
		s.memo = append(s.memo, v)
	}
}
