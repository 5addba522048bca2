// Package xanthos provides a group-spacing shuffle for ordered collections.
//
// Xanthos produces a permutation of an input sequence that spaces apart
// items sharing the same group key (for example, consecutive tracks by the
// same artist) while still approximating a full random shuffle.
//
// Example usage:
//
//	indexes, err := xanthos.ShuffledIndexes(tracks, 0, func(t Track) string {
//		return t.Artist
//	})
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package xanthos

const (
	// Version of Xanthos shuffle library
	Version = "v0.1.0-dev"

	// DefaultRecencyRatio is the default ratio of recency cache capacity
	// to the number of distinct group keys
	DefaultRecencyRatio = 0.75

	// minRecencyCapacity is the smallest recency cache the engine will use.
	// A shuffle with a single group still needs one cache slot to space
	// emissions at all.
	minRecencyCapacity = 1
)
