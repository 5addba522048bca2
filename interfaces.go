// interfaces.go: public interfaces for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// The engine only uses it to seed the default random source, so a coarse
// cached clock is more than sufficient.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// MetricsCollector defines an interface for collecting shuffle metrics.
// Implementations can send metrics to Prometheus, DataDog, StatsD, or other
// monitoring systems. All methods must be safe for concurrent use, fast,
// and allocation-free; multiple shuffle invocations may report at once.
type MetricsCollector interface {
	// RecordRun records the start of one shuffle invocation.
	// groups is the number of distinct group keys in the input.
	RecordRun(groups int)

	// RecordEmit records one item emitted to the output sequence.
	RecordEmit()

	// RecordSkip records one rejected bucket draw (recency cooldown).
	RecordSkip()

	// RecordForcedAccept records an emission that was forced by the
	// skip-count fallback after repeated rejections.
	RecordForcedAccept()

	// RecordPaddingDraw records a draw that removed an equalization
	// filler entry and produced no output.
	RecordPaddingDraw()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks and ensure zero overhead.
type NoOpMetricsCollector struct{}

// RecordRun does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordRun(groups int) {}

// RecordEmit does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordEmit() {}

// RecordSkip does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordSkip() {}

// RecordForcedAccept does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordForcedAccept() {}

// RecordPaddingDraw does nothing. Inlined by compiler.
func (NoOpMetricsCollector) RecordPaddingDraw() {}

// RecencyCache is a fixed-capacity first-in-first-out presence cache.
// The selection loop uses it to answer "was this group key emitted too
// recently." Implementations are owned by exactly one shuffle invocation
// and need not be safe for concurrent use.
type RecencyCache[K comparable] interface {
	// Contains reports whether key is currently marked as recently used.
	Contains(key K) bool

	// Insert marks key as recently used, evicting the oldest entry when
	// the cache is at capacity. Inserting a present key does not requeue it.
	Insert(key K)

	// Remove unmarks key. Returns true if the key was present.
	Remove(key K) bool

	// Capacity returns the maximum number of keys the cache can hold.
	Capacity() int

	// Len returns the current number of keys in the cache.
	Len() int
}

// Tunable is implemented by engines whose spacing behavior can be adjusted
// at runtime. HotConfig applies configuration file changes through it.
type Tunable interface {
	// SetRecencyRatio replaces the recency cache sizing ratio used by
	// subsequent shuffle invocations. Values outside (0, 1] are ignored.
	SetRecencyRatio(ratio float64)

	// GetRecencyRatio returns the ratio currently in effect.
	GetRecencyRatio() float64
}
