// config.go: configuration for Xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"math/rand/v2"

	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for a shuffle engine.
type Config struct {
	// RecencyRatio sizes the recency cache relative to the number of
	// distinct group keys: capacity = ceil(RecencyRatio * groups), with a
	// minimum of one slot. Larger ratios space groups further apart but
	// cause more skipped draws. Must be in (0, 1].
	// Default: DefaultRecencyRatio.
	RecencyRatio float64

	// Source is the random source used by shuffle invocations. When set,
	// every invocation draws from this single source, which makes runs
	// reproducible with a seeded source but is not safe for concurrent
	// invocations. When nil, each invocation creates its own MT19937
	// source seeded from TimeProvider. Default: nil.
	Source rand.Source

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider supplies the seed for per-invocation random sources.
	// If nil, a cached system clock is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector receives per-draw shuffle metrics (emissions,
	// skips, forced accepts, padding draws). If nil, NoOpMetricsCollector
	// is used (zero overhead). Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate checks configuration parameters and applies sensible defaults.
// Returns nil (no actual validation errors, only normalization).
//
// This method is automatically called by New, so you typically don't need
// to call it manually. However, it's provided as a public API if you want
// to inspect the normalized configuration before creating an engine.
//
// Default values applied:
//   - RecencyRatio: DefaultRecencyRatio (0.75) if outside (0, 1]
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.RecencyRatio <= 0 || c.RecencyRatio > 1 {
		c.RecencyRatio = DefaultRecencyRatio
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RecencyRatio:     DefaultRecencyRatio,
		Logger:           NoOpLogger{},
		TimeProvider:     &systemTimeProvider{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// systemTimeProvider is the default time provider using go-timecache.
// This provides much faster time access compared to time.Now() with zero
// allocations, which keeps engine construction cheap.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
