// hot-reload_test.go: tests for dynamic configuration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testShuffler(t *testing.T) *Shuffler[int, int] {
	t.Helper()
	sh, err := New(func(v int) int { return v % 4 }, DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create shuffler: %v", err)
	}
	return sh
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return configPath
}

// TestNewHotConfig tests HotConfig creation and lifecycle
func TestNewHotConfig(t *testing.T) {
	sh := testShuffler(t)
	configPath := writeTestConfig(t, "shuffle:\n  recency_ratio: 0.5\n")

	hc, err := NewHotConfig(sh, HotConfigOptions{
		ConfigPath:   configPath,
		PollInterval: 100 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Failed to create hot config: %v", err)
	}

	// The watcher delivers the file's contents during construction, so the
	// initial values replace the target's defaults straight away.
	if got := hc.GetConfig().RecencyRatio; got != 0.5 {
		t.Errorf("Expected initial ratio 0.5 from the file, got %f", got)
	}
	if got := sh.GetRecencyRatio(); got != 0.5 {
		t.Errorf("Expected target ratio 0.5 from the file, got %f", got)
	}

	if err := hc.Start(); err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	if err := hc.Start(); err != nil {
		t.Errorf("Second Start should be a no-op, got %v", err)
	}
	if err := hc.Stop(); err != nil {
		t.Errorf("Failed to stop watcher: %v", err)
	}
}

// TestNewHotConfig_Validation tests constructor argument checks
func TestNewHotConfig_Validation(t *testing.T) {
	sh := testShuffler(t)

	if _, err := NewHotConfig(sh, HotConfigOptions{}); err == nil {
		t.Error("Expected error for missing config path")
	}
	if _, err := NewHotConfig(nil, HotConfigOptions{ConfigPath: "x.yaml"}); err == nil {
		t.Error("Expected error for nil target")
	}
}

// TestHotConfig_AppliesRatioChange tests that a parsed change reaches the
// engine and the reload callback
func TestHotConfig_AppliesRatioChange(t *testing.T) {
	sh := testShuffler(t)
	configPath := writeTestConfig(t, "shuffle:\n  recency_ratio: 0.75\n")

	hc, err := NewHotConfig(sh, HotConfigOptions{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Failed to create hot config: %v", err)
	}

	var gotOld, gotNew TuningConfig
	reloads := 0
	hc.OnReload = func(oldConfig, newConfig TuningConfig) {
		gotOld, gotNew = oldConfig, newConfig
		reloads++
	}

	hc.handleConfigChange(map[string]interface{}{
		"shuffle": map[string]interface{}{"recency_ratio": 0.5},
	})

	if got := sh.GetRecencyRatio(); got != 0.5 {
		t.Errorf("Expected engine ratio 0.5 after reload, got %f", got)
	}
	if got := hc.GetConfig().RecencyRatio; got != 0.5 {
		t.Errorf("Expected tracked ratio 0.5 after reload, got %f", got)
	}
	if reloads != 1 {
		t.Fatalf("Expected 1 reload callback, got %d", reloads)
	}
	if gotOld.RecencyRatio != DefaultRecencyRatio || gotNew.RecencyRatio != 0.5 {
		t.Errorf("Callback got old=%f new=%f", gotOld.RecencyRatio, gotNew.RecencyRatio)
	}
}

// TestHotConfig_FlatKeys tests configuration without a shuffle section
func TestHotConfig_FlatKeys(t *testing.T) {
	sh := testShuffler(t)
	configPath := writeTestConfig(t, "recency_ratio: 0.75\n")

	hc, err := NewHotConfig(sh, HotConfigOptions{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Failed to create hot config: %v", err)
	}

	hc.handleConfigChange(map[string]interface{}{"recency_ratio": 0.25})
	if got := sh.GetRecencyRatio(); got != 0.25 {
		t.Errorf("Expected ratio 0.25 from flat keys, got %f", got)
	}
}

// TestHotConfig_IgnoresInvalidValues tests that out-of-range or malformed
// values leave the previous configuration intact
func TestHotConfig_IgnoresInvalidValues(t *testing.T) {
	sh := testShuffler(t)
	configPath := writeTestConfig(t, "shuffle:\n  recency_ratio: 0.75\n")

	hc, err := NewHotConfig(sh, HotConfigOptions{ConfigPath: configPath})
	if err != nil {
		t.Fatalf("Failed to create hot config: %v", err)
	}

	for _, bad := range []interface{}{1.5, 0.0, -1.0, "fast", nil} {
		hc.handleConfigChange(map[string]interface{}{
			"shuffle": map[string]interface{}{"recency_ratio": bad},
		})
		if got := sh.GetRecencyRatio(); got != DefaultRecencyRatio {
			t.Errorf("Value %v: expected ratio to stay %f, got %f", bad, DefaultRecencyRatio, got)
		}
	}

	// Unrelated sections are ignored entirely.
	hc.handleConfigChange(map[string]interface{}{
		"cache": map[string]interface{}{"max_size": 10},
	})
	if got := sh.GetRecencyRatio(); got != DefaultRecencyRatio {
		t.Errorf("Unrelated section changed ratio to %f", got)
	}
}

// TestShuffler_SetRecencyRatio tests the Tunable implementation directly
func TestShuffler_SetRecencyRatio(t *testing.T) {
	sh := testShuffler(t)

	sh.SetRecencyRatio(0.3)
	if got := sh.GetRecencyRatio(); got != 0.3 {
		t.Errorf("Expected ratio 0.3, got %f", got)
	}

	for _, bad := range []float64{0, -0.1, 1.01} {
		sh.SetRecencyRatio(bad)
		if got := sh.GetRecencyRatio(); got != 0.3 {
			t.Errorf("Out-of-range ratio %f should be ignored, got %f", bad, got)
		}
	}
}
