// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// TuningConfig is the dynamically reloadable subset of engine settings.
type TuningConfig struct {
	// RecencyRatio sizes the recency cache; see Config.RecencyRatio.
	RecencyRatio float64
}

// HotConfig provides dynamic configuration reload capabilities using Argus.
// It watches a configuration file and adjusts a running engine's spacing
// behavior when changes are detected. Useful for tuning a deployed player's
// shuffle feel without restarting it.
type HotConfig struct {
	target  Tunable
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  TuningConfig
	logger  Logger

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig TuningConfig)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig TuningConfig)

	// Logger for hot reload operations.
	// If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotConfig creates a hot-reloadable configuration for a shuffle engine
// (any Tunable; *Shuffler implements it). Watching begins immediately: the
// file's current contents are parsed and applied to the target before
// NewHotConfig returns, and changes are picked up from then on. Start is a
// no-op when the watcher is already running.
//
// Example configuration file (YAML):
//
//	shuffle:
//	  recency_ratio: 0.75
//
// Supported configuration keys:
//   - shuffle.recency_ratio (float): recency cache sizing ratio (0.0-1.0]
func NewHotConfig(target Tunable, opts HotConfigOptions) (*HotConfig, error) {
	if target == nil {
		return nil, fmt.Errorf("target is required")
	}
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		target:   target,
		logger:   opts.Logger,
		OnReload: opts.OnReload,
		config:   TuningConfig{RecencyRatio: target.GetRecencyRatio()},
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil // Already started
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
// Returns any error from stopping the watcher.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the current tuning configuration (thread-safe).
func (hc *HotConfig) GetConfig() TuningConfig {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := hc.parseConfig(configData, oldConfig)
	hc.config = newConfig
	hc.mu.Unlock()

	if newConfig.RecencyRatio != oldConfig.RecencyRatio {
		hc.target.SetRecencyRatio(newConfig.RecencyRatio)
		hc.logger.Info("recency ratio reloaded",
			"old", oldConfig.RecencyRatio, "new", newConfig.RecencyRatio)
	}

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parseFloatInRange extracts a float64 within the range (min, max].
// Supports both float64 and int types (YAML/JSON may vary).
func parseFloatInRange(value interface{}, min, max float64) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if v > min && v <= max {
			return v, true
		}
	case int:
		if float64(v) > min && float64(v) <= max {
			return float64(v), true
		}
	}
	return 0, false
}

// parseConfig extracts tuning configuration from Argus config data.
// Unknown or out-of-range values leave the previous configuration intact.
func (hc *HotConfig) parseConfig(data map[string]interface{}, prev TuningConfig) TuningConfig {
	config := prev

	// Extract shuffle section - Argus might nest it or provide it directly
	section, ok := data["shuffle"].(map[string]interface{})
	if !ok {
		if _, hasRatio := data["recency_ratio"]; hasRatio {
			section = data
		} else {
			return config
		}
	}

	if ratio, ok := parseFloatInRange(section["recency_ratio"], 0, 1); ok {
		config.RecencyRatio = ratio
	}

	return config
}
