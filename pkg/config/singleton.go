package config

import (
	"fmt"
	"sync"
)

var (
	// globalConfig holds the singleton configuration instance.
	globalConfig *Config

	// configMutex protects access to globalConfig.
	configMutex sync.RWMutex

	// initOnce ensures configuration is initialized only once.
	initOnce sync.Once
)

// Initialize loads configuration from the specified path with environment
// variable overrides and stores it as the global singleton. An empty path
// initializes the singleton to defaults plus environment overrides.
// Subsequent calls are ignored.
func Initialize(path string) error {
	var initErr error

	initOnce.Do(func() {
		var cfg *Config
		if path == "" {
			cfg = DefaultConfig()
			applyEnvOverrides(cfg)
			if err := Validate(cfg); err != nil {
				initErr = fmt.Errorf("configuration validation failed: %w", err)
				return
			}
		} else {
			var err error
			cfg, err = LoadConfigWithEnvOverrides(path)
			if err != nil {
				initErr = err
				return
			}
		}

		configMutex.Lock()
		globalConfig = cfg
		configMutex.Unlock()
	})

	return initErr
}

// GetConfig returns the global configuration instance, nil before a
// successful Initialize. Thread-safe.
//
// For testing, prefer dependency injection with explicit Config instances
// rather than the global singleton.
func GetConfig() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// SetConfig sets the global configuration instance. Primarily intended
// for testing; use Initialize for normal configuration loading.
func SetConfig(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = cfg
}
