// Package config defines the application configuration, loaded from a
// YAML file with environment variable overrides.
//
// The loading sequence is: parse YAML, apply defaults, apply ARCFG_*
// environment overrides, validate. A process-wide singleton is available
// for code paths that cannot take an explicit *Config.
package config
