package config

// Default values applied to unset fields.
const (
	DefaultUnmatchedPolicy = "drop"
	DefaultIDMode          = "path"
	DefaultOutputFormat    = "json"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Model.UnmatchedPolicy == "" {
		cfg.Model.UnmatchedPolicy = DefaultUnmatchedPolicy
	}
	if cfg.Projection.IDMode == "" {
		cfg.Projection.IDMode = DefaultIDMode
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}
