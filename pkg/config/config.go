package config

// Config is the root configuration structure.
type Config struct {
	// Parser configures document ingestion and extraction.
	Parser ParserConfig `yaml:"parser"`

	// Model configures the live configuration tree.
	Model ModelConfig `yaml:"model"`

	// Projection configures the external tree rendering.
	Projection ProjectionConfig `yaml:"projection"`

	// Output configures command result formatting.
	Output OutputConfig `yaml:"output"`

	// Logging configures diagnostic output.
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig configures document ingestion and extraction.
type ParserConfig struct {
	// MaxFileSizeBytes rejects documents larger than this. Zero means
	// no limit.
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes"`
}

// ModelConfig configures the live configuration tree.
type ModelConfig struct {
	// ShapeFile points at a YAML hierarchy declaration applied to xdm
	// documents. Empty uses the built-in shape.
	ShapeFile string `yaml:"shape_file"`

	// UnmatchedPolicy decides what happens to extracted containers the
	// shape does not name: "drop" or "attach".
	UnmatchedPolicy string `yaml:"unmatched_policy"`
}

// ProjectionConfig configures the external tree rendering.
type ProjectionConfig struct {
	// IDMode selects node ids: "path" or "digest".
	IDMode string `yaml:"id_mode"`
}

// OutputConfig configures command result formatting.
type OutputConfig struct {
	// Format is "json" or "text".
	Format string `yaml:"format"`

	// Indent pretty-prints JSON output.
	Indent bool `yaml:"indent"`
}

// LoggingConfig configures diagnostic output.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// Format is "json", "text" or "console".
	Format string `yaml:"format"`

	// AddSource includes file and line number in logs.
	AddSource bool `yaml:"add_source"`
}
