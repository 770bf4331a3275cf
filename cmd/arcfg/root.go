package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecutools/arcfg/pkg/cli"
	"ecutools/arcfg/pkg/config"
	"ecutools/arcfg/pkg/ecuc"
	"ecutools/arcfg/pkg/ecuc/model"
	"ecutools/arcfg/pkg/ecuc/projection"
	"ecutools/arcfg/pkg/telemetry/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "arcfg",
	Short: "AUTOSAR ECU configuration extraction and instance management",
	Long: `arcfg normalizes AUTOSAR ECU configuration documents into a stable
container tree. It understands arxml value files, bswmd definition files
and xdm variant files, builds a live configuration model with instance
lifecycle support, and emits results as JSON on stdout.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (defaults plus ARCFG_* overrides when empty)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup initializes the singleton configuration, the logger and the
// document processor shared by all commands.
func setup() (*config.Config, *logging.Logger, *ecuc.Processor, error) {
	if err := config.Initialize(cfgFile); err != nil {
		return nil, nil, nil, cli.NewConfigError("config", err.Error())
	}
	cfg := config.GetConfig()

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, nil, nil, cli.NewConfigError("logging", err.Error())
	}

	opts := ecuc.Options{
		Unmatched: model.UnmatchedPolicy(cfg.Model.UnmatchedPolicy),
		IDMode:    projection.IDMode(cfg.Projection.IDMode),
		Logger:    logger.Slog(),
	}
	if cfg.Model.ShapeFile != "" {
		shape, err := model.LoadShape(cfg.Model.ShapeFile)
		if err != nil {
			return nil, nil, nil, cli.NewConfigError("model.shape_file", err.Error())
		}
		opts.Shape = shape
	}

	return cfg, logger, ecuc.NewProcessor(opts), nil
}

// formatterFor picks the output format, letting a per-command flag
// override the configured default.
func formatterFor(cfg *config.Config, override string) (cli.Formatter, cli.OutputFormat) {
	format := cfg.Output.Format
	if override != "" {
		format = override
	}
	switch cli.OutputFormat(format) {
	case cli.FormatText:
		return &cli.TextFormatter{}, cli.FormatText
	default:
		return &cli.JSONFormatter{Indent: cfg.Output.Indent}, cli.FormatJSON
	}
}

// checkFileSize enforces the configured document size limit before the
// file is read into memory.
func checkFileSize(cfg *config.Config, path string) error {
	if cfg.Parser.MaxFileSizeBytes <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}
	if info.Size() > cfg.Parser.MaxFileSizeBytes {
		return fmt.Errorf("%s: size %d exceeds limit of %d bytes", path, info.Size(), cfg.Parser.MaxFileSizeBytes)
	}
	return nil
}
