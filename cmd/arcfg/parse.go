package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecutools/arcfg/pkg/cli"
	"ecutools/arcfg/pkg/config"
	"ecutools/arcfg/pkg/ecuc"
)

var parseFlags struct {
	format   string
	failFast bool
}

// parseBody wraps a parse result in the stable response envelope.
type parseBody struct {
	Success bool `json:"success"`
	*ecuc.Result
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse configuration documents into normalized trees",
	Long: `Parse one or more configuration documents and emit the normalized
container tree for each as JSON on stdout.

The parser strategy is chosen per document: arxml value files go through
the typed extractor with the generic walker as fallback, definition and
xdm files go straight to the walker.

Examples:
  arcfg parse Lin_Cfg.arxml
  arcfg parse --format text Lin.xdm
  arcfg parse --fail-fast configs/*.arxml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&parseFlags.format, "format", "", "output format: json or text (default from config)")
	parseCmd.Flags().BoolVar(&parseFlags.failFast, "fail-fast", false, "stop at the first file that fails to parse")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, logger, proc, err := setup()
	if err != nil {
		return err
	}
	formatter, format := formatterFor(cfg, parseFlags.format)
	ctx := cli.SetupSignalHandler()

	var progress cli.ProgressReporter
	if len(args) > 1 {
		progress = cli.NewProgressReporter(nil)
		progress.Start(int64(len(args)))
	}

	failed := 0
	for i, path := range args {
		if ctx.Err() != nil {
			return cli.NewCommandError("parse", ctx.Err())
		}
		if err := parseOne(cfg, proc, formatter, format, path); err != nil {
			failed++
			logger.Error("parse failed", "path", path, "error", err)
			if progress != nil {
				progress.Error(err)
			}
			if parseFlags.failFast {
				return cli.NewCommandError("parse", err)
			}
		}
		if progress != nil {
			progress.Update(int64(i + 1))
		}
	}
	if progress != nil {
		progress.Finish()
	}

	if failed > 0 {
		return cli.NewCommandError("parse", fmt.Errorf("%d of %d files failed", failed, len(args)))
	}
	return nil
}

func parseOne(cfg *config.Config, proc *ecuc.Processor, formatter cli.Formatter, format cli.OutputFormat, path string) error {
	if err := checkFileSize(cfg, path); err != nil {
		cli.RenderError(os.Stderr, err, format)
		return err
	}
	res, err := proc.ParseFile(path)
	if err != nil {
		cli.RenderError(os.Stderr, err, format)
		return err
	}
	if format == cli.FormatText {
		return formatter.FormatTo(os.Stdout, summarize(res))
	}
	return formatter.FormatTo(os.Stdout, parseBody{Success: true, Result: res})
}

// summarize renders the one-line text form of a parse result.
func summarize(res *ecuc.Result) string {
	return fmt.Sprintf("%s: %s via %s, %d containers, %d parameters",
		res.FilePath, res.FileType, res.Strategy,
		res.Metadata.TotalContainers, res.Metadata.TotalParameters)
}
