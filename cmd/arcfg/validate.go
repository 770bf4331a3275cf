package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecutools/arcfg/pkg/cli"
)

var validateFlags struct {
	format string
}

// validateEntry is the per-file outcome of a validation run.
type validateEntry struct {
	File       string `json:"file"`
	Valid      bool   `json:"valid"`
	FileType   string `json:"fileType,omitempty"`
	Containers int    `json:"containers,omitempty"`
	Parameters int    `json:"parameters,omitempty"`
	Skipped    int    `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
}

type validateBody struct {
	Success bool            `json:"success"`
	Total   int             `json:"total"`
	Valid   int             `json:"valid"`
	Invalid int             `json:"invalid"`
	Files   []validateEntry `json:"files"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that documents parse into non-empty trees",
	Long: `Validate one or more configuration documents. A document is valid
when some parser strategy recognizes it and extracts at least one
container. The exit code is non-zero when any document is invalid.

Examples:
  arcfg validate Lin_Cfg.arxml
  arcfg validate --format text configs/*.arxml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "", "output format: json or text (default from config)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, _, proc, err := setup()
	if err != nil {
		return err
	}
	formatter, format := formatterFor(cfg, validateFlags.format)

	body := validateBody{Total: len(args)}
	for _, path := range args {
		entry := validateEntry{File: path}
		err := checkFileSize(cfg, path)
		if err == nil {
			parsed, perr := proc.ParseFile(path)
			if perr != nil {
				err = perr
			} else {
				entry.Valid = true
				entry.FileType = string(parsed.FileType)
				entry.Containers = parsed.Extraction.Stats.Containers
				entry.Parameters = parsed.Extraction.Stats.Parameters
				entry.Skipped = parsed.Extraction.Stats.Skipped
			}
		}
		if err != nil {
			entry.Error = err.Error()
			body.Invalid++
		} else {
			body.Valid++
		}
		body.Files = append(body.Files, entry)
	}
	body.Success = body.Invalid == 0

	if format == cli.FormatText {
		for _, entry := range body.Files {
			if entry.Valid {
				fmt.Fprintf(os.Stdout, "ok    %s (%s, %d containers)\n", entry.File, entry.FileType, entry.Containers)
			} else {
				fmt.Fprintf(os.Stdout, "error %s: %s\n", entry.File, entry.Error)
			}
		}
		fmt.Fprintf(os.Stdout, "%d valid, %d invalid\n", body.Valid, body.Invalid)
	} else if err := formatter.FormatTo(os.Stdout, body); err != nil {
		return err
	}

	if body.Invalid > 0 {
		return cli.NewCommandError("validate", fmt.Errorf("%d of %d files invalid", body.Invalid, body.Total))
	}
	return nil
}
