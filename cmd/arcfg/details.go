package main

import (
	"os"

	"github.com/spf13/cobra"

	"ecutools/arcfg/pkg/cli"
	"ecutools/arcfg/pkg/ecuc"
	"ecutools/arcfg/pkg/ecuc/projection"
)

var detailsFlags struct {
	format string
}

type detailsBody struct {
	Success bool             `json:"success"`
	Node    *projection.Node `json:"node"`
}

var detailsCmd = &cobra.Command{
	Use:     "details <file> <node-path>",
	Aliases: []string{"node"},
	Short:   "Look up a single node in a document's tree",
	Long: `Parse a configuration document and print the node at the given
slash-separated path, including its parameters and children.

Examples:
  arcfg details Lin_Cfg.arxml Lin/LinGeneral
  arcfg details Lin.xdm Lin/LinGlobalConfig/LinChannel`,
	Args: cobra.ExactArgs(2),
	RunE: runDetails,
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().StringVar(&detailsFlags.format, "format", "", "output format: json or text (default from config)")
}

func runDetails(cmd *cobra.Command, args []string) error {
	cfg, _, proc, err := setup()
	if err != nil {
		return err
	}
	formatter, format := formatterFor(cfg, detailsFlags.format)

	if err := checkFileSize(cfg, args[0]); err != nil {
		cli.RenderError(os.Stderr, err, format)
		return cli.NewCommandError("details", err)
	}
	res, err := proc.ParseFile(args[0])
	if err != nil {
		cli.RenderError(os.Stderr, err, format)
		return cli.NewCommandError("details", err)
	}
	node, err := ecuc.Locate(res, args[1])
	if err != nil {
		cli.RenderError(os.Stderr, err, format)
		return cli.NewCommandError("details", err)
	}
	return formatter.FormatTo(os.Stdout, detailsBody{Success: true, Node: node})
}
