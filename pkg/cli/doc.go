/*
Package cli provides command-line interface utilities for arcfg.

The cli package includes output formatters, error rendering, progress
reporting and signal handling used by the arcfg command.

Output Formatting:

Command results render as text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
		return err
	}

Error Rendering:

Structured extraction errors render as a machine-readable body with a
stable shape, so frontends can dispatch on the error kind:

	cli.RenderError(os.Stderr, err, cli.FormatJSON)

Signal Handling:

For cancellation on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
*/
package cli
