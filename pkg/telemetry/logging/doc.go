// Package logging provides structured logging for the extraction core and
// the CLI, built on log/slog.
//
// Diagnostics go to stderr so command output on stdout stays machine
// readable.
package logging
