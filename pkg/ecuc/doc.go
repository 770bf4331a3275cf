// Package ecuc is the entry point of the extraction core. It detects the
// document dialect, runs the parser strategies in the dialect's fallback
// order, builds the live configuration model and projects the external
// tree.
package ecuc
