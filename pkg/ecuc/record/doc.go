// Package record defines the flat, parser-agnostic output shapes shared by
// both extraction strategies: container and parameter records keyed by
// slash-joined path, plus the closed tag-classification tables that assign
// every record its kind exactly once at ingestion time.
package record
