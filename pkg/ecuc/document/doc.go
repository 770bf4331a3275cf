// Package document loads a configuration XML file into a raw element tree.
//
// Parsing is a two-pass ingestion: a pre-pass harvests every namespace
// prefix-to-URI binding used in the document (including an unlabeled default
// namespace inferred from the root element), then a structural pass builds
// the element tree. All later matching is done by local, namespace-stripped
// tag name so the two source dialects can be handled regardless of prefix
// usage.
//
// The element tree lives only for the duration of one parse call; it is
// consumed by the extractors and never shared across documents.
package document
