// Package arxml is the preferred, schema-aware extraction strategy for
// configuration value files.
//
// It decodes the document into a typed object graph (AR-PACKAGE → ELEMENTS →
// module configuration values → containers → parameters) and flattens it
// into record maps. Any internal failure, or a run that yields no content,
// is non-fatal: the caller falls back to the generic walker.
package arxml
