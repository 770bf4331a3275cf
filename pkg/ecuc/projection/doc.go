// Package projection renders extractions and live models into the stable
// node shape consumed by external frontends. Node types are normalized
// against a closed synonym table so every producer emits the same
// vocabulary.
package projection
