// Package walker is the generic, namespace-tolerant extraction strategy.
//
// It operates on the raw element tree and classifies tags against closed
// sets, so it handles definition files, which the schema-aware extractor
// does not model, and serves as the fallback when that extractor yields
// nothing.
package walker
