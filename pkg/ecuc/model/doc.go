// Package model holds the live configuration tree built from an
// extraction: containers with multiplicity-bounded instances, per-instance
// variable values, and an append-only change history.
//
// A declared Shape can impose a canonical hierarchy on the flat extraction;
// containers the shape does not name are dropped or attached according to
// the configured policy.
package model
