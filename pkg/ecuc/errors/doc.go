// Package errors defines the structured error taxonomy for the ecuc
// extraction core.
//
// Every caller-visible failure is a value with a Kind discriminator and a
// message; internal parser state never leaks across the package boundary.
// Callers dispatch on Kind via IsKind or errors.As rather than matching
// message strings.
package errors
