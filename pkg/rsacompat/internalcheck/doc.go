// Package internalcheck holds source-level policy tests for the rsacompat
// packages.
//
// The tests load the library packages with golang.org/x/tools/go/packages
// and walk their syntax trees. They flag hex formatting verbs, which would
// print key material in a recoverable form, and equality operators on byte
// arrays, which compare in variable time.
//
// # Internal Use Only
//
// The package exports nothing and exists only for its tests.
package internalcheck
