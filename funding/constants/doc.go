// Package constants defines the sentinel errors and environment-variable
// names shared across the funding subpackages.
//
// Environment variables documented here are the whole external surface of the
// library: one derived variable per registered namespace carries the raw
// activation token, and a handful of fixed variables control global behavior.
package constants
