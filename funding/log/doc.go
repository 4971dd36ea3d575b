// Package log defines the structured logging interface used by the funding
// packages and typed logging fields.
//
// The library never logs by default: every component falls back to the no-op
// logger, and failure paths that the activation flow deliberately swallows
// (lockfile I/O, corpus loading) only become visible when an integrator wires
// a real adapter such as the zap subpackage.
package log
