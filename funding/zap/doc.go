// Package zap adapts go.uber.org/zap to the funding log.Logger interface.
//
// Integrators who want visibility into swallowed persistence failures wire a
// *Logger built here into the registry and stores; everything else in the
// library defaults to the no-op logger.
package zap
