// Package shared provides cross-cutting helpers used across Plasma Engine
// services.
//
// The package includes context helpers, validation utilities, string and date
// formatting, environment access, and the error kinds those helpers return.
// Typical usage at request ingress:
//
//	ctx = shared.ContextWithLogger(ctx, logger)
//	ctx = shared.ContextWithTracer(ctx, tracer)
//	ctx = shared.ContextWithCorrelationID(ctx, shared.NewCorrelationID())
//
// This package is intentionally dependency-light; specialized helpers live in
// subpackages such as retry, cache, safe, crypto and runtime.
package shared
