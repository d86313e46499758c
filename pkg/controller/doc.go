// Package controller contains HTTP middlewares and response helpers shared by
// every route module.
//
// Middlewares:
//   - WithCORS: Origin allow-list gate with credentialed CORS headers and preflight handling.
//   - WithLogger: Request ID, request-scoped logger and access log.
//   - WithMetrics: OpenTelemetry request counter and latency histogram.
//   - IPRateLimiter.Middleware: Per client IP token bucket, keyed on the peer unless it is a trusted proxy.
//
// Helpers:
//   - WriteData, WriteMessage, WriteError, WriteServiceError: JSON envelopes.
//   - DecodeJSON: strict JSON request decoding.
package controller
