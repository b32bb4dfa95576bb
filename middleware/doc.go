// Package middleware provides the HTTP pipeline hooks for the response
// envelope convention.
//
// # Available Middleware
//
//   - Recovery: the fault boundary; converts any panic into a 500 failure
//     envelope so clients never see a raw stack trace
//   - RequestID: unique per-request ID via X-Request-ID
//   - Logger: one structured log line per request via log/slog
//   - RateLimit: per-key token bucket answering 429 failure envelopes
//
// # Installation
//
// Recovery must be outermost so it observes the whole pipeline:
//
//	handler := middleware.Chain(mux,
//	    middleware.Recovery,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.RateLimit(limiter),
//	)
//
// # Fault Boundary
//
// By default the panic message is exposed verbatim in the response body,
// which is convenient during development. Production deployments should
// enable redaction:
//
//	middleware.RecoveryWith(middleware.RecoveryConfig{RedactErrors: true})
package middleware
