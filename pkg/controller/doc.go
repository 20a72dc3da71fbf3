// Package controller contains HTTP middlewares and request helpers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - UUIDConverter: Parses identifiers from path and query parameters in the configured uuid62 form.
//   - HealthHandler: Pings dependencies for readiness probes.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
