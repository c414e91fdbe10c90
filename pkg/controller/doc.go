// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds permissive CORS headers and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records per-route request counts and latency histograms.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing the net/http/pprof endpoints.
package controller
