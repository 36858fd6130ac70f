// Package controller contains the HTTP middlewares and helper handlers the API
// server is assembled from.
//
// Middlewares:
//   - WithCORS: answers preflight requests and sets CORS headers for allowed origins.
//   - WithLogger: attaches a request-scoped logger and request ID and writes an access log.
//   - Metrics.Wrap: records Prometheus request counters and latency histograms.
//
// Helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof under /debug/pprof/.
package controller
