// Package middleware provides HTTP middleware for the camp API.
//
// # Available Middleware
//
//   - RequestID: assigns or propagates X-Request-ID
//   - Logger: structured request log line via slog
//   - Recovery: turns panics into the internal error body
//   - CORS: origin allow-list and preflight handling
//   - Compress: lazy gzip of response bodies
//   - Metrics: Prometheus counters and latency histograms per route
//
// Middlewares compose with Chain, outermost first:
//
//	h := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	)
//
// Metrics labels requests by the matched ServeMux pattern, which is only set
// on the request the mux itself receives, so wrap the mux directly:
//
//	metrics := middleware.NewMetrics()
//	h := middleware.Chain(metrics.Middleware(mux), middleware.RequestID)
package middleware
