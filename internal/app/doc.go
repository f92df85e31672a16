// Package app assembles the dashboard API: configuration, logging,
// OpenTelemetry, the dataset cache, services, middleware chain, and the
// chi router, plus graceful start and stop of the HTTP server.
package app
