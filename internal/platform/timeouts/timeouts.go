// Package timeouts holds the durations shared by the agenda process.
package timeouts

import "time"

// HealthWait caps how long a client waits for the agenda health check to
// report SERVING.
const HealthWait = 5 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown bounds graceful stops: HTTP servers draining requests, telemetry
// flushing and storage clients disconnecting.
const Shutdown = 5 * time.Second
