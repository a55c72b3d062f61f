// Package metrics exposes the Prometheus collectors used by the HTTP service.
package metrics
