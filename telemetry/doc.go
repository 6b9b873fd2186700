// Package telemetry exposes the Prometheus metrics shared across all
// shopmesh services. Collectors are registered once at package init through
// promauto; servers only need to mount promhttp.Handler on /metrics.
package telemetry
