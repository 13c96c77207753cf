/*
Package observability turns the menu engine's lifecycle events into logs
and metrics.

It ships ready-made hook sets: LoggingHooks mirrors every event into an
slog.Logger, NewMetrics/MetricsHooks record Prometheus counters and handler
latency histograms, and Combine fans events out to several hook sets on a
single menu.
*/
package observability
