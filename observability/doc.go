// Package observability provides OpenTelemetry tracing and metrics for
// chainkit.
//
// InitTracer and InitMeter bootstrap the global otel providers with
// OTLP HTTP exporters; the chain decorators (chain.WithTracing,
// chain.WithMetrics) and the chainsim driver record against them. When
// the providers are not initialized, all recording is a no-op, so
// library code can instrument unconditionally.
package observability
