package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/chainkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported for this process.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for chain observability.
type Metrics struct {
	drawTotal    metric.Int64Counter
	drawDuration metric.Float64Histogram
	forkTotal    metric.Int64Counter
	errorTotal   metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	drawTotal, err := meter.Int64Counter("chain.draw.total",
		metric.WithDescription("Total number of chain draws"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.draw.total counter: %w", err)
	}

	drawDuration, err := meter.Float64Histogram("chain.draw.duration",
		metric.WithDescription("Duration of chain draws in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.draw.duration histogram: %w", err)
	}

	forkTotal, err := meter.Int64Counter("chain.fork.total",
		metric.WithDescription("Total number of chain forks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.fork.total counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("chain.error.total",
		metric.WithDescription("Total errors by type and chain"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating chain.error.total counter: %w", err)
	}

	return &Metrics{
		drawTotal:    drawTotal,
		drawDuration: drawDuration,
		forkTotal:    forkTotal,
		errorTotal:   errorTotal,
	}, nil
}

// RecordDraw records one chain draw.
func (m *Metrics) RecordDraw(ctx context.Context, chain, status string, duration time.Duration) {
	m.drawTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("chain", chain),
		attribute.String("status", status),
	))
	m.drawDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("chain", chain),
	))
}

// RecordFork records one chain fork.
func (m *Metrics) RecordFork(ctx context.Context, chain string) {
	m.forkTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("chain", chain),
	))
}

// RecordError records an error by type and chain.
func (m *Metrics) RecordError(ctx context.Context, errType, chain string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", errType),
		attribute.String("chain", chain),
	))
}
