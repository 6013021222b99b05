package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/chainkit/logger"
	"github.com/kbukum/chainkit/observability"
)

// WithLogging wraps a chain with per-call logging.
// Logs: chain name, duration, and success/error status.
func WithLogging[R any](c Chain[R], log *logger.Logger, name string) Chain[R] {
	return &loggingChain[R]{inner: c, log: log, name: name}
}

type loggingChain[R any] struct {
	inner Chain[R]
	log   *logger.Logger
	name  string
}

func (c *loggingChain[R]) Next(ctx context.Context) (R, error) {
	start := time.Now()
	v, err := c.inner.Next(ctx)
	duration := time.Since(start)

	fields := map[string]interface{}{
		logger.FieldChain:    c.name,
		logger.FieldDuration: duration.Milliseconds(),
	}

	if err != nil {
		fields[logger.FieldError] = err.Error()
		c.log.Error("chain next failed", fields)
	} else {
		c.log.Debug("chain next", fields)
	}

	return v, err
}

func (c *loggingChain[R]) Fork() Chain[R] {
	c.log.Debug("chain forked", logger.Fields(logger.FieldChain, c.name))
	return &loggingChain[R]{inner: c.inner.Fork(), log: c.log, name: c.name}
}

// WithTracing wraps a chain with OpenTelemetry span creation. Each Next
// creates a span named "chain.next" carrying the chain's name and a
// per-instance id; forks record their parent's id so fork lineage is
// visible in traces.
func WithTracing[R any](c Chain[R], name string) Chain[R] {
	return &tracingChain[R]{inner: c, name: name, id: uuid.NewString()}
}

type tracingChain[R any] struct {
	inner  Chain[R]
	name   string
	id     string
	forkOf string
}

func (c *tracingChain[R]) Next(ctx context.Context) (R, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanChainNext)
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrChainName, c.name)
	observability.SetSpanAttribute(ctx, observability.AttrChainID, c.id)
	if c.forkOf != "" {
		observability.SetSpanAttribute(ctx, observability.AttrForkOf, c.forkOf)
	}

	v, err := c.inner.Next(ctx)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}

	return v, err
}

func (c *tracingChain[R]) Fork() Chain[R] {
	return &tracingChain[R]{
		inner:  c.inner.Fork(),
		name:   c.name,
		id:     uuid.NewString(),
		forkOf: c.id,
	}
}

// WithMetrics wraps a chain with metric recording.
// Records draw count, duration, and errors.
func WithMetrics[R any](c Chain[R], metrics *observability.Metrics, name string) Chain[R] {
	return &metricsChain[R]{inner: c, metrics: metrics, name: name}
}

type metricsChain[R any] struct {
	inner   Chain[R]
	metrics *observability.Metrics
	name    string
}

func (c *metricsChain[R]) Next(ctx context.Context) (R, error) {
	start := time.Now()
	v, err := c.inner.Next(ctx)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		c.metrics.RecordError(ctx, "next", c.name)
	}
	c.metrics.RecordDraw(ctx, c.name, status, duration)

	return v, err
}

func (c *metricsChain[R]) Fork() Chain[R] {
	c.metrics.RecordFork(context.Background(), c.name)
	return &metricsChain[R]{inner: c.inner.Fork(), metrics: c.metrics, name: c.name}
}
