package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunContext holds observability context for one sampling run.
type RunContext struct {
	RunID       string
	SamplerName string
	Seed        uint64
	Draws       int
	StartTime   time.Time
	Metrics     *Metrics
}

// NewRunContext creates a run context with a fresh run id.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(samplerName string, seed uint64, draws int, metrics *Metrics) *RunContext {
	return &RunContext{
		RunID:       uuid.NewString(),
		SamplerName: samplerName,
		Seed:        seed,
		Draws:       draws,
		StartTime:   time.Now(),
		Metrics:     metrics,
	}
}

// runContextKey is the context key for RunContext.
type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// StartSpanForRun starts the root span of a sampling run.
func (rc *RunContext) StartSpanForRun(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanSimulation)
	span.SetAttributes(
		attribute.String(AttrRunID, rc.RunID),
		attribute.String(AttrSamplerName, rc.SamplerName),
		attribute.Int64(AttrSeed, int64(rc.Seed)),
		attribute.Int(AttrDraws, rc.Draws),
	)
	return ctx, span
}

// EndRun ends the run span with its final status.
func (rc *RunContext) EndRun(span trace.Span, err error) {
	duration := time.Since(rc.StartTime)

	status := "ok"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
