package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("chainsim")
	if cfg.ServiceName != "chainsim" {
		t.Errorf("service = %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("sample rate = %v", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("chainsim")
	if cfg.Interval != 15*time.Second {
		t.Errorf("interval = %v", cfg.Interval)
	}
	if !cfg.Insecure {
		t.Error("expected insecure default for development")
	}
}

func TestStartSpanNoopProvider(t *testing.T) {
	// Without InitTracer the global provider is a no-op; span calls
	// must still be safe.
	ctx, span := StartSpan(context.Background(), SpanChainNext)
	SetSpanAttribute(ctx, AttrChainName, "markov")
	SetSpanAttribute(ctx, AttrDraws, 100)
	SetSpanError(ctx, errors.New("boom"))
	span.End()
}

func TestMetricsNoopMeter(t *testing.T) {
	m, err := NewMetrics(Meter("test"))
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}

	ctx := context.Background()
	m.RecordDraw(ctx, "markov", "ok", time.Millisecond)
	m.RecordFork(ctx, "markov")
	m.RecordError(ctx, "next", "markov")
}

func TestRunContextRoundTrip(t *testing.T) {
	rc := NewRunContext("normal", 42, 1000, nil)
	if rc.RunID == "" {
		t.Fatal("expected run id")
	}

	ctx := WithRunContext(context.Background(), rc)
	got := RunContextFromContext(ctx)
	if got != rc {
		t.Error("run context not round-tripped")
	}

	if RunContextFromContext(context.Background()) != nil {
		t.Error("expected nil for empty context")
	}
}

func TestRunContextSpanLifecycle(t *testing.T) {
	rc := NewRunContext("normal", 42, 10, nil)
	_, span := rc.StartSpanForRun(context.Background())
	rc.EndRun(span, nil)

	_, span = rc.StartSpanForRun(context.Background())
	rc.EndRun(span, errors.New("draw failed"))

	if rc.Duration() < 0 {
		t.Error("negative duration")
	}
}
