package chain

import (
	"context"
	"errors"

	"github.com/kbukum/chainkit/resilience"
)

// WithRetry wraps a chain so that failed Next calls are retried with
// the given policy. This is sound because a failed Next commits no
// state: every retry recomputes from the last successfully committed
// value. Exhaustion is never retried.
func WithRetry[R any](c Chain[R], cfg resilience.RetryConfig) Chain[R] {
	if cfg.RetryIf == nil {
		cfg.RetryIf = retryIfNotExhausted
	}
	return &retryingChain[R]{inner: c, cfg: cfg}
}

type retryingChain[R any] struct {
	inner Chain[R]
	cfg   resilience.RetryConfig
}

func retryIfNotExhausted(err error) bool {
	if !resilience.DefaultRetryIf(err) {
		return false
	}
	return !errors.Is(err, ErrExhausted)
}

func (c *retryingChain[R]) Next(ctx context.Context) (R, error) {
	return resilience.Retry(ctx, c.cfg, func() (R, error) {
		return c.inner.Next(ctx)
	})
}

func (c *retryingChain[R]) Fork() Chain[R] {
	return &retryingChain[R]{inner: c.inner.Fork(), cfg: c.cfg}
}
