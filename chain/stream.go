package chain

import (
	"context"
	"errors"
)

// Take draws up to n values from the chain. It stops early on
// exhaustion, returning what was drawn; any other error aborts the
// drain and is returned with the values drawn so far.
func Take[R any](ctx context.Context, c Chain[R], n int) ([]R, error) {
	values := make([]R, 0, n)
	for i := 0; i < n; i++ {
		v, err := c.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				return values, nil
			}
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Collect drains the chain until exhaustion. Chains that never
// exhaust make Collect run until the context is cancelled.
func Collect[R any](ctx context.Context, c Chain[R]) ([]R, error) {
	var values []R
	for {
		v, err := c.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				return values, nil
			}
			return values, err
		}
		values = append(values, v)
	}
}

// ToChannel drains the chain into out until exhaustion or context
// cancellation, then closes out. Any non-exhaustion error is returned.
func ToChannel[R any](ctx context.Context, c Chain[R], out chan<- R) error {
	defer close(out)
	for {
		v, err := c.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrExhausted) {
				return nil
			}
			return err
		}
		select {
		case out <- v:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Batch groups the chain's values into slices of up to size. The last
// batch before exhaustion may be shorter; exhaustion with an empty
// batch yields ErrExhausted.
func Batch[R any](c Chain[R], size int) Chain[[]R] {
	if size < 1 {
		size = 1
	}
	return &batchChain[R]{base: c, size: size}
}

type batchChain[R any] struct {
	base Chain[R]
	size int
}

func (c *batchChain[R]) Next(ctx context.Context) ([]R, error) {
	batch := make([]R, 0, c.size)
	for len(batch) < c.size {
		v, err := c.base.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrExhausted) && len(batch) > 0 {
				return batch, nil
			}
			return nil, err
		}
		batch = append(batch, v)
	}
	return batch, nil
}

func (c *batchChain[R]) Fork() Chain[[]R] {
	return &batchChain[R]{base: c.base.Fork(), size: c.size}
}

// Filter yields only values satisfying pred, drawing from the base
// chain until one passes.
func Filter[R any](c Chain[R], pred func(R) bool) Chain[R] {
	return &filterChain[R]{base: c, pred: pred}
}

type filterChain[R any] struct {
	base Chain[R]
	pred func(R) bool
}

func (c *filterChain[R]) Next(ctx context.Context) (R, error) {
	for {
		v, err := c.base.Next(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		if c.pred(v) {
			return v, nil
		}
		select {
		case <-ctx.Done():
			var zero R
			return zero, ctx.Err()
		default:
		}
	}
}

func (c *filterChain[R]) Fork() Chain[R] {
	return &filterChain[R]{base: c.base.Fork(), pred: c.pred}
}

// Tap calls fn as a side-effect for each drawn value, then passes the
// value through unchanged. Use for logging, metrics, or publishing.
func Tap[R any](c Chain[R], fn func(context.Context, R) error) Chain[R] {
	return &tapChain[R]{base: c, fn: fn}
}

type tapChain[R any] struct {
	base Chain[R]
	fn   func(context.Context, R) error
}

func (c *tapChain[R]) Next(ctx context.Context) (R, error) {
	v, err := c.base.Next(ctx)
	if err != nil {
		return v, err
	}
	if err := c.fn(ctx, v); err != nil {
		var zero R
		return zero, err
	}
	return v, nil
}

func (c *tapChain[R]) Fork() Chain[R] {
	return &tapChain[R]{base: c.base.Fork(), fn: c.fn}
}
