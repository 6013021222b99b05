package chain

import (
	"context"

	apperrors "github.com/kbukum/chainkit/errors"
)

// ErrExhausted is returned by Next when an adapted sequence has no more
// values. Match it with errors.Is.
var ErrExhausted = apperrors.Exhausted("sequence")

// Chain produces a lazy sequence of values of type R.
type Chain[R any] interface {
	// Next advances the chain and returns the produced value. The
	// generation closure may block; ctx is the cancellation vehicle.
	// A failed Next commits no state, so the call can be retried.
	Next(ctx context.Context) (R, error)
	// Fork returns an independent continuation from the current
	// committed state. Fork never mutates the receiver.
	Fork() Chain[R]
}

// GenFunc is a stateless generation closure.
type GenFunc[R any] func(ctx context.Context) (R, error)

// simpleChain wraps a stateless generation closure. There is no
// per-instance mutable state, so sharing one instance is semantically
// exact and Fork returns the receiver. Any state the closure captures
// is the caller's responsibility (and is shared across forks).
type simpleChain[R any] struct {
	gen GenFunc[R]
}

// NewSimple creates a stateless chain: every Next is an independent
// invocation of gen. Concurrent calls are safe as long as gen is
// reentrant.
func NewSimple[R any](gen GenFunc[R]) Chain[R] {
	return &simpleChain[R]{gen: gen}
}

func (c *simpleChain[R]) Next(ctx context.Context) (R, error) {
	return c.gen(ctx)
}

func (c *simpleChain[R]) Fork() Chain[R] {
	return c
}

// constantChain always produces the same value.
type constantChain[R any] struct {
	value R
}

// NewConstant creates a chain that returns value on every Next.
func NewConstant[R any](value R) Chain[R] {
	return &constantChain[R]{value: value}
}

func (c *constantChain[R]) Next(_ context.Context) (R, error) {
	return c.value, nil
}

// Fork returns the receiver: with no mutable state there is nothing to
// diverge.
func (c *constantChain[R]) Fork() Chain[R] {
	return c
}
