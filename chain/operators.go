package chain

import "context"

// Pipe builds a chain whose Next transforms each value produced by the
// base. Each call still advances the base's single state cell, so the
// base must not also be read directly once piped.
func Pipe[R, O any](base Chain[R], f func(ctx context.Context, v R) (O, error)) Chain[O] {
	return &pipedChain[R, O]{base: base, f: f}
}

type pipedChain[R, O any] struct {
	base Chain[R]
	f    func(ctx context.Context, v R) (O, error)
}

func (c *pipedChain[R, O]) Next(ctx context.Context) (O, error) {
	v, err := c.base.Next(ctx)
	if err != nil {
		var zero O
		return zero, err
	}
	return c.f(ctx, v)
}

func (c *pipedChain[R, O]) Fork() Chain[O] {
	return Pipe(c.base.Fork(), c.f)
}

// Map builds a chain whose Next hands f the whole base chain, not just
// its next value. f may peek at or drive the base arbitrarily, several
// advances per call included. This is a strictly wider capability than
// Pipe.
func Map[R, O any](base Chain[R], f func(ctx context.Context, base Chain[R]) (O, error)) Chain[O] {
	return &mappedChain[R, O]{base: base, f: f}
}

type mappedChain[R, O any] struct {
	base Chain[R]
	f    func(ctx context.Context, base Chain[R]) (O, error)
}

func (c *mappedChain[R, O]) Next(ctx context.Context) (O, error) {
	return c.f(ctx, c.base)
}

func (c *mappedChain[R, O]) Fork() Chain[O] {
	return Map(c.base.Fork(), c.f)
}

// MapWithState is Map with an auxiliary state object threaded through
// f. The state is copied by forkState on Fork, independently of the
// base chain's own state. The same aliasing precondition as
// NewStateful's forkState applies.
func MapWithState[S, R, O any](
	base Chain[R],
	state S,
	forkState func(S) S,
	f func(ctx context.Context, state S, base Chain[R]) (O, error),
) Chain[O] {
	return &mappedStateChain[S, R, O]{base: base, state: state, forkState: forkState, f: f}
}

type mappedStateChain[S, R, O any] struct {
	base      Chain[R]
	state     S
	forkState func(S) S
	f         func(ctx context.Context, state S, base Chain[R]) (O, error)
}

func (c *mappedStateChain[S, R, O]) Next(ctx context.Context) (O, error) {
	return c.f(ctx, c.state, c.base)
}

func (c *mappedStateChain[S, R, O]) Fork() Chain[O] {
	return MapWithState(c.base.Fork(), c.forkState(c.state), c.forkState, c.f)
}

// Zip builds a chain advancing both sides once per Next and combining
// their values through f. Both sides complete before f runs; no other
// cross-chain ordering is guaranteed.
func Zip[A, B, O any](a Chain[A], b Chain[B], f func(ctx context.Context, a A, b B) (O, error)) Chain[O] {
	return &zippedChain[A, B, O]{a: a, b: b, f: f}
}

type zippedChain[A, B, O any] struct {
	a Chain[A]
	b Chain[B]
	f func(ctx context.Context, a A, b B) (O, error)
}

func (c *zippedChain[A, B, O]) Next(ctx context.Context) (O, error) {
	var zero O
	va, err := c.a.Next(ctx)
	if err != nil {
		return zero, err
	}
	vb, err := c.b.Next(ctx)
	if err != nil {
		return zero, err
	}
	return c.f(ctx, va, vb)
}

func (c *zippedChain[A, B, O]) Fork() Chain[O] {
	return Zip(c.a.Fork(), c.b.Fork(), c.f)
}
