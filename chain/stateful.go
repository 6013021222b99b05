package chain

import (
	"context"
	"sync"
)

// statefulChain runs its closures against an explicit chain-owned state
// S. gen may mutate S, so the read-compute-commit cycle is guarded by a
// per-chain mutex rather than a CAS loop: retrying a compare-and-swap
// would apply gen's mutations of S more than once per transition.
type statefulChain[S, R any] struct {
	seed      func(ctx context.Context, state S) (R, error)
	gen       func(ctx context.Context, state S, prev R) (R, error)
	forkState func(S) S

	mu    sync.Mutex
	state S
	last  *R
}

// NewStateful creates a chain whose generation closures see an explicit
// state object. The chain owns state: callers must not mutate it
// outside chain operations, and no two chains may share one instance.
//
// forkState must return a logically independent copy of S, sharing no
// mutable substructure with the original. The chain layer cannot verify
// this; it is a precondition on the caller.
func NewStateful[S, R any](
	state S,
	forkState func(S) S,
	seed func(ctx context.Context, state S) (R, error),
	gen func(ctx context.Context, state S, prev R) (R, error),
) Chain[R] {
	return &statefulChain[S, R]{
		seed:      seed,
		gen:       gen,
		forkState: forkState,
		state:     state,
	}
}

func (c *statefulChain[S, R]) Next(ctx context.Context) (R, error) {
	var zero R

	c.mu.Lock()
	defer c.mu.Unlock()

	var base R
	if c.last == nil {
		seeded, err := c.seed(ctx, c.state)
		if err != nil {
			return zero, err
		}
		base = seeded
	} else {
		base = *c.last
	}

	next, err := c.gen(ctx, c.state, base)
	if err != nil {
		// No commit: the cell still holds the last good value.
		return zero, err
	}

	c.last = &next
	return next, nil
}

// Fork copies the state via forkState and returns a new chain with a
// fresh empty result cell. A failure (panic) inside forkState leaves
// the receiver unmodified and usable.
func (c *statefulChain[S, R]) Fork() Chain[R] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &statefulChain[S, R]{
		seed:      c.seed,
		gen:       c.gen,
		forkState: c.forkState,
		state:     c.forkState(c.state),
	}
}
