package chain

import (
	"context"
	"sync/atomic"
)

// markovChain holds one mutable cell: the last committed value, nil
// until the first successful Next. The cell is owned exclusively by
// this instance; forks get a fresh cell.
type markovChain[R any] struct {
	seed GenFunc[R]
	gen  func(ctx context.Context, prev R) (R, error)
	cell atomic.Pointer[R]
}

// NewMarkov creates a self-referential chain: each Next applies gen to
// the previously committed value, or to seed() on the first call.
//
// Concurrent Next calls on one instance are linearized by a
// compare-and-swap retry loop: each commit is based on a value no other
// caller has superseded, so no transition is lost or applied twice to
// the same base. A losing caller recomputes gen from the newer base, so
// gen should be free of external side effects (or tolerate recompute).
func NewMarkov[R any](seed GenFunc[R], gen func(ctx context.Context, prev R) (R, error)) Chain[R] {
	return &markovChain[R]{seed: seed, gen: gen}
}

func (c *markovChain[R]) Next(ctx context.Context) (R, error) {
	var zero R
	for {
		prev := c.cell.Load()

		var base R
		if prev == nil {
			seeded, err := c.seed(ctx)
			if err != nil {
				return zero, err
			}
			base = seeded
		} else {
			base = *prev
		}

		next, err := c.gen(ctx, base)
		if err != nil {
			// No commit: the cell still holds the last good value.
			return zero, err
		}

		if c.cell.CompareAndSwap(prev, &next) {
			return next, nil
		}
		// Another caller committed first; retry from its value.
	}
}

// Fork snapshots the current committed value into the new chain's seed
// (falling back to the original seed while still empty). The fork gets
// a fresh empty cell, fully decoupled from the receiver's.
func (c *markovChain[R]) Fork() Chain[R] {
	snapshot := c.cell.Load()
	if snapshot == nil {
		return &markovChain[R]{seed: c.seed, gen: c.gen}
	}
	last := *snapshot
	return &markovChain[R]{
		seed: func(context.Context) (R, error) { return last, nil },
		gen:  c.gen,
	}
}
