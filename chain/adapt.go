package chain

import (
	"context"
	"iter"
	"sync"
	"sync/atomic"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// FromIterator lifts a pull-based iterator into a stateless chain. The
// chain is exhausted exactly when the iterator is: Next past exhaustion
// returns ErrExhausted, and iterator errors propagate as-is. The
// iterator's own advancement is the only state, shared by forks like
// any SimpleChain closure state.
func FromIterator[T any](it Iterator[T]) Chain[T] {
	return NewSimple(func(ctx context.Context) (T, error) {
		v, ok, err := it.Next(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !ok {
			var zero T
			return zero, ErrExhausted
		}
		return v, nil
	})
}

// FromSlice lifts an in-memory slice into a chain. The cursor is a
// shared atomic: concurrent Next calls each claim a distinct element.
func FromSlice[T any](items []T) Chain[T] {
	var cursor atomic.Int64
	return NewSimple(func(_ context.Context) (T, error) {
		i := cursor.Add(1) - 1
		if i >= int64(len(items)) {
			var zero T
			return zero, ErrExhausted
		}
		return items[i], nil
	})
}

// FromSeq lifts a push-based iter.Seq into a chain via iter.Pull. The
// pull pair is not reentrant, so draws are serialized with a mutex.
func FromSeq[T any](seq iter.Seq[T]) Chain[T] {
	next, stop := iter.Pull(seq)
	var mu sync.Mutex
	return NewSimple(func(_ context.Context) (T, error) {
		mu.Lock()
		defer mu.Unlock()
		v, ok := next()
		if !ok {
			stop()
			var zero T
			return zero, ErrExhausted
		}
		return v, nil
	})
}

// FromChannel lifts a receive-only channel into a chain. A closed
// channel surfaces ErrExhausted; context cancellation surfaces ctx.Err().
func FromChannel[T any](ch <-chan T) Chain[T] {
	return NewSimple(func(ctx context.Context) (T, error) {
		select {
		case v, ok := <-ch:
			if !ok {
				var zero T
				return zero, ErrExhausted
			}
			return v, nil
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	})
}
