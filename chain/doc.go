// Package chain provides lazy, forkable value sequences.
//
// A Chain produces successive values on demand via Next and can be
// split into an independent continuation via Fork. Chains are the
// foundation the sampler package builds pseudo-random sampling on.
//
// # Variants
//
//   - NewSimple: stateless generation; every Next is an independent draw
//   - NewMarkov: next value depends on the previous one (atomic state cell)
//   - NewStateful: generation runs against a chain-owned external state
//   - NewConstant: always the same value
//
// # Combinators
//
//   - Pipe: transform each produced value
//   - Map: transform with access to the whole base chain (may drive it
//     several times per call, unlike Pipe)
//   - MapWithState: Map with an auxiliary state threaded through calls
//   - Zip: advance two chains in lockstep and combine their values
//
// # Adapters
//
//   - FromIterator / FromSlice: pull-based sources
//   - FromSeq / FromChannel: push-based sources
//
// Exhausted sources surface ErrExhausted; source errors propagate as-is.
//
// # Decorators
//
//   - WithLogging, WithTracing, WithMetrics: observability wrappers
//   - WithRetry: retry failed Next calls (safe: a failed Next commits nothing)
//
// # Concurrency
//
// Next on a single chain instance is safe under concurrent invocation:
// Markov chains linearize state transitions with a compare-and-swap
// retry loop, stateful chains with a per-chain mutex. No update is lost
// and no update is applied twice to the same base value. Fork never
// mutates the receiver; a chain and its fork share only immutable
// generation closures, never the mutable state cell.
//
// # Usage
//
//	counter := chain.NewMarkov(
//	    func(ctx context.Context) (int, error) { return 0, nil },
//	    func(ctx context.Context, prev int) (int, error) { return prev + 1, nil },
//	)
//	counter.Next(ctx) // 1
//	counter.Next(ctx) // 2
//	fork := counter.Fork()
//	fork.Next(ctx)    // 3, without disturbing counter
package chain
