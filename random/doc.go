// Package random provides deterministic random sources for samplers.
//
// A Generator is the randomness capability handed to a Sampler when a
// chain is created. Source is the default implementation, backed by
// math/rand/v2's PCG with deterministic seeding, so sampling runs are
// reproducible from a single seed.
//
// A Source is not safe for concurrent use. Give each goroutine its own
// source, either by calling Fork to split an independent stream or by
// wrapping a shared source with NewLocked.
package random
