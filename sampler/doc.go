// Package sampler builds pseudo-random sampling on top of chains.
//
// A Sampler maps a randomness source into a fresh chain of sampled
// values; the generator is bound once per Sample call and the chain
// self-manages its advancement from there. Space lifts samplers into
// an additive, scalar-multiplicative structure over a value Algebra,
// composing sampled chains through chain.Zip and chain.Pipe.
//
// Stock distributions (Uniform, Normal, Bernoulli, Poisson, RandomWalk)
// cover common cases; anything else plugs in via Func.
package sampler
