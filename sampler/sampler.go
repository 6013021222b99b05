package sampler

import (
	"github.com/kbukum/chainkit/chain"
	"github.com/kbukum/chainkit/random"
)

// Sampler produces a chain of sampled values from a randomness source.
type Sampler[T any] interface {
	// Sample binds the generator and returns a fresh chain. The
	// generator is consulted by the chain's own draws; callers that
	// drive the chain from multiple goroutines must pass a
	// concurrency-safe generator (see random.NewLocked).
	Sample(g random.Generator) chain.Chain[T]
}

// Func adapts a closure into a Sampler.
type Func[T any] func(g random.Generator) chain.Chain[T]

// Sample implements Sampler.
func (f Func[T]) Sample(g random.Generator) chain.Chain[T] {
	return f(g)
}

// constantSampler ignores the generator and always yields a constant
// chain.
type constantSampler[T any] struct {
	value T
}

// Constant creates a sampler that always yields value.
func Constant[T any](value T) Sampler[T] {
	return constantSampler[T]{value: value}
}

func (s constantSampler[T]) Sample(_ random.Generator) chain.Chain[T] {
	return chain.NewConstant(s.value)
}
