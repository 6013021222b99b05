package random

import (
	"math/rand/v2"
	"sync"
)

// Generator is the randomness capability consumed by samplers.
type Generator interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal value.
	NormFloat64() float64
	// IntN returns a uniform int in [0, n). Panics if n <= 0.
	IntN(n int) int
	// Uint64 returns a uniform 64-bit value.
	Uint64() uint64
	// Fork returns an independent generator seeded from the receiver.
	// Forking advances the receiver's stream.
	Fork() Generator
}

// Source is a deterministic Generator backed by math/rand/v2's PCG.
type Source struct {
	r *rand.Rand
}

// NewSource creates a deterministic source from a single seed.
func NewSource(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewSourceWithStream creates a deterministic source with an explicit
// stream selector, so multiple independent streams can share one seed.
func NewSourceWithStream(seed, stream uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, stream))}
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// NormFloat64 returns a standard normal value.
func (s *Source) NormFloat64() float64 { return s.r.NormFloat64() }

// IntN returns a uniform int in [0, n).
func (s *Source) IntN(n int) int { return s.r.IntN(n) }

// Uint64 returns a uniform 64-bit value.
func (s *Source) Uint64() uint64 { return s.r.Uint64() }

// Fork returns an independent source seeded from the receiver's stream.
// The two words drawn to seed the child advance the receiver.
func (s *Source) Fork() Generator {
	return &Source{r: rand.New(rand.NewPCG(s.r.Uint64(), s.r.Uint64()))}
}

// Rand exposes the underlying rand.Rand for advanced use.
func (s *Source) Rand() *rand.Rand { return s.r }

// Locked wraps a Generator with a mutex so it can be shared between
// goroutines. Determinism across goroutines is lost (interleaving
// decides who draws what), but each draw remains well-formed.
type Locked struct {
	mu sync.Mutex
	g  Generator
}

// NewLocked wraps g for concurrent use.
func NewLocked(g Generator) *Locked {
	return &Locked{g: g}
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Float64()
}

func (l *Locked) NormFloat64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.NormFloat64()
}

func (l *Locked) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.IntN(n)
}

func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Uint64()
}

// Fork returns an independent unlocked generator split from the shared one.
func (l *Locked) Fork() Generator {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Fork()
}
