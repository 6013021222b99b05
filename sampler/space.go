package sampler

import (
	"context"

	"github.com/kbukum/chainkit/chain"
	"github.com/kbukum/chainkit/random"
)

// Algebra is the value structure a Space composes samplers over.
type Algebra[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// Add combines two values.
	Add(a, b T) T
	// Scale multiplies a value by a scalar.
	Scale(v T, k float64) T
}

// Float64Algebra is the standard algebra over float64.
type Float64Algebra struct{}

func (Float64Algebra) Zero() float64              { return 0 }
func (Float64Algebra) Add(a, b float64) float64   { return a + b }
func (Float64Algebra) Scale(v, k float64) float64 { return v * k }

// IntAlgebra is the algebra over int. Scale truncates toward zero.
type IntAlgebra struct{}

func (IntAlgebra) Zero() int                  { return 0 }
func (IntAlgebra) Add(a, b int) int           { return a + b }
func (IntAlgebra) Scale(v int, k float64) int { return int(float64(v) * k) }

// Space lifts samplers over an Algebra into an additive,
// scalar-multiplicative structure.
type Space[T any] struct {
	alg Algebra[T]
}

// NewSpace creates a sampler space over the given algebra.
func NewSpace[T any](alg Algebra[T]) *Space[T] {
	return &Space[T]{alg: alg}
}

// Zero returns the sampler of the algebra's additive identity.
func (s *Space[T]) Zero() Sampler[T] {
	return Constant(s.alg.Zero())
}

// Add returns a sampler whose chain zips a's and b's sampled chains and
// combines their values through the algebra's addition. Both operands
// are bound to the same generator.
func (s *Space[T]) Add(a, b Sampler[T]) Sampler[T] {
	return Func[T](func(g random.Generator) chain.Chain[T] {
		return chain.Zip(a.Sample(g), b.Sample(g),
			func(_ context.Context, x, y T) (T, error) {
				return s.alg.Add(x, y), nil
			})
	})
}

// Multiply returns a sampler whose chain pipes a's sampled chain
// through scalar multiplication by k.
func (s *Space[T]) Multiply(a Sampler[T], k float64) Sampler[T] {
	return Func[T](func(g random.Generator) chain.Chain[T] {
		return chain.Pipe(a.Sample(g),
			func(_ context.Context, v T) (T, error) {
				return s.alg.Scale(v, k), nil
			})
	})
}
