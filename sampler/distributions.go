package sampler

import (
	"context"
	"math"

	"github.com/kbukum/chainkit/chain"
	apperrors "github.com/kbukum/chainkit/errors"
	"github.com/kbukum/chainkit/random"
)

// failing returns a sampler whose chains surface err on every draw.
// Parameter misuse is detected when the sampler is built, not on the
// first draw.
func failing[T any](err error) Sampler[T] {
	return Func[T](func(random.Generator) chain.Chain[T] {
		return chain.NewSimple(func(context.Context) (T, error) {
			var zero T
			return zero, err
		})
	})
}

// Uniform creates a sampler of uniform values in [lo, hi).
func Uniform(lo, hi float64) Sampler[float64] {
	if hi <= lo {
		return failing[float64](apperrors.InvalidInput("hi", "must be greater than lo"))
	}
	return Func[float64](func(g random.Generator) chain.Chain[float64] {
		return chain.NewSimple(func(context.Context) (float64, error) {
			return lo + (hi-lo)*g.Float64(), nil
		})
	})
}

// Normal creates a sampler of normal values with the given mean and
// standard deviation.
func Normal(mean, stddev float64) Sampler[float64] {
	if stddev < 0 {
		return failing[float64](apperrors.InvalidInput("stddev", "must be non-negative"))
	}
	return Func[float64](func(g random.Generator) chain.Chain[float64] {
		return chain.NewSimple(func(context.Context) (float64, error) {
			return mean + stddev*g.NormFloat64(), nil
		})
	})
}

// Bernoulli creates a sampler of true-with-probability-p draws.
func Bernoulli(p float64) Sampler[bool] {
	if p < 0 || p > 1 {
		return failing[bool](apperrors.InvalidInput("p", "must be in [0, 1]"))
	}
	return Func[bool](func(g random.Generator) chain.Chain[bool] {
		return chain.NewSimple(func(context.Context) (bool, error) {
			return g.Float64() < p, nil
		})
	})
}

// Poisson creates a sampler of Poisson counts with the given rate,
// using Knuth's multiplication method.
func Poisson(lambda float64) Sampler[int] {
	if lambda <= 0 {
		return failing[int](apperrors.InvalidInput("lambda", "must be positive"))
	}
	threshold := math.Exp(-lambda)
	return Func[int](func(g random.Generator) chain.Chain[int] {
		return chain.NewSimple(func(context.Context) (int, error) {
			k := 0
			p := 1.0
			for {
				k++
				p *= g.Float64()
				if p <= threshold {
					return k - 1, nil
				}
			}
		})
	})
}

// RandomWalk creates a sampler of a Gaussian random walk: each value is
// the previous one plus a normal step. The chain is Markov, so forking
// a sampled walk splits its future trajectory without disturbing the
// original.
func RandomWalk(start, step float64) Sampler[float64] {
	return Func[float64](func(g random.Generator) chain.Chain[float64] {
		return chain.NewMarkov(
			func(context.Context) (float64, error) { return start, nil },
			func(_ context.Context, prev float64) (float64, error) {
				return prev + step*g.NormFloat64(), nil
			},
		)
	})
}
