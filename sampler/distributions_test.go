package sampler

import (
	"context"
	"math"
	"testing"

	apperrors "github.com/kbukum/chainkit/errors"
	"github.com/kbukum/chainkit/random"
)

func TestUniformRange(t *testing.T) {
	c := Uniform(-2, 3).Sample(random.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := draw(t, c)
		if v < -2 || v >= 3 {
			t.Fatalf("draw %v out of [-2, 3)", v)
		}
	}
}

func TestUniformInvalidBounds(t *testing.T) {
	// Parameters are checked when the sampler is built; the chain never
	// consults the generator, so nil is safe here.
	c := Uniform(3, 3).Sample(nil)
	_, err := c.Next(context.Background())
	if !apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
}

func TestNormalMoments(t *testing.T) {
	const n = 20000
	c := Normal(10, 2).Sample(random.NewSource(42))

	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := draw(t, c)
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	variance := sumSq/n - mean*mean

	if math.Abs(mean-10) > 0.1 {
		t.Errorf("mean = %v, want ~10", mean)
	}
	if math.Abs(math.Sqrt(variance)-2) > 0.1 {
		t.Errorf("stddev = %v, want ~2", math.Sqrt(variance))
	}
}

func TestNormalNegativeStddev(t *testing.T) {
	c := Normal(0, -1).Sample(nil)
	if _, err := c.Next(context.Background()); !apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT for negative stddev, got %v", err)
	}
}

func TestBernoulliFrequency(t *testing.T) {
	const n = 20000
	c := Bernoulli(0.3).Sample(random.NewSource(7))

	hits := 0
	for i := 0; i < n; i++ {
		if draw(t, c) {
			hits++
		}
	}
	freq := float64(hits) / n
	if math.Abs(freq-0.3) > 0.02 {
		t.Errorf("frequency = %v, want ~0.3", freq)
	}
}

func TestBernoulliInvalidP(t *testing.T) {
	c := Bernoulli(1.5).Sample(nil)
	if _, err := c.Next(context.Background()); !apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT for p > 1, got %v", err)
	}
}

func TestPoissonMean(t *testing.T) {
	const n = 20000
	c := Poisson(4).Sample(random.NewSource(9))

	sum := 0
	for i := 0; i < n; i++ {
		v := draw(t, c)
		if v < 0 {
			t.Fatalf("negative count %d", v)
		}
		sum += v
	}
	mean := float64(sum) / n
	if math.Abs(mean-4) > 0.1 {
		t.Errorf("mean = %v, want ~4", mean)
	}
}

func TestPoissonInvalidLambda(t *testing.T) {
	c := Poisson(0).Sample(nil)
	if _, err := c.Next(context.Background()); !apperrors.HasCode(err, apperrors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT for lambda <= 0, got %v", err)
	}
}

func TestRandomWalkDeterministicReplay(t *testing.T) {
	a := RandomWalk(0, 0.5).Sample(random.NewSource(11))
	b := RandomWalk(0, 0.5).Sample(random.NewSource(11))

	for i := 0; i < 100; i++ {
		if draw(t, a) != draw(t, b) {
			t.Fatalf("identically-seeded walks diverged at step %d", i)
		}
	}
}
