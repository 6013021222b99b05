package chain

import (
	"context"
	"errors"
	"testing"
)

func double(_ context.Context, v int) (int, error) { return v * 2, nil }

func TestPipe(t *testing.T) {
	piped := Pipe(counter(0), double)
	if got := drain(t, piped, 3); !intsEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v", got)
	}
}

func TestPipeForkMirrorsBaseForkIndependence(t *testing.T) {
	piped := Pipe(counter(0), double)
	if got := drain(t, piped, 2); !intsEqual(got, []int{2, 4}) {
		t.Fatalf("prefix = %v", got)
	}

	fork := piped.Fork()

	want := []int{6, 8}
	if got := drain(t, fork, 2); !intsEqual(got, want) {
		t.Errorf("fork = %v, want %v", got, want)
	}
	if got := drain(t, piped, 2); !intsEqual(got, want) {
		t.Errorf("original = %v, want %v", got, want)
	}
}

func TestPipeChangesType(t *testing.T) {
	labels := Pipe(counter(0), func(_ context.Context, v int) (string, error) {
		if v%2 == 0 {
			return "even", nil
		}
		return "odd", nil
	})

	got := []string{}
	for i := 0; i < 3; i++ {
		v, err := labels.Next(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if got[0] != "odd" || got[1] != "even" || got[2] != "odd" {
		t.Errorf("got %v", got)
	}
}

func TestPipeTransformError(t *testing.T) {
	boom := errors.New("transform boom")
	piped := Pipe(counter(0), func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})

	drain(t, piped, 1)
	if _, err := piped.Next(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected transform error, got %v", err)
	}
}

// Map hands f the whole base chain: f may drive it several times per
// call, which Pipe cannot express.
func TestMapDrivesBaseMultipleTimes(t *testing.T) {
	sums := Map(counter(0), func(ctx context.Context, base Chain[int]) (int, error) {
		a, err := base.Next(ctx)
		if err != nil {
			return 0, err
		}
		b, err := base.Next(ctx)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	})

	// Each call consumes two base values: (1+2), (3+4), (5+6).
	if got := drain(t, sums, 3); !intsEqual(got, []int{3, 7, 11}) {
		t.Errorf("got %v", got)
	}
}

func TestMapForkIndependence(t *testing.T) {
	sums := Map(counter(0), func(ctx context.Context, base Chain[int]) (int, error) {
		a, err := base.Next(ctx)
		if err != nil {
			return 0, err
		}
		b, err := base.Next(ctx)
		if err != nil {
			return 0, err
		}
		return a + b, nil
	})
	drain(t, sums, 1) // consumes base 1, 2

	fork := sums.Fork()

	if got := drain(t, fork, 1); !intsEqual(got, []int{7}) {
		t.Errorf("fork = %v, want [7]", got)
	}
	if got := drain(t, sums, 1); !intsEqual(got, []int{7}) {
		t.Errorf("original = %v, want [7]", got)
	}
}

func TestMapWithState(t *testing.T) {
	type tally struct{ seen int }

	indexed := MapWithState(counter(0),
		&tally{},
		func(s *tally) *tally { return &tally{seen: s.seen} },
		func(ctx context.Context, s *tally, base Chain[int]) (int, error) {
			v, err := base.Next(ctx)
			if err != nil {
				return 0, err
			}
			s.seen++
			return v * 10, nil
		},
	)

	if got := drain(t, indexed, 2); !intsEqual(got, []int{10, 20}) {
		t.Errorf("got %v", got)
	}
}

func TestMapWithStateForkCopiesAuxState(t *testing.T) {
	type tally struct{ seen int }

	var states []*tally
	c := MapWithState(counter(0),
		&tally{},
		func(s *tally) *tally { return &tally{seen: s.seen} },
		func(ctx context.Context, s *tally, base Chain[int]) (int, error) {
			s.seen++
			states = append(states, s)
			return base.Next(ctx)
		},
	)

	drain(t, c, 2)
	fork := c.Fork()
	drain(t, fork, 3)
	drain(t, c, 1)

	orig, forked := states[0], states[2]
	if orig == forked {
		t.Fatal("fork must not share the aux state instance")
	}
	if orig.seen != 3 {
		t.Errorf("original aux state saw %d calls, want 3", orig.seen)
	}
	if forked.seen != 2+3 {
		t.Errorf("fork aux state = %d, want 5 (copied at 2, then 3 calls)", forked.seen)
	}
}

func TestZip(t *testing.T) {
	sums := Zip(counter(0), counter(0), func(_ context.Context, a, b int) (int, error) {
		return a + b, nil
	})

	// Both counters advance once per zip Next: 1+1, 2+2, 3+3.
	if got := drain(t, sums, 3); !intsEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v", got)
	}
}

func TestZipForkForksBothSides(t *testing.T) {
	sums := Zip(counter(0), counter(100), func(_ context.Context, a, b int) (int, error) {
		return a + b, nil
	})
	if got := drain(t, sums, 2); !intsEqual(got, []int{102, 104}) {
		t.Fatalf("prefix = %v", got)
	}

	fork := sums.Fork()

	want := []int{106, 108}
	if got := drain(t, fork, 2); !intsEqual(got, want) {
		t.Errorf("fork = %v, want %v", got, want)
	}
	if got := drain(t, sums, 2); !intsEqual(got, want) {
		t.Errorf("original = %v, want %v", got, want)
	}
}

func TestZipErrorPropagates(t *testing.T) {
	boom := errors.New("right boom")
	right := NewSimple(func(context.Context) (int, error) { return 0, boom })

	z := Zip(counter(0), right, func(_ context.Context, a, b int) (int, error) {
		return a + b, nil
	})
	if _, err := z.Next(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected right-side error, got %v", err)
	}
}

func TestZipDifferentTypes(t *testing.T) {
	labels := Zip(counter(0), NewConstant("v"),
		func(_ context.Context, n int, s string) (string, error) {
			if n == 1 {
				return s + "1", nil
			}
			return s + "+", nil
		})

	v, err := labels.Next(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if v != "v1" {
		t.Errorf("got %q", v)
	}
}
