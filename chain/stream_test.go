package chain

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestTake(t *testing.T) {
	c := FromSlice([]int{1, 2, 3, 4, 5})
	got, err := Take(context.Background(), c, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestTakeStopsAtExhaustion(t *testing.T) {
	c := FromSlice([]int{1, 2})
	got, err := Take(context.Background(), c, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestCollect(t *testing.T) {
	c := FromSlice([]string{"a", "b", "c"})
	got, err := Collect(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v", got)
	}
}

func TestCollectPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	c := NewSimple(func(context.Context) (int, error) {
		calls++
		if calls > 2 {
			return 0, boom
		}
		return calls, nil
	})

	got, err := Collect(context.Background(), c)
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("partial values = %v, want [1 2]", got)
	}
}

func TestToChannel(t *testing.T) {
	c := FromSlice([]int{1, 2, 3})
	out := make(chan int, 3)

	if err := ToChannel(context.Background(), c, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []int
	for v := range out {
		got = append(got, v)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v", got)
	}
}

func TestBatch(t *testing.T) {
	c := Batch(FromSlice([]int{1, 2, 3, 4, 5}), 2)
	ctx := context.Background()

	want := [][]int{{1, 2}, {3, 4}, {5}}
	for i, w := range want {
		got, err := c.Next(ctx)
		if err != nil {
			t.Fatalf("batch %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(got, w) {
			t.Errorf("batch %d = %v, want %v", i, got, w)
		}
	}

	if _, err := c.Next(ctx); !errors.Is(err, ErrExhausted) {
		t.Error("expected exhaustion after final partial batch")
	}
}

func TestFilter(t *testing.T) {
	even := Filter(FromSlice([]int{1, 2, 3, 4, 5, 6}), func(v int) bool { return v%2 == 0 })
	got, err := Collect(context.Background(), even)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	c := Tap(FromSlice([]int{1, 2, 3}), func(_ context.Context, v int) error {
		seen = append(seen, v)
		return nil
	})

	got, err := Collect(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("values = %v", got)
	}
	if !reflect.DeepEqual(seen, []int{1, 2, 3}) {
		t.Errorf("side effects = %v", seen)
	}
}

func TestTapErrorStopsValue(t *testing.T) {
	boom := errors.New("boom")
	c := Tap(FromSlice([]int{1}), func(context.Context, int) error { return boom })

	if _, err := c.Next(context.Background()); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
}

func TestBatchForkIndependence(t *testing.T) {
	ctx := context.Background()
	base := NewMarkov(
		func(context.Context) (int, error) { return 0, nil },
		func(_ context.Context, prev int) (int, error) { return prev + 1, nil },
	)
	c := Batch(base, 2)

	if _, err := c.Next(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := c.Fork()
	got1, err := c.Next(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got2, err := f.Next(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got1, got2) {
		t.Errorf("fork diverged immediately: %v vs %v", got1, got2)
	}
}
