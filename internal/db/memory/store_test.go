package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kailas-cloud/detailmatch/internal/db"
)

func TestIncr(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.Incr(ctx, "seq")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected %d, got %d", want, got)
		}
	}
	if got, _ := s.Incr(ctx, "other"); got != 1 {
		t.Errorf("counters must be independent, got %d", got)
	}
}

func TestZAddNX_OrderAndUniqueness(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	mustAdd(t, s, 2, "b", true)
	mustAdd(t, s, 1, "a", true)
	mustAdd(t, s, 3, "c", true)
	mustAdd(t, s, 4, "a", false)

	got, err := s.ZRange(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertMembers(t, got, "a", "b", "c")
}

func TestZAddNX_EqualScoresLexical(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, 1, "y", true)
	mustAdd(t, s, 1, "x", true)

	got, _ := s.ZRange(context.Background(), "k")
	assertMembers(t, got, "x", "y")
}

func TestZRem(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	mustAdd(t, s, 1, "a", true)
	mustAdd(t, s, 2, "b", true)

	removed, err := s.ZRem(ctx, "k", "a")
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v, %v", removed, err)
	}
	removed, err = s.ZRem(ctx, "k", "a")
	if err != nil || removed {
		t.Fatalf("expected no-op, got %v, %v", removed, err)
	}
	got, _ := s.ZRange(ctx, "k")
	assertMembers(t, got, "b")
}

func TestZRange_Missing(t *testing.T) {
	got, err := NewStore().ZRange(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestZRange_ReturnsCopy(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, 1, "a", true)

	got, _ := s.ZRange(context.Background(), "k")
	got[0] = "mutated"

	again, _ := s.ZRange(context.Background(), "k")
	assertMembers(t, again, "a")
}

func TestCanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checks := map[string]error{
		"ping": s.Ping(ctx),
		"wait": s.WaitForReady(ctx, time.Second),
	}
	_, checks["incr"] = s.Incr(ctx, "k")
	_, checks["zadd"] = s.ZAddNX(ctx, "k", 1, "m")
	_, checks["zrem"] = s.ZRem(ctx, "k", "m")
	_, checks["zrange"] = s.ZRange(ctx, "k")

	for name, err := range checks {
		var dbErr *db.Error
		if !errors.As(err, &dbErr) {
			t.Errorf("%s: expected *db.Error, got %v", name, err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", name, err)
		}
	}
}

func TestConcurrentAdds(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seq, err := s.Incr(ctx, "seq")
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := s.ZAddNX(ctx, "k", float64(seq), fmt.Sprintf("m%d", i%10)); err != nil {
				t.Error(err)
			}
			if _, err := s.ZRange(ctx, "k"); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	got, _ := s.ZRange(ctx, "k")
	if len(got) != 10 {
		t.Errorf("expected 10 unique members, got %d", len(got))
	}
}

func mustAdd(t *testing.T, s *Store, score float64, member string, want bool) {
	t.Helper()
	added, err := s.ZAddNX(context.Background(), "k", score, member)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != want {
		t.Fatalf("ZAddNX(%q): expected %v, got %v", member, want, added)
	}
}

func assertMembers(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
