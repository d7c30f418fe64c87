package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/detailmatch/internal/db/memory"
)

func TestAppend_UsesSequenceScore(t *testing.T) {
	var gotKey, gotMember string
	var gotScore float64
	ms := &mockStore{
		incrFn: func(_ context.Context, key string) (int64, error) {
			if key != "dm:catalog:seq" {
				t.Errorf("unexpected seq key %q", key)
			}
			return 42, nil
		},
		zaddNXFn: func(_ context.Context, key string, score float64, member string) (bool, error) {
			gotKey, gotScore, gotMember = key, score, member
			return true, nil
		},
	}

	added, err := New(ms, "dm:").Append(context.Background(), "Slab to Wall")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Error("expected added")
	}
	if gotKey != "dm:catalog" || gotScore != 42 || gotMember != "Slab to Wall" {
		t.Errorf("unexpected ZADD args: %q %v %q", gotKey, gotScore, gotMember)
	}
}

func TestAppend_IncrError(t *testing.T) {
	errBoom := errors.New("boom")
	ms := &mockStore{
		incrFn: func(context.Context, string) (int64, error) { return 0, errBoom },
		zaddNXFn: func(context.Context, string, float64, string) (bool, error) {
			t.Fatal("ZAddNX must not run after INCR failure")
			return false, nil
		},
	}

	_, err := New(ms, "").Append(context.Background(), "x")
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestAppend_ZAddError(t *testing.T) {
	errBoom := errors.New("boom")
	ms := &mockStore{
		zaddNXFn: func(context.Context, string, float64, string) (bool, error) { return false, errBoom },
	}

	_, err := New(ms, "").Append(context.Background(), "x")
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestRemove_Error(t *testing.T) {
	errBoom := errors.New("boom")
	ms := &mockStore{
		zremFn: func(context.Context, string, string) (bool, error) { return false, errBoom },
	}

	_, err := New(ms, "").Remove(context.Background(), "x")
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

func TestList_NilBecomesEmpty(t *testing.T) {
	labels, err := New(&mockStore{}, "").List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if labels == nil || len(labels) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", labels)
	}
}

func TestRepo_MemoryStore(t *testing.T) {
	ctx := context.Background()
	r := New(memory.NewStore(), "dm:")

	for _, l := range []string{"Window Sill", "Slab to Wall", "Roof Eave"} {
		if added, err := r.Append(ctx, l); err != nil || !added {
			t.Fatalf("append %q: %v, %v", l, added, err)
		}
	}
	if added, err := r.Append(ctx, "Slab to Wall"); err != nil || added {
		t.Fatalf("duplicate append: %v, %v", added, err)
	}

	got, err := r.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Window Sill", "Slab to Wall", "Roof Eave"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected insertion order %v, got %v", want, got)
		}
	}

	if removed, err := r.Remove(ctx, "Slab to Wall"); err != nil || !removed {
		t.Fatalf("remove: %v, %v", removed, err)
	}
	if removed, err := r.Remove(ctx, "Slab to Wall"); err != nil || removed {
		t.Fatalf("second remove: %v, %v", removed, err)
	}

	// Re-adding goes to the end.
	if _, err := r.Append(ctx, "Slab to Wall"); err != nil {
		t.Fatal(err)
	}
	got, _ = r.List(ctx)
	if got[len(got)-1] != "Slab to Wall" {
		t.Errorf("expected re-added label last, got %v", got)
	}
}
