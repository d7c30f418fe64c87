package match

import (
	"context"
	"errors"
	"testing"

	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
	"github.com/kailas-cloud/detailmatch/internal/domain/query"
	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
)

// --- Mocks ---

type mockCatalog struct {
	labels []string
	err    error
	calls  int
}

func (m *mockCatalog) List(_ context.Context) ([]string, error) {
	m.calls++
	return m.labels, m.err
}

type mockObserver struct {
	results []dommatch.Result
}

func (m *mockObserver) ObserveMatch(res dommatch.Result) {
	m.results = append(m.results, res)
}

// --- Tests ---

func TestService_FindBest(t *testing.T) {
	cat := &mockCatalog{labels: []string{
		"Lift Core to Floor Slab Connection",
		"External Wall - Slab Junction Waterproofing",
	}}
	obs := &mockObserver{}
	svc := New(cat, vocabulary.Default()).WithObserver(obs)

	res, err := svc.FindBest(context.Background(), query.New("External Wall", "Slab", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Suggested() != "External Wall - Slab Junction Waterproofing" {
		t.Errorf("unexpected suggestion %q", res.Suggested())
	}
	if cat.calls != 1 {
		t.Errorf("expected one catalog read, got %d", cat.calls)
	}
	if len(obs.results) != 1 || obs.results[0].Suggested() != res.Suggested() {
		t.Errorf("observer not notified: %+v", obs.results)
	}
}

func TestService_FindBest_EmptyCatalog(t *testing.T) {
	svc := New(&mockCatalog{}, vocabulary.Default())

	res, err := svc.FindBest(context.Background(), query.New("Wall", "", ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Matched() || res.Confidence() != 0 {
		t.Errorf("expected no match, got %q (%v)", res.Suggested(), res.Confidence())
	}
}

func TestService_FindBest_CatalogError(t *testing.T) {
	catErr := errors.New("valkey: connection refused")
	obs := &mockObserver{}
	svc := New(&mockCatalog{err: catErr}, vocabulary.Default()).WithObserver(obs)

	_, err := svc.FindBest(context.Background(), query.New("Wall", "", ""))
	if !errors.Is(err, catErr) {
		t.Fatalf("expected catalog error wrapped, got %v", err)
	}
	if len(obs.results) != 0 {
		t.Error("observer must not be called on failure")
	}
}

func TestService_FindBest_CustomVocabulary(t *testing.T) {
	v, err := vocabulary.New(nil, nil, []string{"drainage"})
	if err != nil {
		t.Fatal(err)
	}
	svc := New(&mockCatalog{labels: []string{"Wall Slab Drainage", "Wall Slab"}}, v)

	res, err := svc.FindBest(context.Background(), query.New("Wall", "Slab", "Drainage"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Suggested() != "Wall Slab Drainage" || res.Confidence() != 1 {
		t.Errorf("unexpected result %q (%v): %s", res.Suggested(), res.Confidence(), res.Reason())
	}
}
