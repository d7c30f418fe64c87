package detailmatch

import (
	"context"

	dombatch "github.com/kailas-cloud/detailmatch/internal/domain/batch"
	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
	"github.com/kailas-cloud/detailmatch/internal/domain/query"
	healthuc "github.com/kailas-cloud/detailmatch/internal/usecase/health"
)

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	addFn    func(ctx context.Context, label string) (bool, error)
	removeFn func(ctx context.Context, label string) error
	listFn   func(ctx context.Context) ([]string, error)
	importFn func(ctx context.Context, labels []string) []dombatch.Result
	seedFn   func(ctx context.Context, labels []string) (int, error)
}

func (m *mockCatalogUC) Add(ctx context.Context, label string) (bool, error) {
	return m.addFn(ctx, label)
}

func (m *mockCatalogUC) Remove(ctx context.Context, label string) error {
	return m.removeFn(ctx, label)
}

func (m *mockCatalogUC) List(ctx context.Context) ([]string, error) {
	return m.listFn(ctx)
}

func (m *mockCatalogUC) Import(ctx context.Context, labels []string) []dombatch.Result {
	return m.importFn(ctx, labels)
}

func (m *mockCatalogUC) Seed(ctx context.Context, labels []string) (int, error) {
	return m.seedFn(ctx, labels)
}

// --- matchUseCase mock ---

type mockMatchUC struct {
	findFn func(ctx context.Context, q query.Query) (dommatch.Result, error)
}

func (m *mockMatchUC) FindBest(ctx context.Context, q query.Query) (dommatch.Result, error) {
	return m.findFn(ctx, q)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}
