package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/detailmatch/internal/domain"
	dombatch "github.com/kailas-cloud/detailmatch/internal/domain/batch"
	"github.com/kailas-cloud/detailmatch/internal/domain/detail"
	"github.com/kailas-cloud/detailmatch/internal/logger"
)

// MaxBatchSize is the default maximum number of labels per import.
const MaxBatchSize = 100

// Service handles catalog mutations and reads.
type Service struct {
	repo         Repository
	observer     Observer
	maxBatchSize int
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo, maxBatchSize: MaxBatchSize}
}

// WithMaxBatchSize configures the maximum import size.
func (s *Service) WithMaxBatchSize(size int) *Service {
	if size > 0 {
		s.maxBatchSize = size
	}
	return s
}

// WithObserver attaches a mutation observer.
func (s *Service) WithObserver(o Observer) *Service {
	s.observer = o
	return s
}

// Add validates and appends a label. Reports false when it already exists.
func (s *Service) Add(ctx context.Context, label string) (bool, error) {
	if err := detail.Validate(label); err != nil {
		return false, err
	}

	added, err := s.repo.Append(ctx, label)
	if err != nil {
		return false, fmt.Errorf("add detail: %w", err)
	}

	logger.FromContext(ctx).Info("detail added",
		zap.String("detail", label),
		zap.Bool("added", added),
	)
	s.observeMutation(ctx, OpAdd, added)
	return added, nil
}

// Remove deletes a label. Returns domain.ErrNotFound when it is absent.
func (s *Service) Remove(ctx context.Context, label string) error {
	removed, err := s.repo.Remove(ctx, label)
	if err != nil {
		return fmt.Errorf("remove detail: %w", err)
	}
	s.observeMutation(ctx, OpRemove, removed)
	if !removed {
		return fmt.Errorf("detail %q: %w", label, domain.ErrNotFound)
	}

	logger.FromContext(ctx).Info("detail removed", zap.String("detail", label))
	return nil
}

// List returns all labels in catalog order.
func (s *Service) List(ctx context.Context) ([]string, error) {
	labels, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list details: %w", err)
	}
	if s.observer != nil {
		s.observer.ObserveSize(len(labels))
	}
	return labels, nil
}

// Import appends labels in order with per-item results. One bad label does
// not stop the rest; an oversized batch fails every item.
func (s *Service) Import(ctx context.Context, labels []string) []dombatch.Result {
	results := make([]dombatch.Result, len(labels))

	if len(labels) > s.maxBatchSize {
		for i, label := range labels {
			results[i] = dombatch.NewError(label,
				fmt.Errorf("batch size exceeds %d: %w", s.maxBatchSize, domain.ErrBatchTooLarge))
		}
		return results
	}

	for i, label := range labels {
		if err := detail.Validate(label); err != nil {
			results[i] = dombatch.NewError(label, err)
			continue
		}
		added, err := s.repo.Append(ctx, label)
		switch {
		case err != nil:
			results[i] = dombatch.NewError(label, fmt.Errorf("append: %w", err))
		case added:
			results[i] = dombatch.NewAdded(label)
		default:
			results[i] = dombatch.NewExists(label)
		}
	}

	sum := dombatch.Summarize(results)
	logger.FromContext(ctx).Info("details imported",
		zap.Int("added", sum.Added),
		zap.Int("exists", sum.Exists),
		zap.Int("failed", sum.Failed),
	)
	if s.observer != nil {
		for range sum.Added {
			s.observer.ObserveMutation(OpAdd, true)
		}
		if sum.Added > 0 {
			if current, err := s.repo.List(ctx); err == nil {
				s.observer.ObserveSize(len(current))
			}
		}
	}
	return results
}

// Seed appends labels when the catalog is empty and returns how many were
// added. A non-empty catalog is left untouched.
func (s *Service) Seed(ctx context.Context, labels []string) (int, error) {
	current, err := s.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	if len(current) > 0 {
		return 0, nil
	}

	added := 0
	for _, label := range labels {
		if err := detail.Validate(label); err != nil {
			return added, fmt.Errorf("seed: %w", err)
		}
		ok, err := s.repo.Append(ctx, label)
		if err != nil {
			return added, fmt.Errorf("seed: %w", err)
		}
		if ok {
			added++
		}
	}

	logger.FromContext(ctx).Info("catalog seeded", zap.Int("details", added))
	if s.observer != nil {
		s.observer.ObserveSize(added)
	}
	return added, nil
}

func (s *Service) observeMutation(ctx context.Context, op string, changed bool) {
	if s.observer == nil {
		return
	}
	s.observer.ObserveMutation(op, changed)
	if !changed {
		return
	}
	// Size refresh is best-effort; the mutation already succeeded.
	if labels, err := s.repo.List(ctx); err == nil {
		s.observer.ObserveSize(len(labels))
	}
}
