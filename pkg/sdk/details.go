package detailmatch

import (
	"context"
	"fmt"
	"time"
)

// DetailService manages the detail catalog.
type DetailService struct {
	svc catalogUseCase
	obs *observer
}

// Add appends a label. Returns false when the label already exists.
func (s *DetailService) Add(ctx context.Context, label string) (_ bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("details.add", start, err) }()

	added, err := s.svc.Add(ctx, label)
	if err != nil {
		return false, fmt.Errorf("add detail: %w", err)
	}
	return added, nil
}

// Remove deletes a label. Returns ErrNotFound when absent.
func (s *DetailService) Remove(ctx context.Context, label string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("details.remove", start, err) }()

	if err = s.svc.Remove(ctx, label); err != nil {
		return fmt.Errorf("remove detail: %w", err)
	}
	return nil
}

// List returns all labels in catalog order.
func (s *DetailService) List(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("details.list", start, err) }()

	labels, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list details: %w", err)
	}
	return labels, nil
}

// Import adds labels in order, one result per label.
// Failures are reported per item and never abort the rest.
func (s *DetailService) Import(ctx context.Context, labels []string) []ImportResult {
	start := time.Now()
	results := s.svc.Import(ctx, labels)

	out := make([]ImportResult, len(results))
	var firstErr error
	for i, r := range results {
		out[i] = ImportResult{
			Label:  r.Label(),
			Status: ImportStatus(r.Status()),
			Err:    r.Err(),
		}
		if firstErr == nil && r.Err() != nil {
			firstErr = r.Err()
		}
	}
	s.obs.observe("details.import", start, firstErr)
	return out
}
