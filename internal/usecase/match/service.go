package match

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
	"github.com/kailas-cloud/detailmatch/internal/domain/query"
	"github.com/kailas-cloud/detailmatch/internal/domain/vocabulary"
	"github.com/kailas-cloud/detailmatch/internal/logger"
)

// Service matches queries against the current catalog.
type Service struct {
	catalog  Catalog
	matcher  *Matcher
	observer Observer
}

// New creates a match service.
func New(catalog Catalog, vocab vocabulary.Vocabulary) *Service {
	return &Service{catalog: catalog, matcher: NewMatcher(NewScorer(vocab))}
}

// WithObserver attaches an outcome observer.
func (s *Service) WithObserver(o Observer) *Service {
	s.observer = o
	return s
}

// FindBest reads one catalog snapshot and returns the best match. Only a
// catalog read failure produces an error.
func (s *Service) FindBest(ctx context.Context, q query.Query) (dommatch.Result, error) {
	labels, err := s.catalog.List(ctx)
	if err != nil {
		return dommatch.Result{}, fmt.Errorf("list catalog: %w", err)
	}

	res := s.matcher.FindBest(q, labels)

	logger.FromContext(ctx).Debug("match evaluated",
		zap.Int("candidates", len(labels)),
		zap.String("suggested", res.Suggested()),
		zap.Float64("confidence", res.Confidence()),
		zap.Bool("matched", res.Matched()),
	)
	if s.observer != nil {
		s.observer.ObserveMatch(res)
	}
	return res, nil
}
