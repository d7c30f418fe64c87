package match

import (
	"context"

	dommatch "github.com/kailas-cloud/detailmatch/internal/domain/match"
)

// Catalog is the read side of the catalog store.
type Catalog interface {
	List(ctx context.Context) ([]string, error)
}

// Observer records match outcomes (metrics).
type Observer interface {
	ObserveMatch(res dommatch.Result)
}
