package health

import "context"

// DBPinger checks store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogReader checks that the catalog can be enumerated.
type CatalogReader interface {
	List(ctx context.Context) ([]string, error)
}
