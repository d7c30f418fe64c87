package catalog

import "context"

// Repository defines the storage contract for the detail catalog.
type Repository interface {
	Append(ctx context.Context, label string) (bool, error)
	Remove(ctx context.Context, label string) (bool, error)
	List(ctx context.Context) ([]string, error)
}

// Observer records catalog changes (metrics).
type Observer interface {
	ObserveMutation(op string, changed bool)
	ObserveSize(n int)
}

// Mutation names passed to Observer.ObserveMutation.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)
