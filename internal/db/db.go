package db

import (
	"context"
	"time"
)

// Store is the database facade used by the catalog.
type Store interface {
	Pinger
	CounterStore
	SortedSetStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CounterStore provides atomic counters.
type CounterStore interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// SortedSetStore provides ordered-set operations. Members are ordered by
// score ascending, then lexically.
type SortedSetStore interface {
	// ZAddNX inserts member only if it is absent and reports whether it did.
	ZAddNX(ctx context.Context, key string, score float64, member string) (bool, error)
	// ZRem removes member and reports whether it was present.
	ZRem(ctx context.Context, key, member string) (bool, error)
	// ZRange returns all members in order.
	ZRange(ctx context.Context, key string) ([]string, error)
}
