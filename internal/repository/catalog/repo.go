package catalog

import (
	"context"
	"fmt"
)

// store is the consumer interface for the catalog (ISP).
type store interface {
	Incr(ctx context.Context, key string) (int64, error)
	ZAddNX(ctx context.Context, key string, score float64, member string) (bool, error)
	ZRem(ctx context.Context, key, member string) (bool, error)
	ZRange(ctx context.Context, key string) ([]string, error)
}

// Repo implements usecase/catalog.Repository on a sorted set.
//
// Each label is scored with a monotonically increasing sequence number, so
// ZRANGE yields labels in insertion order and ZADD NX keeps them unique.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository. keyPrefix namespaces every key.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// Append adds label at the end of the catalog. Reports false if it already exists.
func (r *Repo) Append(ctx context.Context, label string) (bool, error) {
	seq, err := r.store.Incr(ctx, r.seqKey())
	if err != nil {
		return false, fmt.Errorf("next sequence: %w", err)
	}
	added, err := r.store.ZAddNX(ctx, r.setKey(), float64(seq), label)
	if err != nil {
		return false, fmt.Errorf("append detail %q: %w", label, err)
	}
	return added, nil
}

// Remove deletes label. Reports false if it was absent.
func (r *Repo) Remove(ctx context.Context, label string) (bool, error) {
	removed, err := r.store.ZRem(ctx, r.setKey(), label)
	if err != nil {
		return false, fmt.Errorf("remove detail %q: %w", label, err)
	}
	return removed, nil
}

// List returns a snapshot of all labels in insertion order.
func (r *Repo) List(ctx context.Context) ([]string, error) {
	labels, err := r.store.ZRange(ctx, r.setKey())
	if err != nil {
		return nil, fmt.Errorf("list details: %w", err)
	}
	if labels == nil {
		labels = []string{}
	}
	return labels, nil
}

func (r *Repo) setKey() string { return r.prefix + "catalog" }
func (r *Repo) seqKey() string { return r.prefix + "catalog:seq" }
