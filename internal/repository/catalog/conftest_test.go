package catalog

import "context"

// mockStore implements the consumer interface for tests.
type mockStore struct {
	incrFn   func(ctx context.Context, key string) (int64, error)
	zaddNXFn func(ctx context.Context, key string, score float64, member string) (bool, error)
	zremFn   func(ctx context.Context, key, member string) (bool, error)
	zrangeFn func(ctx context.Context, key string) ([]string, error)
}

func (m *mockStore) Incr(ctx context.Context, key string) (int64, error) {
	if m.incrFn != nil {
		return m.incrFn(ctx, key)
	}
	return 1, nil
}

func (m *mockStore) ZAddNX(ctx context.Context, key string, score float64, member string) (bool, error) {
	if m.zaddNXFn != nil {
		return m.zaddNXFn(ctx, key, score, member)
	}
	return true, nil
}

func (m *mockStore) ZRem(ctx context.Context, key, member string) (bool, error) {
	if m.zremFn != nil {
		return m.zremFn(ctx, key, member)
	}
	return true, nil
}

func (m *mockStore) ZRange(ctx context.Context, key string) ([]string, error) {
	if m.zrangeFn != nil {
		return m.zrangeFn(ctx, key)
	}
	return nil, nil
}
