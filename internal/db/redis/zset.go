package redis

import (
	"context"

	"github.com/kailas-cloud/detailmatch/internal/db"
)

// ZAddNX adds member with score unless it already exists (ZADD NX).
func (s *Store) ZAddNX(ctx context.Context, key string, score float64, member string) (bool, error) {
	cmd := s.b().Zadd().Key(key).Nx().ScoreMember().ScoreMember(score, member).Build()
	added, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpZAdd, Err: err}
	}
	return added > 0, nil
}

// ZRem removes member (ZREM).
func (s *Store) ZRem(ctx context.Context, key, member string) (bool, error) {
	cmd := s.b().Zrem().Key(key).Member(member).Build()
	removed, err := s.do(ctx, cmd).AsInt64()
	if err != nil {
		return false, &db.Error{Op: db.OpZRem, Err: err}
	}
	return removed > 0, nil
}

// ZRange returns every member in score order (ZRANGE key 0 -1).
func (s *Store) ZRange(ctx context.Context, key string) ([]string, error) {
	cmd := s.b().Zrange().Key(key).Min("0").Max("-1").Build()
	members, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpZRange, Err: err}
	}
	return members, nil
}
