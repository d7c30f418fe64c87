// Package memory is an in-process db.Store used when no Valkey/Redis
// address is configured. Data lives for the lifetime of the process.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kailas-cloud/detailmatch/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

type entry struct {
	member string
	score  float64
}

// Store keeps counters and sorted sets in maps guarded by one RWMutex.
type Store struct {
	mu       sync.RWMutex
	counters map[string]int64
	sets     map[string][]entry // kept sorted by (score, member)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		counters: make(map[string]int64),
		sets:     make(map[string][]entry),
	}
}

// Ping always succeeds unless ctx is done.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close is a no-op.
func (s *Store) Close() {}

// WaitForReady returns immediately.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// Incr increments the counter at key.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &db.Error{Op: db.OpIncr, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}

// ZAddNX inserts member unless present.
func (s *Store) ZAddNX(ctx context.Context, key string, score float64, member string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &db.Error{Op: db.OpZAdd, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[key]
	if indexOf(set, member) >= 0 {
		return false, nil
	}
	i := sort.Search(len(set), func(i int) bool { return less(entry{member, score}, set[i]) })
	set = append(set, entry{})
	copy(set[i+1:], set[i:])
	set[i] = entry{member: member, score: score}
	s.sets[key] = set
	return true, nil
}

// ZRem removes member if present.
func (s *Store) ZRem(ctx context.Context, key, member string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, &db.Error{Op: db.OpZRem, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[key]
	i := indexOf(set, member)
	if i < 0 {
		return false, nil
	}
	set = append(set[:i], set[i+1:]...)
	if len(set) == 0 {
		delete(s.sets, key)
	} else {
		s.sets[key] = set
	}
	return true, nil
}

// ZRange returns a copy of the members in order.
func (s *Store) ZRange(ctx context.Context, key string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &db.Error{Op: db.OpZRange, Err: err}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.sets[key]
	out := make([]string, len(set))
	for i, e := range set {
		out[i] = e.member
	}
	return out, nil
}

func indexOf(set []entry, member string) int {
	for i, e := range set {
		if e.member == member {
			return i
		}
	}
	return -1
}

func less(a, b entry) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	return a.member < b.member
}
