package challenges

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
)

const shardCount = 32

type shard struct {
	mu      sync.Mutex
	records map[string]Challenge
}

// InMemoryRepository keeps live challenges in a sharded hash map keyed by
// attempt token. Expiry is checked on Take, so correctness does not depend
// on the reaper; the reaper only bounds memory held by abandoned attempts.
type InMemoryRepository struct {
	shards [shardCount]*shard
	ttl    time.Duration
	now    func() time.Time
}

func NewInMemoryRepository(ttl time.Duration) *InMemoryRepository {
	r := &InMemoryRepository{ttl: ttl, now: time.Now}
	for i := range r.shards {
		r.shards[i] = &shard{records: make(map[string]Challenge)}
	}
	return r
}

func (r *InMemoryRepository) shardFor(authID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(authID))
	return r.shards[h.Sum32()%shardCount]
}

func (r *InMemoryRepository) Create(ctx context.Context, ch *Challenge) error {
	sh := r.shardFor(ch.AuthID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.records[ch.AuthID]; ok {
		return fmt.Errorf("auth id %q: %w", ch.AuthID, ErrDuplicateAuthID)
	}

	rec := *ch
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now()
	}
	sh.records[ch.AuthID] = rec
	return nil
}

// Take removes the challenge for authID and returns it. Consumed, unknown
// and expired tokens are indistinguishable to the caller.
func (r *InMemoryRepository) Take(ctx context.Context, authID string) (*Challenge, error) {
	sh := r.shardFor(authID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	ch, ok := sh.records[authID]
	if !ok {
		return nil, fmt.Errorf("auth id %q: %w", authID, common.ErrNotFound)
	}
	delete(sh.records, authID)

	if r.expired(ch, r.now()) {
		return nil, fmt.Errorf("auth id %q: %w", authID, common.ErrNotFound)
	}
	return &ch, nil
}

func (r *InMemoryRepository) expired(ch Challenge, now time.Time) bool {
	return r.ttl > 0 && now.Sub(ch.CreatedAt) > r.ttl
}

// Reap drops every expired challenge and reports how many were removed.
func (r *InMemoryRepository) Reap() int {
	now := r.now()
	removed := 0
	for _, sh := range r.shards {
		sh.mu.Lock()
		for id, ch := range sh.records {
			if r.expired(ch, now) {
				delete(sh.records, id)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

// RunReaper reaps expired challenges every interval until ctx is done.
func (r *InMemoryRepository) RunReaper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Reap()
		}
	}
}
