package users

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/dmitrijs2005/zkpauth/internal/common"
)

const shardCount = 32

type shard struct {
	mu      sync.RWMutex
	records map[string]User
}

// InMemoryRepository keeps user records in a sharded hash map so that
// registrations and lookups for unrelated names do not serialize behind a
// single lock.
type InMemoryRepository struct {
	shards [shardCount]*shard
}

func NewInMemoryRepository() *InMemoryRepository {
	r := &InMemoryRepository{}
	for i := range r.shards {
		r.shards[i] = &shard{records: make(map[string]User)}
	}
	return r
}

func (r *InMemoryRepository) shardFor(name string) *shard {
	h := fnv.New32a()
	h.Write([]byte(name))
	return r.shards[h.Sum32()%shardCount]
}

func (r *InMemoryRepository) Save(ctx context.Context, user *User) error {
	sh := r.shardFor(user.Name)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.records[user.Name] = *user
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, name string) (*User, error) {
	sh := r.shardFor(name)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	u, ok := sh.records[name]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", name, common.ErrNotFound)
	}
	return &u, nil
}
