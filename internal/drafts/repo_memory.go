package drafts

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Draft // userId -> draft
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Draft),
	}
}

func (r *MemoryRepo) Get(ctx context.Context, userID string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.data[userID]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return d, nil
}

func (r *MemoryRepo) Save(ctx context.Context, d Draft) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.data[d.UserID]; ok {
		d.ID = prev.ID
		d.CreatedAt = prev.CreatedAt
		d.Version = prev.Version + 1
	} else {
		d.Version = 1
		d.CreatedAt = d.UpdatedAt
	}
	r.data[d.UserID] = d
	return d, nil
}
