package memory

import (
	"context"
	"sync"

	"flashcards/internal/domain"
)

// AssetRepo implements repository.AssetRepository in process memory
type AssetRepo struct {
	mu     sync.RWMutex
	caches map[string]map[string]domain.CachedResponse
}

// NewAssetRepo creates an empty in-memory asset repository
func NewAssetRepo() *AssetRepo {
	return &AssetRepo{caches: make(map[string]map[string]domain.CachedResponse)}
}

// Match returns a copy of the stored response for path
func (r *AssetRepo) Match(_ context.Context, cacheName, path string) (*domain.CachedResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resp, ok := r.caches[cacheName][path]
	if !ok {
		return nil, nil
	}
	out := resp.Clone()
	return &out, nil
}

// PutAll stores all responses under one lock
func (r *AssetRepo) PutAll(ctx context.Context, cacheName string, responses []domain.CachedResponse) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cache, ok := r.caches[cacheName]
	if !ok {
		cache = make(map[string]domain.CachedResponse)
		r.caches[cacheName] = cache
	}
	for _, resp := range responses {
		cache[resp.Path] = resp.Clone()
	}
	return nil
}

// Len returns the number of entries in a named cache
func (r *AssetRepo) Len(cacheName string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.caches[cacheName])
}
