package repository

import (
	"context"

	"flashcards/internal/domain"
)

// AssetRepository defines named-cache storage operations
type AssetRepository interface {
	// Match returns the stored response for path, or nil if there is none
	Match(ctx context.Context, cacheName, path string) (*domain.CachedResponse, error)
	// PutAll stores every response or none of them
	PutAll(ctx context.Context, cacheName string, responses []domain.CachedResponse) error
}
