package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flashcards/internal/domain"

	sq "github.com/Masterminds/squirrel"
)

const assetTable = "asset_cache"

// AssetRepo implements repository.AssetRepository
type AssetRepo struct {
	db   *sql.DB
	psql sq.StatementBuilderType
	now  func() time.Time
}

// NewAssetRepo creates a new asset repository
func NewAssetRepo(db *sql.DB) *AssetRepo {
	return &AssetRepo{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		now:  time.Now,
	}
}

// Match returns the stored response for path in the named cache
func (r *AssetRepo) Match(ctx context.Context, cacheName, path string) (*domain.CachedResponse, error) {
	query, args, err := r.psql.
		Select("status", "header", "body", "stored_at").
		From(assetTable).
		Where(sq.Eq{"cache_name": cacheName, "path": path}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build match query: %w", err)
	}

	resp := domain.CachedResponse{Path: path}
	var rawHeader []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&resp.Status, &rawHeader, &resp.Body, &resp.StoredAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	resp.Header = http.Header{}
	if len(rawHeader) > 0 {
		if err := json.Unmarshal(rawHeader, &resp.Header); err != nil {
			return nil, fmt.Errorf("decode cached header for %s: %w", path, err)
		}
	}

	return &resp, nil
}

// PutAll upserts all responses in a single transaction
func (r *AssetRepo) PutAll(ctx context.Context, cacheName string, responses []domain.CachedResponse) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	storedAt := r.now()
	for _, resp := range responses {
		header, err := json.Marshal(resp.Header)
		if err != nil {
			return fmt.Errorf("encode header for %s: %w", resp.Path, err)
		}
		body := resp.Body
		if body == nil {
			body = []byte{}
		}

		query, args, err := r.psql.
			Insert(assetTable).
			Columns("cache_name", "path", "status", "header", "body", "stored_at").
			Values(cacheName, resp.Path, resp.Status, header, body, storedAt).
			Suffix("ON CONFLICT (cache_name, path) DO UPDATE SET " +
				"status = EXCLUDED.status, header = EXCLUDED.header, " +
				"body = EXCLUDED.body, stored_at = EXCLUDED.stored_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert for %s: %w", resp.Path, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("store %s: %w", resp.Path, err)
		}
	}

	return tx.Commit()
}
