// Package tokens persists the access/refresh token pair in the client's
// durable settings storage. Tokens are opaque strings; the store never
// inspects them.
package tokens

import (
	"context"
	"database/sql"

	"github.com/lingvocheck/client/internal/client/models"
	"github.com/lingvocheck/client/internal/client/repositories/settings"
	"github.com/lingvocheck/client/internal/dbx"
)

// Storage keys. These match the keys the platform has always used, so an
// existing client database keeps its session across upgrades.
const (
	KeyAccess  = "token"
	KeyRefresh = "refreshToken"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) repo() settings.Repository {
	return settings.NewSQLiteRepository(s.db)
}

// Access returns the stored access token, or "" when none is stored.
func (s *Store) Access(ctx context.Context) (string, error) {
	return s.repo().Get(ctx, KeyAccess)
}

// Refresh returns the stored refresh token, or "" when none is stored.
func (s *Store) Refresh(ctx context.Context) (string, error) {
	return s.repo().Get(ctx, KeyRefresh)
}

func (s *Store) SaveAccess(ctx context.Context, token string) error {
	return s.repo().Set(ctx, KeyAccess, token)
}

func (s *Store) SaveRefresh(ctx context.Context, token string) error {
	return s.repo().Set(ctx, KeyRefresh, token)
}

// SavePair stores both tokens in a single transaction so a rotation never
// leaves a half-updated pair behind.
func (s *Store) SavePair(ctx context.Context, pair models.TokenPair) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAccess, pair.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, KeyRefresh, pair.RefreshToken)
	})
}

// Clear removes both tokens. Other settings (theme, language) are kept.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyAccess); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyRefresh)
	})
}
