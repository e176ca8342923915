package tokens

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingvocheck/client/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokenstore?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM settings`)
	require.NoError(t, err)
	return NewStore(db)
}

func TestStore_EmptyWithoutTokens(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	access, err := s.Access(ctx)
	require.NoError(t, err)
	require.Empty(t, access)

	refresh, err := s.Refresh(ctx)
	require.NoError(t, err)
	require.Empty(t, refresh)
}

func TestStore_SaveAndReadBack(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAccess(ctx, "acc-1"))
	require.NoError(t, s.SaveRefresh(ctx, "ref-1"))

	access, err := s.Access(ctx)
	require.NoError(t, err)
	require.Equal(t, "acc-1", access)

	refresh, err := s.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, "ref-1", refresh)
}

func TestStore_SavePairOverwritesBoth(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAccess(ctx, "old-acc"))
	require.NoError(t, s.SaveRefresh(ctx, "old-ref"))

	pair := models.TokenPair{AccessToken: "new-acc", RefreshToken: "new-ref"}
	require.NoError(t, s.SavePair(ctx, pair))

	access, err := s.Access(ctx)
	require.NoError(t, err)
	require.Equal(t, "new-acc", access)

	refresh, err := s.Refresh(ctx)
	require.NoError(t, err)
	require.Equal(t, "new-ref", refresh)
}

func TestStore_ClearRemovesOnlyTokens(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAccess(ctx, "acc"))
	require.NoError(t, s.SaveRefresh(ctx, "ref"))

	// Another setting lives in the same table and must survive Clear.
	_, err := s.db.Exec(`INSERT INTO settings (key, value) VALUES ('lang', 'uk')`)
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	access, err := s.Access(ctx)
	require.NoError(t, err)
	require.Empty(t, access)

	refresh, err := s.Refresh(ctx)
	require.NoError(t, err)
	require.Empty(t, refresh)

	var lang string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM settings WHERE key = 'lang'`).Scan(&lang))
	require.Equal(t, "uk", lang)
}
