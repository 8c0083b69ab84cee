package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniZap4/quickmemo/domain"
)

// Runs against a real database only when QUICKMEMO_TEST_DATABASE_URL is set.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	url := os.Getenv("QUICKMEMO_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("QUICKMEMO_TEST_DATABASE_URL not set")
	}

	require.NoError(t, Migrate(url))

	ctx := context.Background()
	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Pool.Exec(ctx, `TRUNCATE memos`)
	require.NoError(t, err)

	return NewRepository(db)
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	older := &domain.Memo{ID: "1", Title: "older", Content: "a", CreatedAt: base, UpdatedAt: base}
	newer := &domain.Memo{ID: "2", Title: "newer", Content: "b", CreatedAt: base, UpdatedAt: base.Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	err := repo.Create(ctx, older)
	assert.ErrorIs(t, err, domain.ErrDuplicateID)

	older.Title = "renamed"
	older.UpdatedAt = base.Add(2 * time.Hour)
	require.NoError(t, repo.Update(ctx, older))

	memos, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, memos, 2)
	assert.Equal(t, "1", memos[0].ID)
	assert.Equal(t, "renamed", memos[0].Title)

	require.NoError(t, repo.Delete(ctx, "1"))
	memos, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, memos, 1)
	assert.Equal(t, "2", memos[0].ID)

	err = repo.Update(ctx, &domain.Memo{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
