// quickmemo/postgres/repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ViniZap4/quickmemo/domain"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Create inserts memo. An existing id yields domain.ErrDuplicateID.
func (r *Repository) Create(ctx context.Context, memo *domain.Memo) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO memos (id, title, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		memo.ID, memo.Title, memo.Content, memo.CreatedAt, memo.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, memo.ID)
		}
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, memo *domain.Memo) error {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE memos SET title = $2, content = $3, updated_at = $4 WHERE id = $1`,
		memo.ID, memo.Title, memo.Content, memo.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, memo.ID)
	}
	return nil
}

// List returns all memos, newest update first.
func (r *Repository) List(ctx context.Context) ([]*domain.Memo, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, title, content, created_at, updated_at
		 FROM memos ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var memos []*domain.Memo
	for rows.Next() {
		memo := &domain.Memo{}
		if err := rows.Scan(&memo.ID, &memo.Title, &memo.Content, &memo.CreatedAt, &memo.UpdatedAt); err != nil {
			return nil, err
		}
		memos = append(memos, memo)
	}
	return memos, rows.Err()
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM memos WHERE id = $1`, id)
	return err
}
