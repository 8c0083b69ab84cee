// quickmemo/postgres/mirror.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ViniZap4/quickmemo/domain"
)

// Target receives mirrored memos. *Repository implements it.
type Target interface {
	Create(ctx context.Context, memo *domain.Memo) error
	Update(ctx context.Context, memo *domain.Memo) error
}

type MirrorResult struct {
	Created int
	Updated int
}

// Mirror copies memos into target, updating rows whose id already exists.
// It stops at the first other error.
func Mirror(ctx context.Context, target Target, memos []*domain.Memo) (MirrorResult, error) {
	var res MirrorResult
	for _, memo := range memos {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		err := target.Create(ctx, memo)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, domain.ErrDuplicateID):
			if err := target.Update(ctx, memo); err != nil {
				return res, fmt.Errorf("failed to update memo %s: %w", memo.ID, err)
			}
			res.Updated++
		default:
			return res, fmt.Errorf("failed to create memo %s: %w", memo.ID, err)
		}
	}
	return res, nil
}
