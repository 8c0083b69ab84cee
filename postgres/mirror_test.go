package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniZap4/quickmemo/domain"
)

type fakeTarget struct {
	rows      map[string]*domain.Memo
	createErr error
}

func (f *fakeTarget) Create(_ context.Context, m *domain.Memo) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.rows[m.ID]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, m.ID)
	}
	f.rows[m.ID] = m
	return nil
}

func (f *fakeTarget) Update(_ context.Context, m *domain.Memo) error {
	f.rows[m.ID] = m
	return nil
}

func TestMirror(t *testing.T) {
	target := &fakeTarget{rows: map[string]*domain.Memo{
		"1": {ID: "1", Title: "stale"},
	}}
	memos := []*domain.Memo{
		{ID: "1", Title: "fresh"},
		{ID: "2", Title: "new"},
	}

	res, err := Mirror(context.Background(), target, memos)

	require.NoError(t, err)
	assert.Equal(t, MirrorResult{Created: 1, Updated: 1}, res)
	assert.Equal(t, "fresh", target.rows["1"].Title)
	assert.Equal(t, "new", target.rows["2"].Title)
}

func TestMirrorStopsOnError(t *testing.T) {
	boom := errors.New("connection reset")
	target := &fakeTarget{rows: map[string]*domain.Memo{}, createErr: boom}

	_, err := Mirror(context.Background(), target, []*domain.Memo{{ID: "1"}})

	assert.ErrorIs(t, err, boom)
}

func TestMirrorHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	target := &fakeTarget{rows: map[string]*domain.Memo{}}

	res, err := Mirror(ctx, target, []*domain.Memo{{ID: "1"}})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Created)
}
