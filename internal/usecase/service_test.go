package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/infrastructure/storage"
	"svw.info/sokoban/internal/ports"
	"svw.info/sokoban/internal/testutil"
	"svw.info/sokoban/internal/validator"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(validator.New(), storage.NewFS(t.TempDir()), testutil.NewTestLogger(t))
}

func TestCheck(t *testing.T) {
	uc := newService(t)
	ctx := context.Background()

	b, rep, err := uc.Check(ctx, &domain.Level{Rows: testutil.Microban1})
	require.NoError(t, err)
	assert.True(t, rep.Valid)
	assert.False(t, rep.Solved)
	assert.Equal(t, 2, rep.Targets)
	assert.Equal(t, 2, b.Treasures().Size())

	_, rep, err = uc.Check(ctx, &domain.Level{Rows: []string{"#####", "#@ .#", "#####"}})
	require.NoError(t, err)
	assert.False(t, rep.Valid)
	assert.Contains(t, rep.Problem, "at least one treasure")

	_, _, err = uc.Check(ctx, &domain.Level{Rows: []string{"#@?#"}})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSaveAssignsIdentity(t *testing.T) {
	uc := newService(t)
	ctx := context.Background()

	lv := &domain.Level{Name: "micro", Rows: testutil.Microban1}
	require.NoError(t, uc.Save(ctx, lv))
	assert.NotEmpty(t, lv.ID)
	assert.NotZero(t, lv.CreatedAt)

	got, err := uc.Load(ctx, lv.ID)
	require.NoError(t, err)
	assert.Equal(t, lv.Rows, got.Rows)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "micro", list[0].Name)

	require.NoError(t, uc.Delete(ctx, lv.ID))
	_, err = uc.Load(ctx, lv.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestSaveRejectsUnparsableRows(t *testing.T) {
	uc := newService(t)
	err := uc.Save(context.Background(), &domain.Level{Name: "bad", Rows: []string{"#x#"}})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestNotConfigured(t *testing.T) {
	uc := &Service{}
	ctx := context.Background()

	_, _, err := uc.Check(ctx, &domain.Level{})
	assert.ErrorIs(t, err, errNotConfigured)
	assert.ErrorIs(t, uc.Save(ctx, &domain.Level{}), errNotConfigured)
	_, err = uc.Load(ctx, "x")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = uc.List(ctx)
	assert.ErrorIs(t, err, errNotConfigured)
	assert.ErrorIs(t, uc.Delete(ctx, "x"), errNotConfigured)
}
