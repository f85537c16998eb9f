package repository

import (
	"context"
	"testing"

	"studyspot/config"
	"studyspot/infras/localstore"
	otelMocks "studyspot/infras/otel/mocks"
	"studyspot/internal/domains/identity/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) Identity {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()

	return New(localstore.New(cfg, otelMocks.NewOtel()), otelMocks.NewOtel())
}

func TestGetAccountsEmptyRegistry(t *testing.T) {
	repo := newRepository(t)

	accounts, err := repo.GetAccounts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSaveAccountsReplacesWholesale(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	first := []model.Account{{ID: "u-1", Name: "Maria", Email: "maria@example.com"}}
	require.NoError(t, repo.SaveAccounts(ctx, first))

	second := []model.Account{
		{ID: "u-2", Name: "Juan", Email: "juan@example.com"},
		{ID: "u-3", Name: "Alex", Email: "alex@example.com"},
	}
	require.NoError(t, repo.SaveAccounts(ctx, second))

	accounts, err := repo.GetAccounts(ctx)

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "u-2", accounts[0].ID)
	assert.Equal(t, "u-3", accounts[1].ID)
}

func TestSessionLifecycle(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	_, ok, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	account := model.Account{ID: "u-1", Name: "Maria", Email: "maria@example.com"}
	require.NoError(t, repo.SetSession(ctx, account))

	got, ok, err := repo.GetSession(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, account.Email, got.Email)

	require.NoError(t, repo.ClearSession(ctx))

	_, ok, err = repo.GetSession(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearSessionIsIdempotent(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ClearSession(ctx))
	require.NoError(t, repo.ClearSession(ctx))
}
