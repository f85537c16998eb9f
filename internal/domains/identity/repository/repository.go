package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"studyspot/infras/localstore"
	"studyspot/infras/otel"
	"studyspot/internal/domains/identity/model"
	"studyspot/shared/constant"

	"github.com/rs/zerolog/log"
)

// Identity owns the two persisted identity records: the registry of
// registered accounts and the single current session. Each read returns a
// fresh copy and each write replaces the record wholesale.
type Identity interface {
	GetAccounts(ctx context.Context) ([]model.Account, error)
	SaveAccounts(ctx context.Context, accounts []model.Account) error
	GetSession(ctx context.Context) (model.Account, bool, error)
	SetSession(ctx context.Context, account model.Account) error
	ClearSession(ctx context.Context) error
}

type repositoryImpl struct {
	store localstore.Store
	otel  otel.Otel
}

func New(store localstore.Store, ot otel.Otel) Identity {
	return &repositoryImpl{
		store: store,
		otel:  ot,
	}
}

func (r *repositoryImpl) GetAccounts(ctx context.Context) (accounts []model.Account, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAccounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.store.Get(ctx, model.StorageKeyRegistry, &accounts)
	if err != nil {
		if errors.Is(err, localstore.ErrKeyNotFound) {
			return []model.Account{}, nil
		}

		log.Error().Err(err).Msg("failed to load account registry")

		return nil, fmt.Errorf("failed to load account registry: %w", err)
	}

	return accounts, nil
}

func (r *repositoryImpl) SaveAccounts(ctx context.Context, accounts []model.Account) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SaveAccounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Set(ctx, model.StorageKeyRegistry, accounts); err != nil {
		log.Error().Err(err).Msg("failed to save account registry")

		return fmt.Errorf("failed to save account registry: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetSession(ctx context.Context) (account model.Account, ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.store.Get(ctx, model.StorageKeySession, &account)
	if err != nil {
		if errors.Is(err, localstore.ErrKeyNotFound) {
			return model.Account{}, false, nil
		}

		log.Error().Err(err).Msg("failed to load session")

		return model.Account{}, false, fmt.Errorf("failed to load session: %w", err)
	}

	return account, true, nil
}

func (r *repositoryImpl) SetSession(ctx context.Context, account model.Account) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".SetSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Set(ctx, model.StorageKeySession, account); err != nil {
		log.Error().Err(err).Msg("failed to save session")

		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) ClearSession(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ClearSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.store.Delete(ctx, model.StorageKeySession); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
