package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"studyspot/infras/localstore"
	"studyspot/infras/otel"
	"studyspot/internal/domains/reservation/model"
	"studyspot/shared/constant"

	"github.com/rs/zerolog/log"
)

// Reservation keeps the append-ordered booking ledger. Insert records
// whatever it is handed without judging it; double-booking rules belong to
// the caller, which can ask HasConflict before committing. Delete of an
// unknown id is a no-op.
type Reservation interface {
	GetAll(ctx context.Context) ([]model.Reservation, error)
	GetByUser(ctx context.Context, userID string) ([]model.Reservation, error)
	Insert(ctx context.Context, reservation model.Reservation) error
	Delete(ctx context.Context, id string) error
	HasConflict(ctx context.Context, userID string, spaceID int, date, slot string) (bool, error)
}

type repositoryImpl struct {
	store localstore.Store
	otel  otel.Otel
}

func New(store localstore.Store, ot otel.Otel) Reservation {
	return &repositoryImpl{
		store: store,
		otel:  ot,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) (reservations []model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.store.Get(ctx, model.StorageKeyBookings, &reservations)
	if err != nil {
		if errors.Is(err, localstore.ErrKeyNotFound) {
			return []model.Reservation{}, nil
		}

		log.Error().Err(err).Msg("failed to load booking ledger")

		return nil, fmt.Errorf("failed to load booking ledger: %w", err)
	}

	return reservations, nil
}

func (r *repositoryImpl) GetByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetByUser")
	defer scope.End()

	reservations, err := r.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	owned := make([]model.Reservation, 0, len(reservations))

	for _, reservation := range reservations {
		if reservation.UserID == userID {
			owned = append(owned, reservation)
		}
	}

	return owned, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, reservation model.Reservation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservations, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	reservations = append(reservations, reservation)

	if err = r.store.Set(ctx, model.StorageKeyBookings, reservations); err != nil {
		log.Error().Err(err).Msg("failed to save booking ledger")

		return fmt.Errorf("failed to save booking ledger: %w", err)
	}

	return nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservations, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]model.Reservation, 0, len(reservations))

	for _, reservation := range reservations {
		if reservation.ID != id {
			kept = append(kept, reservation)
		}
	}

	if err = r.store.Set(ctx, model.StorageKeyBookings, kept); err != nil {
		log.Error().Err(err).Msg("failed to save booking ledger")

		return fmt.Errorf("failed to save booking ledger: %w", err)
	}

	return nil
}

func (r *repositoryImpl) HasConflict(ctx context.Context, userID string, spaceID int, date, slot string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".HasConflict")
	defer scope.End()

	reservations, err := r.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)

		return false, err
	}

	for _, reservation := range reservations {
		if reservation.Status == model.StatusConfirmed &&
			reservation.UserID == userID &&
			reservation.SpaceID == spaceID &&
			reservation.SelectedDate == date &&
			reservation.TimeSlot == slot {
			return true, nil
		}
	}

	return false, nil
}
