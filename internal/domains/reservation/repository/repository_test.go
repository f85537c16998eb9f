package repository

import (
	"context"
	"testing"

	"studyspot/config"
	"studyspot/infras/localstore"
	otelMocks "studyspot/infras/otel/mocks"
	"studyspot/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) Reservation {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Dir = t.TempDir()

	return New(localstore.New(cfg, otelMocks.NewOtel()), otelMocks.NewOtel())
}

func reservationFixture(id, userID string) model.Reservation {
	return model.Reservation{
		ID:           id,
		UserID:       userID,
		SpaceID:      1,
		SpaceName:    "The Quiet Corner",
		SelectedDate: "2025-07-01",
		TimeSlot:     "09:00 - 12:00",
		TotalPrice:   150,
		Status:       model.StatusConfirmed,
	}
}

func TestGetAllEmptyLedger(t *testing.T) {
	repo := newRepository(t)

	reservations, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestInsertPreservesOrder(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, reservationFixture("b-1", "user-1")))
	require.NoError(t, repo.Insert(ctx, reservationFixture("b-2", "user-2")))
	require.NoError(t, repo.Insert(ctx, reservationFixture("b-3", "user-1")))

	reservations, err := repo.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, reservations, 3)
	assert.Equal(t, "b-1", reservations[0].ID)
	assert.Equal(t, "b-2", reservations[1].ID)
	assert.Equal(t, "b-3", reservations[2].ID)
}

func TestGetByUser(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, reservationFixture("b-1", "user-1")))
	require.NoError(t, repo.Insert(ctx, reservationFixture("b-2", "user-2")))
	require.NoError(t, repo.Insert(ctx, reservationFixture("b-3", "user-1")))

	owned, err := repo.GetByUser(ctx, "user-1")

	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "b-1", owned[0].ID)
	assert.Equal(t, "b-3", owned[1].ID)
}

func TestDelete(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, reservationFixture("b-1", "user-1")))
	require.NoError(t, repo.Insert(ctx, reservationFixture("b-2", "user-1")))

	require.NoError(t, repo.Delete(ctx, "b-1"))

	reservations, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, reservations, 1)
	assert.Equal(t, "b-2", reservations[0].ID)
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, reservationFixture("b-1", "user-1")))

	require.NoError(t, repo.Delete(ctx, "b-99"))

	reservations, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestHasConflict(t *testing.T) {
	repo := newRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, reservationFixture("b-1", "user-1")))

	cancelled := reservationFixture("b-2", "user-1")
	cancelled.TimeSlot = "13:00 - 16:00"
	cancelled.Status = model.StatusCancelled
	require.NoError(t, repo.Insert(ctx, cancelled))

	tests := []struct {
		name   string
		userID string
		date   string
		slot   string
		want   bool
	}{
		{name: "confirmed exact match", userID: "user-1", date: "2025-07-01", slot: "09:00 - 12:00", want: true},
		{name: "other user", userID: "user-2", date: "2025-07-01", slot: "09:00 - 12:00", want: false},
		{name: "other date", userID: "user-1", date: "2025-07-02", slot: "09:00 - 12:00", want: false},
		{name: "other slot", userID: "user-1", date: "2025-07-01", slot: "10:00 - 13:00", want: false},
		{name: "cancelled does not block", userID: "user-1", date: "2025-07-01", slot: "13:00 - 16:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasConflict(ctx, tt.userID, 1, tt.date, tt.slot)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
