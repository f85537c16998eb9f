package service

import (
	"context"
	"fmt"
	"time"

	"studyspot/config"
	"studyspot/infras/otel"
	"studyspot/internal/domains/reservation/model"
	"studyspot/internal/domains/reservation/model/dto"
	"studyspot/internal/domains/reservation/repository"
	spaceRepository "studyspot/internal/domains/space/repository"
	"studyspot/shared"
	"studyspot/shared/cache"
	"studyspot/shared/constant"
	"studyspot/shared/failure"
	"studyspot/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetMyBookings = "booking:user"
)

type Reservation interface {
	Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, userID string) (dto.GetBookingsResponse, error)
	SlotAvailability(ctx context.Context, userID string, spaceID int, date string) (dto.SlotAvailabilityResponse, error)
	Remove(ctx context.Context, userID, id string) error
}

type serviceImpl struct {
	repo    repository.Reservation
	catalog spaceRepository.Catalog
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Reservation,
	catalog spaceRepository.Catalog,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Create books one time slot of one space on one date for the current user.
// The ledger itself accepts anything, so the double-booking rule is enforced
// here before the append.
func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	space, ok, err := s.catalog.Get(ctx, req.SpaceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return res, fmt.Errorf("failed to get space: %w", err)
	}

	if !ok {
		log.Warn().Int("spaceId", req.SpaceID).Msg("booking attempted for unknown space")

		return res, failure.BadRequestFromString("space does not exist") // nolint:wrapcheck
	}

	if _, err := time.Parse(constant.BookingDateFormat, req.SelectedDate); err != nil {
		log.Warn().Str("selectedDate", req.SelectedDate).Msg("booking attempted with malformed date")

		return res, failure.BadRequestFromString("selected date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !slotAdvertised(space.TimeSlots, req.TimeSlot) {
		log.Warn().Int("spaceId", req.SpaceID).Str("timeSlot", req.TimeSlot).Msg("booking attempted for unknown time slot")

		return res, failure.BadRequestFromString("time slot is not offered by this space") // nolint:wrapcheck
	}

	conflict, err := s.repo.HasConflict(ctx, userID, req.SpaceID, req.SelectedDate, req.TimeSlot)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflict")

		return res, fmt.Errorf("failed to check booking conflict: %w", err)
	}

	if conflict {
		return res, failure.Conflict(fmt.Sprintf( // nolint:wrapcheck
			"you already booked %s for %s at %s",
			space.Name, req.SelectedDate, req.TimeSlot,
		))
	}

	reservation := model.Reservation{
		ID:            uuid.NewString(),
		UserID:        userID,
		SpaceID:       space.ID,
		SpaceName:     space.Name,
		SpaceLocation: space.Location,
		SelectedDate:  req.SelectedDate,
		TimeSlot:      req.TimeSlot,
		TotalPrice:    space.Price,
		Status:        model.StatusConfirmed,
		CreatedAt:     timezone.Now(),
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetMyBookings)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetMyBookings(ctx context.Context, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMyBookings, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	reservations, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(reservations)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// SlotAvailability reports each advertised slot of a space on a date as
// booked or free for the current user.
func (s *serviceImpl) SlotAvailability(ctx context.Context, userID string, spaceID int, date string) (res dto.SlotAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SlotAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	space, ok, err := s.catalog.Get(ctx, spaceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get space")

		return res, fmt.Errorf("failed to get space: %w", err)
	}

	if !ok {
		return res, failure.NotFound("space not found") // nolint:wrapcheck
	}

	res.SpaceID = spaceID
	res.Date = date
	res.Slots = make(map[string]bool, len(space.TimeSlots))

	for _, slot := range space.TimeSlots {
		booked, err := s.repo.HasConflict(ctx, userID, spaceID, date, slot)
		if err != nil {
			log.Error().Err(err).Msg("failed to check slot availability")

			return res, fmt.Errorf("failed to check slot availability: %w", err)
		}

		res.Slots[slot] = booked
	}

	return res, nil
}

// Remove cancels a booking by deleting it from the ledger. Removing an id
// that is absent, or that belongs to someone else, changes nothing.
func (s *serviceImpl) Remove(ctx context.Context, userID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservations, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return fmt.Errorf("failed to get bookings: %w", err)
	}

	owned := false

	for _, reservation := range reservations {
		if reservation.ID == id {
			owned = true
			break
		}
	}

	if !owned {
		log.Info().Str("bookingId", id).Msg("remove skipped, booking not found for user")

		return nil
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetMyBookings)

	return nil
}

func slotAdvertised(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}

	return false
}
