package dto

import (
	"studyspot/internal/domains/reservation/model"
	"studyspot/shared/constant"
)

type CreateBookingRequest struct {
	SpaceID      int    `json:"spaceId" validate:"required"`
	SelectedDate string `json:"selectedDate" validate:"required"`
	TimeSlot     string `json:"timeSlot" validate:"required"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	SpaceID       int     `json:"spaceId"`
	SpaceName     string  `json:"spaceName"`
	SpaceLocation string  `json:"spaceLocation"`
	SelectedDate  string  `json:"selectedDate"`
	TimeSlot      string  `json:"timeSlot"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

func (r *BookingResponse) FromModel(reservation model.Reservation) {
	r.ID = reservation.ID
	r.UserID = reservation.UserID
	r.SpaceID = reservation.SpaceID
	r.SpaceName = reservation.SpaceName
	r.SpaceLocation = reservation.SpaceLocation
	r.SelectedDate = reservation.SelectedDate
	r.TimeSlot = reservation.TimeSlot
	r.TotalPrice = reservation.TotalPrice
	r.Status = reservation.Status

	if !reservation.CreatedAt.IsZero() {
		r.CreatedAt = reservation.CreatedAt.Format(constant.DateFormat)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// SlotAvailabilityResponse reports, per advertised time slot of a space on a
// given date, whether a confirmed booking already holds it.
type SlotAvailabilityResponse struct {
	SpaceID int             `json:"spaceId"`
	Date    string          `json:"date"`
	Slots   map[string]bool `json:"slots"`
}
