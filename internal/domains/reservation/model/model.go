package model

import "time"

const (
	EntityName = "booking"

	// StorageKeyBookings holds every booking ever made, across all users.
	StorageKeyBookings = "studyspot_bookings"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Reservation claims one time slot of one space on one date for one user.
// Space name, location and price are denormalized at booking time so the
// record stays renderable even if the catalog changes later.
type Reservation struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	SpaceID       int       `json:"spaceId"`
	SpaceName     string    `json:"spaceName"`
	SpaceLocation string    `json:"spaceLocation"`
	SelectedDate  string    `json:"selectedDate"`
	TimeSlot      string    `json:"timeSlot"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
