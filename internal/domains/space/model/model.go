package model

const (
	EntityName = "space"
)

// Space is a bookable location described by the static catalog document.
// Field names follow the catalog JSON.
type Space struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	MainImage   string   `json:"main_image"`
	Amenities   []string `json:"amenities"`
	TimeSlots   []string `json:"time_slots"`
	Hours       string   `json:"hours"`
}
