package dto

import (
	"studyspot/internal/domains/space/model"
)

type SpaceResponse struct {
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

func (r *SpaceResponse) FromModel(space model.Space) {
	r.ID = space.ID
	r.Name = space.Name
	r.Location = space.Location
	r.Description = space.Description
	r.Price = space.Price
	r.MainImage = space.MainImage
	r.Amenities = space.Amenities
	r.TimeSlots = space.TimeSlots
	r.Hours = space.Hours
}

type GetSpacesResponse struct {
	Spaces    []SpaceResponse `json:"spaces"`
	TotalData int             `json:"total_data"`
}

func (r *GetSpacesResponse) FromModels(models []model.Space) {
	r.TotalData = len(models)

	r.Spaces = make([]SpaceResponse, len(models))
	for i, mod := range models {
		r.Spaces[i].FromModel(mod)
	}
}
