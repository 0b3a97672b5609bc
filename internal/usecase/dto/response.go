package dto

import "github.com/transit-directory/internal/domain"

// CreatedResponse returns the generated id of a new row.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// NearbyResponse is the ranked result of a nearby search, ascending by
// distance (kilometers).
type NearbyResponse struct {
	Locations []*domain.NearbyLocation `json:"locations"`
}

type DeleteCategoryResponse struct {
	DeletedCategory           bool  `json:"deletedCategory"`
	DeletedTransportLocations int64 `json:"deletedTransportLocations"`
}

type DeleteVehicleResponse struct {
	DeletedVehicle            bool  `json:"deletedVehicle"`
	DeletedTransportLocations int64 `json:"deletedTransportLocations"`
}
