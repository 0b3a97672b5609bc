package domain

// TransportLocation is a physical point in the transit network: a bus stop, a
// station, a shared-vehicle spot. Category and vehicle links are optional, as
// are the coordinates; a location is eligible for nearby search only when
// both latitude and longitude are present.
type TransportLocation struct {
	ID         int64    `db:"id" json:"id"`
	CategoryID *int64   `db:"category_id" json:"categoryId"`
	VehicleID  *int64   `db:"vehicle_id" json:"vehicleId"`
	Address    string   `db:"address" json:"address"`
	Latitude   *float64 `db:"latitude" json:"latitude"`
	Longitude  *float64 `db:"longitude" json:"longitude"`

	// Relations, attached by list/read queries.
	Category *Category `db:"-" json:"category,omitempty"`
	Vehicle  *Vehicle  `db:"-" json:"vehicle,omitempty"`
}

// HasCoordinates reports nearby-search eligibility.
func (l *TransportLocation) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// NearbyLocation is a TransportLocation ranked by great-circle distance from
// a reference point. Distance is in kilometers.
type NearbyLocation struct {
	TransportLocation
	Distance float64 `db:"distance" json:"distance"`
}

type TransportLocationPatch struct {
	CategoryID *int64
	VehicleID  *int64
	Address    *string
	Latitude   *float64
	Longitude  *float64
}

func (p TransportLocationPatch) IsEmpty() bool {
	return p.CategoryID == nil && p.VehicleID == nil && p.Address == nil &&
		p.Latitude == nil && p.Longitude == nil
}
