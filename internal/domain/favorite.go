package domain

// Favorite is the (user, location) join entity. The pair is the primary key;
// a duplicate insert is a conflict, not a silent success.
type Favorite struct {
	UserID              int64 `db:"user_id" json:"userId"`
	TransportLocationID int64 `db:"transport_location_id" json:"transportLocationId"`

	// Relations, attached by list queries.
	User              *UserView          `db:"-" json:"user,omitempty"`
	TransportLocation *TransportLocation `db:"-" json:"transportLocation,omitempty"`
}
