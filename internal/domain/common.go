package domain

// DefaultNearbyLimit caps nearby-search results when the caller does not ask
// for a specific limit.
const DefaultNearbyLimit = 50

// ListParams are the shared list-operation options: optional case-insensitive
// substring search over the entity's designated text fields, and limit/offset
// pagination. Zero Limit means "no limit". Ordering is always ascending by id
// so pagination stays deterministic across calls.
type ListParams struct {
	Search string
	Limit  int
	Offset int
}

// NearbyQuery is the input of the nearby-search ranking. Latitude and
// longitude are required and assumed bounds-checked by the caller; Radius is
// in kilometers and, when nil, no distance cutoff applies.
type NearbyQuery struct {
	Latitude   float64
	Longitude  float64
	Radius     *float64
	Limit      int
	CategoryID *int64
	Search     string
}
