package utils

import "math"

const earthRadiusKm = 6371.0

// HaversineDistance returns the great-circle distance between two points in
// kilometers. The cosine argument is clamped to [-1, 1]: floating-point
// rounding can push it slightly outside the domain of acos, which would
// otherwise yield NaN for identical or antipodal points.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	dLonRad := (lon2 - lon1) * math.Pi / 180.0

	cosArg := math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Cos(dLonRad) +
		math.Sin(lat1Rad)*math.Sin(lat2Rad)
	cosArg = math.Min(1, math.Max(-1, cosArg))

	return earthRadiusKm * math.Acos(cosArg)
}

// ValidateCoordinates reports whether lat/lon form a valid point.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius reports whether a search radius in kilometers is usable.
func ValidateRadius(radiusKm float64) bool {
	return radiusKm > 0
}
