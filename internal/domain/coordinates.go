package domain

import "math"

// Mean Earth radius in kilometers, per the Haversine convention.
const earthRadiusKm = 6371

// Immutable geographic coordinate in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Haversine returns the great-circle distance between two coordinates
// in kilometers, rounded to 2 decimal places.
//
// Coordinate ranges are not validated here; callers own input validation.
func Haversine(a, b Coordinate) float64 {
	lat1 := degToRad(a.Lat)
	lon1 := degToRad(a.Lon)
	lat2 := degToRad(b.Lat)
	lon2 := degToRad(b.Lon)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return math.Round(c*earthRadiusKm*100) / 100
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
