package coord

import "math"

// Meters per radian of great-circle arc: one arcminute is one nautical mile
// (1852 m), so a full radian is 180*60/pi of them.
const metersPerRadian = 180 * 60 * 1852 / math.Pi

// Distance returns the haversine great-circle distance between two points,
// in meters.
func Distance(a, b Coordinate) float64 {
	lat1 := a.Lat.Radians()
	lat2 := b.Lat.Radians()
	dLat := lat2 - lat1
	dLon := b.Lon.Radians() - a.Lon.Radians()

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// h can drift just above 1 from rounding
	if h > 1 {
		h = 1
	}
	return 2 * math.Asin(math.Sqrt(h)) * metersPerRadian
}

// DistanceTo returns the great-circle distance to another point, in meters.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return Distance(c, other)
}
