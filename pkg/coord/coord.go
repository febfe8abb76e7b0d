package coord

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

const (
	maxLatArcsec = 90 * 3600
	maxLonArcsec = 180 * 3600
)

// Coordinate is a single geodesic point: a latitude/longitude angle pair.
type Coordinate struct {
	Lat Angle
	Lon Angle
}

// New builds a Coordinate from signed decimal degrees.
func New(latDeg, lonDeg float64) Coordinate {
	return Coordinate{Lat: FromDegrees(latDeg), Lon: FromDegrees(lonDeg)}
}

// NewDM builds a Coordinate from unsigned degree/minute magnitudes per axis.
// north and east carry the hemisphere signs.
func NewDM(latDeg int, latMin float64, north bool, lonDeg int, lonMin float64, east bool) Coordinate {
	return Coordinate{
		Lat: FromDM(latDeg, latMin, north),
		Lon: FromDM(lonDeg, lonMin, east),
	}
}

// NewDMS builds a Coordinate from unsigned degree/minute/second magnitudes
// per axis. north and east carry the hemisphere signs.
func NewDMS(latDeg, latMin int, latSec float64, north bool, lonDeg, lonMin int, lonSec float64, east bool) Coordinate {
	return Coordinate{
		Lat: FromDMS(latDeg, latMin, latSec, north),
		Lon: FromDMS(lonDeg, lonMin, lonSec, east),
	}
}

// SetDegrees replaces both axes with signed decimal degrees.
func (c *Coordinate) SetDegrees(latDeg, lonDeg float64) {
	c.Lat.SetDegrees(latDeg)
	c.Lon.SetDegrees(lonDeg)
}

// Degrees returns both axes as signed decimal degrees.
func (c Coordinate) Degrees() (lat, lon float64) {
	return c.Lat.Degrees(), c.Lon.Degrees()
}

// Clone returns a value copy of the coordinate.
func (c Coordinate) Clone() Coordinate {
	return c
}

// Equal reports exact floating-point equality of both axes.
func (c Coordinate) Equal(other Coordinate) bool {
	return c == other
}

// Valid reports whether the point lies inside the geodesic domain:
// latitude in [-90, 90] and longitude in [-180, 180] degrees.
// Constructors and parsers do not enforce this; callers that need the
// guarantee check it explicitly.
func (c Coordinate) Valid() bool {
	return math.Abs(c.Lat.Arcseconds()) <= maxLatArcsec &&
		math.Abs(c.Lon.Arcseconds()) <= maxLonArcsec
}

// Hash returns an FNV-1a digest over the bit patterns of both axes.
func (c Coordinate) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[0:4], math.Float32bits(c.Lat.arcsec))
	binary.BigEndian.PutUint32(buf[4:8], math.Float32bits(c.Lon.arcsec))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}
