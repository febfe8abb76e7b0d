// Package coord models geographic points as latitude/longitude angle pairs.
// Angles are stored in seconds of arc so that degrees, minutes and whole
// seconds all live in the integral part of the value and only fractional
// seconds carry decimal precision.
package coord

import "math"

// Angle is one angular coordinate component (a latitude or a longitude).
// The sign encodes the hemisphere: positive is North/East, negative is
// South/West. Storage is single precision; a full longitude still leaves
// roughly 0.05 arcseconds of resolution, well inside the 0.1 arcsecond
// granularity of the ISO wire form.
type Angle struct {
	arcsec float32
}

// DM is one axis broken into whole degrees and fractional minutes.
// Magnitudes are unsigned; Positive carries the hemisphere.
type DM struct {
	Degrees  int
	Minutes  float64
	Positive bool
}

// DMS is one axis broken into whole degrees, whole minutes and fractional
// seconds. Magnitudes are unsigned; Positive carries the hemisphere.
type DMS struct {
	Degrees  int
	Minutes  int
	Seconds  float64
	Positive bool
}

// FromDegrees builds an Angle from signed decimal degrees.
func FromDegrees(deg float64) Angle {
	return Angle{arcsec: float32(deg * 3600)}
}

// FromArcseconds builds an Angle from signed seconds of arc.
func FromArcseconds(sec float64) Angle {
	return Angle{arcsec: float32(sec)}
}

// FromDM builds an Angle from unsigned degree/minute magnitudes and a
// hemisphere flag.
func FromDM(deg int, min float64, positive bool) Angle {
	mag := float64(deg)*3600 + min*60
	if !positive {
		mag = -mag
	}
	return Angle{arcsec: float32(mag)}
}

// FromDMS builds an Angle from unsigned degree/minute/second magnitudes and
// a hemisphere flag.
func FromDMS(deg, min int, sec float64, positive bool) Angle {
	mag := float64(deg)*3600 + float64(min)*60 + sec
	if !positive {
		mag = -mag
	}
	return Angle{arcsec: float32(mag)}
}

// SetDegrees replaces the angle with signed decimal degrees.
func (a *Angle) SetDegrees(deg float64) {
	a.arcsec = float32(deg * 3600)
}

// SetDM replaces the angle with unsigned degree/minute magnitudes and a
// hemisphere flag.
func (a *Angle) SetDM(deg int, min float64, positive bool) {
	*a = FromDM(deg, min, positive)
}

// SetDMS replaces the angle with unsigned degree/minute/second magnitudes
// and a hemisphere flag.
func (a *Angle) SetDMS(deg, min int, sec float64, positive bool) {
	*a = FromDMS(deg, min, sec, positive)
}

// Degrees returns the angle as signed decimal degrees.
func (a Angle) Degrees() float64 {
	return float64(a.arcsec) / 3600
}

// Arcseconds returns the angle as signed seconds of arc.
func (a Angle) Arcseconds() float64 {
	return float64(a.arcsec)
}

// Radians returns the angle in radians.
func (a Angle) Radians() float64 {
	return a.Degrees() * math.Pi / 180
}

// Positive reports whether the angle lies in the positive hemisphere
// (North for latitude, East for longitude). Zero counts as positive.
func (a Angle) Positive() bool {
	return a.arcsec >= 0
}

// AsDM decomposes the angle into whole degrees and fractional minutes.
func (a Angle) AsDM() DM {
	mag := math.Abs(float64(a.arcsec))
	deg := math.Trunc(mag / 3600)
	return DM{
		Degrees:  int(deg),
		Minutes:  (mag - deg*3600) / 60,
		Positive: a.Positive(),
	}
}

// AsDMS decomposes the angle into whole degrees, whole minutes and
// fractional seconds.
func (a Angle) AsDMS() DMS {
	mag := math.Abs(float64(a.arcsec))
	deg := math.Trunc(mag / 3600)
	rem := mag - deg*3600
	min := math.Trunc(rem / 60)
	return DMS{
		Degrees:  int(deg),
		Minutes:  int(min),
		Seconds:  rem - min*60,
		Positive: a.Positive(),
	}
}
