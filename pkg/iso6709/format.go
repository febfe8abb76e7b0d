package iso6709

import (
	"fmt"
	"math"

	"github.com/kass/go-iso6709/pkg/coord"
)

// Format renders a coordinate at the given display precision. An empty
// precision defaults to DMS. Only the ISO form round-trips through Parse;
// D, DM and DMS are display-only.
func Format(c coord.Coordinate, p Precision) (string, error) {
	switch p {
	case PrecisionD:
		return formatD(c), nil
	case PrecisionDM:
		return formatDM(c), nil
	case PrecisionDMS, "":
		return formatDMS(c), nil
	case PrecisionISO:
		return formatISO(c), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPrecision, string(p))
	}
}

// Write renders a coordinate in the wire form for an external persistence
// layer. It is Format at ISO precision, which cannot fail.
func Write(c coord.Coordinate) string {
	return formatISO(c)
}

func formatD(c coord.Coordinate) string {
	lat, lon := c.Degrees()
	return fmt.Sprintf("%07.4f°%c %08.4f°%c",
		math.Abs(lat), latHemisphere(c.Lat.Positive()),
		math.Abs(lon), lonHemisphere(c.Lon.Positive()))
}

func formatDM(c coord.Coordinate) string {
	lat := carryDM(c.Lat.AsDM())
	lon := carryDM(c.Lon.AsDM())
	return fmt.Sprintf("%02d°%05.2f'%c %03d°%05.2f'%c",
		lat.Degrees, lat.Minutes, latHemisphere(lat.Positive),
		lon.Degrees, lon.Minutes, lonHemisphere(lon.Positive))
}

func formatDMS(c coord.Coordinate) string {
	lat := carryDMS(c.Lat.AsDMS())
	lon := carryDMS(c.Lon.AsDMS())
	return fmt.Sprintf("%02d°%02d'%04.1f\"%c %03d°%02d'%04.1f\"%c",
		lat.Degrees, lat.Minutes, lat.Seconds, latHemisphere(lat.Positive),
		lon.Degrees, lon.Minutes, lon.Seconds, lonHemisphere(lon.Positive))
}

func formatISO(c coord.Coordinate) string {
	lat := carryDMS(c.Lat.AsDMS())
	lon := carryDMS(c.Lon.AsDMS())
	return fmt.Sprintf("%c%02d%02d%04.1f%c%03d%02d%04.1f%c",
		signChar(lat.Positive), lat.Degrees, lat.Minutes, lat.Seconds,
		signChar(lon.Positive), lon.Degrees, lon.Minutes, lon.Seconds,
		terminator)
}

// carryDM normalizes minutes that would print as 60.00 after rounding.
func carryDM(v coord.DM) coord.DM {
	if math.Round(v.Minutes*100) >= 6000 {
		v.Degrees++
		v.Minutes = 0
	}
	return v
}

// carryDMS normalizes seconds that would print as 60.0 after rounding,
// cascading into minutes and degrees.
func carryDMS(v coord.DMS) coord.DMS {
	if math.Round(v.Seconds*10) >= 600 {
		v.Minutes++
		v.Seconds = 0
	}
	if v.Minutes == 60 {
		v.Degrees++
		v.Minutes = 0
	}
	return v
}

func latHemisphere(positive bool) byte {
	if positive {
		return 'N'
	}
	return 'S'
}

func lonHemisphere(positive bool) byte {
	if positive {
		return 'E'
	}
	return 'W'
}

func signChar(positive bool) byte {
	if positive {
		return '+'
	}
	return '-'
}
