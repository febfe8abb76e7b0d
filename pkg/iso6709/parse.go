package iso6709

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kass/go-iso6709/pkg/coord"
)

// Parse decodes a single ISO 6709 position record such as
// "+402100.0-0740000.0/". All three packed layouts (D, DM, DMS) are
// accepted; the decimal point offsets of the latitude and longitude fields
// select which one. An optional altitude field is validated and discarded.
// Both leading signs are mandatory, even on the equator or prime meridian.
func Parse(text string) (coord.Coordinate, error) {
	var zero coord.Coordinate

	if len(text) < minRecordLen {
		return zero, fmt.Errorf("%w: %d bytes, need at least %d", ErrTooShort, len(text), minRecordLen)
	}
	if text[len(text)-1] != terminator {
		return zero, fmt.Errorf("%w: %q", ErrMissingTerminator, text)
	}
	body := text[:len(text)-1]

	// Split on sign characters, keeping each sign paired with the field it
	// precedes. A well-formed record starts with a sign, so the first
	// field is always empty.
	var fields []string
	var signs []byte
	start := 0
	for i := 0; i < len(body); i++ {
		if body[i] == '+' || body[i] == '-' {
			fields = append(fields, body[start:i])
			signs = append(signs, body[i])
			start = i + 1
		}
	}
	fields = append(fields, body[start:])

	if (len(fields) != 3 && len(fields) != 4) || fields[0] != "" {
		return zero, fmt.Errorf("%w: %d sign-delimited fields", ErrTokenCount, len(fields))
	}
	latField, lonField := fields[1], fields[2]

	latDot := strings.IndexByte(latField, '.')
	if latDot != 2 && latDot != 4 && latDot != 6 {
		return zero, fmt.Errorf("%w: latitude decimal point at offset %d", ErrPrecisionMismatch, latDot)
	}
	// Longitude carries one extra degree digit, so its decimal point sits
	// exactly one position further right.
	if lonDot := strings.IndexByte(lonField, '.'); lonDot != latDot+1 {
		return zero, fmt.Errorf("%w: longitude decimal point at offset %d, want %d", ErrPrecisionMismatch, lonDot, latDot+1)
	}

	latSec, err := magnitude(latField, 2, latDot)
	if err != nil {
		return zero, err
	}
	lonSec, err := magnitude(lonField, 3, latDot+1)
	if err != nil {
		return zero, err
	}

	// Altitude is accepted for validation only; the value is not modeled.
	if len(fields) == 4 {
		if _, err := parseDecimal(fields[3]); err != nil {
			return zero, fmt.Errorf("altitude: %w", err)
		}
	}

	if signs[0] == '-' {
		latSec = -latSec
	}
	if signs[1] == '-' {
		lonSec = -lonSec
	}
	return coord.Coordinate{
		Lat: coord.FromArcseconds(latSec),
		Lon: coord.FromArcseconds(lonSec),
	}, nil
}

// magnitude converts one packed unsigned field to seconds of arc. degWidth
// is the number of whole-degree digits (2 for latitude, 3 for longitude);
// dot is the decimal point offset, already validated against degWidth.
func magnitude(field string, degWidth, dot int) (float64, error) {
	switch dot - degWidth {
	case 0: // decimal degrees
		deg, err := parseDecimal(field)
		if err != nil {
			return 0, err
		}
		return deg * 3600, nil
	case 2: // degrees + decimal minutes
		deg, err := parseDecimal(field[:degWidth])
		if err != nil {
			return 0, err
		}
		min, err := parseDecimal(field[degWidth:])
		if err != nil {
			return 0, err
		}
		return deg*3600 + min*60, nil
	default: // degrees + minutes + decimal seconds
		deg, err := parseDecimal(field[:degWidth])
		if err != nil {
			return 0, err
		}
		min, err := parseDecimal(field[degWidth : degWidth+2])
		if err != nil {
			return 0, err
		}
		sec, err := parseDecimal(field[degWidth+2:])
		if err != nil {
			return 0, err
		}
		return deg*3600 + min*60 + sec, nil
	}
}

// parseDecimal parses an unsigned decimal with a locale-invariant '.'
// separator. Exponents, spaces and signs are rejected.
func parseDecimal(s string) (float64, error) {
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c < '0' || c > '9') && c != '.' {
			return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumberFormat, s)
	}
	return v, nil
}
