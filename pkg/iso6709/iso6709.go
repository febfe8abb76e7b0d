// Package iso6709 converts coordinates to and from the ISO 6709 "Annex H"
// string representation, plus three human-readable sexagesimal display
// forms. Parse and Format are the serialization boundary: an external
// persistence or markup layer calls them with raw text and owns whatever
// document structure surrounds it. The codec itself does no I/O.
package iso6709

import "errors"

// Precision selects how a coordinate is rendered to text.
type Precision string

const (
	// PrecisionD renders absolute decimal degrees with hemisphere letters.
	PrecisionD Precision = "D"
	// PrecisionDM renders degrees and fractional minutes.
	PrecisionDM Precision = "DM"
	// PrecisionDMS renders degrees, minutes and fractional seconds.
	// This is the default when no precision is given.
	PrecisionDMS Precision = "DMS"
	// PrecisionISO renders the packed ISO 6709 wire form.
	PrecisionISO Precision = "ISO"
)

// terminator ends every ISO record and doubles as the list delimiter.
const terminator = '/'

// minRecordLen is the shortest valid record: "+DD.DDDD+DDD.DDDD/".
const minRecordLen = 18

var (
	// ErrTooShort means the raw text is shorter than the minimum record.
	ErrTooShort = errors.New("iso6709: record too short")
	// ErrMissingTerminator means the record does not end with '/'.
	ErrMissingTerminator = errors.New("iso6709: missing '/' terminator")
	// ErrTokenCount means the sign-split did not yield a leading sign plus
	// two or three numeric fields.
	ErrTokenCount = errors.New("iso6709: malformed sign structure")
	// ErrPrecisionMismatch means the decimal points of the latitude and
	// longitude fields do not select a consistent D/DM/DMS layout.
	ErrPrecisionMismatch = errors.New("iso6709: inconsistent field precision")
	// ErrNumberFormat means a numeric field failed to parse as a decimal.
	ErrNumberFormat = errors.New("iso6709: malformed number")
	// ErrUnknownPrecision means an unrecognized display precision token.
	ErrUnknownPrecision = errors.New("iso6709: unknown precision")
)
