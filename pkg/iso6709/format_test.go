package iso6709

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kass/go-iso6709/pkg/coord"
)

func TestFormatPatterns(t *testing.T) {
	c := coord.New(1.5, -2.25)

	testCases := []struct {
		precision Precision
		want      string
	}{
		{PrecisionD, "01.5000°N 002.2500°W"},
		{PrecisionDM, "01°30.00'N 002°15.00'W"},
		{PrecisionDMS, "01°30'00.0\"N 002°15'00.0\"W"},
		{PrecisionISO, "+013000.0-0021500.0/"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.precision), func(t *testing.T) {
			got, err := Format(c, tc.precision)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDMSDigitGrouping(t *testing.T) {
	// Latitude degrees pad to two digits, longitude degrees to three.
	c := coord.NewDMS(0, 10, 20.8, true, 30, 40, 50.9, false)
	got, err := Format(c, PrecisionDMS)
	require.NoError(t, err)
	assert.Equal(t, "00°10'20.8\"N 030°40'50.9\"W", got)
}

func TestFormatDefaultsToDMS(t *testing.T) {
	c := coord.New(40.35, -74)
	def, err := Format(c, "")
	require.NoError(t, err)
	dms, err := Format(c, PrecisionDMS)
	require.NoError(t, err)
	assert.Equal(t, dms, def)
}

func TestFormatUnknownPrecision(t *testing.T) {
	_, err := Format(coord.New(1, 1), "XYZ")
	assert.True(t, errors.Is(err, ErrUnknownPrecision))
}

func TestFormatCarriesRoundedSeconds(t *testing.T) {
	// 0°59'59.97" prints as 60.0 seconds without the carry; it must roll
	// all the way up to 1°00'00.0".
	c := coord.Coordinate{
		Lat: coord.FromDMS(0, 59, 59.97, true),
		Lon: coord.FromDMS(0, 59, 59.97, false),
	}

	dms, err := Format(c, PrecisionDMS)
	require.NoError(t, err)
	assert.Equal(t, "01°00'00.0\"N 001°00'00.0\"W", dms)

	iso, err := Format(c, PrecisionISO)
	require.NoError(t, err)
	assert.Equal(t, "+010000.0-0010000.0/", iso)
}

func TestFormatCarriesRoundedMinutes(t *testing.T) {
	c := coord.Coordinate{
		Lat: coord.FromDM(0, 59.9995, true),
		Lon: coord.FromDM(1, 59.9995, true),
	}
	got, err := Format(c, PrecisionDM)
	require.NoError(t, err)
	assert.Equal(t, "01°00.00'N 002°00.00'E", got)
}

func TestWriteIsISOForm(t *testing.T) {
	c := coord.New(40.35, -74)
	iso, err := Format(c, PrecisionISO)
	require.NoError(t, err)
	assert.Equal(t, iso, Write(c))
	assert.Equal(t, "+402100.0-0740000.0/", Write(c))
}
