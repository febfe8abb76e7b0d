package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdentity(t *testing.T) {
	points := []Coordinate{
		New(40.7128, -74.0060), // New York
		New(51.5074, -0.1278),  // London
		New(0, 0),
		New(-33.8688, 151.2093), // Sydney
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := New(40.7128, -74.0060) // New York
	b := New(51.5074, -0.1278)  // London
	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistanceKnownValues(t *testing.T) {
	testCases := []struct {
		name   string
		a, b   Coordinate
		meters float64
		delta  float64
	}{
		{
			// one arcminute along the equator is one nautical mile
			name:   "equatorial arcminute",
			a:      New(0, 0),
			b:      New(0, 1.0/60),
			meters: 1852,
			delta:  1,
		},
		{
			name:   "New York to London",
			a:      New(40.7128, -74.0060),
			b:      New(51.5074, -0.1278),
			meters: 5570e3,
			delta:  20e3,
		},
		{
			name:   "San Francisco to Oakland",
			a:      New(37.7749, -122.4194),
			b:      New(37.8044, -122.2712),
			meters: 13.5e3,
			delta:  1e3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.meters, Distance(tc.a, tc.b), tc.delta)
			assert.InDelta(t, tc.meters, tc.a.DistanceTo(tc.b), tc.delta)
		})
	}
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, New(0, 0).Valid())
	assert.True(t, New(90, 180).Valid())
	assert.True(t, New(-90, -180).Valid())
	assert.False(t, New(90.1, 0).Valid())
	assert.False(t, New(0, -180.5).Valid())
}

func TestCoordinateCloneAndEqual(t *testing.T) {
	a := NewDMS(0, 10, 20.8, true, 30, 40, 50.9, false)
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.SetDegrees(1, 1)
	assert.False(t, a.Equal(b))
}

func TestCoordinateHashOrderSensitive(t *testing.T) {
	// Swapped axes summed to the same value under the old scheme; the
	// combining hash must tell them apart.
	a := New(1, 2)
	b := New(2, 1)
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), a.Clone().Hash())
}

func TestListCloneAndEqual(t *testing.T) {
	l := List{New(1, 1), New(2.4, -1.5), New(1, 1)}
	c := l.Clone()
	assert.True(t, l.Equal(c))

	c[1].SetDegrees(0, 0)
	assert.False(t, l.Equal(c))

	assert.True(t, List{}.Equal(List{}))
	assert.False(t, l.Equal(l[:2]))
}
