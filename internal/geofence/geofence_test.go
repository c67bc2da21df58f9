package geofence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seoulCityHall = Point{Lat: 37.5665, Lng: 126.9780}

func TestDistance_KnownPairs(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Point
		expected float64
	}{
		// одна угловая минута по меридиану = 2πR/360/60
		{"one arc minute of latitude", Point{0, 0}, Point{1.0 / 60, 0}, 1853.2487},
		{"one degree of longitude at equator", Point{0, 0}, Point{0, 1}, 111194.9266},
		{"quarter meridian", Point{0, 0}, Point{90, 0}, 10007543.3980},
		{"antipodes", Point{0, 0}, Point{0, 180}, 20015086.7960},
		// 40 метров к северу от мэрии Сеула: 40/R радиан широты
		{"forty meters north", seoulCityHall, Point{Lat: 37.5665 + 0.000359728, Lng: 126.9780}, 40.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Distance(tc.a, tc.b), 1.0)
		})
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Distance(seoulCityHall, seoulCityHall))
}

func TestDistance_Symmetric(t *testing.T) {
	busan := Point{Lat: 35.1796, Lng: 129.0756}

	assert.InDelta(t, Distance(seoulCityHall, busan), Distance(busan, seoulCityHall), 1e-6)
	assert.InDelta(t, 325000, Distance(seoulCityHall, busan), 5000)
}

func TestValidator_ExactCoordinatesAlwaysPass(t *testing.T) {
	for _, radius := range []float64{0, 0.5, 30, 50} {
		d, err := NewValidator(radius).Check(seoulCityHall, seoulCityHall)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	}
}

func TestValidator_Violation(t *testing.T) {
	submitted := Point{Lat: 37.5665 + 0.000359728, Lng: 126.9780}

	d, err := NewValidator(30).Check(seoulCityHall, submitted)

	require.Error(t, err)
	var violation *Violation
	require.True(t, errors.As(err, &violation))
	assert.InDelta(t, 40.0, violation.Distance, 0.5)
	assert.Equal(t, 30.0, violation.Allowed)
	assert.Equal(t, violation.Distance, d)
}

func TestValidator_WithinRadius(t *testing.T) {
	submitted := Point{Lat: 37.5665 + 0.000359728, Lng: 126.9780}

	d, err := NewValidator(50).Check(seoulCityHall, submitted)

	require.NoError(t, err)
	assert.InDelta(t, 40.0, d, 0.5)
}
