package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	d := HaversineDistance(-7.8653, 111.4621, -7.8653, 111.4621)
	assert.Equal(t, 0.0, d)
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	a := HaversineDistance(-7.8653, 111.4621, -7.9000, 111.5000)
	b := HaversineDistance(-7.9000, 111.5000, -7.8653, 111.4621)
	assert.InDelta(t, a, b, 1e-9)
}

func TestHaversineDistance_KnownDistance(t *testing.T) {
	// Ponorogo → Madiun, kurang lebih 27 km
	d := HaversineDistance(-7.8653, 111.4621, -7.6298, 111.5300)
	assert.InDelta(t, 27000, d, 2000)
}

func TestWithinRadius(t *testing.T) {
	schoolLat, schoolLon := -7.8653, 111.4621

	tests := []struct {
		name   string
		lat    float64
		lon    float64
		radius float64
		want   bool
	}{
		{"titik yang sama", schoolLat, schoolLon, 30, true},
		{"sedikit bergeser masih di dalam", schoolLat + 0.0001, schoolLon, 30, true},
		{"jelas di luar radius", schoolLat + 0.01, schoolLon, 30, false},
		{"kota lain", -7.9, 111.6, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithinRadius(tt.lat, tt.lon, schoolLat, schoolLon, tt.radius)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinRadius_InclusiveBoundary(t *testing.T) {
	schoolLat, schoolLon := -7.8653, 111.4621
	lat := schoolLat + 0.0005
	d := HaversineDistance(lat, schoolLon, schoolLat, schoolLon)

	// Jarak persis sama dengan radius → masih dianggap di dalam
	assert.True(t, WithinRadius(lat, schoolLon, schoolLat, schoolLon, d))
	// Sedikit di bawah jarak → keluar
	assert.False(t, WithinRadius(lat, schoolLon, schoolLat, schoolLon, d-0.001))
}
