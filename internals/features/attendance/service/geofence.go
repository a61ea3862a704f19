package service

import "math"

// Radius bumi dalam meter (sphere model).
const earthRadiusMeters = 6371000.0

// HaversineDistance menghitung jarak great-circle dua koordinat dalam meter.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius: true bila jarak ke titik sekolah ≤ radius toleransi (inklusif).
func WithinRadius(lat, lon, schoolLat, schoolLon, toleranceMeters float64) bool {
	return HaversineDistance(lat, lon, schoolLat, schoolLon) <= toleranceMeters
}
