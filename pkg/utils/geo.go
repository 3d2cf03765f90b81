package utils

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// GreatCircleDistance returns the spherical-law-of-cosines distance in
// kilometers between two coordinates.
//
// For coincident points floating-point error can push the acos argument
// slightly above 1.0, which would produce NaN; the argument is clamped to
// [-1, 1] before taking the arc-cosine.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := radians(lat1)
	rlat2 := radians(lat2)

	arg := math.Cos(rlat1)*math.Cos(rlat2)*math.Cos(radians(lon2)-radians(lon1)) +
		math.Sin(rlat1)*math.Sin(rlat2)

	if arg > 1 {
		arg = 1
	}
	if arg < -1 {
		arg = -1
	}

	return EarthRadiusKm * math.Acos(arg)
}

// RoundKm rounds a distance to 3 decimal places.
func RoundKm(km float64) float64 {
	return math.Round(km*1000) / 1000
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
