package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	spLat = -23.55052
	spLon = -46.633308
)

func TestGreatCircleDistance_CoincidentPoints(t *testing.T) {
	// Floating-point error can push the acos argument above 1.0 here;
	// the clamp must keep the result at exactly 0, never NaN.
	d := GreatCircleDistance(spLat, spLon, spLat, spLon)

	assert.False(t, math.IsNaN(d))
	assert.Equal(t, 0.0, d)
}

func TestGreatCircleDistance_KnownDistance(t *testing.T) {
	// ~10 km due north of the reference point
	d := GreatCircleDistance(spLat, spLon, spLat+0.08993, spLon)

	assert.InDelta(t, 10.0, d, 0.1)
}

func TestGreatCircleDistance_Symmetric(t *testing.T) {
	d1 := GreatCircleDistance(spLat, spLon, -22.9068, -43.1729)
	d2 := GreatCircleDistance(-22.9068, -43.1729, spLat, spLon)

	assert.InDelta(t, d1, d2, 1e-9)
	// São Paulo to Rio de Janeiro is roughly 360 km
	assert.InDelta(t, 360.0, d1, 10.0)
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 1.235, RoundKm(1.23456))
	assert.Equal(t, 0.0, RoundKm(0.0))
	assert.Equal(t, 9.999, RoundKm(9.9991))
}
