package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_IdenticalPoints(t *testing.T) {
	assert.Zero(t, Distance(55.75, 37.61, 55.75, 37.61))
	assert.Zero(t, Distance(0, 0, 0, 0))
	assert.Zero(t, Distance(-90, 180, -90, 180))
}

func TestDistance_Symmetry(t *testing.T) {
	d1 := Distance(55.75, 37.61, 59.93, 30.33)
	d2 := Distance(59.93, 30.33, 55.75, 37.61)
	assert.InDelta(t, d1, d2, 1e-9)
	assert.Positive(t, d1)
}

func TestDistance_GeofenceBoundary(t *testing.T) {
	// 0.00018 degrees of longitude on the equator is about 20 meters, the
	// geofence radius.
	d := Distance(0, 0, 0, 0.00018)
	assert.InDelta(t, 20.0, d, 0.1)
}

func TestDistance_KnownDistance(t *testing.T) {
	// Moscow to Saint Petersburg, roughly 634 km.
	d := Distance(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634000, d, 2000)
}

func TestDistance_Antipodal(t *testing.T) {
	// Half the Earth's circumference; must not produce NaN from the inverse
	// trig domain.
	d := Distance(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*earthRadiusMeters, d, 1)
}

func TestDistance_TinyDelta(t *testing.T) {
	d := Distance(45.0, 45.0, 45.0, 45.0000000001)
	assert.False(t, math.IsNaN(d))
	assert.GreaterOrEqual(t, d, 0.0)
	assert.Less(t, d, 0.001)
}
