package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertAxesClose(t *testing.T, want, got Axes, tol float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "axis %d: want %v got %v", i, want, got)
	}
}

func TestInverseForwardRoundTrip(t *testing.T) {
	g := Geometry{PivotX: 100, PivotY: 50, PivotZ: 200, AxisOffsetY: 3, AxisOffsetZ: -7}
	var cache trigCache
	cache.retune(g)

	cases := []Axes{
		{0, 0, 0, 0, 0},
		{10, 20, 30, 45, 0},
		{10, 20, 30, 0, 90},
		{-5, 15, 25, 30, -60},
		{0, 0, 0, 90, 180},
		{123.4, -56.7, 89.0, -17.3, 205.2},
	}

	for _, p := range cases {
		q := inverse(g, &cache, p, 12.5)
		back := forward(g, q, 12.5)
		assertAxesClose(t, p, back, 1e-6)
	}
}

func TestInverseIdentityAtZeroRotation(t *testing.T) {
	g := Geometry{PivotX: 100, PivotY: 100, PivotZ: 100}
	var cache trigCache
	cache.retune(g)

	p := Axes{10, 20, 30, 0, 0}
	q := inverse(g, &cache, p, 0)
	assertAxesClose(t, p, q, 1e-12)
}

func TestForwardIdentityAtZeroRotation(t *testing.T) {
	g := Geometry{PivotX: 100, PivotY: 100, PivotZ: 100}
	q := Axes{10, 20, 30, 0, 0}
	p := forward(g, q, 0)
	assertAxesClose(t, q, p, 1e-12)
}

func TestForwardNeverTouchesSharedCache(t *testing.T) {
	g := Geometry{PivotX: 100, PivotY: 50, PivotZ: 200}
	var cache trigCache
	cache.retune(g)
	cache.lookup(1, 1)
	snapshot := cache

	_ = forward(g, Axes{1, 2, 3, 45, 90}, 0)
	assert.Equal(t, snapshot, cache)
}

func TestInverseUsesCacheAcrossCalls(t *testing.T) {
	g := Geometry{PivotX: 500}
	var cache trigCache
	cache.retune(g)

	p1 := Axes{0, 0, 0, 10, 20}
	inverse(g, &cache, p1, 0)
	assert.True(t, cache.valid)

	// A sample within tolerance reuses the cached trig values exactly.
	p2 := Axes{0, 0, 0, 10 + cache.tolDeg/2, 20}
	lastA := cache.lastA
	inverse(g, &cache, p2, 0)
	assert.Equal(t, lastA, cache.lastA)
}

func TestRotateTCPToJointMatchesPivotAtIdentity(t *testing.T) {
	g := Geometry{PivotX: 0, PivotY: 0, PivotZ: 0}
	q := rotateTCPToJoint(g, Axes{5, 5, 5, 0, 0}, math.Sin(0), math.Cos(0), math.Sin(0), math.Cos(0), 0)
	assert.InDelta(t, 5.0, q.X, 1e-12)
	assert.InDelta(t, 5.0, q.Y, 1e-12)
	assert.InDelta(t, 5.0, q.Z, 1e-12)
}
