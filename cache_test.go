package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrigCacheLookupReusesSampleWithinTolerance(t *testing.T) {
	var c trigCache
	c.retune(Geometry{PivotX: 500}) // arm=500mm, tol ~= 0.01/500 rad

	sinA1, cosA1, sinC1, cosC1 := c.lookup(10, 20)
	assert.True(t, c.valid)

	// A tiny nudge within tolDeg should return the identical cached sample.
	nudge := c.tolDeg / 2
	sinA2, cosA2, sinC2, cosC2 := c.lookup(10+nudge, 20+nudge)
	assert.Equal(t, sinA1, sinA2)
	assert.Equal(t, cosA1, cosA2)
	assert.Equal(t, sinC1, sinC2)
	assert.Equal(t, cosC1, cosC2)
}

func TestTrigCacheLookupRecomputesBeyondTolerance(t *testing.T) {
	var c trigCache
	c.retune(Geometry{PivotX: 500})

	c.lookup(0, 0)
	sinA, _, _, _ := c.lookup(0+2*c.tolDeg, 0)
	assert.InDelta(t, math.Sin(degToRad(2*c.tolDeg)), sinA, 1e-9)
}

func TestTrigCacheInvalidateForcesRecompute(t *testing.T) {
	var c trigCache
	c.retune(Geometry{PivotX: 500})
	c.lookup(5, 5)
	c.invalidate()
	assert.False(t, c.valid)
}

func TestRetuneDerivesToleranceFromArm(t *testing.T) {
	var c trigCache
	c.retune(Geometry{PivotX: 1000})
	expected := radToDeg(chordErrorBudget / 1000)
	assert.InDelta(t, expected, c.tolDeg, 1e-12)
}

func TestFreshTrigNeverMutatesSharedCache(t *testing.T) {
	var c trigCache
	c.retune(Geometry{PivotX: 500})
	c.lookup(1, 1)
	snapshot := c

	_, _, _, _ = freshTrig(45, 90)
	assert.Equal(t, snapshot, c)
}
