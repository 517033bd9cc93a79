package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxisMaskIsOneBitPerAxis(t *testing.T) {
	assert.Equal(t, uint32(1), AxisMask(X))
	assert.Equal(t, uint32(2), AxisMask(Y))
	assert.Equal(t, uint32(8), AxisMask(A))
}

func TestSetMachinePositionsHomeToMax(t *testing.T) {
	var cache trigCache
	cache.retune(Geometry{})
	cache.lookup(1, 1)

	axes := []AxisHomingConfig{
		{HomeToMax: true, Pulloff: 2, MaxTravel: 300, StepsPerMM: 80},
	}
	home, counters := SetMachinePositions(&cache, AxisMask(0), axes, false)

	assert.Equal(t, 302.0, home[0])
	assert.Equal(t, int64(302*80), counters[0])
	assert.False(t, cache.valid, "homing must invalidate the trig cache")
}

func TestSetMachinePositionsHomeToMin(t *testing.T) {
	var cache trigCache
	axes := []AxisHomingConfig{
		{HomeToMax: false, Pulloff: 3, MaxTravel: 300, StepsPerMM: 80},
	}
	home, counters := SetMachinePositions(&cache, AxisMask(0), axes, false)

	assert.Equal(t, -3.0, home[0])
	assert.Equal(t, int64(-3*80), counters[0])
}

func TestSetMachinePositionsForceSetOrigin(t *testing.T) {
	var cache trigCache
	axes := []AxisHomingConfig{
		{HomeToMax: true, Pulloff: 2, MaxTravel: 300, StepsPerMM: 80},
	}
	home, counters := SetMachinePositions(&cache, AxisMask(0), axes, true)

	assert.Equal(t, 0.0, home[0])
	assert.Equal(t, int64(0), counters[0])
}

func TestSetMachinePositionsSkipsUnselectedAxes(t *testing.T) {
	var cache trigCache
	axes := []AxisHomingConfig{
		{HomeToMax: true, Pulloff: 1, MaxTravel: 100, StepsPerMM: 1},
		{HomeToMax: true, Pulloff: 1, MaxTravel: 100, StepsPerMM: 1},
	}
	home, counters := SetMachinePositions(&cache, AxisMask(0), axes, false)

	assert.NotZero(t, home[0])
	assert.Zero(t, home[1])
	assert.Zero(t, counters[1])
}

func TestSetTargetPosZeroesOneCounter(t *testing.T) {
	counters := []int64{10, 20, 30}
	SetTargetPos(counters, 1)
	assert.Equal(t, []int64{10, 0, 30}, counters)
}

func TestValidateHomingCycleAlwaysTrue(t *testing.T) {
	assert.True(t, ValidateHomingCycle(0))
	assert.True(t, ValidateHomingCycle(^uint32(0)))
}

func TestHomingFeedrateUnchanged(t *testing.T) {
	assert.Equal(t, 500.0, HomingFeedrate(500, AxisMask(0), 0))
}
