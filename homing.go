package kinematics

import "math"

// AxisMask returns the homing-cycle mask bit for a single axis index, per
// §4.6 and the plug-in contract's limits_get_axis_mask operation: a 1:1
// axis-to-bit mapping.
func AxisMask(idx int) uint32 {
	return 1 << uint(idx)
}

// AxisHomingConfig is the per-axis configuration §4.6 reads when deriving a
// home position: whether this axis homes toward +max travel (vs toward 0),
// its pulloff distance, its max travel, and its steps/mm for deriving the
// joint counter.
type AxisHomingConfig struct {
	HomeToMax  bool
	Pulloff    float64
	MaxTravel  float64
	StepsPerMM float64
}

// SetMachinePositions implements limits_set_machine_positions (§4.6). For
// each axis selected in cycleMask, if forceSetOrigin is configured both the
// joint counter and the home position are zeroed; otherwise the home
// position is derived from the axis's configured homing direction and the
// joint counter is derived by rounding home_position × steps_per_mm.
// Invalidates the cache unconditionally on return.
func SetMachinePositions(
	cache *trigCache,
	cycleMask uint32,
	axes []AxisHomingConfig,
	forceSetOrigin bool,
) (homePositions []float64, jointCounters []int64) {
	homePositions = make([]float64, len(axes))
	jointCounters = make([]int64, len(axes))

	for i, cfg := range axes {
		if cycleMask&AxisMask(i) == 0 {
			continue
		}
		if forceSetOrigin {
			homePositions[i] = 0
			jointCounters[i] = 0
			continue
		}
		if cfg.HomeToMax {
			homePositions[i] = cfg.MaxTravel + cfg.Pulloff
		} else {
			homePositions[i] = -cfg.Pulloff
		}
		jointCounters[i] = int64(math.Round(homePositions[i] * cfg.StepsPerMM))
	}

	cache.invalidate()
	return homePositions, jointCounters
}

// SetTargetPos implements limits_set_target_pos (§4.6): zero the joint
// counter for one axis.
func SetTargetPos(jointCounters []int64, idx int) {
	jointCounters[idx] = 0
}

// ValidateHomingCycle implements homing_cycle_validate (§6): always true.
func ValidateHomingCycle(uint32) bool { return true }

// HomingFeedrate implements homing_cycle_get_feedrate (§6): returns the
// requested feedrate unchanged.
func HomingFeedrate(fr float64, mask uint32, mode int) float64 { return fr }
