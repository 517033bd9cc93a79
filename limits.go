package kinematics

// Envelope is the host's soft-limit box: per-axis minimum and maximum
// travel, and which axes have completed homing (only homed axes are
// enforced, per §4.5).
type Envelope struct {
	Min   []float64
	Max   []float64
	Homed []bool
}

// bisectionIterations gives a precision of 1/2^16 of the initial span, per
// §4.5 and the testable property in §8-7.
const bisectionIterations = 16

// nativeCartesianCheck is the host's own Cartesian-only soft-limit
// predicate, delegated to by ValidTarget per §4.5. It is supplied by the
// installing host (see Host in host.go) and never reimplemented here.
type nativeCartesianCheck func(target Axes, mask uint32) bool

// ValidTarget implements the two-branch validity check of §4.5. enabled is
// the RTCP mode flag; isCartesian tells whether target is expressed in the
// TCP frame (true) or already in joint frame (false); mask selects which
// axes this check applies to (bit i set => axis i participates).
func ValidTarget(
	g Geometry, cache *trigCache, tloZ float64,
	enabled bool, target Axes, mask uint32, isCartesian bool,
	env Envelope, nativeCheck nativeCartesianCheck,
) bool {
	if !enabled {
		return nativeCheck(target, mask)
	}

	var joint Axes
	if isCartesian {
		joint = inverse(g, cache, target, tloZ)
	} else {
		joint = target
	}

	for i := 0; i < len(joint) && i < len(env.Min); i++ {
		if i >= len(env.Homed) || !env.Homed[i] {
			continue
		}
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		if joint[i] < env.Min[i] || joint[i] > env.Max[i] {
			return false
		}
	}

	if isCartesian {
		return nativeCheck(target, mask)
	}
	return true
}

// ClipToEnvelope implements the bisection boundary clip of §4.5, used for
// interactive jog. current is the (assumed valid) reference position;
// destination is mutated in place to the best valid point found. Does
// nothing if no axis is homed, no reference position was supplied, or the
// destination is already valid.
func ClipToEnvelope(
	g Geometry, cache *trigCache, tloZ float64,
	enabled bool, current, destination Axes, mask uint32,
	env Envelope, nativeCheck nativeCartesianCheck,
) {
	anyHomed := false
	for _, h := range env.Homed {
		if h {
			anyHomed = true
			break
		}
	}
	if !anyHomed || current == nil {
		return
	}

	if ValidTarget(g, cache, tloZ, enabled, destination, mask, true, env, nativeCheck) {
		return
	}

	lo := linear(current)
	hi := linear(destination)
	best := lo

	for i := 0; i < bisectionIterations; i++ {
		mid := lo.Add(hi).Mul(0.5)
		candidate := destination.Clone()
		setLinear(candidate, mid)

		if ValidTarget(g, cache, tloZ, enabled, candidate, mask, true, env, nativeCheck) {
			best = mid
			lo = mid
		} else {
			hi = mid
		}
	}

	setLinear(destination, best)
}
