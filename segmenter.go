package kinematics

import "math"

// Segment-count clamp and rapid/non-rapid chord-error tolerances, per §4.4.
const (
	maxSegments        = 2000
	rapidChordTol      = 0.5  // mm, G0
	feedChordTol       = 0.01 // mm, non-rapid
	rotDeltaEpsilonDeg = 1e-3
	minTCPDistance     = 1e-4 // below this, skip feed-rate compensation
	feedMultMin        = 0.5
	feedMultMax        = 2.0
)

// Segmenter is the per-move state described in §3 ("per-move state"). It is
// allocated fresh by Init and consumed by repeated calls to Produce for a
// single move; a new Init before a previous move has drained is a usage
// error per §7 (unspecified behavior, not defensively detected).
type Segmenter struct {
	iterationsLeft int
	segmented      bool
	rapid          bool

	delta         Axes
	segmentTarget Axes
	finalTarget   Axes
	lastMotors    Axes

	tcpDistancePerSegment float64

	// jogCancel is observed between segments (§5); it is owned by the
	// enclosing Plugin and passed in by pointer so an async context can set
	// it without synchronizing with the segmenter directly.
	jogCancel *JogCancel

	// feedMultiplier and rateMultiplier are the most recent per-segment
	// feed-rate compensation values (§4.4); the host reads these after each
	// Produce call.
	feedMultiplier float64
	rateMultiplier float64

	valid    bool
	identity bool
}

// SegmentInit runs the init phase of §4.4: one call per move. target is the
// Cartesian endpoint, currentJoint is the machine's current joint-frame
// position, rapid selects the G0 tolerance, jogCancel is the shared
// asynchronous cancel flag.
func SegmentInit(g Geometry, cache *trigCache, target, currentJoint Axes, tloZ float64, rapid bool, jogCancel *JogCancel, limitsValid func(Axes) bool) *Segmenter {
	jogCancel.Clear()

	s := &Segmenter{
		finalTarget: target.Clone(),
		rapid:       rapid,
		jogCancel:   jogCancel,
	}

	qEnd := inverse(g, cache, target, tloZ)
	s.valid = limitsValid == nil || limitsValid(qEnd)

	currentTCP := forward(g, currentJoint, tloZ)
	s.segmentTarget = currentTCP.Clone()

	rotDelta := math.Max(math.Abs(target[A]-currentTCP[A]), math.Abs(target[C]-currentTCP[C]))

	qStart := currentJoint

	if rotDelta <= rotDeltaEpsilonDeg {
		s.segmented = false
		s.iterationsLeft = 1
	} else {
		tol := rapidChordTol
		if !rapid {
			tol = feedChordTol
		}

		mTCP := midpoint(s.segmentTarget, s.finalTarget)
		mReal := inverse(g, cache, mTCP, tloZ)
		mLin := midpointAxes(qStart, qEnd)
		err := linear(mReal).Sub(linear(mLin)).Norm()

		if err <= tol {
			s.iterationsLeft = 1
		} else {
			n := int(math.Ceil(math.Sqrt(err/tol))) * 2
			if n < 1 {
				n = 1
			}
			if n > maxSegments {
				n = maxSegments
			}
			s.iterationsLeft = n
		}
		s.segmented = s.iterationsLeft > 1
	}

	s.delta = make(Axes, len(target))
	for i := range target {
		s.delta[i] = (target[i] - s.segmentTarget[i]) / float64(s.iterationsLeft)
	}

	s.tcpDistancePerSegment = linear(s.delta).Norm()
	s.lastMotors = currentJoint.Clone()

	// Pre-increment so Produce's decrement-then-test matches the
	// init/step/∅ coroutine contract in §9.
	s.iterationsLeft++

	return s
}

// Produce runs one step of the produce phase in §4.4, returning the next
// joint-frame point and true, or (nil, false) once the move is exhausted or
// jog_cancel has been observed. No error is surfaced for cancellation: it
// is not an error kind (§7).
func (s *Segmenter) Produce(g Geometry, cache *trigCache, tloZ float64) (Axes, bool) {
	s.iterationsLeft--
	if s.iterationsLeft <= 0 || s.jogCancel.Load() {
		return nil, false
	}

	if s.iterationsLeft > 1 {
		for i := range s.segmentTarget {
			s.segmentTarget[i] += s.delta[i]
		}
	} else {
		copy(s.segmentTarget, s.finalTarget)
	}

	var qi Axes
	if s.identity {
		qi = s.segmentTarget.Clone()
	} else {
		qi = inverse(g, cache, s.segmentTarget, tloZ)
	}

	s.feedMultiplier = 1
	s.rateMultiplier = 1
	if !s.rapid && s.tcpDistancePerSegment > minTCPDistance {
		motorDist := axesDistance(qi, s.lastMotors)
		k := motorDist / s.tcpDistancePerSegment
		if k < feedMultMin {
			k = feedMultMin
		} else if k > feedMultMax {
			k = feedMultMax
		}
		s.feedMultiplier = k
		s.rateMultiplier = 1 / k
	}

	s.lastMotors = qi.Clone()
	return qi, true
}

// Valid reports whether the destination passed the travel-limit check at
// init time (§4.4: "flag validity on the planner's block").
func (s *Segmenter) Valid() bool { return s.valid }

// FeedMultiplier and RateMultiplier are read by the host after each Produce
// call to scale the planner block's feed rate and record the
// rate-multiplier field, per §4.4.
func (s *Segmenter) FeedMultiplier() float64 { return s.feedMultiplier }
func (s *Segmenter) RateMultiplier() float64 { return s.rateMultiplier }

// axesDistance is the full joint-vector Euclidean distance (all axes,
// including rotary), matching get_distance in the original rtcp.c: the
// feed-rate compensation numerator must include rotary-axis travel, unlike
// the segment-count chord-error check in SegmentInit, which is linear-axes
// only.
func axesDistance(a, b Axes) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func midpoint(a, b Axes) Axes {
	out := make(Axes, len(a))
	for i := range a {
		out[i] = (a[i] + b[i]) / 2
	}
	return out
}

func midpointAxes(a, b Axes) Axes { return midpoint(a, b) }

// identitySegment implements the bypass path of §4.4: when RTCP is
// disabled, the segmenter copies the target unchanged and produces exactly
// one segment.
func identitySegment(target Axes, jogCancel *JogCancel) *Segmenter {
	jogCancel.Clear()
	return &Segmenter{
		finalTarget:    target.Clone(),
		segmentTarget:  target.Clone(),
		iterationsLeft: 2, // pre-incremented, one real segment
		valid:          true,
		identity:       true,
		jogCancel:      jogCancel,
		delta:          make(Axes, len(target)),
	}
}
