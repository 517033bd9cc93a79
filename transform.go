package kinematics

import "math"

// identityEpsilonDeg is the |A|,|C| threshold below which both transforms
// take the fast path and skip trigonometry entirely (§4.1, §4.2).
const identityEpsilonDeg = 1e-3

// inverse converts a TCP-frame target into the joint frame (§4.1). tloZ is
// the tool-length offset currently active on Z, read from the gcode state
// by the caller. The cache is read-updated; only the single-writer
// motion-foreground thread may call this.
func inverse(g Geometry, cache *trigCache, p Axes, tloZ float64) Axes {
	q := p.Clone()

	aDeg, cDeg := p[A], p[C]
	if math.Abs(aDeg) < identityEpsilonDeg && math.Abs(cDeg) < identityEpsilonDeg {
		return q
	}

	sinA, cosA, sinC, cosC := cache.lookup(aDeg, cDeg)
	q2 := rotateTCPToJoint(g, p, sinA, cosA, sinC, cosC, tloZ)
	setLinear(q, q2)
	return q
}

// forward converts a joint-frame point back into the TCP frame (§4.2). It
// must never touch the shared trig cache: it may run from a reporting
// context concurrent with an in-progress inverse transform.
func forward(g Geometry, q Axes, tloZ float64) Axes {
	p := q.Clone()

	aDeg, cDeg := q[A], q[C]
	if math.Abs(aDeg) < identityEpsilonDeg && math.Abs(cDeg) < identityEpsilonDeg {
		return p
	}

	sinA, cosA, sinC, cosC := freshTrig(aDeg, cDeg)
	p2 := rotateJointToTCP(g, q, sinA, cosA, sinC, cosC, tloZ)
	setLinear(p, p2)
	return p
}

// rotateTCPToJoint implements the four-step derivation in §4.1.
func rotateTCPToJoint(g Geometry, p Axes, sinA, cosA, sinC, cosC, tloZ float64) vec3 {
	dy := g.AxisOffsetY
	dz := g.AxisOffsetZ + tloZ

	// 1. Translate into pivot frame, subtracting TLO from Z.
	px := p[X] - g.PivotX
	py := p[Y] - g.PivotY
	pz := (p[Z] - tloZ) - g.PivotZ

	// 2. Rotate about Z by C.
	xc := px*cosC - py*sinC
	yc := px*sinC + py*cosC
	zc := pz

	// 3. Rotate about X by A, folding in (dy,dz).
	yPrime := yc*cosA - zc*sinA - cosA*dy + sinA*dz + dy
	zPrime := yc*sinA + zc*cosA - sinA*dy - cosA*dz + dz

	// 4. Translate back.
	return vec3{
		X: xc + g.PivotX,
		Y: yPrime + g.PivotY,
		Z: zPrime + g.PivotZ,
	}
}

// rotateJointToTCP is the inverse of rotateTCPToJoint: undo step 4, then
// step 3 (including the (dy,dz) fold-in), then step 2, then restore TLO on
// the way back out of step 1 so the reported Z stays in the user's
// TLO-inclusive frame.
func rotateJointToTCP(g Geometry, q Axes, sinA, cosA, sinC, cosC, tloZ float64) vec3 {
	dy := g.AxisOffsetY
	dz := g.AxisOffsetZ + tloZ

	// Undo step 4.
	xc := q[X] - g.PivotX
	yPrime := q[Y] - g.PivotY
	zPrime := q[Z] - g.PivotZ

	// Undo step 3: invert the rotation-about-X-with-fold.
	yOff := yPrime - dy
	zOff := zPrime - dz
	yc := yOff*cosA + zOff*sinA + dy
	zc := -yOff*sinA + zOff*cosA + dz

	// Undo step 2: inverse rotation about Z by C.
	px := xc*cosC + yc*sinC
	py := -xc*sinC + yc*cosC
	pz := zc

	// Undo step 1, restoring TLO on Z.
	return vec3{
		X: px + g.PivotX,
		Y: py + g.PivotY,
		Z: (pz + g.PivotZ) + tloZ,
	}
}
