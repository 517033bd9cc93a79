package kinematics

import "math"

// Axis indices within an Axes vector. X, Y, Z are the three linear joints;
// A is the rotary inclination axis (degrees); C is the rotary azimuth axis
// (degrees). Indices beyond Z other than A and C pass through every
// transform unchanged.
const (
	X = iota
	Y
	Z
	A
	C
)

// NAxis is the default axis count for a 5-axis AC-head machine. Hosts with
// additional pass-through axes (a 6th rotary, a tool changer slot, …) may
// use a larger Axes slice; every index beyond C is copied verbatim by every
// operation in this package.
const NAxis = 5

// Axes is a move expressed as one float per machine axis. Units are
// millimetres for X/Y/Z and degrees for A/C.
type Axes []float64

// Clone returns an independent copy.
func (a Axes) Clone() Axes {
	out := make(Axes, len(a))
	copy(out, a)
	return out
}

// degToRad and radToDeg avoid pulling in go.viam.com/rdk/utils for two
// one-line conversions used nowhere else in this module.
func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }
