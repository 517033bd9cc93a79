package kinematics

import (
	"fmt"

	"go.viam.com/rdk/spatialmath"
)

// Report is the payload of the $RTCP command (§6): mode, pivot, offsets,
// current TCP position, current joint position, current rotary angles, and
// cache-validity flag.
type Report struct {
	Mode          Mode
	Geometry      Geometry
	TCPPosition   Axes
	JointPosition Axes
	RotaryA       float64
	RotaryC       float64
	CacheValid    bool
}

// BuildReport assembles a $RTCP report from the plugin's current state and
// the host-supplied joint position.
func (p *Plugin) BuildReport(currentJoint Axes) Report {
	g := p.snapshot()
	tloZ := p.host.ActiveToolLengthOffsetZ()

	tcp := currentJoint
	if p.Enabled() {
		tcp = forward(g, currentJoint, tloZ)
	}

	p.mu.RLock()
	valid := p.cache.valid
	p.mu.RUnlock()

	return Report{
		Mode:          p.mode.Mode(),
		Geometry:      g,
		TCPPosition:   tcp,
		JointPosition: currentJoint,
		RotaryA:       currentJoint[A],
		RotaryC:       currentJoint[C],
		CacheValid:    valid,
	}
}

// Pose builds a spatialmath.Pose from the report's TCP position and the C
// angle, the way module.go's EndPosition builds a Pose from joint state
// for display/status purposes. The orientation is a rotation of RotaryC
// degrees about Z; RotaryA is not represented in the pose.
func (r Report) Pose() spatialmath.Pose {
	return spatialmath.NewPose(
		vec3{X: r.TCPPosition[X], Y: r.TCPPosition[Y], Z: r.TCPPosition[Z]},
		&spatialmath.OrientationVectorDegrees{OX: 0, OY: 0, OZ: 1, Theta: r.RotaryC},
	)
}

// String renders the report the way the $RTCP console command prints it.
func (r Report) String() string {
	return fmt.Sprintf(
		"RTCP:%s pivot=(%.3f,%.3f,%.3f) offset=(%.3f,%.3f) "+
			"tcp=(%.3f,%.3f,%.3f,%.3f,%.3f) joint=(%.3f,%.3f,%.3f,%.3f,%.3f) cache_valid=%v",
		r.Mode, r.Geometry.PivotX, r.Geometry.PivotY, r.Geometry.PivotZ,
		r.Geometry.AxisOffsetY, r.Geometry.AxisOffsetZ,
		r.TCPPosition[X], r.TCPPosition[Y], r.TCPPosition[Z], r.TCPPosition[A], r.TCPPosition[C],
		r.JointPosition[X], r.JointPosition[Y], r.JointPosition[Z], r.JointPosition[A], r.JointPosition[C],
		r.CacheValid,
	)
}
