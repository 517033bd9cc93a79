package kinematics

import "github.com/golang/geo/r3"

// vec3 is the Cartesian (X,Y,Z) type shared by the transforms, the
// segmenter's chord-error calculation, and the bisection clip. It is a
// plain alias of r3.Vector, the point type the teacher already uses for
// Cartesian geometry (gripper.go's claw dimensions, module.go's end-effector
// position).
type vec3 = r3.Vector

// linear extracts the X/Y/Z components of an Axes vector.
func linear(a Axes) vec3 { return vec3{X: a[X], Y: a[Y], Z: a[Z]} }

// setLinear writes a vec3 back into the X/Y/Z slots of an Axes vector,
// leaving A, C, and any pass-through axes untouched.
func setLinear(a Axes, v vec3) {
	a[X], a[Y], a[Z] = v.X, v.Y, v.Z
}
