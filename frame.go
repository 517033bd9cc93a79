package kinematics

import "go.viam.com/rdk/referenceframe"

// ToInputs converts an Axes vector into the []referenceframe.Input shape
// used throughout the teacher's joint-position APIs (arm.go's
// JointPositions/CurrentInputs), so a host already speaking that idiom
// needs no translation layer to call TransformFromCartesian or
// SegmentLineInit.
func ToInputs(a Axes) []referenceframe.Input {
	inputs := make([]referenceframe.Input, len(a))
	for i, v := range a {
		inputs[i] = referenceframe.Input{Value: v}
	}
	return inputs
}

// FromInputs is the inverse of ToInputs.
func FromInputs(inputs []referenceframe.Input) Axes {
	a := make(Axes, len(inputs))
	for i, in := range inputs {
		a[i] = in.Value
	}
	return a
}
