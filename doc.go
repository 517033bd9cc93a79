// Package kinematics implements a 5-axis RTCP (Rotational Tool Center Point)
// transform plug-in for an AC-head CNC controller. It sits between a
// G-code interpreter and a step-pulse planner, translating moves between
// the operator's TCP Cartesian frame and the machine's motor-joint frame.
package kinematics
