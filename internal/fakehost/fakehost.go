// Package fakehost provides an in-memory kinematics.Host for demos and
// tests, in the spirit of the fake implementations under rdk's
// components/*/fake packages.
package fakehost

import "rtcpkinematics"

// Host is a minimal in-memory kinematics.Host. StepsPerMMValues and
// EnvelopeValue are exported so callers can mutate them directly between
// calls, matching the teacher's fake components' pattern of plain exported
// fields rather than setters.
type Host struct {
	TLOz             float64
	StepsPerMMValues []float64
	EnvelopeValue    kinematics.Envelope
	SyncRequests     int

	// CartesianCheck defaults to an always-valid predicate if left nil.
	CartesianCheck func(target kinematics.Axes, mask uint32) bool
}

func New() *Host {
	return &Host{
		StepsPerMMValues: []float64{80, 80, 80, 1, 1},
		EnvelopeValue: kinematics.Envelope{
			Min:   []float64{-500, -500, -500, -360, -360},
			Max:   []float64{500, 500, 500, 360, 360},
			Homed: []bool{true, true, true, true, true},
		},
	}
}

func (h *Host) ActiveToolLengthOffsetZ() float64 { return h.TLOz }

func (h *Host) CartesianLimitCheck(target kinematics.Axes, mask uint32) bool {
	if h.CartesianCheck != nil {
		return h.CartesianCheck(target, mask)
	}
	return true
}

func (h *Host) Envelope() kinematics.Envelope { return h.EnvelopeValue }

func (h *Host) StepsPerMM() []float64 { return h.StepsPerMMValues }

func (h *Host) RequestSync() { h.SyncRequests++ }
