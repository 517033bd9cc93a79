package kinematics

import (
	"sync"

	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
)

// Host is the motion controller this module plugs into. It is the
// installation-time collaborator the Design Notes (§9) describe: "the
// module receives a handle to the host, records the prior implementation
// of each hook, and exposes its own." Every method here is one of the
// out-of-scope external collaborators from §1 (the step generator, the
// gcode parser's state, the motion-planner block).
type Host interface {
	// ActiveToolLengthOffsetZ returns the TLO currently active on Z, read
	// from the gcode parser state.
	ActiveToolLengthOffsetZ() float64
	// CartesianLimitCheck is the host's native Cartesian-only soft-limit
	// predicate (§4.5's "host's native check").
	CartesianLimitCheck(target Axes, mask uint32) bool
	// Envelope returns the current per-axis travel envelope and homed mask.
	Envelope() Envelope
	// StepsPerMM returns the steps/mm conversion factor per axis, for
	// transform_steps_to_cartesian (§6).
	StepsPerMM() []float64
	// RequestSync asks the host to drain the motion buffer before a mode
	// change takes effect (§4.7).
	RequestSync()
}

var errNoHost = errors.New("kinematics: plugin not installed against a host")

// Plugin is the installed RTCP kinematics module: it owns the runtime
// state of §3 (enabled flag, trig cache, jog-cancel flag) and a read-only
// geometry snapshot, and implements the eight plug-in operations of §6.
// It is created by Install and is safe for the concurrency model of §5:
// one motion-foreground thread drives everything except JogCancel.Set and
// TransformStepsToCartesian, which may run from an asynchronous or reporting
// context respectively.
type Plugin struct {
	host   Host
	logger logging.Logger

	mu       sync.RWMutex
	geometry Geometry

	cache     trigCache
	mode      *ModeController
	jogCancel JogCancel

	current *Segmenter
}

// Install records the host's prior travel-limit hook (implicitly, via
// Host.CartesianLimitCheck) and returns a ready-to-use Plugin with RTCP
// initially Off, mirroring resource.RegisterComponent's
// constructor-with-dependencies shape and registry.go's pattern of wrapping
// a shared resource behind a handle.
func Install(host Host, geometry Geometry, logger logging.Logger) (*Plugin, error) {
	if host == nil {
		return nil, errNoHost
	}
	if err := geometry.Validate(); err != nil {
		return nil, errors.Wrap(err, "kinematics: invalid geometry at install time")
	}

	p := &Plugin{
		host:     host,
		logger:   logger,
		geometry: geometry,
		mode:     NewModeController(logger),
	}
	p.cache.retune(geometry)
	return p, nil
}

// SetGeometry refreshes the read-only geometry snapshot from a settings
// change event and invalidates the cache (§4.3, §9 "read-only geometry
// snapshot"). Swapping under the mutex keeps concurrent forward-transform
// readers (§5) from observing a torn geometry value.
func (p *Plugin) SetGeometry(g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.geometry = g
	p.cache.retune(g)
	return nil
}

func (p *Plugin) snapshot() Geometry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.geometry
}

// Enabled reports whether RTCP mode is currently on.
func (p *Plugin) Enabled() bool { return p.mode.Enabled() }

// TurnOn and TurnOff drive the mode-control state machine of §4.7. Each
// first asks the host to drain the motion buffer (Host.RequestSync) and then
// performs the transition, per the M450/M451 contract of §6.
func (p *Plugin) TurnOn() {
	p.host.RequestSync()
	p.mode.TurnOn(&p.cache)
}

func (p *Plugin) TurnOff(currentJointA, currentJointC float64) {
	p.host.RequestSync()
	p.mode.TurnOff(&p.cache, currentJointA, currentJointC)
}

// JogCancel exposes the shared cancel flag so an asynchronous context (an
// interrupt handler, a timer, a cooperative task) can abort the
// in-progress move, per §5.
func (p *Plugin) JogCancel() *JogCancel { return &p.jogCancel }

// --- The eight plug-in operations of §6 ---

// TransformFromCartesian implements transform_from_cartesian (§4.1, §6).
func (p *Plugin) TransformFromCartesian(target, position Axes) Axes {
	g := p.snapshot()
	if !p.Enabled() {
		return target.Clone()
	}
	return inverse(g, &p.cache, target, p.host.ActiveToolLengthOffsetZ())
}

// TransformStepsToCartesian implements transform_steps_to_cartesian (§6):
// steps[i]/stepsPerMM[i] per axis, then forward-transform if RTCP is on.
// This must never call back into the host's generic steps-to-machine-
// position helper (re-entrancy), and per §4.2 it never touches the shared
// trig cache.
func (p *Plugin) TransformStepsToCartesian(steps []int64) Axes {
	stepsPerMM := p.host.StepsPerMM()
	pos := make(Axes, len(steps))
	for i, s := range steps {
		spm := 1.0
		if i < len(stepsPerMM) && stepsPerMM[i] != 0 {
			spm = stepsPerMM[i]
		}
		pos[i] = float64(s) / spm
	}
	if !p.Enabled() {
		return pos
	}
	g := p.snapshot()
	return forward(g, pos, p.host.ActiveToolLengthOffsetZ())
}

// SegmentLineInit and SegmentLineNext together implement segment_line (§4.4,
// §6) with the explicit init/produce lifecycle the Design Notes (§9)
// describe, plus SegmentLine below for hosts that want the single
// (Axes, bool) step call the original's coroutine-like signature implies.
func (p *Plugin) SegmentLineInit(target, position Axes, rapid bool) *Segmenter {
	g := p.snapshot()
	tloZ := p.host.ActiveToolLengthOffsetZ()

	if !p.Enabled() {
		env := p.host.Envelope()
		s := identitySegment(target, &p.jogCancel)
		s.valid = ValidTarget(g, &p.cache, tloZ, false, target, ^uint32(0), true, env, p.host.CartesianLimitCheck)
		p.current = s
		return s
	}

	env := p.host.Envelope()
	limitsValid := func(q Axes) bool {
		return ValidTarget(g, &p.cache, tloZ, true, q, ^uint32(0), false, env, p.host.CartesianLimitCheck)
	}
	s := SegmentInit(g, &p.cache, target, position, tloZ, rapid, &p.jogCancel, limitsValid)
	p.current = s
	return s
}

// SegmentLineNext implements the produce phase for the in-progress move.
func (p *Plugin) SegmentLineNext() (Axes, bool) {
	if p.current == nil {
		return nil, false
	}
	g := p.snapshot()
	return p.current.Produce(g, &p.cache, p.host.ActiveToolLengthOffsetZ())
}

// SegmentLine is the single-call coroutine-style entry point some hosts may
// prefer over the explicit Init/Next pair: init=true starts a move,
// init=false advances it. It returns ok=false for both "no more segments"
// and validation failure at init (the caller distinguishes the latter via
// Segmenter.Valid on the value returned by SegmentLineInit).
func (p *Plugin) SegmentLine(target, position Axes, rapid bool, init bool) (Axes, bool) {
	if init {
		s := p.SegmentLineInit(target, position, rapid)
		return nil, s.Valid()
	}
	return p.SegmentLineNext()
}

// LimitsGetAxisMask implements limits_get_axis_mask (§6).
func (p *Plugin) LimitsGetAxisMask(idx int) uint32 { return AxisMask(idx) }

// LimitsSetTargetPos implements limits_set_target_pos (§6).
func (p *Plugin) LimitsSetTargetPos(jointCounters []int64, idx int) {
	SetTargetPos(jointCounters, idx)
}

// LimitsSetMachinePositions implements limits_set_machine_positions (§6,
// §4.6) and always invalidates the cache before returning.
func (p *Plugin) LimitsSetMachinePositions(cycleMask uint32, axes []AxisHomingConfig, forceSetOrigin bool) ([]float64, []int64) {
	return SetMachinePositions(&p.cache, cycleMask, axes, forceSetOrigin)
}

// HomingCycleValidate implements homing_cycle_validate (§6).
func (p *Plugin) HomingCycleValidate(mask uint32) bool { return ValidateHomingCycle(mask) }

// HomingCycleGetFeedrate implements homing_cycle_get_feedrate (§6).
func (p *Plugin) HomingCycleGetFeedrate(fr float64, mask uint32, mode int) float64 {
	return HomingFeedrate(fr, mask, mode)
}

// --- Hooks into host routines (§6) ---

// ValidTargetHook replaces the host's default travel-limit validity check
// (§4.5).
func (p *Plugin) ValidTargetHook(target Axes, mask uint32, isCartesian bool) bool {
	g := p.snapshot()
	env := p.host.Envelope()
	return ValidTarget(g, &p.cache, p.host.ActiveToolLengthOffsetZ(), p.Enabled(), target, mask, isCartesian, env, p.host.CartesianLimitCheck)
}

// ClipToEnvelopeHook replaces the host's default travel-limit clip (§4.5).
func (p *Plugin) ClipToEnvelopeHook(current, destination Axes, mask uint32) {
	g := p.snapshot()
	env := p.host.Envelope()
	ClipToEnvelope(g, &p.cache, p.host.ActiveToolLengthOffsetZ(), p.Enabled(), current, destination, mask, env, p.host.CartesianLimitCheck)
}

// OnJogCancelEvent sets jog_cancel and delegates to the host's prior
// handler (§6).
func (p *Plugin) OnJogCancelEvent(prior func()) {
	p.jogCancel.Set()
	if prior != nil {
		prior()
	}
}

// StatusReportHook appends the RTCP status token (§6).
func (p *Plugin) StatusReportHook() string { return p.mode.StatusToken() }

// OptionsReportHook appends an identification string (§6).
func (p *Plugin) OptionsReportHook() string { return "RTCP-AC-5AX" }
