package kinematics

import (
	"fmt"
	"math"
	"sync/atomic"

	"go.viam.com/rdk/logging"
)

// Mode is the RTCP mode state of §4.7: Off (identity) or On (RTCP active).
type Mode int

const (
	ModeOff Mode = iota
	ModeOn
)

func (m Mode) String() string {
	if m == ModeOn {
		return "ON"
	}
	return "OFF"
}

// rotaryZeroToleranceDeg is the |A|,|C| threshold used on the On→Off
// transition to decide whether to warn the operator (§4.7).
const rotaryZeroToleranceDeg = 0.1

// ModeController owns the enabled flag (§3: "enabled: bool ... Initial
// value: false"). Transitions happen only via mode-change commands and, per
// §4.7 and §5, are expected to run on the single motion-foreground thread;
// enabled itself is stored atomically so a concurrent status-report reader
// never observes a torn value.
type ModeController struct {
	enabled atomic.Bool
	logger  logging.Logger
}

// NewModeController returns a controller with RTCP initially Off.
func NewModeController(logger logging.Logger) *ModeController {
	return &ModeController{logger: logger}
}

// Enabled reports the current mode. Safe to call from any goroutine.
func (m *ModeController) Enabled() bool { return m.enabled.Load() }

func (m *ModeController) Mode() Mode {
	if m.Enabled() {
		return ModeOn
	}
	return ModeOff
}

// TurnOn performs the Off→On transition of §4.7: set enabled, invalidate
// the cache. The host is expected to have already synchronized (drained the
// motion buffer) before calling this, per the M450/M451 contract in §6.
func (m *ModeController) TurnOn(cache *trigCache) {
	m.enabled.Store(true)
	cache.invalidate()
	if m.logger != nil {
		m.logger.Info("RTCP mode enabled")
	}
}

// TurnOff performs the On→Off transition of §4.7: warn if a rotary axis is
// not at zero, clear enabled, invalidate the cache. currentA/currentC are
// read from the joint counters in degrees, absolute value compared against
// rotaryZeroToleranceDeg.
func (m *ModeController) TurnOff(cache *trigCache, currentA, currentC float64) {
	if math.Abs(currentA) > rotaryZeroToleranceDeg || math.Abs(currentC) > rotaryZeroToleranceDeg {
		msg := fmt.Sprintf("RTCP disabled with rotary axes not at zero (A=%.3f C=%.3f deg); "+
			"tool center point will shift on the next move", currentA, currentC)
		if m.logger != nil {
			m.logger.Warn(msg)
		}
	}
	m.enabled.Store(false)
	cache.invalidate()
	if m.logger != nil {
		m.logger.Info("RTCP mode disabled")
	}
}

// JogCancel is the asynchronously-settable abort flag of §3. An interrupt
// handler, a timer, or a cooperatively-scheduled task may call Set from a
// context other than the motion-foreground thread; the segmenter observes
// it only between segments (§5).
type JogCancel struct {
	flag atomic.Bool
}

func (j *JogCancel) Set()       { j.flag.Store(true) }
func (j *JogCancel) Clear()     { j.flag.Store(false) }
func (j *JogCancel) Load() bool { return j.flag.Load() }

// StatusToken returns the real-time status report token of §6:
// "RTCP:ON" or "RTCP:OFF" (the caller is responsible for the surrounding
// "|" pipe-delimiting used by the status report line).
func (m *ModeController) StatusToken() string {
	return "RTCP:" + m.Mode().String()
}
