package kinematics

import "github.com/pkg/errors"

// Error kinds from §7. Cancellation is not an error: the segmenter returns
// its terminal sentinel cleanly. Misuse (nested init before drain) is
// unspecified behavior and is not defensively detected in the hot path.
var (
	// ErrOutOfRangeTarget wraps every error Geometry.Validate returns, so
	// settings (SetSetting) and installation (Install, SetGeometry) callers
	// can test for it with errors.Is regardless of which field failed. The
	// hot-path validity check (ValidTarget) reports out-of-range
	// destinations as a bool, not an error, since the host is expected to
	// abort the move itself (§7).
	ErrOutOfRangeTarget = errors.New("kinematics: target out of range")
)
