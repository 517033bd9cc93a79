package kinematics

import (
	"encoding/json"
	"fmt"
	"os"

	"go.viam.com/rdk/logging"
)

// Geometry is the persisted machine-geometry record: the pivot point in
// machine coordinates and the offset of the A axis relative to C. All
// values are millimetres. It is owned by the settings subsystem; the
// transform module holds a read-only working copy refreshed on change
// events (see Plugin.SetGeometry).
type Geometry struct {
	PivotX float64 `json:"pivot_x"`
	PivotY float64 `json:"pivot_y"`
	PivotZ float64 `json:"pivot_z"`

	AxisOffsetY float64 `json:"axis_offset_y"`
	AxisOffsetZ float64 `json:"axis_offset_z"`
}

// Setting keys, matching the $640–$644 table in the spec.
const (
	SettingPivotX      = "640"
	SettingPivotY      = "641"
	SettingPivotZ      = "642"
	SettingAxisOffsetY = "643"
	SettingAxisOffsetZ = "644"
)

const (
	pivotRange  = 10000.0 // mm, ±10 m
	offsetRange = 1000.0  // mm, ±1 m
)

// Validate clamps nothing: out-of-range values are rejected outright, the
// way config.go rejects a missing port rather than guessing one. Defaults
// (zero geometry) are applied by the caller on load failure, not here.
func (g Geometry) Validate() error {
	fields := []struct {
		name  string
		value float64
		limit float64
	}{
		{"pivot_x", g.PivotX, pivotRange},
		{"pivot_y", g.PivotY, pivotRange},
		{"pivot_z", g.PivotZ, pivotRange},
		{"axis_offset_y", g.AxisOffsetY, offsetRange},
		{"axis_offset_z", g.AxisOffsetZ, offsetRange},
	}
	for _, f := range fields {
		if f.value < -f.limit || f.value > f.limit {
			return fmt.Errorf("%w: %s must be within ±%g mm, got %g", ErrOutOfRangeTarget, f.name, f.limit, f.value)
		}
	}
	return nil
}

// pivot returns the pivot point as a 3-vector, for use by the transforms
// and the bisection clip.
func (g Geometry) pivot() vec3 {
	return vec3{X: g.PivotX, Y: g.PivotY, Z: g.PivotZ}
}

// arm is max(‖pivot‖, 500mm), the denominator of the cache-tolerance
// derivation in §4.3.
func (g Geometry) arm() float64 {
	p := g.pivot()
	n := p.Norm()
	if n < 500 {
		return 500
	}
	return n
}

// LoadGeometryFromFile loads and validates a persisted geometry record.
// Corruption or an invalid value restores the zero-value defaults and logs
// a warning, mirroring LoadCalibration's fallback to
// DefaultSO101FullCalibration on error.
func LoadGeometryFromFile(path string, logger logging.Logger) Geometry {
	data, err := os.ReadFile(path)
	if err != nil {
		if logger != nil {
			logger.Debugf("no geometry file at %s, using zero defaults: %v", path, err)
		}
		return Geometry{}
	}

	var g Geometry
	if err := json.Unmarshal(data, &g); err != nil {
		if logger != nil {
			logger.Warnf("geometry file %s is corrupt, restoring defaults: %v", path, err)
		}
		return Geometry{}
	}

	if err := g.Validate(); err != nil {
		if logger != nil {
			logger.Warnf("geometry file %s failed validation, restoring defaults: %v", path, err)
		}
		return Geometry{}
	}

	if logger != nil {
		logger.Debugf("loaded geometry from %s", path)
	}
	return g
}

// SaveGeometryToFile persists a validated geometry record.
func SaveGeometryToFile(path string, g Geometry) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid geometry: %w", err)
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal geometry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geometry file: %w", err)
	}
	return nil
}

// SetSetting applies one $640–$644 key. It is the settings-interface entry
// point the spec requires geometry to be mutated only through.
func (g *Geometry) SetSetting(key string, value float64) error {
	candidate := *g
	switch key {
	case SettingPivotX:
		candidate.PivotX = value
	case SettingPivotY:
		candidate.PivotY = value
	case SettingPivotZ:
		candidate.PivotZ = value
	case SettingAxisOffsetY:
		candidate.AxisOffsetY = value
	case SettingAxisOffsetZ:
		candidate.AxisOffsetZ = value
	default:
		return fmt.Errorf("unknown setting key %q", key)
	}
	if err := candidate.Validate(); err != nil {
		return err
	}
	*g = candidate
	return nil
}
