package config

import "fmt"

// SpeedPreset represents a named turn speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedInsane SpeedPreset = "insane"
)

// speedOrder is the cycling order used by the options menu.
var speedOrder = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInsane}

// SpeedPresets returns all presets from slowest to fastest.
func SpeedPresets() []SpeedPreset {
	out := make([]SpeedPreset, len(speedOrder))
	copy(out, speedOrder)
	return out
}

// TickMS returns the turn interval for a preset in milliseconds, or 0 for an
// unknown preset.
func (p SpeedPreset) TickMS() int {
	switch p {
	case SpeedSlow:
		return 500
	case SpeedNormal:
		return 350
	case SpeedFast:
		return 200
	case SpeedInsane:
		return 100
	default:
		return 0
	}
}

// Valid reports whether p is a known preset.
func (p SpeedPreset) Valid() bool {
	return p.TickMS() > 0
}

// Next returns the following preset, wrapping from the fastest to the slowest.
// Unknown presets go to normal.
func (p SpeedPreset) Next() SpeedPreset {
	for i, s := range speedOrder {
		if s == p {
			return speedOrder[(i+1)%len(speedOrder)]
		}
	}
	return SpeedNormal
}

// ParseSpeed converts a preset name.
func ParseSpeed(name string) (SpeedPreset, error) {
	p := SpeedPreset(name)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown speed %q (want slow, normal, fast or insane)", ErrInvalidConfig, name)
	}
	return p, nil
}

// ApplySpeedPreset sets the turn interval from a preset.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) {
	if !preset.Valid() {
		return
	}
	cfg.Speed = preset
	cfg.Timing.TickMS = preset.TickMS()
}
