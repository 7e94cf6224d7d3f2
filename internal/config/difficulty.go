package config

import "fmt"

// RampPreset is a named speed ramp setting selectable from the CLI.
type RampPreset string

const (
	RampOff    RampPreset = "off"
	RampGentle RampPreset = "gentle"
	RampSteep  RampPreset = "steep"
)

// RampPresets lists the presets in order of difficulty.
var RampPresets = []RampPreset{RampOff, RampGentle, RampSteep}

// ParseRampPreset converts a CLI value into a preset. The empty string means
// "keep the config file's ramp".
func ParseRampPreset(s string) (RampPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range RampPresets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown ramp preset %q (want off, gentle or steep)", s)
}

// ApplyRampPreset modifies the config based on a ramp preset.
func ApplyRampPreset(cfg *CrossingConfig, preset RampPreset) {
	switch preset {
	case RampOff:
		cfg.Ramp.Enabled = false
	case RampGentle:
		cfg.Ramp.Enabled = true
		cfg.Ramp.SpeedPerWrap = 0.05
		cfg.Ramp.MaxSpeed = 5.0
	case RampSteep:
		cfg.Ramp.Enabled = true
		cfg.Ramp.SpeedPerWrap = 0.15
		cfg.Ramp.MaxSpeed = 7.0
	}
}
