package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Timing: CrossingTiming{
			FrameMS:      15,
			CountdownMS:  1000,
			DeathStageMS: 300,
			RevealMS:     2000,
		},
		Ramp: RampConfig{
			Enabled:      false,
			SpeedPerWrap: 0.05,
			MaxSpeed:     5.0,
		},
		Render: RenderConfig{
			UnitsPerCol: 10, // 650 wide -> 65 columns
			UnitsPerRow: 25, // 410 high -> 17 rows
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing", "crossing_ramp":
		return defaultCrossingYAML
	default:
		return nil
	}
}
