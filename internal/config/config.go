// Package config provides YAML-based configuration loading for the crossing
// game. Gameplay constants (lane table, lives, time budget) are fixed in the
// simulation; the config covers timing, the speed ramp and rendering scale.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Timing CrossingTiming `yaml:"timing"`
	Ramp   RampConfig     `yaml:"ramp"`
	Render RenderConfig   `yaml:"render"`
}

// CrossingTiming defines timer intervals in milliseconds.
type CrossingTiming struct {
	FrameMS      int `yaml:"frame_ms"`       // Obstacle advance + collision check
	CountdownMS  int `yaml:"countdown_ms"`   // One unit of the time budget
	DeathStageMS int `yaml:"death_stage_ms"` // Hold time per death animation stage
	RevealMS     int `yaml:"reveal_ms"`      // Hidden obstacle reveal period
}

// Frame returns the frame interval.
func (t CrossingTiming) Frame() time.Duration { return ms(t.FrameMS) }

// Countdown returns the countdown interval.
func (t CrossingTiming) Countdown() time.Duration { return ms(t.CountdownMS) }

// DeathStage returns the death stage interval.
func (t CrossingTiming) DeathStage() time.Duration { return ms(t.DeathStageMS) }

// Reveal returns the reveal interval.
func (t CrossingTiming) Reveal() time.Duration { return ms(t.RevealMS) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// RampConfig defines per-wrap obstacle speed growth.
type RampConfig struct {
	Enabled      bool    `yaml:"enabled"`        // Forced on by the crossing_ramp variant
	SpeedPerWrap float64 `yaml:"speed_per_wrap"` // Units per frame added on each wrap
	MaxSpeed     float64 `yaml:"max_speed"`      // Speed cap, 0 = uncapped
}

// RenderConfig defines how playfield units map onto terminal cells.
type RenderConfig struct {
	UnitsPerCol float64 `yaml:"units_per_col"`
	UnitsPerRow float64 `yaml:"units_per_row"`
}

// Validate checks that the config can drive a simulation.
func (c CrossingConfig) Validate() error {
	intervals := []struct {
		name string
		v    int
	}{
		{"timing.frame_ms", c.Timing.FrameMS},
		{"timing.countdown_ms", c.Timing.CountdownMS},
		{"timing.death_stage_ms", c.Timing.DeathStageMS},
		{"timing.reveal_ms", c.Timing.RevealMS},
	}
	for _, iv := range intervals {
		if iv.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, iv.name, iv.v)
		}
	}
	if c.Ramp.SpeedPerWrap < 0 {
		return fmt.Errorf("%w: ramp.speed_per_wrap must not be negative, got %v", ErrInvalid, c.Ramp.SpeedPerWrap)
	}
	if c.Ramp.MaxSpeed < 0 {
		return fmt.Errorf("%w: ramp.max_speed must not be negative, got %v", ErrInvalid, c.Ramp.MaxSpeed)
	}
	if c.Render.UnitsPerCol <= 0 || c.Render.UnitsPerRow <= 0 {
		return fmt.Errorf("%w: render scale must be positive, got %v x %v", ErrInvalid, c.Render.UnitsPerCol, c.Render.UnitsPerRow)
	}
	return nil
}
