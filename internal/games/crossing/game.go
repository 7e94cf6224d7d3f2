// Package crossing adapts the road crossing simulation to the arcade
// platform: it maps actions to movement intents, advances the simulation
// clock once per platform tick and draws the playfield into a Screen.
package crossing

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadcross/internal/config"
	"github.com/vovakirdan/roadcross/internal/core"
	"github.com/vovakirdan/roadcross/internal/games/crossing/sim"
	"github.com/vovakirdan/roadcross/internal/registry"
)

// Playfield size in simulation units.
const (
	PlayfieldWidth  = 650.0
	PlayfieldHeight = 410.0
)

// bannerSeconds is how long a notice stays on the footer line.
const bannerSeconds = 2

// Mode selects the game variant.
type Mode int

const (
	ModeClassic Mode = iota // Fixed lane speeds
	ModeRamp                // Vehicles speed up every time they wrap
)

// configPath stores the custom config path set via CLI
var configPath string

// rampPreset stores the ramp preset set via CLI
var rampPreset config.RampPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetRampPreset overrides the config file's ramp settings.
func SetRampPreset(p config.RampPreset) {
	rampPreset = p
}

// SetLogger sets the logger used by every crossing game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game over a sim.Simulation.
type Game struct {
	mode Mode

	sim     *sim.Simulation
	runtime core.RuntimeConfig
	cfg     config.CrossingConfig
	err     error // set when the simulation could not be built

	paused    bool
	tickCount int

	// Notices produced since the last Step, handed to the platform.
	messages []string
	// Footer banner and the tick it expires at.
	banner      string
	bannerUntil int

	goalsClaimed int
}

// New creates a new crossing game with fixed lane speeds.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewRamp creates a new crossing game with the speed ramp forced on.
func NewRamp() *Game {
	return &Game{mode: ModeRamp}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeRamp {
		return "crossing_ramp"
	}
	return "crossing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeRamp {
		return "Road Crossing (Rush Hour)"
	}
	return "Road Crossing"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.tickCount = 0
	g.messages = nil
	g.banner = ""
	g.bannerUntil = 0
	g.goalsClaimed = 0
	g.err = nil

	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.DefaultCrossingConfig()
	}
	if rampPreset != "" {
		config.ApplyRampPreset(&cfg, rampPreset)
	}
	if g.mode == ModeRamp {
		cfg.Ramp.Enabled = true
	}
	g.cfg = cfg

	s, err := sim.New(PlayfieldHeight, PlayfieldWidth, g.simOptions())
	if err != nil {
		logger.Error("could not start simulation", "error", err)
		g.sim = nil
		g.err = err
		return
	}
	s.Subscribe(g.onEvent)
	g.sim = s

	logger.Info("game started",
		"game", g.ID(),
		"seed", runtime.Seed,
		"ramp", cfg.Ramp.Enabled,
	)
}

func (g *Game) simOptions() sim.Options {
	opts := sim.Options{
		FrameInterval:      g.cfg.Timing.Frame(),
		CountdownInterval:  g.cfg.Timing.Countdown(),
		DeathStageInterval: g.cfg.Timing.DeathStage(),
		RevealInterval:     g.cfg.Timing.Reveal(),
		Seed:               g.runtime.Seed,
	}
	if g.cfg.Ramp.Enabled {
		opts.Ramp = sim.RampPolicy{
			SpeedPerWrap: g.cfg.Ramp.SpeedPerWrap,
			MaxSpeed:     g.cfg.Ramp.MaxSpeed,
		}
	}
	return opts
}

// tickDuration is the simulated time covered by one platform tick.
func (g *Game) tickDuration() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil || g.sim.Phase().Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Every press is one step, in press order.
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.sim.MoveLeft()
		case core.ActionRight:
			g.sim.MoveRight()
		case core.ActionUp:
			g.sim.MoveUp()
		case core.ActionDown:
			g.sim.MoveDown()
		}
	}

	g.tickCount++
	g.sim.Tick(g.tickDuration())

	msgs := g.messages
	g.messages = nil
	return core.StepResult{State: g.State(), Messages: msgs}
}

func (g *Game) onEvent(e sim.Event) {
	switch e := e.(type) {
	case sim.DeathStageChanged:
		if e.Stage != sim.StageHit {
			return
		}
		logger.Debug("actor died", "cause", e.Cause, "tick", g.tickCount)
		if e.Cause == sim.CauseTimeout {
			g.notify("Time's up!")
		} else {
			g.notify("Splat!")
		}

	case sim.LivesChanged:
		logger.Info("life lost", "lives", e.Lives)

	case sim.GoalClaimed:
		g.goalsClaimed++
		logger.Info("goal claimed", "slot", e.Slot, "bonus", e.Bonus, "score", g.sim.Score())
		g.notify(fmt.Sprintf("Home! +%d", e.Bonus))

	case sim.GameOver:
		logger.Info("game over",
			"game", g.ID(),
			"won", e.Won,
			"score", g.sim.Score(),
			"ticks", g.tickCount,
		)
		if e.Won {
			g.notify("All home!")
		} else {
			g.notify("Game over")
		}
	}
}

// notify queues a message for the platform and shows it on the footer.
func (g *Game) notify(msg string) {
	g.messages = append(g.messages, msg)
	g.banner = msg
	g.bannerUntil = g.tickCount + bannerSeconds*int(time.Second/g.tickDuration())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Paused: g.paused}
	}
	phase := g.sim.Phase()
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		GameOver: phase.Terminal(),
		Won:      phase == sim.Won,
		Paused:   g.paused,
	}
}

// Summary describes the current run for the score history.
func (g *Game) Summary() core.RunSummary {
	st := g.State()
	return core.RunSummary{
		Score:         st.Score,
		LivesLeft:     st.Lives,
		GoalsClaimed:  g.goalsClaimed,
		Won:           st.Won,
		DurationTicks: g.tickCount,
	}
}

func init() {
	registry.Register("crossing", func() registry.Game {
		return New()
	})
	registry.Register("crossing_ramp", func() registry.Game {
		return NewRamp()
	})
}
