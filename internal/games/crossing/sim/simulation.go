package sim

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/roadcross/internal/core"
)

// Gameplay constants.
const (
	StartingLives = 4
	TimeBudget    = 20 // seconds per crossing
)

// Default timer intervals.
const (
	DefaultFrameInterval      = 15 * time.Millisecond
	DefaultCountdownInterval  = time.Second
	DefaultDeathStageInterval = 300 * time.Millisecond
	DefaultRevealInterval     = 2 * time.Second
)

// Phase is the top-level simulation state.
type Phase int

const (
	Playing Phase = iota
	Dying
	Lost
	Won
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Dying:
		return "dying"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == Lost || p == Won
}

// Options tune a simulation. Zero fields take the defaults above.
type Options struct {
	FrameInterval      time.Duration
	CountdownInterval  time.Duration
	DeathStageInterval time.Duration
	RevealInterval     time.Duration

	Ramp RampPolicy
	Seed int64

	// Lanes overrides DefaultLanes, bottom lane first.
	Lanes []LaneSpec
	// Lives and TimeBudget override StartingLives and TimeBudget.
	Lives      int
	TimeBudget int

	// Clock is advanced by Tick. A fresh clock is used when nil.
	Clock *Clock
}

func (o Options) withDefaults() (Options, error) {
	intervals := []struct {
		name string
		v    *time.Duration
		def  time.Duration
	}{
		{"frame interval", &o.FrameInterval, DefaultFrameInterval},
		{"countdown interval", &o.CountdownInterval, DefaultCountdownInterval},
		{"death stage interval", &o.DeathStageInterval, DefaultDeathStageInterval},
		{"reveal interval", &o.RevealInterval, DefaultRevealInterval},
	}
	for _, iv := range intervals {
		if *iv.v < 0 {
			return o, fmt.Errorf("%w: %s %v", ErrInvalidArgument, iv.name, *iv.v)
		}
		if *iv.v == 0 {
			*iv.v = iv.def
		}
	}
	if o.Lives < 0 {
		return o, fmt.Errorf("%w: lives %d", ErrInvalidArgument, o.Lives)
	}
	if o.Lives == 0 {
		o.Lives = StartingLives
	}
	if o.TimeBudget < 0 {
		return o, fmt.Errorf("%w: time budget %d", ErrInvalidArgument, o.TimeBudget)
	}
	if o.TimeBudget == 0 {
		o.TimeBudget = TimeBudget
	}
	if o.Lanes == nil {
		o.Lanes = DefaultLanes
	}
	if o.Clock == nil {
		o.Clock = NewClock()
	}
	return o, nil
}

// Simulation runs one session: lanes advance on the frame timer, the
// countdown runs once per second and movement intents come from outside.
// It is not safe for concurrent use.
type Simulation struct {
	width, height float64
	opts          Options

	clock      *Clock
	roadway    *Roadway
	controller *Controller
	goals      *GoalSlots
	death      *DeathSequence

	frameTimer     *Timer
	countdownTimer *Timer
	revealTimer    *Timer

	phase         Phase
	lives         int
	score         int
	timeRemaining int
	frames        uint64

	listeners []Listener
}

// New creates a simulation for a playfield of the given size and starts its
// timers. The playfield must fit the roadway between the goal row and the
// spawn row, and the goal slots across its width.
func New(height, width float64, opts Options) (*Simulation, error) {
	if height <= 0 || math.IsNaN(height) {
		return nil, fmt.Errorf("%w: playfield height %v", ErrInvalidArgument, height)
	}
	if width <= 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("%w: playfield width %v", ErrInvalidArgument, width)
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	controller, err := NewController(height, width)
	if err != nil {
		return nil, err
	}
	roadway, err := NewRoadway(width, opts.Lanes, opts.Ramp, opts.Seed)
	if err != nil {
		return nil, err
	}
	goals, err := NewGoalSlots(DefaultGoalBounds())
	if err != nil {
		return nil, err
	}
	if err := checkLayout(controller, roadway, goals, width); err != nil {
		return nil, err
	}

	s := &Simulation{
		width:         width,
		height:        height,
		opts:          opts,
		clock:         opts.Clock,
		roadway:       roadway,
		controller:    controller,
		goals:         goals,
		phase:         Playing,
		lives:         opts.Lives,
		timeRemaining: opts.TimeBudget,
	}
	s.frameTimer = s.clock.Every("frame", opts.FrameInterval, s.onFrame)
	s.countdownTimer = s.clock.Every("countdown", opts.CountdownInterval, s.onCountdown)
	s.revealTimer = s.clock.Every("reveal", opts.RevealInterval, s.onReveal)
	s.death = NewDeathSequence(s.clock, opts.DeathStageInterval, s.onDeathStage, s.onDeathDone)

	s.startTimers()
	return s, nil
}

func checkLayout(c *Controller, r *Roadway, g *GoalSlots, width float64) error {
	_, spawnY := c.Spawn()
	if spawnY < LaneOneOffset+LaneHeight {
		return fmt.Errorf("%w: spawn row %v overlaps the bottom lane", ErrInvalidArgument, spawnY)
	}
	if n := r.Len(); n > 0 && LaneOffset(n-1) < TopRow+ActorSize {
		return fmt.Errorf("%w: %d lanes do not fit below the goal row", ErrInvalidArgument, n)
	}
	for slot := range g.Slots() {
		if slot.Bounds.Right() > width {
			return fmt.Errorf("%w: goal slot %d exceeds playfield width %v", ErrInvalidArgument, slot.Index, width)
		}
	}
	return nil
}

// Subscribe registers a listener for state change events.
func (s *Simulation) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Simulation) emit(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}

// Tick advances the simulation clock by dt. Terminal simulations ignore it.
func (s *Simulation) Tick(dt time.Duration) {
	if s.phase.Terminal() {
		return
	}
	s.clock.Advance(dt)
}

// MoveLeft steps the actor left if the phase and bounds allow it.
func (s *Simulation) MoveLeft() {
	if s.phase == Playing {
		s.controller.MoveLeft()
	}
}

// MoveRight steps the actor right if the phase and bounds allow it.
func (s *Simulation) MoveRight() {
	if s.phase == Playing {
		s.controller.MoveRight()
	}
}

// MoveDown steps the actor down if the phase and bounds allow it.
func (s *Simulation) MoveDown() {
	if s.phase == Playing {
		s.controller.MoveDown()
	}
}

// MoveUp steps the actor up. Reaching the top row lands on a goal slot or
// bounces the actor back down.
func (s *Simulation) MoveUp() {
	if s.phase != Playing {
		return
	}
	if s.controller.MoveUp() && s.controller.AtTopRow() {
		s.evaluateGoals()
	}
}

func (s *Simulation) evaluateGoals() {
	slot, ok := s.goals.Land(s.controller.Bounds())
	if !ok {
		s.controller.MoveDown()
		return
	}

	bonus := s.timeRemaining
	s.score += bonus
	s.emit(ScoreChanged{Score: s.score})
	s.emit(GoalClaimed{Slot: slot, Bonus: bonus})
	s.resetTime()

	if s.goals.AllClaimed() {
		s.finish(Won)
		return
	}
	s.countdownTimer.Start()
	s.controller.CenterAtBottom()
}

func (s *Simulation) onFrame() {
	s.frames++
	s.roadway.Advance()
	if _, hit := s.roadway.FirstCollision(s.controller.Bounds()); hit {
		s.beginDeath(CauseCollision)
	}
}

func (s *Simulation) onCountdown() {
	if s.timeRemaining > 0 {
		s.timeRemaining--
		s.emit(TimeChanged{Remaining: s.timeRemaining})
	}
	if s.timeRemaining == 0 {
		s.beginDeath(CauseTimeout)
	}
}

func (s *Simulation) onReveal() {
	s.roadway.RevealNext()
}

// beginDeath is a no-op unless playing, so simultaneous hits cost one life.
func (s *Simulation) beginDeath(cause DeathCause) {
	if s.phase != Playing {
		return
	}
	s.phase = Dying
	s.stopTimers()
	s.roadway.Freeze()
	s.controller.Freeze()
	s.death.Start(cause)
}

func (s *Simulation) onDeathStage(stage DeathStage, cause DeathCause) {
	s.emit(DeathStageChanged{Stage: stage, Cause: cause})
}

func (s *Simulation) onDeathDone(DeathCause) {
	s.lives--
	s.emit(LivesChanged{Lives: s.lives})
	if s.lives <= 0 {
		s.finish(Lost)
		return
	}

	s.controller.CenterAtBottom()
	s.controller.Unfreeze()
	s.resetTime()
	s.roadway.ResetVehicleSpeeds()
	s.phase = Playing
	s.startTimers()
}

func (s *Simulation) finish(phase Phase) {
	s.phase = phase
	s.stopTimers()
	s.controller.Freeze()
	s.emit(GameOver{Won: phase == Won})
}

func (s *Simulation) resetTime() {
	s.timeRemaining = s.opts.TimeBudget
	s.emit(TimeChanged{Remaining: s.timeRemaining})
}

func (s *Simulation) startTimers() {
	s.frameTimer.Start()
	s.countdownTimer.Start()
	s.revealTimer.Start()
}

func (s *Simulation) stopTimers() {
	s.frameTimer.Stop()
	s.countdownTimer.Stop()
	s.revealTimer.Stop()
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase { return s.phase }

// Lives returns the remaining lives.
func (s *Simulation) Lives() int { return s.lives }

// Score returns the accumulated time bonus.
func (s *Simulation) Score() int { return s.score }

// TimeRemaining returns the seconds left for the current crossing.
func (s *Simulation) TimeRemaining() int { return s.timeRemaining }

// TimeBudget returns the seconds each crossing starts with.
func (s *Simulation) TimeBudget() int { return s.opts.TimeBudget }

// Frames returns how many frame ticks have run.
func (s *Simulation) Frames() uint64 { return s.frames }

// Actor returns a copy of the player token.
func (s *Simulation) Actor() Actor { return s.controller.Actor() }

// Spawn returns the bottom-center point the actor starts and respawns at.
func (s *Simulation) Spawn() (x, y float64) { return s.controller.Spawn() }

// Roadway gives read access to the lanes.
func (s *Simulation) Roadway() *Roadway { return s.roadway }

// Goals gives read access to the goal slots.
func (s *Simulation) Goals() *GoalSlots { return s.goals }

// Death returns the current death stage, or false when no death sequence is
// running.
func (s *Simulation) Death() (DeathStage, bool) {
	return s.death.Stage(), s.death.Active()
}

// Width returns the playfield width.
func (s *Simulation) Width() float64 { return s.width }

// Height returns the playfield height.
func (s *Simulation) Height() float64 { return s.height }

// Bounds returns the playfield rectangle.
func (s *Simulation) Bounds() core.Rect {
	return core.NewRect(0, 0, s.width, s.height)
}
