package sim

// Event is a state change notification. The concrete types below are the
// only implementations.
type Event interface {
	simEvent()
}

// Listener receives events synchronously, in the order they happen.
type Listener func(Event)

// LivesChanged fires after a life is lost.
type LivesChanged struct {
	Lives int
}

// ScoreChanged fires after a goal slot is claimed.
type ScoreChanged struct {
	Score int
}

// TimeChanged fires on every countdown tick and whenever the time resets.
type TimeChanged struct {
	Remaining int
}

// GameOver fires once, when the simulation reaches a terminal phase.
type GameOver struct {
	Won bool
}

// DeathStageChanged fires when the death sequence enters a stage.
type DeathStageChanged struct {
	Stage DeathStage
	Cause DeathCause
}

// GoalClaimed fires after ScoreChanged with the slot and the bonus it paid.
type GoalClaimed struct {
	Slot  int
	Bonus int
}

func (LivesChanged) simEvent()      {}
func (ScoreChanged) simEvent()      {}
func (TimeChanged) simEvent()       {}
func (GameOver) simEvent()          {}
func (DeathStageChanged) simEvent() {}
func (GoalClaimed) simEvent()       {}
