package sim

import "github.com/vovakirdan/roadcross/internal/core"

// Actor dimensions and step size in playfield units.
const (
	ActorSize = 50.0
	ActorStep = 50.0
)

// Actor is the player token. Speed is the distance one move covers; it equals
// the step while the actor is alive and drops to zero when frozen.
type Actor struct {
	X, Y           float64
	W, H           float64
	StepX, StepY   float64
	SpeedX, SpeedY float64
}

func newActor() Actor {
	return Actor{
		W:      ActorSize,
		H:      ActorSize,
		StepX:  ActorStep,
		StepY:  ActorStep,
		SpeedX: ActorStep,
		SpeedY: ActorStep,
	}
}

// Bounds returns the actor's bounding box.
func (a Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}

// Frozen reports whether moves are disabled.
func (a Actor) Frozen() bool {
	return a.SpeedX == 0 && a.SpeedY == 0
}

func (a *Actor) freeze() {
	a.SpeedX, a.SpeedY = 0, 0
}

func (a *Actor) unfreeze() {
	a.SpeedX, a.SpeedY = a.StepX, a.StepY
}
