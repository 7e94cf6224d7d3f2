package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/roadcross/internal/core"
)

const (
	// TopRow is the highest row the actor may occupy, directly below the
	// goal slots.
	TopRow = 55.0
	// BottomLaneOffset keeps the actor off the bottom edge of the playfield.
	BottomLaneOffset = 5.0
)

// Controller owns the actor and keeps it inside the playfield.
type Controller struct {
	actor  Actor
	minX   float64
	maxX   float64
	minY   float64
	maxY   float64
	spawnX float64
	spawnY float64
}

// NewController places a fresh actor at the bottom-center of a playfield of
// the given size. The spawn row is the lowest row that sits a whole number
// of ActorSteps below TopRow, so a 420-high playfield spawns at y=355, not 365.
func NewController(height, width float64) (*Controller, error) {
	if height <= 0 || math.IsNaN(height) {
		return nil, fmt.Errorf("%w: playfield height %v", ErrInvalidArgument, height)
	}
	if width <= 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("%w: playfield width %v", ErrInvalidArgument, width)
	}

	a := newActor()
	c := &Controller{
		actor: a,
		minX:  0,
		maxX:  width - a.W,
		minY:  TopRow,
		maxY:  height - a.H - BottomLaneOffset,
	}
	if c.maxX < c.minX || c.maxY < c.minY {
		return nil, fmt.Errorf("%w: playfield %vx%v too small for the actor", ErrInvalidArgument, width, height)
	}

	// Spawn on the lowest row reachable from the top row in whole steps, so
	// moving up always lands exactly on TopRow.
	c.spawnY = c.minY + a.StepY*math.Floor((c.maxY-c.minY)/a.StepY)
	c.spawnX = width/2 - a.W/2
	c.CenterAtBottom()
	return c, nil
}

// Actor returns a copy of the actor.
func (c *Controller) Actor() Actor { return c.actor }

// Bounds returns the actor's bounding box.
func (c *Controller) Bounds() core.Rect { return c.actor.Bounds() }

// Spawn returns the bottom-center position the actor respawns at.
func (c *Controller) Spawn() (x, y float64) { return c.spawnX, c.spawnY }

// MoveLeft steps the actor left. It reports whether the actor moved.
func (c *Controller) MoveLeft() bool {
	return c.moveTo(c.actor.X-c.actor.SpeedX, c.actor.Y)
}

// MoveRight steps the actor right.
func (c *Controller) MoveRight() bool {
	return c.moveTo(c.actor.X+c.actor.SpeedX, c.actor.Y)
}

// MoveUp steps the actor towards the goal slots.
func (c *Controller) MoveUp() bool {
	return c.moveTo(c.actor.X, c.actor.Y-c.actor.SpeedY)
}

// MoveDown steps the actor towards the spawn row.
func (c *Controller) MoveDown() bool {
	return c.moveTo(c.actor.X, c.actor.Y+c.actor.SpeedY)
}

func (c *Controller) moveTo(x, y float64) bool {
	if c.actor.Frozen() {
		return false
	}
	if x < c.minX || x > c.maxX || y < c.minY || y > c.maxY {
		return false
	}
	c.actor.X, c.actor.Y = x, y
	return true
}

// CenterAtBottom puts the actor back on the spawn point.
func (c *Controller) CenterAtBottom() {
	c.actor.X, c.actor.Y = c.spawnX, c.spawnY
}

// AtTopRow reports whether the actor is on the row adjacent to the goals.
func (c *Controller) AtTopRow() bool {
	return c.actor.Y == c.minY
}

// Freeze disables movement.
func (c *Controller) Freeze() { c.actor.freeze() }

// Unfreeze restores movement.
func (c *Controller) Unfreeze() { c.actor.unfreeze() }
