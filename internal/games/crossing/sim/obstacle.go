// Package sim implements the road crossing simulation: lanes of wrapping
// vehicles, the player token, goal slots and the life/timer state machine.
//
// The package has no dependencies on rendering or terminal code. Time only
// passes when Simulation.Tick is called, so tests drive it deterministically.
package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/roadcross/internal/core"
)

// Direction is the horizontal travel direction of a lane.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Kind selects the vehicle body. Each kind has a fixed size.
type Kind int

const (
	Car Kind = iota
	Semi
)

func (k Kind) String() string {
	switch k {
	case Car:
		return "car"
	case Semi:
		return "semi"
	default:
		return "unknown"
	}
}

// Size returns the width and height of the vehicle in playfield units.
func (k Kind) Size() (w, h float64) {
	switch k {
	case Car:
		return 50, 50
	case Semi:
		return 100, 50
	default:
		return 0, 0
	}
}

func (k Kind) valid() bool {
	return k == Car || k == Semi
}

// Visibility tracks whether an obstacle takes part in play.
//
// Hidden obstacles travel with their lane but neither collide nor draw.
// Queued obstacles were picked by the reveal policy and turn Active the next
// time they wrap, so they always enter from the playfield edge.
type Visibility int

const (
	Hidden Visibility = iota
	Queued
	Active
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Queued:
		return "queued"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Obstacle is a single vehicle.
type Obstacle struct {
	X, Y       float64
	W, H       float64
	Speed      float64
	Kind       Kind
	Direction  Direction
	Visibility Visibility
}

// NewObstacle creates a hidden vehicle at the origin.
func NewObstacle(kind Kind, dir Direction, speed float64) (Obstacle, error) {
	if !kind.valid() {
		return Obstacle{}, fmt.Errorf("%w: unknown obstacle kind %d", ErrInvalidArgument, kind)
	}
	if dir != Left && dir != Right {
		return Obstacle{}, fmt.Errorf("%w: unknown direction %d", ErrInvalidArgument, dir)
	}
	if speed < 0 || math.IsNaN(speed) {
		return Obstacle{}, fmt.Errorf("%w: obstacle speed %v", ErrInvalidArgument, speed)
	}
	w, h := kind.Size()
	return Obstacle{
		W:         w,
		H:         h,
		Speed:     speed,
		Kind:      kind,
		Direction: dir,
	}, nil
}

// Bounds returns the obstacle's bounding box.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Visible reports whether the obstacle collides and is drawn.
func (o Obstacle) Visible() bool {
	return o.Visibility == Active
}

// advance moves the obstacle one frame. An obstacle that has fully left the
// playfield is moved to the opposite edge instead of moving; the return value
// reports that wrap.
func (o *Obstacle) advance(width float64) bool {
	switch o.Direction {
	case Left:
		if o.X <= -o.W {
			o.X = width
			return true
		}
		o.X -= o.Speed
	case Right:
		if o.X >= width {
			o.X = -o.W
			return true
		}
		o.X += o.Speed
	}
	return false
}
