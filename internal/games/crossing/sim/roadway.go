package sim

import (
	"fmt"
	"iter"
	"math"
	"math/rand"

	"github.com/vovakirdan/roadcross/internal/core"
)

// Lane geometry.
const (
	LaneHeight    = 50.0
	LaneOneOffset = 305.0 // top edge of the bottom lane
)

// RampPolicy raises an obstacle's speed each time it wraps around.
// The zero value disables ramping.
type RampPolicy struct {
	SpeedPerWrap float64 // added on every wrap
	MaxSpeed     float64 // cap; 0 means uncapped
}

// Enabled reports whether wraps change speed.
func (p RampPolicy) Enabled() bool {
	return p.SpeedPerWrap > 0
}

func (p RampPolicy) validate() error {
	if p.SpeedPerWrap < 0 || math.IsNaN(p.SpeedPerWrap) {
		return fmt.Errorf("%w: ramp speed per wrap %v", ErrInvalidArgument, p.SpeedPerWrap)
	}
	if p.MaxSpeed < 0 || math.IsNaN(p.MaxSpeed) {
		return fmt.Errorf("%w: ramp max speed %v", ErrInvalidArgument, p.MaxSpeed)
	}
	return nil
}

func (p RampPolicy) next(speed float64) float64 {
	if !p.Enabled() || speed == 0 {
		return speed
	}
	speed += p.SpeedPerWrap
	if p.MaxSpeed > 0 && speed > p.MaxSpeed {
		speed = p.MaxSpeed
	}
	return speed
}

// Roadway is the fixed stack of lanes.
type Roadway struct {
	width float64
	specs []LaneSpec
	ramp  RampPolicy
	rng   *rand.Rand
	lanes []*Lane
}

// NewRoadway builds one lane per spec, bottom lane first.
// The seed drives which hidden obstacle is revealed next.
func NewRoadway(width float64, specs []LaneSpec, ramp RampPolicy, seed int64) (*Roadway, error) {
	if width <= 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("%w: playfield width %v", ErrInvalidArgument, width)
	}
	for i, spec := range specs {
		if err := spec.validate(); err != nil {
			return nil, fmt.Errorf("lane %d: %w", i, err)
		}
	}
	if err := ramp.validate(); err != nil {
		return nil, err
	}

	r := &Roadway{
		width: width,
		specs: append([]LaneSpec(nil), specs...),
		ramp:  ramp,
		rng:   rand.New(rand.NewSource(seed)),
	}
	r.ResetLanes()
	return r, nil
}

// ResetLanes rebuilds every lane from its spec, restoring initial positions,
// speeds and visibility.
func (r *Roadway) ResetLanes() {
	r.lanes = make([]*Lane, len(r.specs))
	for i, spec := range r.specs {
		r.lanes[i] = newLane(spec, i, r.width)
	}
}

// Advance moves every obstacle one frame.
func (r *Roadway) Advance() {
	for _, l := range r.lanes {
		l.advance(r.width, r.ramp)
	}
}

// ResetVehicleSpeeds restores every obstacle to its lane's base speed.
func (r *Roadway) ResetVehicleSpeeds() {
	for _, l := range r.lanes {
		l.resetSpeeds()
	}
}

// Freeze stops every obstacle in place.
func (r *Roadway) Freeze() {
	for _, l := range r.lanes {
		l.setSpeed(0)
	}
}

// RevealNext queues one randomly chosen hidden obstacle. It returns false
// when nothing is left to reveal.
func (r *Roadway) RevealNext() bool {
	type ref struct{ lane, idx int }
	var hidden []ref
	for li, l := range r.lanes {
		for oi, o := range l.obstacles {
			if o.Visibility == Hidden {
				hidden = append(hidden, ref{li, oi})
			}
		}
	}
	if len(hidden) == 0 {
		return false
	}
	pick := hidden[r.rng.Intn(len(hidden))]
	r.lanes[pick.lane].obstacles[pick.idx].Visibility = Queued
	return true
}

// FirstCollision returns the first active obstacle overlapping rect,
// scanning from the bottom lane up.
func (r *Roadway) FirstCollision(rect core.Rect) (Obstacle, bool) {
	for _, l := range r.lanes {
		for _, o := range l.obstacles {
			if o.Visible() && o.Bounds().Intersects(rect) {
				return o, true
			}
		}
	}
	return Obstacle{}, false
}

// Width returns the playfield width obstacles wrap within.
func (r *Roadway) Width() float64 { return r.width }

// Ramp returns the active ramp policy.
func (r *Roadway) Ramp() RampPolicy { return r.ramp }

// Len returns the number of lanes.
func (r *Roadway) Len() int { return len(r.lanes) }

// Lane returns the lane at index i, 0 being the bottom lane.
func (r *Roadway) Lane(i int) *Lane { return r.lanes[i] }

// Lanes yields lanes bottom to top.
func (r *Roadway) Lanes() iter.Seq2[int, *Lane] {
	return func(yield func(int, *Lane) bool) {
		for i, l := range r.lanes {
			if !yield(i, l) {
				return
			}
		}
	}
}
