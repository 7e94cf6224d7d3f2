package sim

import (
	"fmt"
	"iter"
	"math"
)

// LaneSpec describes how a lane is populated.
type LaneSpec struct {
	Count     int
	Kind      Kind
	Speed     float64
	Direction Direction
}

// DefaultLanes is the roadway table, bottom lane first.
var DefaultLanes = []LaneSpec{
	{Count: 3, Kind: Car, Speed: 2.0, Direction: Left},
	{Count: 2, Kind: Semi, Speed: 2.2, Direction: Right},
	{Count: 4, Kind: Car, Speed: 2.5, Direction: Left},
	{Count: 3, Kind: Semi, Speed: 2.8, Direction: Left},
	{Count: 5, Kind: Car, Speed: 3.0, Direction: Right},
}

func (s LaneSpec) validate() error {
	if s.Count < 0 {
		return fmt.Errorf("%w: lane obstacle count %d", ErrInvalidArgument, s.Count)
	}
	if s.Speed < 0 || math.IsNaN(s.Speed) {
		return fmt.Errorf("%w: lane speed %v", ErrInvalidArgument, s.Speed)
	}
	// Checks kind and direction.
	_, err := NewObstacle(s.Kind, s.Direction, s.Speed)
	return err
}

// LaneOffset returns the top edge of the lane with the given index.
// Index 0 is the bottom lane.
func LaneOffset(index int) float64 {
	return LaneOneOffset - LaneHeight*float64(index)
}

// Lane is one row of the roadway. All of its obstacles share a direction.
type Lane struct {
	index     int
	offset    float64
	direction Direction
	baseSpeed float64
	obstacles []Obstacle
}

// NewLane builds a lane and spreads its obstacles evenly across the
// playfield width. Only the first obstacle starts Active.
func NewLane(spec LaneSpec, index int, width float64) (*Lane, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: lane index %d", ErrInvalidArgument, index)
	}
	if width <= 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("%w: playfield width %v", ErrInvalidArgument, width)
	}
	return newLane(spec, index, width), nil
}

// newLane assumes spec has been validated.
func newLane(spec LaneSpec, index int, width float64) *Lane {
	l := &Lane{
		index:     index,
		offset:    LaneOffset(index),
		direction: spec.Direction,
		baseSpeed: spec.Speed,
		obstacles: make([]Obstacle, spec.Count),
	}
	w, h := spec.Kind.Size()
	for i := range l.obstacles {
		o := Obstacle{
			X:         float64(i) * width / float64(spec.Count),
			Y:         l.offset,
			W:         w,
			H:         h,
			Speed:     spec.Speed,
			Kind:      spec.Kind,
			Direction: spec.Direction,
		}
		if i == 0 {
			o.Visibility = Active
		}
		l.obstacles[i] = o
	}
	return l
}

// Index returns the lane's position in the roadway, 0 being the bottom.
func (l *Lane) Index() int { return l.index }

// Offset returns the lane's top edge.
func (l *Lane) Offset() float64 { return l.offset }

// Direction returns the shared travel direction.
func (l *Lane) Direction() Direction { return l.direction }

// BaseSpeed returns the speed obstacles are reset to after a life is lost.
func (l *Lane) BaseSpeed() float64 { return l.baseSpeed }

// Len returns the number of obstacles in the lane.
func (l *Lane) Len() int { return len(l.obstacles) }

// Obstacle returns a copy of the i-th obstacle in spawn order.
func (l *Lane) Obstacle(i int) Obstacle { return l.obstacles[i] }

// Obstacles yields copies of the lane's obstacles in spawn order.
func (l *Lane) Obstacles() iter.Seq[Obstacle] {
	return func(yield func(Obstacle) bool) {
		for _, o := range l.obstacles {
			if !yield(o) {
				return
			}
		}
	}
}

func (l *Lane) advance(width float64, ramp RampPolicy) {
	for i := range l.obstacles {
		o := &l.obstacles[i]
		if !o.advance(width) {
			continue
		}
		if o.Visibility == Queued {
			o.Visibility = Active
		}
		o.Speed = ramp.next(o.Speed)
	}
}

func (l *Lane) setSpeed(speed float64) {
	for i := range l.obstacles {
		l.obstacles[i].Speed = speed
	}
}

func (l *Lane) resetSpeeds() {
	l.setSpeed(l.baseSpeed)
}
