package sim

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/roadcross/internal/core"
)

// SlotState is whether a goal slot can still be claimed.
type SlotState int

const (
	Open SlotState = iota
	Claimed
)

func (s SlotState) String() string {
	if s == Claimed {
		return "claimed"
	}
	return "open"
}

// Default goal row layout.
const (
	GoalSlotCount   = 5
	GoalSlotFirstX  = 100.0
	GoalSlotSpacing = 100.0
	GoalSlotSize    = 50.0
)

// GoalSlot is one landing target.
type GoalSlot struct {
	Index  int
	Bounds core.Rect
	State  SlotState
}

// GoalSlots is the fixed row of landing targets.
type GoalSlots struct {
	slots []GoalSlot
}

// NewGoalSlots creates one open slot per rectangle.
func NewGoalSlots(bounds []core.Rect) (*GoalSlots, error) {
	if len(bounds) == 0 {
		return nil, fmt.Errorf("%w: no goal slots", ErrInvalidArgument)
	}
	g := &GoalSlots{slots: make([]GoalSlot, len(bounds))}
	for i, b := range bounds {
		if b.W <= 0 || b.H <= 0 {
			return nil, fmt.Errorf("%w: goal slot %d has size %vx%v", ErrInvalidArgument, i, b.W, b.H)
		}
		g.slots[i] = GoalSlot{Index: i, Bounds: b}
	}
	return g, nil
}

// DefaultGoalBounds returns the standard five slots along the top row.
func DefaultGoalBounds() []core.Rect {
	bounds := make([]core.Rect, GoalSlotCount)
	for i := range bounds {
		x := GoalSlotFirstX + GoalSlotSpacing*float64(i)
		bounds[i] = core.NewRect(x, TopRow, GoalSlotSize, GoalSlotSize)
	}
	return bounds
}

// Len returns the number of slots.
func (g *GoalSlots) Len() int { return len(g.slots) }

// Slot returns a copy of slot i.
func (g *GoalSlots) Slot(i int) GoalSlot { return g.slots[i] }

// Slots yields copies of all slots left to right.
func (g *GoalSlots) Slots() iter.Seq[GoalSlot] {
	return func(yield func(GoalSlot) bool) {
		for _, s := range g.slots {
			if !yield(s) {
				return
			}
		}
	}
}

// Open returns the number of unclaimed slots.
func (g *GoalSlots) Open() int {
	n := 0
	for _, s := range g.slots {
		if s.State == Open {
			n++
		}
	}
	return n
}

// AllClaimed reports whether every slot is taken.
func (g *GoalSlots) AllClaimed() bool {
	return g.Open() == 0
}

// Land claims the first open slot overlapping rect. Claimed slots are
// ignored. It returns the claimed index, or false on a miss.
func (g *GoalSlots) Land(rect core.Rect) (int, bool) {
	for i := range g.slots {
		s := &g.slots[i]
		if s.State == Open && s.Bounds.Intersects(rect) {
			s.State = Claimed
			return i, true
		}
	}
	return -1, false
}
