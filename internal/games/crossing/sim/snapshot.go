package sim

import (
	"math"
	"time"
)

// Snapshot is a flat copy of the simulation state for determinism checks
// and debugging.
type Snapshot struct {
	Frames        uint64
	Now           time.Duration
	Phase         string
	Lives         int
	Score         int
	TimeRemaining int

	ActorX float64
	ActorY float64

	// One entry per goal slot.
	Claimed []bool

	// Obstacles bottom lane first, 3 values each: X, Speed, Visibility.
	ObstacleData []float64
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:        s.frames,
		Now:           s.clock.Now(),
		Phase:         s.phase.String(),
		Lives:         s.lives,
		Score:         s.score,
		TimeRemaining: s.timeRemaining,
	}

	a := s.controller.Actor()
	snap.ActorX, snap.ActorY = a.X, a.Y

	snap.Claimed = make([]bool, 0, s.goals.Len())
	for slot := range s.goals.Slots() {
		snap.Claimed = append(snap.Claimed, slot.State == Claimed)
	}

	for _, lane := range s.roadway.Lanes() {
		for o := range lane.Obstacles() {
			snap.ObstacleData = append(snap.ObstacleData, o.X, o.Speed, float64(o.Visibility))
		}
	}
	return snap
}

// Hash folds the snapshot into a single value.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frames
	h = h*31 + uint64(snap.Now)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeRemaining) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ActorX)
	h = h*31 + math.Float64bits(snap.ActorY)
	for _, c := range snap.Claimed {
		if c {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
