package crossing

import "github.com/vovakirdan/roadcross/internal/games/crossing/sim"

// Snapshot contains the adapter state plus the simulation snapshot.
type Snapshot struct {
	Tick         int
	Paused       bool
	GoalsClaimed int
	Sim          sim.Snapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tickCount,
		Paused:       g.paused,
		GoalsClaimed: g.goalsClaimed,
	}
	if g.sim != nil {
		snap.Sim = g.sim.Snapshot()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- tick count is always positive
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.GoalsClaimed) //#nosec G115 -- hash computation
	return h*31 + snap.Sim.Hash()
}
