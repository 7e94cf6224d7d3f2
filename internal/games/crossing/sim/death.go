package sim

import "time"

// DeathStage is one frame of the life-loss animation.
type DeathStage int

const (
	StageHit DeathStage = iota
	StageSquashed
	StageBlob
	StageCross
)

// DeathStageCount is the number of stages in a death sequence.
const DeathStageCount = 4

func (s DeathStage) String() string {
	switch s {
	case StageHit:
		return "hit"
	case StageSquashed:
		return "squashed"
	case StageBlob:
		return "blob"
	case StageCross:
		return "cross"
	default:
		return "unknown"
	}
}

// DeathCause tells why a life was lost.
type DeathCause int

const (
	CauseCollision DeathCause = iota
	CauseTimeout
)

func (c DeathCause) String() string {
	if c == CauseTimeout {
		return "timeout"
	}
	return "collision"
}

// DeathSequence steps through the death stages on a clock, holding each
// stage for one interval, then calls onDone.
type DeathSequence struct {
	timer   *Timer
	stage   DeathStage
	cause   DeathCause
	active  bool
	onStage func(DeathStage, DeathCause)
	onDone  func(DeathCause)
}

// NewDeathSequence registers the sequence's timer on clock.
func NewDeathSequence(clock *Clock, interval time.Duration, onStage func(DeathStage, DeathCause), onDone func(DeathCause)) *DeathSequence {
	d := &DeathSequence{onStage: onStage, onDone: onDone}
	d.timer = clock.Every("death", interval, d.step)
	return d
}

// Start enters the first stage. Starting an active sequence does nothing.
func (d *DeathSequence) Start(cause DeathCause) {
	if d.active {
		return
	}
	d.active = true
	d.stage = StageHit
	d.cause = cause
	d.timer.Start()
	if d.onStage != nil {
		d.onStage(d.stage, d.cause)
	}
}

func (d *DeathSequence) step() {
	if d.stage < StageCross {
		d.stage++
		if d.onStage != nil {
			d.onStage(d.stage, d.cause)
		}
		return
	}
	d.active = false
	d.timer.Stop()
	if d.onDone != nil {
		d.onDone(d.cause)
	}
}

// Cancel abandons the sequence without calling onDone.
func (d *DeathSequence) Cancel() {
	d.active = false
	d.timer.Stop()
}

// Active reports whether the sequence is running.
func (d *DeathSequence) Active() bool { return d.active }

// Stage returns the current stage. Only meaningful while active.
func (d *DeathSequence) Stage() DeathStage { return d.stage }

// Cause returns the cause of the current or last death.
func (d *DeathSequence) Cause() DeathCause { return d.cause }

// Duration returns how long a full sequence takes.
func (d *DeathSequence) Duration() time.Duration {
	return d.timer.Interval() * DeathStageCount
}
