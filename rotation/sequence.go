package rotation

import "github.com/go-gl/mathgl/mgl64"

// Phase identifies where a TurnSequence is in its turn/release cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTurning
	PhaseReleasing
)

func (p Phase) String() string {
	switch p {
	case PhaseTurning:
		return "turning"
	case PhaseReleasing:
		return "releasing"
	default:
		return "idle"
	}
}

// TurnSequence runs two Lerps back to back: turn toward the target at one
// speed, then release back to identity at another. It holds the phase tag
// and the single live Lerp by value, so restarting never allocates.
type TurnSequence struct {
	target       mgl64.Quat
	turnSpeed    float64
	releaseSpeed float64

	phase Phase
	lerp  Lerp
}

// NewTurnSequence creates an idle sequence toward target.
func NewTurnSequence(target mgl64.Quat, turnSpeed, releaseSpeed float64) TurnSequence {
	return TurnSequence{
		target:       target,
		turnSpeed:    turnSpeed,
		releaseSpeed: releaseSpeed,
	}
}

// Start resets the sequence to the turning phase with a fresh Lerp. Calling
// Start mid-cycle discards in-flight progress and restarts from zero.
func (s *TurnSequence) Start() {
	s.phase = PhaseTurning
	s.lerp = NewLerp(s.target, s.turnSpeed, false, true)
}

// Update advances the active phase. Idle is a no-op.
func (s *TurnSequence) Update(dt float64) {
	switch s.phase {
	case PhaseTurning:
		s.lerp.Advance(dt)
		if s.lerp.Finished() {
			s.phase = PhaseReleasing
			s.lerp = NewLerp(s.target, s.releaseSpeed, true, true)
		}
	case PhaseReleasing:
		s.lerp.Advance(dt)
		if s.lerp.Finished() {
			s.phase = PhaseIdle
			s.lerp = Lerp{}
		}
	}
}

// Rotation returns the live Lerp's rotation, or identity when idle.
func (s *TurnSequence) Rotation() mgl64.Quat {
	if s.phase == PhaseIdle {
		return mgl64.QuatIdent()
	}
	return s.lerp.Rotation()
}

// Phase returns the current phase tag.
func (s *TurnSequence) Phase() Phase {
	return s.phase
}

// Idle reports whether the sequence has nothing left to animate.
func (s *TurnSequence) Idle() bool {
	return s.phase == PhaseIdle
}

// Progress returns the live Lerp's raw progress, 0 when idle.
func (s *TurnSequence) Progress() float64 {
	if s.phase == PhaseIdle {
		return 0
	}
	return s.lerp.Progress()
}
