// Package rotation provides time-driven orientation interpolation for
// animated props: a clamped slerp between identity and a target
// orientation, and the turn-then-release sequence used by door handles.
package rotation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ease maps a progress value in [0,1] through a cosine ease-in-out curve.
func Ease(p float64) float64 {
	return 0.5 - math.Cos(p*math.Pi)/2
}

// Lerp advances a normalized progress value at a fixed speed and exposes
// the interpolated rotation between identity and a target orientation.
// Progress only ever moves toward 1; a finished Lerp is replaced, not
// rewound.
type Lerp struct {
	target   mgl64.Quat
	speed    float64
	reverse  bool
	ease     bool
	progress float64
	current  mgl64.Quat
}

// NewLerp creates an interpolator toward target. Speed is progress units
// per second; a speed <= 0 stalls forever. With reverse the displayed
// proportion runs 1 -> 0 while progress still runs 0 -> 1.
func NewLerp(target mgl64.Quat, speed float64, reverse, ease bool) Lerp {
	l := Lerp{
		target:  target,
		speed:   speed,
		reverse: reverse,
		ease:    ease,
	}
	l.current = l.interpolate()
	return l
}

// Advance moves progress forward by dt*speed, clamped to [0,1], and
// recomputes the current rotation. No-op once finished.
func (l *Lerp) Advance(dt float64) {
	if l.progress >= 1 {
		return
	}
	l.progress += dt * l.speed
	if l.progress > 1 {
		l.progress = 1
	}
	if l.progress < 0 {
		l.progress = 0
	}
	l.current = l.interpolate()
}

// Rotation returns the current interpolated rotation.
func (l *Lerp) Rotation() mgl64.Quat {
	return l.current
}

// Finished reports whether progress has reached 1.
func (l *Lerp) Finished() bool {
	return l.progress >= 1
}

// Progress returns the raw progress value in [0,1].
func (l *Lerp) Progress() float64 {
	return l.progress
}

func (l *Lerp) interpolate() mgl64.Quat {
	p := l.progress
	if l.reverse {
		p = 1 - p
	}
	if l.ease {
		p = Ease(p)
	}
	// Shortest-path slerp; componentwise Euler blending would pick up
	// gimbal artifacts for off-axis targets.
	return mgl64.QuatSlerp(mgl64.QuatIdent(), l.target, p)
}
