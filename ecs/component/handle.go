package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/doorway/rotation"
)

// Handle animates a door handle: turn toward Target, then release back to
// rest. Sequence is the live turn/release state machine.
type Handle struct {
	Target       mgl64.Quat
	TurnSpeed    float64
	ReleaseSpeed float64

	Initialized bool
	Rest        mgl64.Quat // orientation captured before the first turn
	Sequence    rotation.TurnSequence
}

var HandleComponent = NewComponent[Handle]()
