package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Door holds the authored swing configuration. Runtime state lives in
// DoorState so prefab reloads can swap config without losing travel.
type Door struct {
	SwingAngle  float64 // degrees swept between closed and fully open
	SwingSpeed  float64 // travel units per second
	Axis        mgl64.Vec3
	HingeOffset mgl64.Vec3 // local offset from the leaf position to the hinge

	StartOpen   bool
	KeepOpen    bool
	TurnOnClose bool

	// HasToggleKey false means proximity-only; the input system must not
	// query key state at all in that case.
	ToggleKey    ebiten.Key
	HasToggleKey bool

	// Handle is the entity carrying the Handle component, 0 for none.
	Handle uint64
}

// DoorState is the per-door runtime: open flag, travel proportion, and the
// previous-frame values needed for edge detection and incremental rotation.
type DoorState struct {
	Initialized bool
	IsOpen      bool
	WasOpen     bool
	EverOpen    bool
	Travel      float64
	PrevTravel  float64
}

var DoorComponent = NewComponent[Door]()
var DoorStateComponent = NewComponent[DoorState]()
