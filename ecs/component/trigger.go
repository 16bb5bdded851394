package component

// TriggerZone is the door's proximity volume. Width/Height describe the
// sensor box centered on the owning entity's position; Occupied is synced
// from the trigger space each tick.
type TriggerZone struct {
	Width    float64
	Height   float64
	Occupied bool
}

var TriggerZoneComponent = NewComponent[TriggerZone]()
