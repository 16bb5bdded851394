package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/doorway/common"
	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
)

// DoorSystem owns the open/close decision, travel integration, and the
// incremental hinge rotation. It fires the audio clips, door events, and
// handle turns on state edges.
type DoorSystem struct{}

func NewDoorSystem() *DoorSystem { return &DoorSystem{} }

func (s *DoorSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.DoorComponent.Kind(), component.DoorStateComponent.Kind(), func(e ecs.Entity, door *component.Door, st *component.DoorState) {
		if !st.Initialized {
			st.IsOpen = door.StartOpen
			st.WasOpen = st.IsOpen
			st.EverOpen = st.IsOpen
			if st.IsOpen {
				st.Travel = 1
				st.PrevTravel = 1
			}
			st.Initialized = true
		}

		occupied := false
		if zone, ok := ecs.Get(w, e, component.TriggerZoneComponent.Kind()); ok {
			occupied = zone.Occupied
		}

		if door.HasToggleKey {
			// The input system owns the key query; a door with no key
			// configured never reaches it.
			if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && in.TogglePressed && occupied {
				st.IsOpen = !st.IsOpen
			}
		} else {
			st.IsOpen = occupied
		}

		if st.IsOpen {
			st.EverOpen = true
		}
		if door.KeepOpen && st.EverOpen {
			st.IsOpen = true
		}

		if st.IsOpen != st.WasOpen {
			kind := ecs.DoorEventClosed
			clip := "close"
			if st.IsOpen {
				kind = ecs.DoorEventOpened
				clip = "open"
			}
			if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
				a.Trigger(clip)
			}
			if st.IsOpen {
				s.startHandle(w, door)
			}
			w.Events().Push(ecs.Event{
				Type: ecs.EventDoor,
				Data: ecs.DoorEvent{Entity: e, Kind: kind, Travel: st.Travel},
			})
		}
		st.WasOpen = st.IsOpen

		st.PrevTravel = st.Travel
		if st.IsOpen {
			st.Travel = common.Clamp01(st.Travel + door.SwingSpeed*dt)
		} else {
			st.Travel = common.Clamp01(st.Travel - door.SwingSpeed*dt)
		}

		// Re-turn the handle the moment the leaf settles shut.
		if door.TurnOnClose && st.Travel == 0 && st.PrevTravel > 0 {
			s.startHandle(w, door)
		}

		delta := st.Travel - st.PrevTravel
		if delta == 0 {
			return
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		axis := door.Axis
		if axis.Len() == 0 {
			return
		}

		// Incremental rotation about the fixed hinge point. The hinge
		// offset is local, so the world hinge is recovered through the
		// current orientation; it stays put as the leaf swings.
		step := mgl64.QuatRotate(mgl64.DegToRad(delta*door.SwingAngle), axis.Normalize())
		hinge := tr.Position.Add(tr.Rotation.Rotate(door.HingeOffset))
		tr.Position = hinge.Add(step.Rotate(tr.Position.Sub(hinge)))
		tr.Rotation = step.Mul(tr.Rotation).Normalize()
	})
}

func (s *DoorSystem) startHandle(w *ecs.World, door *component.Door) {
	if door == nil || door.Handle == 0 {
		return
	}
	if h, ok := ecs.Get(w, ecs.Entity(door.Handle), component.HandleComponent.Kind()); ok {
		h.Sequence.Start()
	}
}
