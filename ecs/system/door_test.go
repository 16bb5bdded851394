package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
	"github.com/milk9111/doorway/rotation"
)

const tick = 1.0 / 60

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func addDoor(t *testing.T, w *ecs.World, door component.Door) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	tr := component.NewTransform(mgl64.Vec3{100, 100, 0})
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &tr))
	must(t, ecs.Add(w, e, component.DoorComponent.Kind(), &door))
	must(t, ecs.Add(w, e, component.DoorStateComponent.Kind(), &component.DoorState{}))
	must(t, ecs.Add(w, e, component.TriggerZoneComponent.Kind(), &component.TriggerZone{Width: 100, Height: 100}))
	return e
}

func setOccupied(t *testing.T, w *ecs.World, e ecs.Entity, v bool) {
	t.Helper()
	zone, ok := ecs.Get(w, e, component.TriggerZoneComponent.Kind())
	if !ok {
		t.Fatal("door has no trigger zone")
	}
	zone.Occupied = v
}

func doorState(t *testing.T, w *ecs.World, e ecs.Entity) *component.DoorState {
	t.Helper()
	st, ok := ecs.Get(w, e, component.DoorStateComponent.Kind())
	if !ok {
		t.Fatal("door has no state")
	}
	return st
}

func addHandleEntity(t *testing.T, w *ecs.World, turnSpeed, releaseSpeed float64) ecs.Entity {
	t.Helper()
	target := mgl64.QuatRotate(mgl64.DegToRad(55), mgl64.Vec3{0, 0, 1})
	he := ecs.CreateEntity(w)
	h := &component.Handle{
		Target:       target,
		TurnSpeed:    turnSpeed,
		ReleaseSpeed: releaseSpeed,
		Sequence:     rotation.NewTurnSequence(target, turnSpeed, releaseSpeed),
	}
	must(t, ecs.Add(w, he, component.HandleComponent.Kind(), h))
	return he
}

func TestDoorTravelClamped(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()
	e := addDoor(t, w, component.Door{SwingAngle: 90, SwingSpeed: 5, Axis: mgl64.Vec3{0, 0, 1}})

	setOccupied(t, w, e, true)
	s.Update(w, 10)
	if got := doorState(t, w, e).Travel; got != 1 {
		t.Fatalf("travel after huge opening step = %v, want 1", got)
	}

	setOccupied(t, w, e, false)
	s.Update(w, 10)
	if got := doorState(t, w, e).Travel; got != 0 {
		t.Fatalf("travel after huge closing step = %v, want 0", got)
	}
}

func TestDoorSwingsToExactAngle(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()

	offset := mgl64.Vec3{-25, 0, 0}
	e := addDoor(t, w, component.Door{
		SwingAngle:  90,
		SwingSpeed:  1,
		Axis:        mgl64.Vec3{0, 0, 1},
		HingeOffset: offset,
	})
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	hinge0 := tr.Position.Add(tr.Rotation.Rotate(offset))

	setOccupied(t, w, e, true)
	for i := 0; i < 70; i++ {
		s.Update(w, tick)
	}

	if got := doorState(t, w, e).Travel; got != 1 {
		t.Fatalf("travel = %v, want 1", got)
	}

	// Fully open means the leaf has swept exactly the swing angle.
	rotated := tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	angle := math.Atan2(rotated.Y(), rotated.X())
	if math.Abs(angle-math.Pi/2) > 1e-6 {
		t.Fatalf("swept angle = %v rad, want %v", angle, math.Pi/2)
	}

	// The hinge point must not move while the leaf swings.
	hinge := tr.Position.Add(tr.Rotation.Rotate(offset))
	if hinge.Sub(hinge0).Len() > 1e-6 {
		t.Fatalf("hinge drifted from %v to %v", hinge0, hinge)
	}

	// Vacating the zone swings it all the way back.
	setOccupied(t, w, e, false)
	for i := 0; i < 70; i++ {
		s.Update(w, tick)
	}
	if got := doorState(t, w, e).Travel; got != 0 {
		t.Fatalf("travel after closing = %v, want 0", got)
	}
	rotated = tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
	if rotated.Sub(mgl64.Vec3{1, 0, 0}).Len() > 1e-6 {
		t.Fatalf("leaf did not return to rest, x axis = %v", rotated)
	}
	if tr.Position.Sub(mgl64.Vec3{100, 100, 0}).Len() > 1e-6 {
		t.Fatalf("leaf position did not return to rest, got %v", tr.Position)
	}
}

func TestDoorEdgeEffects(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()

	he := addHandleEntity(t, w, 2, 4)
	e := addDoor(t, w, component.Door{
		SwingAngle: 90,
		SwingSpeed: 1,
		Axis:       mgl64.Vec3{0, 0, 1},
		Handle:     uint64(he),
	})
	a := &component.Audio{
		Names: []string{"open", "close"},
		Play:  []bool{false, false},
		Stop:  []bool{false, false},
	}
	must(t, ecs.Add(w, e, component.AudioComponent.Kind(), a))

	setOccupied(t, w, e, true)
	s.Update(w, tick)

	if !a.Play[0] || a.Play[1] {
		t.Fatalf("open edge should trigger only the open clip, play = %v", a.Play)
	}
	h, _ := ecs.Get(w, he, component.HandleComponent.Kind())
	if h.Sequence.Phase() != rotation.PhaseTurning {
		t.Fatalf("open edge should start the handle, phase = %v", h.Sequence.Phase())
	}
	events := w.Events().Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 event on open edge, got %d", len(events))
	}
	evt, ok := events[0].Data.(ecs.DoorEvent)
	if !ok || evt.Kind != ecs.DoorEventOpened || evt.Entity != e {
		t.Fatalf("unexpected open event: %+v", events[0])
	}

	// No edge while the state holds.
	a.Play[0] = false
	s.Update(w, tick)
	if a.Play[0] || a.Play[1] {
		t.Fatalf("steady open state should not retrigger audio, play = %v", a.Play)
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("steady open state should not emit events, got %v", evts)
	}

	setOccupied(t, w, e, false)
	s.Update(w, tick)
	if a.Play[0] || !a.Play[1] {
		t.Fatalf("close edge should trigger only the close clip, play = %v", a.Play)
	}
	events = w.Events().Drain()
	if len(events) != 1 {
		t.Fatalf("expected 1 event on close edge, got %d", len(events))
	}
	evt, ok = events[0].Data.(ecs.DoorEvent)
	if !ok || evt.Kind != ecs.DoorEventClosed || evt.Entity != e {
		t.Fatalf("unexpected close event: %+v", events[0])
	}
}

func TestDoorKeepOpenLatch(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()
	e := addDoor(t, w, component.Door{
		SwingAngle: 90,
		SwingSpeed: 2,
		Axis:       mgl64.Vec3{0, 0, 1},
		KeepOpen:   true,
	})

	setOccupied(t, w, e, true)
	s.Update(w, 1)
	setOccupied(t, w, e, false)
	for i := 0; i < 10; i++ {
		s.Update(w, 1)
	}

	st := doorState(t, w, e)
	if !st.IsOpen || st.Travel != 1 {
		t.Fatalf("keep_open door closed after zone vacated: open=%v travel=%v", st.IsOpen, st.Travel)
	}
}

func TestDoorToggleKey(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()
	e := addDoor(t, w, component.Door{
		SwingAngle:   90,
		SwingSpeed:   2,
		Axis:         mgl64.Vec3{0, 0, 1},
		HasToggleKey: true,
		ToggleKey:    0,
	})
	in := &component.Input{}
	must(t, ecs.Add(w, e, component.InputComponent.Kind(), in))

	// Press outside the zone does nothing.
	in.TogglePressed = true
	s.Update(w, tick)
	if doorState(t, w, e).IsOpen {
		t.Fatal("toggle outside the zone should be ignored")
	}

	// Press inside the zone opens.
	setOccupied(t, w, e, true)
	in.TogglePressed = true
	s.Update(w, tick)
	if !doorState(t, w, e).IsOpen {
		t.Fatal("toggle inside the zone should open the door")
	}

	// Holding position without a press keeps it open.
	in.TogglePressed = false
	s.Update(w, tick)
	if !doorState(t, w, e).IsOpen {
		t.Fatal("keyed door should stay open without a new press")
	}

	// Leaving the zone does not close a keyed door.
	setOccupied(t, w, e, false)
	s.Update(w, tick)
	if !doorState(t, w, e).IsOpen {
		t.Fatal("keyed door should stay open after the zone is vacated")
	}

	// A second press inside the zone closes it.
	setOccupied(t, w, e, true)
	in.TogglePressed = true
	s.Update(w, tick)
	if doorState(t, w, e).IsOpen {
		t.Fatal("second toggle should close the door")
	}
}

func TestDoorTurnOnClose(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()

	he := addHandleEntity(t, w, 2, 4)
	e := addDoor(t, w, component.Door{
		SwingAngle:  90,
		SwingSpeed:  5,
		Axis:        mgl64.Vec3{0, 0, 1},
		TurnOnClose: true,
		Handle:      uint64(he),
	})

	setOccupied(t, w, e, true)
	s.Update(w, 10)

	// Let the opening turn run to completion so the close turn is
	// observable as a fresh start.
	h, _ := ecs.Get(w, he, component.HandleComponent.Kind())
	h.Sequence.Update(0.5)
	h.Sequence.Update(0.25)
	if !h.Sequence.Idle() {
		t.Fatalf("handle should be idle before closing, phase = %v", h.Sequence.Phase())
	}

	setOccupied(t, w, e, false)
	s.Update(w, 10)

	st := doorState(t, w, e)
	if st.Travel != 0 {
		t.Fatalf("travel = %v, want 0", st.Travel)
	}
	if h.Sequence.Phase() != rotation.PhaseTurning {
		t.Fatalf("turn_on_close should restart the handle at travel 0, phase = %v", h.Sequence.Phase())
	}
}

func TestDoorStartOpenWithKey(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()
	e := addDoor(t, w, component.Door{
		SwingAngle:   90,
		SwingSpeed:   2,
		Axis:         mgl64.Vec3{0, 0, 1},
		StartOpen:    true,
		HasToggleKey: true,
	})
	must(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))

	s.Update(w, tick)
	st := doorState(t, w, e)
	if !st.IsOpen || st.Travel != 1 {
		t.Fatalf("start_open keyed door should begin fully open: open=%v travel=%v", st.IsOpen, st.Travel)
	}
	if evts := w.Events().Drain(); len(evts) != 0 {
		t.Fatalf("starting open is not an edge, got events %v", evts)
	}
}

func TestDoorWithoutTransform(t *testing.T) {
	w := ecs.NewWorld()
	s := NewDoorSystem()

	e := ecs.CreateEntity(w)
	must(t, ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{SwingAngle: 90, SwingSpeed: 1, Axis: mgl64.Vec3{0, 0, 1}}))
	must(t, ecs.Add(w, e, component.DoorStateComponent.Kind(), &component.DoorState{}))
	must(t, ecs.Add(w, e, component.TriggerZoneComponent.Kind(), &component.TriggerZone{Occupied: true}))

	s.Update(w, 0.5)
	if got := doorState(t, w, e).Travel; got != 0.5 {
		t.Fatalf("travel should still integrate without a transform, got %v", got)
	}
}
