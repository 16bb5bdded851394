package entity

import (
	"errors"
	"log"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
	"github.com/milk9111/doorway/prefabs"
	"github.com/milk9111/doorway/rotation"
)

// BuildDoor creates a door entity (and its handle entity, if authored)
// from a prefab spec, registering its trigger zone with the world's
// trigger space. Missing audio is skipped with a log line, not an error.
func BuildDoor(w *ecs.World, spec *prefabs.DoorSpec, pos mgl64.Vec3) (ecs.Entity, error) {
	if w == nil || spec == nil {
		return 0, errors.New("entity: nil world or door spec")
	}

	e := ecs.CreateEntity(w)

	tr := component.NewTransform(pos)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &tr); err != nil {
		return 0, err
	}

	door := &component.Door{
		SwingAngle:  spec.Door.SwingAngle,
		SwingSpeed:  spec.Door.SwingSpeed,
		Axis:        specVec3(spec.Door.Axis),
		HingeOffset: specVec3(spec.Door.HingeOffset),
		StartOpen:   spec.Door.StartOpen,
		KeepOpen:    spec.Door.KeepOpen,
		TurnOnClose: spec.Door.TurnOnClose,
	}

	if key, ok := keyFromName(spec.Door.ToggleKey); ok {
		door.ToggleKey = key
		door.HasToggleKey = true
		if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
			return 0, err
		}
	}

	if spec.Handle != nil {
		he, err := buildHandle(w, spec.Handle, pos)
		if err != nil {
			return 0, err
		}
		door.Handle = uint64(he)
	}

	if err := ecs.Add(w, e, component.DoorComponent.Kind(), door); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.DoorStateComponent.Kind(), &component.DoorState{}); err != nil {
		return 0, err
	}

	if spec.Trigger.Width > 0 && spec.Trigger.Height > 0 {
		zone := &component.TriggerZone{Width: spec.Trigger.Width, Height: spec.Trigger.Height}
		if err := ecs.Add(w, e, component.TriggerZoneComponent.Kind(), zone); err != nil {
			return 0, err
		}
		if tw := w.TriggerWorld(); tw != nil {
			tw.AddZone(e, pos.X(), pos.Y(), zone.Width, zone.Height)
		}
	}

	if audioComp, err := buildAudioComponent(spec.Audio); err != nil {
		log.Printf("entity: door %q audio skipped: %v", spec.Name, err)
	} else if audioComp != nil {
		if err := ecs.Add(w, e, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, err
		}
	}

	if strings.TrimSpace(spec.Script) != "" {
		if err := ecs.Add(w, e, component.ScriptComponent.Kind(), &component.Script{Path: spec.Script}); err != nil {
			return 0, err
		}
	}

	return e, nil
}

// DestroyDoor tears down a door entity, its handle, and its trigger zone.
func DestroyDoor(w *ecs.World, e ecs.Entity) {
	if w == nil {
		return
	}
	if door, ok := ecs.Get(w, e, component.DoorComponent.Kind()); ok && door.Handle != 0 {
		ecs.DestroyEntity(w, ecs.Entity(door.Handle))
	}
	if tw := w.TriggerWorld(); tw != nil {
		tw.RemoveZone(e)
	}
	ecs.DestroyEntity(w, e)
}

func buildHandle(w *ecs.World, spec *prefabs.HandleSpec, doorPos mgl64.Vec3) (ecs.Entity, error) {
	target := mgl64.AnglesToQuat(
		mgl64.DegToRad(spec.Target.X),
		mgl64.DegToRad(spec.Target.Y),
		mgl64.DegToRad(spec.Target.Z),
		mgl64.XYZ,
	)

	he := ecs.CreateEntity(w)
	h := &component.Handle{
		Target:       target,
		TurnSpeed:    spec.TurnSpeed,
		ReleaseSpeed: spec.ReleaseSpeed,
		Sequence:     rotation.NewTurnSequence(target, spec.TurnSpeed, spec.ReleaseSpeed),
	}
	if err := ecs.Add(w, he, component.HandleComponent.Kind(), h); err != nil {
		return 0, err
	}

	tr := component.NewTransform(doorPos.Add(specVec3(spec.Offset)))
	if err := ecs.Add(w, he, component.TransformComponent.Kind(), &tr); err != nil {
		return 0, err
	}
	return he, nil
}

func specVec3(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
