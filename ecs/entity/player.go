package entity

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
)

const (
	probeSize       = 20.0
	playerMoveSpeed = 160.0
)

// BuildPlayer creates the demo probe entity with a body in the trigger
// space.
func BuildPlayer(w *ecs.World, x, y float64) (ecs.Entity, error) {
	if w == nil {
		return 0, errors.New("entity: nil world")
	}
	tw := w.TriggerWorld()
	if tw == nil {
		return 0, errors.New("entity: world has no trigger space")
	}

	e := ecs.CreateEntity(w)

	tr := component.NewTransform(mgl64.Vec3{x, y, 0})
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &tr); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, err
	}

	probe := &component.Probe{
		Body:      tw.NewProbe(x, y, probeSize, probeSize),
		MoveSpeed: playerMoveSpeed,
	}
	if err := ecs.Add(w, e, component.ProbeComponent.Kind(), probe); err != nil {
		return 0, err
	}

	return e, nil
}
