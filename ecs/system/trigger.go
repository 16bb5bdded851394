package system

import (
	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
)

// TriggerSystem steps the trigger space, syncs zone occupancy into
// TriggerZone components, and mirrors probe body positions back onto their
// transforms.
type TriggerSystem struct{}

func NewTriggerSystem() *TriggerSystem { return &TriggerSystem{} }

func (s *TriggerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	tw := w.TriggerWorld()
	if tw == nil {
		return
	}

	tw.Step(dt)

	ecs.ForEach(w, component.TriggerZoneComponent.Kind(), func(e ecs.Entity, zone *component.TriggerZone) {
		zone.Occupied = tw.Occupied(e)
	})

	ecs.ForEach2(w, component.ProbeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, probe *component.Probe, tr *component.Transform) {
		if probe.Body == nil {
			return
		}
		pos := probe.Body.Position()
		tr.Position[0] = pos.X
		tr.Position[1] = pos.Y
	})
}
