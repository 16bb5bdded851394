package system

import (
	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
)

// HandleSystem advances each handle's turn/release sequence and writes the
// resulting rotation onto the handle's transform, relative to its rest
// orientation.
type HandleSystem struct{}

func NewHandleSystem() *HandleSystem { return &HandleSystem{} }

func (s *HandleSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HandleComponent.Kind(), func(e ecs.Entity, h *component.Handle) {
		tr, hasTransform := ecs.Get(w, e, component.TransformComponent.Kind())
		if hasTransform && !h.Initialized {
			h.Rest = tr.Rotation
			h.Initialized = true
		}

		h.Sequence.Update(dt)

		// A handle with no transform still runs its sequence; the
		// rotation is simply not applied anywhere.
		if hasTransform {
			tr.Rotation = h.Rest.Mul(h.Sequence.Rotation())
		}
	})
}
