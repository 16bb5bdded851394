package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
)

// InputSystem samples the toggle-key edge for doors that have one
// configured. Doors without a key short-circuit before any key lookup.
type InputSystem struct {
	justPressed func(ebiten.Key) bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{justPressed: inpututil.IsKeyJustPressed}
}

func (s *InputSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.DoorComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, door *component.Door, in *component.Input) {
		if !door.HasToggleKey {
			in.TogglePressed = false
			return
		}
		in.TogglePressed = s.justPressed(door.ToggleKey)
	})
}
