package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
)

// PlayerSystem steers the demo probe with WASD / arrow keys by setting its
// body velocity. The trigger system steps the space afterwards.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem { return &PlayerSystem{} }

func (s *PlayerSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	moveX := 0.0
	moveY := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveY += 1
	}
	if l := math.Hypot(moveX, moveY); l > 1 {
		moveX /= l
		moveY /= l
	}

	ecs.ForEach(w, component.ProbeComponent.Kind(), func(e ecs.Entity, probe *component.Probe) {
		if probe.Body == nil {
			return
		}
		probe.Body.SetVelocity(moveX*probe.MoveSpeed, moveY*probe.MoveSpeed)
	})
}
