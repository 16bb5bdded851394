package system

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/doorway/ecs"
	"github.com/milk9111/doorway/ecs/component"
)

// RenderSystem draws the top-down demo scene with vector strokes: trigger
// zones, door leaves swinging about their hinges, handles, and the player
// probe. It is a draw pass, not an update system.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem { return &RenderSystem{} }

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Darkslategray)

	ecs.ForEach2(w, component.TriggerZoneComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, zone *component.TriggerZone, tr *component.Transform) {
		clr := color.Color(colornames.Slategray)
		if zone.Occupied {
			clr = colornames.Seagreen
		}
		x := float32(tr.Position.X() - zone.Width/2)
		y := float32(tr.Position.Y() - zone.Height/2)
		vector.StrokeRect(screen, x, y, float32(zone.Width), float32(zone.Height), 2, clr, true)
	})

	ecs.ForEach3(w, component.DoorComponent.Kind(), component.DoorStateComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, door *component.Door, _ *component.DoorState, tr *component.Transform) {
		hinge := tr.Position.Add(tr.Rotation.Rotate(door.HingeOffset))
		// The leaf is the segment from the hinge through the leaf origin,
		// extended symmetrically.
		end := tr.Position.Mul(2).Sub(hinge)
		vector.StrokeLine(screen,
			float32(hinge.X()), float32(hinge.Y()),
			float32(end.X()), float32(end.Y()),
			5, colornames.Burlywood, true)
		vector.DrawFilledCircle(screen, float32(hinge.X()), float32(hinge.Y()), 4, colornames.Sienna, true)
	})

	ecs.ForEach2(w, component.HandleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, h *component.Handle, tr *component.Transform) {
		dir := tr.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
		angle := math.Atan2(dir.Y(), dir.X())
		const length = 10
		x0 := float32(tr.Position.X())
		y0 := float32(tr.Position.Y())
		x1 := x0 + float32(length*math.Cos(angle))
		y1 := y0 + float32(length*math.Sin(angle))
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, colornames.Gold, true)
	})

	ecs.ForEach2(w, component.ProbeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Probe, tr *component.Transform) {
		vector.DrawFilledCircle(screen, float32(tr.Position.X()), float32(tr.Position.Y()), 8, colornames.Lightsteelblue, true)
	})
}
