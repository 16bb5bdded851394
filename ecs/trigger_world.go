package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeProbe cp.CollisionType = iota + 1
	collisionTypeZone
)

// TriggerWorld owns the Chipmunk space used for door trigger zones. Zones
// are static sensor boxes; anything registered as a probe flips their
// occupancy through begin/separate callbacks.
type TriggerWorld struct {
	space         *cp.Space
	handlersReady bool

	zoneShapes map[*cp.Shape]Entity
	occupancy  map[Entity]int
}

// NewTriggerWorld creates an empty trigger space with no gravity.
func NewTriggerWorld() *TriggerWorld {
	space := cp.NewSpace()
	space.Iterations = 10

	tw := &TriggerWorld{
		space:      space,
		zoneShapes: make(map[*cp.Shape]Entity),
		occupancy:  make(map[Entity]int),
	}
	tw.setupHandlers()
	return tw
}

// Space returns the underlying Chipmunk space.
func (tw *TriggerWorld) Space() *cp.Space {
	if tw == nil {
		return nil
	}
	return tw.space
}

// AddZone registers a static sensor box for a door entity. x,y is the box
// center.
func (tw *TriggerWorld) AddZone(e Entity, x, y, w, h float64) {
	if tw == nil || tw.space == nil || !e.Valid() {
		return
	}
	bb := cp.BB{L: x - w/2, B: y - h/2, R: x + w/2, T: y + h/2}
	shape := cp.NewBox2(tw.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeZone)
	tw.space.AddShape(shape)
	tw.zoneShapes[shape] = e
}

// RemoveZone drops all sensor shapes registered for the entity.
func (tw *TriggerWorld) RemoveZone(e Entity) {
	if tw == nil || tw.space == nil {
		return
	}
	for shape, owner := range tw.zoneShapes {
		if owner != e {
			continue
		}
		tw.space.RemoveShape(shape)
		delete(tw.zoneShapes, shape)
	}
	delete(tw.occupancy, e)
}

// NewProbe creates a dynamic body whose box shape trips trigger zones.
// Rotation is locked; callers steer it by setting its velocity.
func (tw *TriggerWorld) NewProbe(x, y, w, h float64) *cp.Body {
	if tw == nil || tw.space == nil {
		return nil
	}
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeProbe)
	tw.space.AddBody(body)
	tw.space.AddShape(shape)
	return body
}

// Occupied reports whether any probe currently overlaps the entity's zone.
func (tw *TriggerWorld) Occupied(e Entity) bool {
	if tw == nil {
		return false
	}
	return tw.occupancy[e] > 0
}

// Step advances the trigger space.
func (tw *TriggerWorld) Step(dt float64) {
	if tw == nil || tw.space == nil {
		return
	}
	tw.space.Step(dt)
}

func (tw *TriggerWorld) setupHandlers() {
	if tw == nil || tw.handlersReady || tw.space == nil {
		return
	}

	handler := tw.space.NewCollisionHandler(collisionTypeProbe, collisionTypeZone)
	handler.UserData = tw
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*TriggerWorld)
		if !ok || world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		if e, ok := world.zoneShapes[shapeA]; ok {
			world.occupancy[e]++
		}
		if e, ok := world.zoneShapes[shapeB]; ok {
			world.occupancy[e]++
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*TriggerWorld)
		if !ok || world == nil {
			return
		}
		shapeA, shapeB := arb.Shapes()
		for _, shape := range []*cp.Shape{shapeA, shapeB} {
			e, ok := world.zoneShapes[shape]
			if !ok {
				continue
			}
			if world.occupancy[e] > 0 {
				world.occupancy[e]--
			}
		}
	}

	tw.handlersReady = true
}
