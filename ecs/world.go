package ecs

import "github.com/milk9111/doorway/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, components, system order, and the event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	systems  []System
	events   EventQueue

	triggers *TriggerWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once with the elapsed tick time, then flushes
// any events left unconsumed.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetTriggerWorld attaches a trigger space to this world.
func (w *World) SetTriggerWorld(tw *TriggerWorld) {
	if w == nil {
		return
	}
	w.triggers = tw
}

// TriggerWorld returns the attached trigger space, if any.
func (w *World) TriggerWorld() *TriggerWorld {
	if w == nil {
		return nil
	}
	return w.triggers
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
