package ecs

import "github.com/milk9111/doorway/ecs/component"

// Add attaches a component to an entity, replacing any previous value.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID(), true).set(e, v)
	return nil
}

// Get returns the entity's component for mutation in place.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !k.Valid() || !IsAlive(w, e) {
		return nil, false
	}
	v := w.store(k.ID(), false).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !k.Valid() {
		return false
	}
	s := w.store(k.ID(), false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// ForEach calls fn for every live entity carrying the component.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(e Entity, v *T)) {
	if w == nil || !k.Valid() || fn == nil {
		return
	}
	s := w.store(k.ID(), false)
	if s == nil {
		return
	}
	for _, e := range append([]Entity(nil), s.entities()...) {
		if !IsAlive(w, e) {
			continue
		}
		if v, ok := Get(w, e, k); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 calls fn for every live entity carrying all three components.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}

// First returns some live entity carrying the component, if one exists.
func First[T any](w *World, k component.ComponentKind[T]) (Entity, *T, bool) {
	if w == nil || !k.Valid() {
		return 0, nil, false
	}
	s := w.store(k.ID(), false)
	if s == nil {
		return 0, nil, false
	}
	for _, e := range s.entities() {
		if !IsAlive(w, e) {
			continue
		}
		if v, ok := Get(w, e, k); ok {
			return e, v, true
		}
	}
	return 0, nil, false
}
