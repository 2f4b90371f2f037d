package ecs

import "github.com/milk9111/aoewarnings/ecs/component"

// Add stores a copy of value on e. Later reads through Get or ForEach see the
// stored copy, so mutations made inside ForEach persist.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.AddComponent(e, handle.Kind().ID(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind().ID())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind().ID())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, handle.Kind().ID())
	if !ok {
		return zero, false
	}
	cast, ok := value.(*T)
	if !ok || cast == nil {
		return zero, false
	}
	return *cast, true
}

// ForEach visits every entity carrying the component. The dense storage is
// walked from the back, so fn may destroy the entity it is visiting (or remove
// the visited component) and the traversal still reaches every other entry
// exactly once. Destroying any other entity during the walk is not supported.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	store, ok := w.stores[handle.Kind().ID()]
	if !ok {
		return
	}
	for i := store.Len() - 1; i >= 0; i-- {
		if i >= store.Len() {
			continue
		}
		cast, ok := store.denseValues[i].(*T)
		if !ok || cast == nil {
			continue
		}
		fn(store.denseEntities[i], cast)
	}
}

// Count returns how many entities carry the component.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	if w == nil {
		return 0
	}
	return w.stores[handle.Kind().ID()].Len()
}
