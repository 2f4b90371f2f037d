package ecs

import "github.com/milk9111/aoewarnings/ecs/component"

// Query returns the live entities carrying every listed component id. The
// smallest store drives the scan.
func (w *World) Query(ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	var smallest *SparseSet
	for _, id := range ids {
		store, ok := w.stores[id]
		if !ok || store.Len() == 0 {
			return nil
		}
		if smallest == nil || store.Len() < smallest.Len() {
			smallest = store
		}
	}
	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.denseEntities {
		if w.hasAll(e, ids) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying the component id.
func (w *World) First(id component.ComponentID) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	store, ok := w.stores[id]
	if !ok || store.Len() == 0 {
		return 0, false
	}
	return store.denseEntities[0], true
}

func (w *World) hasAll(e Entity, ids []component.ComponentID) bool {
	for _, id := range ids {
		if !w.stores[id].Has(e.id()) {
			return false
		}
	}
	return true
}
