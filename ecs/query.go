package ecs

import "github.com/milk9111/lander/ecs/component"

func smallest(stores ...store) store {
	var out store
	for _, s := range stores {
		if out == nil || s.len() < out.len() {
			out = s
		}
	}
	return out
}

// Query returns the live entities that hold every given kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]store, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID())
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}

	var out []Entity
	for _, id := range smallest(stores...).ids() {
		matched := true
		for _, s := range stores {
			if !s.has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-slot live entity holding kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	s := w.store(kind.ID())
	if s == nil {
		return 0, false
	}
	var best entityID
	for _, id := range s.ids() {
		if best == 0 || id < best {
			best = id
		}
	}
	if best == 0 {
		return 0, false
	}
	return w.entities.entity(best)
}

// Count returns how many entities hold kind.
func (w *World) Count(kind component.Kind) int {
	s := w.store(kind.ID())
	if s == nil {
		return 0
	}
	return s.len()
}
