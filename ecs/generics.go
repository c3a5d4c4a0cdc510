package ecs

import (
	"fmt"

	"github.com/milk9111/lander/ecs/component"
)

func typedStore[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("add component to %s: %w", e, component.ErrEntityNotAlive)
	}
	typedStore(w, kind, true).set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := typedStore(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := typedStore(w, kind, false)
	return s != nil && s.has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := typedStore(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

// ForEach visits every live entity holding kind. Entities destroyed or
// stripped of the component during iteration are skipped.
func ForEach[A any](w *World, ka component.ComponentKind[A], fn func(Entity, *A)) {
	sa := typedStore(w, ka, false)
	if sa == nil || fn == nil {
		return
	}
	for _, id := range sa.ids() {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	for _, id := range smallest(sa, sb).ids() {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, aok := sa.get(id)
		b, bok := sb.get(id)
		if !aok || !bok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	sc := typedStore(w, kc, false)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	for _, id := range smallest(sa, sb, sc).ids() {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, aok := sa.get(id)
		b, bok := sb.get(id)
		c, cok := sc.get(id)
		if !aok || !bok || !cok {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa := typedStore(w, ka, false)
	sb := typedStore(w, kb, false)
	sc := typedStore(w, kc, false)
	sd := typedStore(w, kd, false)
	if sa == nil || sb == nil || sc == nil || sd == nil || fn == nil {
		return
	}
	for _, id := range smallest(sa, sb, sc, sd).ids() {
		e, ok := w.entities.entity(id)
		if !ok {
			continue
		}
		a, aok := sa.get(id)
		b, bok := sb.get(id)
		c, cok := sc.get(id)
		d, dok := sd.get(id)
		if !aok || !bok || !cok || !dok {
			continue
		}
		fn(e, a, b, c, d)
	}
}
