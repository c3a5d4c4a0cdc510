package entity

import (
	"fmt"

	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
)

func NewIndicator(w *ecs.World) (ecs.Entity, error) {
	e, err := BuildEntity(w, indicatorPrefab)
	if err != nil {
		return 0, err
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Hidden = true
	}
	return e, nil
}

func NewSpeedometer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, speedometerPrefab)
}

// NewSession builds the singleton holding the clock, viewport, tuning,
// score and pointer state. Zero width or height keeps the prefab's size.
func NewSession(w *ecs.World, p physics.Profile, width, height float64) (ecs.Entity, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("session: %w", err)
	}
	e, err := BuildEntity(w, sessionPrefab)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TuningComponent.Kind(), &component.Tuning{Profile: p, Version: 1}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	if vp, ok := ecs.Get(w, e, component.ViewportComponent.Kind()); ok {
		if width > 0 {
			vp.Width = width
		}
		if height > 0 {
			vp.Height = height
		}
	}
	return e, nil
}
