package entity

import (
	"fmt"

	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/scenario"
)

// Layout names the entities a round was built from.
type Layout struct {
	Primary     ecs.Entity
	Moons       []ecs.Entity
	Asteroids   []ecs.Entity
	Rocket      ecs.Entity
	Indicator   ecs.Entity
	Speedometer ecs.Entity
}

// Spawn builds the bodies of a generated scenario, then the rocket on the
// primary and the HUD. The session must already exist.
func Spawn(w *ecs.World, bodies []scenario.Body) (Layout, error) {
	var layout Layout

	primaries := 0
	for _, b := range bodies {
		if b.Kind != scenario.KindPrimary {
			continue
		}
		primaries++
		e, err := NewPrimary(w, b)
		if err != nil {
			return Layout{}, fmt.Errorf("spawn: %w", err)
		}
		layout.Primary = e
	}
	if primaries != 1 {
		return Layout{}, fmt.Errorf("spawn: %w (got %d)", scenario.ErrNoPrimary, primaries)
	}

	for i, b := range bodies {
		var err error
		switch b.Kind {
		case scenario.KindMoon:
			var e ecs.Entity
			e, err = NewMoon(w, layout.Primary, b)
			layout.Moons = append(layout.Moons, e)
		case scenario.KindAsteroid:
			var e ecs.Entity
			e, err = NewAsteroid(w, layout.Primary, b)
			layout.Asteroids = append(layout.Asteroids, e)
		}
		if err != nil {
			return Layout{}, fmt.Errorf("spawn: body %d: %w", i, err)
		}
	}

	var err error
	if layout.Rocket, err = NewRocket(w, layout.Primary); err != nil {
		return Layout{}, fmt.Errorf("spawn: %w", err)
	}
	if layout.Indicator, err = NewIndicator(w); err != nil {
		return Layout{}, fmt.Errorf("spawn: %w", err)
	}
	if layout.Speedometer, err = NewSpeedometer(w); err != nil {
		return Layout{}, fmt.Errorf("spawn: %w", err)
	}
	return layout, nil
}
