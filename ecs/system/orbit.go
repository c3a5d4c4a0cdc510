package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
)

// OrbitSystem spins every planet, then places orbiting bodies from the
// primary's new rotation.
type OrbitSystem struct{}

func NewOrbitSystem() *OrbitSystem {
	return &OrbitSystem{}
}

func (s *OrbitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := delta(w)

	ecs.ForEach2(w, component.PlanetComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, p *component.Planet, b *component.Body) {
		b.Rotation = physics.Rotate(b.Rotation, p.RotationSpeed, dt)
	})

	pe, ok := w.First(component.PrimaryTagComponent.Kind())
	if !ok {
		return
	}
	center, ok := ecs.Get(w, pe, component.BodyComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.OrbitComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, o *component.Orbit, b *component.Body) {
		if e == pe {
			return
		}
		b.Position = physics.OrbitPosition(center.Position, center.Rotation, o.Angle, o.Distance, o.Speed)
	})
}
