package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
)

// GravitySystem sums the pull of every attractor on each body that carries a
// GravityField and records the closest attractor.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (s *GravitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p := profile(w)
	bodies := attractors(w)

	ecs.ForEach2(w, component.GravityFieldComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, g *component.GravityField, b *component.Body) {
		g.Field = physics.Gravity(p, b.Position, b.Radius, bodies)
	})
}
