package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/common"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
	"go.uber.org/zap"
)

// AsteroidSystem resolves asteroid contacts. A moving rocket that touches an
// asteroid crashes. Asteroids that touch a planet or each other break up.
type AsteroidSystem struct {
	logger *zap.Logger
}

func NewAsteroidSystem(logger *zap.Logger) *AsteroidSystem {
	return &AsteroidSystem{logger: orNop(logger)}
}

func (s *AsteroidSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := delta(w)

	asteroids := w.Query(component.AsteroidComponent.Kind(), component.BodyComponent.Kind())
	if len(asteroids) == 0 {
		return
	}

	if re, body, r, ok := rocket(w); ok && !body.Hidden && common.Speed(body.Velocity) > 0 {
		for _, a := range asteroids {
			ab, _ := ecs.Get(w, a, component.BodyComponent.Kind())
			if common.DistanceToSurface(ab.Position, ab.Radius, body.Position, body.Radius) > 0 {
				continue
			}
			body.Hidden = true
			body.SetVelocity(cp.Vector{})
			if r != nil {
				r.Launching = false
				r.State = physics.StateCrashImpact
			}
			s.logger.Info("rocket hit asteroid",
				zap.Stringer("asteroid", a),
				zap.Float64("x", body.Position.X),
				zap.Float64("y", body.Position.Y),
			)
			w.Events().Push(ecs.Event{Type: ecs.EventCrashed, Body: re, Other: a, X: body.Position.X, Y: body.Position.Y})
			break
		}
	}

	planets := w.Query(component.AttractorTagComponent.Kind(), component.BodyComponent.Kind())
	for i, a := range asteroids {
		if !w.IsAlive(a) {
			continue
		}
		ab, _ := ecs.Get(w, a, component.BodyComponent.Kind())

		hit, ok := s.firstContact(w, ab, planets)
		if !ok {
			hit, ok = s.firstContact(w, ab, asteroids[i+1:])
		}
		if !ok {
			continue
		}

		s.breakUp(w, a, hit, dt)
		if ecs.Has(w, hit, component.AsteroidComponent.Kind()) {
			s.breakUp(w, hit, a, dt)
		}
	}
}

func (s *AsteroidSystem) firstContact(w *ecs.World, b *component.Body, others []ecs.Entity) (ecs.Entity, bool) {
	for _, o := range others {
		ob, ok := ecs.Get(w, o, component.BodyComponent.Kind())
		if !ok || ob.ID == b.ID {
			continue
		}
		if common.DistanceToSurface(b.Position, b.Radius, ob.Position, ob.Radius) <= 0 {
			return o, true
		}
	}
	return 0, false
}

func (s *AsteroidSystem) breakUp(w *ecs.World, e, other ecs.Entity, dt float64) {
	a, ok := ecs.Get(w, e, component.AsteroidComponent.Kind())
	if !ok {
		return
	}
	b, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	a.CrashingDuration += dt

	s.logger.Debug("asteroid impact", zap.Stringer("asteroid", e), zap.Stringer("other", other))
	w.Events().Push(ecs.Event{Type: ecs.EventAsteroidImpact, Body: e, Other: other, X: b.Position.X, Y: b.Position.Y})
	ecs.DestroyEntity(w, e)
}
