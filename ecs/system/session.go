package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
	"go.uber.org/zap"
)

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// profile returns the active tuning, falling back to the default set when
// no session is present.
func profile(w *ecs.World) physics.Profile {
	if e, ok := w.First(component.TuningComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TuningComponent.Kind()); ok {
			return t.Profile
		}
	}
	return physics.DefaultProfile()
}

func delta(w *ecs.World) float64 {
	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		if c, ok := ecs.Get(w, e, component.ClockComponent.Kind()); ok && c.Delta > 0 {
			return c.Delta
		}
	}
	return 1
}

func viewport(w *ecs.World) component.Viewport {
	if e, ok := w.First(component.ViewportComponent.Kind()); ok {
		if v, ok := ecs.Get(w, e, component.ViewportComponent.Kind()); ok {
			return *v
		}
	}
	return component.Viewport{}
}

func singleton[T any](w *ecs.World, kind component.ComponentKind[T]) (*T, bool) {
	e, ok := w.First(kind)
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, kind)
}

// rocket returns the one rocket in the world with its body.
func rocket(w *ecs.World) (ecs.Entity, *component.Body, *component.Rocket, bool) {
	e, ok := w.First(component.RocketComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	r, _ := ecs.Get(w, e, component.RocketComponent.Kind())
	return e, body, r, true
}

func attractor(b *component.Body) physics.Attractor {
	return physics.Attractor{ID: b.ID, Position: b.Position, Radius: b.Radius, Rotation: b.Rotation}
}

// attractors snapshots every body that pulls on the rocket.
func attractors(w *ecs.World) []physics.Attractor {
	ents := w.Query(component.AttractorTagComponent.Kind(), component.BodyComponent.Kind())
	out := make([]physics.Attractor, 0, len(ents))
	for _, e := range ents {
		if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			out = append(out, attractor(b))
		}
	}
	return out
}

// bodyByID resolves a Body.ID back to the body.
func bodyByID(w *ecs.World, id uint64) (*component.Body, bool) {
	e := ecs.Entity(id)
	if !e.Valid() {
		return nil, false
	}
	return ecs.Get(w, e, component.BodyComponent.Kind())
}

// ResetRocket puts the rocket back on its launch pad: initial position, no
// velocity, default rotation, visible, no fuel. The landing angle is
// re-derived from the primary so the surface lock holds on the next frame.
func ResetRocket(w *ecs.World) bool {
	e, body, r, ok := rocket(w)
	if !ok {
		return false
	}
	body.Position = body.InitialPosition
	body.SetVelocity(cp.Vector{})
	body.Hidden = false
	if r != nil {
		body.Rotation = r.DefaultRotation
		r.ThrusterFuel = 0
		r.Launching = false
		r.State = physics.StateLanded
		if primary, ok := w.First(component.PrimaryTagComponent.Kind()); ok {
			if home, ok := ecs.Get(w, primary, component.BodyComponent.Kind()); ok {
				r.HomeBodyID = home.ID
				r.LandingAngle = physics.LandingAngle(attractor(home), body.Position)
			}
		}
	}
	if d, ok := singleton(w, component.DraggingComponent.Kind()); ok {
		*d = component.Dragging{}
	}
	w.Events().Push(ecs.Event{Type: ecs.EventReset, Body: e, X: body.Position.X, Y: body.Position.Y})
	return true
}
