package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
	"github.com/stretchr/testify/require"
)

// recorder keeps a copy of every event it sees. Put it last in a scheduler
// to capture a whole frame.
type recorder struct {
	events []ecs.Event
}

func (r *recorder) Update(w *ecs.World) {
	r.events = append(r.events, w.Events().Items()...)
}

func (r *recorder) of(t ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, evt := range r.events {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}

func add[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	require.NoError(t, ecs.Add(w, e, kind, v))
}

func newSession(t *testing.T, w *ecs.World, p physics.Profile) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.SessionTagComponent.Kind(), &component.SessionTag{})
	add(t, w, e, component.ClockComponent.Kind(), &component.Clock{Delta: 1})
	add(t, w, e, component.ViewportComponent.Kind(), &component.Viewport{Width: 1280, Height: 720})
	add(t, w, e, component.TuningComponent.Kind(), &component.Tuning{Profile: p})
	add(t, w, e, component.ScoreComponent.Kind(), &component.Score{})
	add(t, w, e, component.PointerComponent.Kind(), &component.Pointer{})
	add(t, w, e, component.DraggingComponent.Kind(), &component.Dragging{})
	add(t, w, e, component.LineRenderComponent.Kind(), &component.LineRender{})
	return e
}

func newPlanet(t *testing.T, w *ecs.World, pos cp.Vector, radius, spin float64, primary bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.BodyComponent.Kind(), &component.Body{ID: uint64(e), Position: pos, InitialPosition: pos, Radius: radius})
	add(t, w, e, component.PlanetComponent.Kind(), &component.Planet{RotationSpeed: spin})
	add(t, w, e, component.AttractorTagComponent.Kind(), &component.AttractorTag{})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1})
	if primary {
		add(t, w, e, component.PrimaryTagComponent.Kind(), &component.PrimaryTag{})
	}
	return e
}

func newRocket(t *testing.T, w *ecs.World, pos, initial cp.Vector, radius float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	add(t, w, e, component.BodyComponent.Kind(), &component.Body{ID: uint64(e), Position: pos, InitialPosition: initial, Radius: radius})
	add(t, w, e, component.RocketComponent.Kind(), &component.Rocket{State: physics.StateFreeFlight, DefaultRotation: 1.5 * math.Pi})
	add(t, w, e, component.GravityFieldComponent.Kind(), &component.GravityField{})
	add(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, ScaleX: 1, ScaleY: 1})
	add(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Alpha: 1})
	return e
}

func body(t *testing.T, w *ecs.World, e ecs.Entity) *component.Body {
	t.Helper()
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	require.True(t, ok, "entity %s has no body", e)
	return b
}

func rocketOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Rocket {
	t.Helper()
	r, ok := ecs.Get(w, e, component.RocketComponent.Kind())
	require.True(t, ok, "entity %s is not a rocket", e)
	return r
}
