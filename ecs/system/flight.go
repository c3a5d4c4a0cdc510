package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
	"go.uber.org/zap"
)

// FlightSystem runs the flight ladder for the rocket and reports state
// changes as events.
type FlightSystem struct {
	logger *zap.Logger
}

func NewFlightSystem(logger *zap.Logger) *FlightSystem {
	return &FlightSystem{logger: orNop(logger)}
}

func (s *FlightSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p := profile(w)
	dt := delta(w)

	ecs.ForEach3(w, component.RocketComponent.Kind(), component.BodyComponent.Kind(), component.GravityFieldComponent.Kind(), func(e ecs.Entity, r *component.Rocket, b *component.Body, g *component.GravityField) {
		prev := r.State
		before := b.Position

		craft, state := physics.Resolve(p, craft(b, r), g.Field, dt)
		b.Position = craft.Position
		b.Velocity = craft.Velocity
		b.Rotation = craft.Rotation
		b.Hidden = craft.Hidden
		r.Launching = craft.Launching
		r.ThrusterFuel = craft.Fuel
		r.LandingAngle = craft.LandingAngle
		r.HomeBodyID = craft.HomeBodyID
		r.State = state

		if state != prev && s.logger.Core().Enabled(zap.DebugLevel) {
			s.logger.Debug("flight state", zap.Stringer("from", prev), zap.Stringer("to", state))
		}

		switch {
		case state == physics.StateCrashImpact:
			s.logger.Info("rocket crashed",
				zap.Float64("x", before.X),
				zap.Float64("y", before.Y),
				zap.Uint64("body", g.Field.Closest.ID),
			)
			w.Events().Push(ecs.Event{Type: ecs.EventCrashed, Body: e, Other: ecs.Entity(g.Field.Closest.ID), X: before.X, Y: before.Y})
		case state == physics.StateLanded && prev != physics.StateLanded:
			s.logger.Info("rocket landed", zap.Uint64("body", craft.HomeBodyID))
			w.Events().Push(ecs.Event{Type: ecs.EventLanded, Body: e, Other: ecs.Entity(craft.HomeBodyID), X: b.Position.X, Y: b.Position.Y})
		case prev == physics.StateLanded && state != physics.StateLanded && state != physics.StateCrashed:
			w.Events().Push(ecs.Event{Type: ecs.EventTookOff, Body: e, Other: ecs.Entity(craft.HomeBodyID), X: b.Position.X, Y: b.Position.Y})
		}
	})
}

func craft(b *component.Body, r *component.Rocket) physics.Craft {
	return physics.Craft{
		Position:         b.Position,
		Velocity:         b.Velocity,
		Rotation:         b.Rotation,
		Radius:           b.Radius,
		TerminalVelocity: b.TerminalVelocity,
		Hidden:           b.Hidden,
		Launching:        r.Launching,
		Fuel:             r.ThrusterFuel,
		LandingAngle:     r.LandingAngle,
		HomeBodyID:       r.HomeBodyID,
	}
}
