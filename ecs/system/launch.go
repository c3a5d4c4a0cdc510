package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/common"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
	"go.uber.org/zap"
)

// LaunchSystem turns press/drag/release gestures into rocket launches.
type LaunchSystem struct {
	logger *zap.Logger
}

func NewLaunchSystem(logger *zap.Logger) *LaunchSystem {
	return &LaunchSystem{logger: orNop(logger)}
}

func (s *LaunchSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	session, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, _ := ecs.Get(w, session, component.PointerComponent.Kind())
	drag, ok := ecs.Get(w, session, component.DraggingComponent.Kind())
	if !ok {
		return
	}
	at := cp.Vector{X: ptr.X, Y: ptr.Y}

	if ptr.JustPressed {
		drag.Start = at
		drag.HasStart = true
		drag.Dragging = true
	}
	if drag.Dragging {
		drag.Current = at
	}

	if ptr.JustReleased && drag.HasStart {
		s.launch(w, drag.Start, at)
		*drag = component.Dragging{}
	}

	if line, ok := ecs.Get(w, session, component.LineRenderComponent.Kind()); ok {
		line.Visible = drag.Dragging
		line.StartX, line.StartY = drag.Start.X, drag.Start.Y
		line.EndX, line.EndY = drag.Current.X, drag.Current.Y
	}
}

func (s *LaunchSystem) launch(w *ecs.World, start, release cp.Vector) {
	e, body, r, ok := rocket(w)
	if !ok || r == nil {
		return
	}
	if body.Hidden {
		s.logger.Debug("launch ignored while crashed")
		return
	}

	p := profile(w)
	body.SetVelocity(physics.LaunchVelocity(p, start, release))
	body.Rotation = common.AngleFromVector(body.Velocity)
	r.Launching = true
	r.ThrusterFuel = p.ThrusterFuel

	s.logger.Info("rocket launched",
		zap.Float64("vx", body.Velocity.X),
		zap.Float64("vy", body.Velocity.Y),
		zap.Int("fuel", r.ThrusterFuel),
	)
	w.Events().Push(ecs.Event{Type: ecs.EventLaunched, Body: e, X: body.Position.X, Y: body.Position.Y})
}
