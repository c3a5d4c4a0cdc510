package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/physics"
	"go.uber.org/zap"
)

// BoundsSystem resets the rocket once it leaves the play area.
type BoundsSystem struct {
	logger *zap.Logger
}

func NewBoundsSystem(logger *zap.Logger) *BoundsSystem {
	return &BoundsSystem{logger: orNop(logger)}
}

func (s *BoundsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	e, body, _, ok := rocket(w)
	if !ok {
		return
	}
	vp := viewport(w)
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	if !physics.OutOfBounds(body.Position, vp.Width, vp.Height, profile(w).OutOfBoundsLimit) {
		return
	}

	s.logger.Info("rocket out of bounds", zap.Float64("x", body.Position.X), zap.Float64("y", body.Position.Y))
	w.Events().Push(ecs.Event{Type: ecs.EventOutOfBounds, Body: e, X: body.Position.X, Y: body.Position.Y})
	ResetRocket(w)
}
