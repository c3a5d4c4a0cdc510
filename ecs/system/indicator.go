package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/common"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
)

// IndicatorSystem pins an arrow to the screen edge nearest the rocket while
// the rocket is off screen. The arrow shrinks as the rocket gets further
// away.
type IndicatorSystem struct{}

func NewIndicatorSystem() *IndicatorSystem {
	return &IndicatorSystem{}
}

func (s *IndicatorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, body, _, ok := rocket(w)
	if !ok {
		return
	}
	vp := viewport(w)

	ecs.ForEach2(w, component.IndicatorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, ind *component.Indicator, t *component.Transform) {
		pin := cp.Vector{
			X: common.Clamp(body.Position.X, ind.Margin, vp.Width-ind.Margin),
			Y: common.Clamp(body.Position.Y, ind.Margin, vp.Height-ind.Margin),
		}
		offscreen := body.Position.X < 0 || body.Position.X > vp.Width || body.Position.Y < 0 || body.Position.Y > vp.Height
		ind.Visible = offscreen && !body.Hidden

		if ind.Visible {
			far := math.Max(ind.MaxDistance, 1)
			d := math.Min(common.Distance(pin, body.Position), far)
			scale := common.MapToRange(
				common.Range{Min: 0, Max: far},
				common.Range{Min: ind.MaxScale, Max: ind.MinScale},
			).MustMap(d)

			t.X, t.Y = pin.X, pin.Y
			t.Rotation = common.Angle(body.Position, pin)
			t.ScaleX, t.ScaleY = scale, scale
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = !ind.Visible
		}
	})
}
