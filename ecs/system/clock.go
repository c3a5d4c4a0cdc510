package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
)

// ClockSystem advances the frame counter. Delta stays at one tick; the tuned
// constants are expressed per tick at 60 TPS.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ClockComponent.Kind(), func(_ ecs.Entity, c *component.Clock) {
		if c.Delta <= 0 {
			c.Delta = 1
		}
		c.Frame++
	})
}
