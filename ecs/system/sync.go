package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
)

// SyncSystem copies simulation state onto presentation components. It runs
// last so drawing always sees the settled frame.
type SyncSystem struct{}

func NewSyncSystem() *SyncSystem {
	return &SyncSystem{}
}

func (s *SyncSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Body, t *component.Transform) {
		t.X = b.Position.X
		t.Y = b.Position.Y
		t.Rotation = b.Rotation
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = b.Hidden
		}
	})

	ecs.ForEach2(w, component.CrashComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Crash, t *component.Transform) {
		t.ScaleX = c.Size
		t.ScaleY = c.Size
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Alpha = c.Alpha
		}
	})
}
