package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Renderer draws world state after a frame has been simulated.
type Renderer interface {
	Draw(w *World, screen *ebiten.Image)
}

// Draw calls every render-capable system of the scheduler in order.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, system := range s.systems {
		if r, ok := system.(Renderer); ok {
			r.Draw(w, screen)
		}
	}
}
