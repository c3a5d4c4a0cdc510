package system

import (
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"go.uber.org/zap"
)

// ScoreSystem awards a point for every landing on a body other than the one
// the rocket last left. A crash ends the streak.
type ScoreSystem struct {
	logger *zap.Logger
}

func NewScoreSystem(logger *zap.Logger) *ScoreSystem {
	return &ScoreSystem{logger: orNop(logger)}
}

func (s *ScoreSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	score, ok := singleton(w, component.ScoreComponent.Kind())
	if !ok {
		return
	}

	for _, evt := range w.Events().Items() {
		switch evt.Type {
		case ecs.EventLanded:
			score.Landings++
			body := uint64(evt.Other)
			if score.Home != 0 && body != score.Home {
				score.Points++
				if score.Points > score.Best {
					score.Best = score.Points
				}
				s.logger.Info("scored", zap.Int("points", score.Points), zap.Int("best", score.Best))
			}
			score.Home = body
		case ecs.EventReset:
			if r, ok := ecs.Get(w, evt.Body, component.RocketComponent.Kind()); ok {
				score.Home = r.HomeBodyID
			}
		case ecs.EventCrashed:
			if _, isRocket := ecs.Get(w, evt.Body, component.RocketComponent.Kind()); !isRocket {
				continue
			}
			score.Crashes++
			score.Points = 0
		}
	}
}
