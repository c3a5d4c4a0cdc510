package system

import (
	"math"

	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"go.uber.org/zap"
)

// CrashSpawner creates a crash effect entity. The game wires in the prefab
// builder; the default makes a bare simulation entity.
type CrashSpawner func(w *ecs.World, x, y, duration float64, rocket bool) (ecs.Entity, error)

// CrashSystem spawns crash effects for the frame's crash events and ages
// every live crash. An expired rocket crash resets the rocket.
type CrashSystem struct {
	logger *zap.Logger
	spawn  CrashSpawner
}

func NewCrashSystem(logger *zap.Logger, spawn CrashSpawner) *CrashSystem {
	if spawn == nil {
		spawn = SpawnCrash
	}
	return &CrashSystem{logger: orNop(logger), spawn: spawn}
}

// SpawnCrash creates a crash entity without any presentation.
func SpawnCrash(w *ecs.World, x, y, duration float64, rocket bool) (ecs.Entity, error) {
	p := profile(w)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CrashComponent.Kind(), &component.Crash{
		Duration: duration,
		Size:     p.CrashStartScale,
		Alpha:    1,
		Rocket:   rocket,
	}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: x, Y: y, ScaleX: p.CrashStartScale, ScaleY: p.CrashStartScale,
	}); err != nil {
		return 0, err
	}
	return e, nil
}

func (s *CrashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p := profile(w)
	dt := delta(w)

	for _, evt := range w.Events().Items() {
		var duration float64
		rocket := false
		switch evt.Type {
		case ecs.EventCrashed:
			duration, rocket = p.CrashDuration, true
		case ecs.EventAsteroidImpact:
			duration = p.AsteroidCrashDuration
		default:
			continue
		}
		if _, err := s.spawn(w, evt.X, evt.Y, duration, rocket); err != nil {
			s.logger.Error("spawn crash", zap.Error(err))
		}
	}

	ecs.ForEach(w, component.CrashComponent.Kind(), func(e ecs.Entity, c *component.Crash) {
		c.Size = math.Min(c.Size+p.CrashGrowth, p.CrashMaxScale)
		c.Alpha -= p.CrashFade
		c.Duration -= dt
		if c.Duration >= 0 {
			return
		}

		rocket := c.Rocket
		ecs.DestroyEntity(w, e)
		if rocket && ResetRocket(w) {
			s.logger.Info("rocket reset after crash")
		}
	})
}
