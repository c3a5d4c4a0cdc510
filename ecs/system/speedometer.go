package system

import (
	"fmt"
	"math"

	"github.com/milk9111/lander/common"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
)

// SpeedometerSystem maps the rocket's speed onto the gauge needle and
// refreshes the HUD readout.
type SpeedometerSystem struct{}

func NewSpeedometerSystem() *SpeedometerSystem {
	return &SpeedometerSystem{}
}

func (s *SpeedometerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, body, r, ok := rocket(w)
	if !ok {
		return
	}
	score, _ := singleton(w, component.ScoreComponent.Kind())
	p := profile(w)

	ecs.ForEach(w, component.SpeedometerComponent.Kind(), func(_ ecs.Entity, gauge *component.Speedometer) {
		limit := math.Max(gauge.MaxSpeed, 1)
		speed := common.Speed(body.Velocity)
		gauge.NeedleAngle = common.MapToRange(
			common.Range{Min: 0, Max: limit},
			common.Range{Min: gauge.MinAngle, Max: gauge.MaxAngle},
		).MustMap(math.Min(speed, limit))

		status := "safe"
		if speed > p.MaxLandingVelocity {
			status = "too fast"
		}
		gauge.Readout = fmt.Sprintf("speed %.2f (%s)", speed, status)
		if r != nil {
			gauge.Readout += fmt.Sprintf("\nfuel %d  %s", r.ThrusterFuel, r.State)
		}
		if score != nil {
			gauge.Readout += fmt.Sprintf("\nscore %d  best %d  crashes %d", score.Points, score.Best, score.Crashes)
		}
	})
}
