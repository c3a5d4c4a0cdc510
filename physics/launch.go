package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/common"
)

// LaunchVelocity turns a press/release pair into a velocity. Dragging away
// from the rocket launches it the opposite way, like a slingshot.
func LaunchVelocity(p Profile, start, release cp.Vector) cp.Vector {
	distance := common.Distance(start, release)
	if p.MaxDragDistance > 0 {
		distance = math.Min(distance, p.MaxDragDistance)
	}
	return common.AngleToVector(common.Angle(start, release), distance*p.DragModifier)
}

// ClampVelocity limits each axis to ±terminal. A zero terminal velocity
// means unclamped.
func ClampVelocity(v cp.Vector, terminal float64) cp.Vector {
	if terminal <= 0 {
		return v
	}
	return cp.Vector{
		X: math.Max(-terminal, math.Min(terminal, v.X)),
		Y: math.Max(-terminal, math.Min(terminal, v.Y)),
	}
}

// OutOfBounds reports whether pos left the play area, which extends one
// viewport up/left and limit viewports down/right.
func OutOfBounds(pos cp.Vector, width, height, limit float64) bool {
	return pos.X < -width || pos.X > width*limit || pos.Y < -height || pos.Y > height*limit
}
