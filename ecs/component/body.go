package component

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body is the simulation state shared by planets, moons, asteroids and the
// rocket. Presentation lives in Transform and Sprite; SyncSystem copies
// across once per frame.
type Body struct {
	// ID is the owning entity handle.
	ID               uint64
	Position         cp.Vector
	Velocity         cp.Vector
	Rotation         float64
	Radius           float64
	TerminalVelocity float64
	InitialPosition  cp.Vector
	Hidden           bool
}

// SetVelocity assigns v, clamping each axis to the terminal velocity when
// one is set.
func (b *Body) SetVelocity(v cp.Vector) {
	if b.TerminalVelocity > 0 {
		v.X = math.Max(-b.TerminalVelocity, math.Min(b.TerminalVelocity, v.X))
		v.Y = math.Max(-b.TerminalVelocity, math.Min(b.TerminalVelocity, v.Y))
	}
	b.Velocity = v
}

var BodyComponent = NewComponent[Body]()
