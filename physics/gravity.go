package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/common"
)

// Attractor is a read-only snapshot of a body that pulls on the rocket.
type Attractor struct {
	ID       uint64
	Position cp.Vector
	Radius   float64
	Rotation float64
}

// Field is the result of the gravity step for one moving body.
type Field struct {
	Gravity cp.Vector
	// Closest is the attractor nearest by centre distance. It is only
	// meaningful when HasClosest is set.
	Closest         Attractor
	HasClosest      bool
	CenterDistance  float64
	SurfaceDistance float64
}

// GravityFrom returns the pull of one attractor on a body at pos. It points
// at the attractor and scales with radius over distance.
func GravityFrom(p Profile, a Attractor, pos cp.Vector) cp.Vector {
	distance := math.Max(p.GravityFloor, common.Distance(a.Position, pos))
	return common.AngleToVector(common.Angle(a.Position, pos), p.GravityScale*a.Radius/distance)
}

// Gravity sums the pull of every attractor and picks the closest one.
func Gravity(p Profile, pos cp.Vector, radius float64, attractors []Attractor) Field {
	var f Field
	for _, a := range attractors {
		d := common.Distance(a.Position, pos)
		if !f.HasClosest || d < f.CenterDistance {
			f.Closest = a
			f.HasClosest = true
			f.CenterDistance = d
		}
		f.Gravity = f.Gravity.Add(GravityFrom(p, a, pos))
	}
	if f.HasClosest {
		f.SurfaceDistance = common.DistanceToSurface(f.Closest.Position, f.Closest.Radius, pos, radius)
	}
	return f
}
