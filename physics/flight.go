package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/common"
)

// Craft is the simulation state of the rocket as seen by the resolver.
type Craft struct {
	Position         cp.Vector
	Velocity         cp.Vector
	Rotation         float64
	Radius           float64
	TerminalVelocity float64
	Hidden           bool

	Launching    bool
	Fuel         int
	LandingAngle float64
	HomeBodyID   uint64
}

func (c *Craft) setVelocity(v cp.Vector) {
	c.Velocity = ClampVelocity(v, c.TerminalVelocity)
}

// Resolve advances the craft by one frame. Branches are tried top-down and
// the first match wins:
//
//	crashed → thrusting → crash impact → landed → landing approach →
//	atmospheric drag → free flight
//
// Position integrates from the resulting velocity unless the craft is
// crashed.
func Resolve(p Profile, c Craft, f Field, delta float64) (Craft, FlightState) {
	if c.Hidden {
		return c, StateCrashed
	}
	if !f.HasClosest {
		c.setVelocity(c.Velocity.Add(f.Gravity))
		c.Rotation = common.AngleFromVector(c.Velocity)
		c.Position = c.Position.Add(c.Velocity.Mult(delta))
		return c, StateFreeFlight
	}

	body := f.Closest
	distance := f.SurfaceDistance
	speed := common.Speed(c.Velocity)

	var state FlightState
	switch {
	case c.Launching && c.Fuel > 0 && f.CenterDistance > body.Radius*p.ThrustClearance:
		state = StateThrusting
		c.Fuel--
		if c.Fuel == 0 {
			c.Launching = false
		}
		c.setVelocity(c.Velocity.Mult(1 + p.ThrustPower))

	case distance <= p.CrashThreshold && speed > p.MaxLandingVelocity:
		state = StateCrashImpact
		c.Hidden = true
		c.Launching = false
		c.setVelocity(cp.Vector{})

	case distance <= 0:
		state = StateLanded
		c.Launching = false
		c.Fuel = 0
		c.HomeBodyID = body.ID
		c.setVelocity(cp.Vector{})
		c.Rotation = math.Pi + common.Angle(body.Position, c.Position)
		c.Position = SurfacePosition(body, c.LandingAngle)

	case distance < p.LandingDistance:
		state = StateLandingApproach
		landing := common.AngleToVector(common.Angle(body.Position, c.Position), p.LandingVelocity)
		if speed > p.MaxLandingVelocity {
			drag := common.MapToRange(
				common.Range{Min: 0, Max: p.LandingDistance},
				common.Range{Min: p.LandingDragMax, Max: p.LandingDragMin},
			).MustMap(distance)
			c.setVelocity(c.Velocity.Mult(1 - drag).Add(landing.Mult(drag * p.LandingPull)))
		} else {
			c.setVelocity(landing)
			c.Rotation = common.Angle(c.Position, body.Position)
			c.LandingAngle = LandingAngle(body, c.Position)
		}

	case distance < body.Radius*p.AirResistanceRadius:
		state = StateAtmosphericDrag
		drag := common.MapToRange(
			common.Range{Min: p.LandingDistance, Max: body.Radius * p.AirResistanceRadius},
			common.Range{Min: p.AirResistance, Max: p.AirResistanceMin},
		).MustMap(distance)
		c.setVelocity(c.Velocity.Add(f.Gravity).Mult(1 - drag))
		c.Rotation = common.AngleFromVector(c.Velocity)

	default:
		state = StateFreeFlight
		c.setVelocity(c.Velocity.Add(f.Gravity))
		c.Rotation = common.AngleFromVector(c.Velocity)
	}

	if !c.Hidden {
		c.Position = c.Position.Add(c.Velocity.Mult(delta))
	}
	return c, state
}

// LandingAngle is the surface angle of pos on body, stored relative to the
// body's rotation so a landed craft rides along as the body spins.
func LandingAngle(body Attractor, pos cp.Vector) float64 {
	return math.Pi + body.Rotation - common.Angle(body.Position, pos)
}

// SurfacePosition is the inverse of LandingAngle for the body's current
// rotation.
func SurfacePosition(body Attractor, landingAngle float64) cp.Vector {
	return body.Position.Add(common.AngleToVector(body.Rotation-landingAngle, body.Radius))
}
