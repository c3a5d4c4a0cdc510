package component

import "github.com/milk9111/lander/physics"

type Rocket struct {
	// LandingAngle is the surface angle on the home body, relative to that
	// body's rotation.
	LandingAngle    float64
	ThrusterFuel    int
	Launching       bool
	HomeBodyID      uint64
	State           physics.FlightState
	DefaultRotation float64
}

var RocketComponent = NewComponent[Rocket]()
