package physics

import (
	"errors"
	"fmt"
	"math"
)

// Profile is one tuned constant set. Revisions of the game disagree on these
// values, so each set is kept whole under its own name.
type Profile struct {
	Name string `yaml:"name"`

	GravityScale float64 `yaml:"gravity_scale"`
	// GravityFloor keeps the pull finite when the rocket sits on a body's
	// centre.
	GravityFloor float64 `yaml:"gravity_floor"`

	CrashThreshold     float64 `yaml:"crash_threshold"`
	MaxLandingVelocity float64 `yaml:"max_landing_velocity"`

	LandingDistance float64 `yaml:"landing_distance"`
	LandingVelocity float64 `yaml:"landing_velocity"`
	// Drag applied while too fast inside the landing band: LandingDragMax at
	// the surface, LandingDragMin at the outer edge.
	LandingDragMin float64 `yaml:"landing_drag_min"`
	LandingDragMax float64 `yaml:"landing_drag_max"`
	// LandingPull weights how much of the drag budget is redirected into
	// the landing vector.
	LandingPull float64 `yaml:"landing_pull"`

	AirResistance       float64 `yaml:"air_resistance"`
	AirResistanceMin    float64 `yaml:"air_resistance_min"`
	AirResistanceRadius float64 `yaml:"air_resistance_radius"`

	ThrustPower     float64 `yaml:"thrust_power"`
	ThrustClearance float64 `yaml:"thrust_clearance"`
	ThrusterFuel    int     `yaml:"thruster_fuel"`

	DragModifier    float64 `yaml:"drag_modifier"`
	MaxDragDistance float64 `yaml:"max_drag_distance"`

	CrashDuration         float64 `yaml:"crash_duration"`
	AsteroidCrashDuration float64 `yaml:"asteroid_crash_duration"`
	CrashStartScale       float64 `yaml:"crash_start_scale"`
	CrashGrowth           float64 `yaml:"crash_growth"`
	CrashMaxScale         float64 `yaml:"crash_max_scale"`
	CrashFade             float64 `yaml:"crash_fade"`

	OutOfBoundsLimit float64 `yaml:"out_of_bounds_limit"`
	DefaultRotation  float64 `yaml:"default_rotation"`
}

// DefaultProfile is the constant set of the latest revision.
func DefaultProfile() Profile {
	return Profile{
		Name:                  "final",
		GravityScale:          1,
		GravityFloor:          0.01,
		CrashThreshold:        5,
		MaxLandingVelocity:    4,
		LandingDistance:       60,
		LandingVelocity:       1,
		LandingDragMin:        0.02,
		LandingDragMax:        0.2,
		LandingPull:           1,
		AirResistance:         0.02,
		AirResistanceMin:      0,
		AirResistanceRadius:   2,
		ThrustPower:           0,
		ThrustClearance:       0.9,
		ThrusterFuel:          20,
		DragModifier:          0.02,
		MaxDragDistance:       0,
		CrashDuration:         100,
		AsteroidCrashDuration: 40,
		CrashStartScale:       0.1,
		CrashGrowth:           0.1,
		CrashMaxScale:         2,
		CrashFade:             0.01,
		OutOfBoundsLimit:      3,
		DefaultRotation:       math.Pi * 1.5,
	}
}

var ErrInvalidProfile = errors.New("physics: invalid profile")

// Validate rejects constant sets the resolver cannot run with.
func (p Profile) Validate() error {
	switch {
	case p.GravityFloor <= 0:
		return fmt.Errorf("%w: gravity_floor must be positive", ErrInvalidProfile)
	case p.CrashThreshold < 0:
		return fmt.Errorf("%w: crash_threshold must not be negative", ErrInvalidProfile)
	case p.LandingDistance <= 0:
		return fmt.Errorf("%w: landing_distance must be positive", ErrInvalidProfile)
	case p.LandingDragMin < 0 || p.LandingDragMax > 1 || p.LandingDragMin > p.LandingDragMax:
		return fmt.Errorf("%w: landing drag must satisfy 0 <= min <= max <= 1", ErrInvalidProfile)
	case p.AirResistance < 0 || p.AirResistance > 1 || p.AirResistanceMin < 0 || p.AirResistanceMin > 1:
		return fmt.Errorf("%w: air resistance must be within [0, 1]", ErrInvalidProfile)
	case p.ThrusterFuel <= 0:
		// A launch starts below the surface, so it needs at least one
		// thrust frame before the landed branch would pin it back down.
		return fmt.Errorf("%w: thruster_fuel must be positive", ErrInvalidProfile)
	case p.OutOfBoundsLimit <= 0:
		return fmt.Errorf("%w: out_of_bounds_limit must be positive", ErrInvalidProfile)
	}
	return nil
}
