package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravityPicksClosestByCentre(t *testing.T) {
	p := DefaultProfile()
	big := Attractor{ID: 1, Position: cp.Vector{X: 0, Y: 0}, Radius: 300}
	small := Attractor{ID: 2, Position: cp.Vector{X: 500, Y: 0}, Radius: 20}

	pos := cp.Vector{X: 200, Y: 0}
	f := Gravity(p, pos, 0, []Attractor{big, small})

	require.True(t, f.HasClosest)
	assert.Equal(t, uint64(1), f.Closest.ID)

	// Inside the planet's surface band, but nearer the moon's centre.
	pos = cp.Vector{X: 260, Y: 0}
	f = Gravity(p, pos, 0, []Attractor{big, small})
	assert.Equal(t, uint64(2), f.Closest.ID)

	pos = cp.Vector{X: 460, Y: 0}
	f = Gravity(p, pos, 0, []Attractor{big, small})
	assert.Equal(t, uint64(2), f.Closest.ID)
	assert.InDelta(t, 40.0, f.CenterDistance, 1e-9)
	assert.InDelta(t, 20.0, f.SurfaceDistance, 1e-9)
}

func TestGravitySumsAttractors(t *testing.T) {
	p := DefaultProfile()
	left := Attractor{ID: 1, Position: cp.Vector{X: -100}, Radius: 50}
	right := Attractor{ID: 2, Position: cp.Vector{X: 100}, Radius: 50}

	f := Gravity(p, cp.Vector{}, 0, []Attractor{left, right})
	assert.InDelta(t, 0, f.Gravity.X, 1e-12, "equal pulls cancel")
	assert.InDelta(t, 0, f.Gravity.Y, 1e-12)

	g := GravityFrom(p, right, cp.Vector{})
	assert.InDelta(t, 0.5, g.X, 1e-12, "radius over distance, towards the body")
}

func TestGravityFloorAtCentre(t *testing.T) {
	p := DefaultProfile()
	a := Attractor{Position: cp.Vector{X: 10, Y: 10}, Radius: 1}

	g := GravityFrom(p, a, a.Position)
	assert.False(t, math.IsNaN(g.X) || math.IsInf(g.X, 0))
	assert.False(t, math.IsNaN(g.Y) || math.IsInf(g.Y, 0))
}

func TestGravityEmpty(t *testing.T) {
	f := Gravity(DefaultProfile(), cp.Vector{X: 1}, 5, nil)
	assert.False(t, f.HasClosest)
	assert.Equal(t, cp.Vector{}, f.Gravity)
}

func TestOrbitPosition(t *testing.T) {
	primary := cp.Vector{X: 100, Y: 100}

	pos := OrbitPosition(primary, 0, 0, 50, 2)
	assert.InDelta(t, 150, pos.X, 1e-9)
	assert.InDelta(t, 100, pos.Y, 1e-9)

	// The phase tracks the primary's rotation scaled by the orbit rate.
	pos = OrbitPosition(primary, math.Pi/4, 0, 50, 2)
	assert.InDelta(t, 100, pos.X, 1e-9)
	assert.InDelta(t, 150, pos.Y, 1e-9)

	pos = OrbitPosition(primary, 0, math.Pi, 50, 2)
	assert.InDelta(t, 50, pos.X, 1e-9)
}

func TestRotate(t *testing.T) {
	assert.InDelta(t, 0.3, Rotate(0.1, 0.1, 2), 1e-12)
	assert.Equal(t, 1.0, Rotate(1, 0, 5))
}

func TestLaunchVelocity(t *testing.T) {
	p := DefaultProfile()
	start := cp.Vector{X: 100, Y: 100}

	// Pulling back to the left flings the rocket right.
	v := LaunchVelocity(p, start, cp.Vector{X: 0, Y: 100})
	assert.InDelta(t, 100*p.DragModifier, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)

	assert.Equal(t, 0.0, LaunchVelocity(p, start, start).Length())

	p.MaxDragDistance = 50
	v = LaunchVelocity(p, start, cp.Vector{X: 100, Y: 400})
	assert.InDelta(t, -50*p.DragModifier, v.Y, 1e-9, "drag distance is capped")
}

func TestClampVelocity(t *testing.T) {
	assert.Equal(t, cp.Vector{X: 5, Y: -5}, ClampVelocity(cp.Vector{X: 9, Y: -9}, 5))
	assert.Equal(t, cp.Vector{X: 2, Y: -1}, ClampVelocity(cp.Vector{X: 2, Y: -1}, 5))
	assert.Equal(t, cp.Vector{X: 90, Y: -90}, ClampVelocity(cp.Vector{X: 90, Y: -90}, 0))
}

func TestOutOfBounds(t *testing.T) {
	const w, h = 1280.0, 720.0
	cases := []struct {
		name string
		pos  cp.Vector
		want bool
	}{
		{"origin", cp.Vector{}, false},
		{"one_screen_left", cp.Vector{X: -w, Y: 0}, false},
		{"past_left", cp.Vector{X: -w - 1, Y: 0}, true},
		{"past_top", cp.Vector{X: 0, Y: -h - 1}, true},
		{"past_right", cp.Vector{X: w*3 + 1, Y: 0}, true},
		{"on_right_edge", cp.Vector{X: w * 3, Y: 0}, false},
		{"past_bottom", cp.Vector{X: 0, Y: h*3 + 1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, OutOfBounds(c.pos, w, h, 3))
		})
	}
}

func TestProfileValidate(t *testing.T) {
	require.NoError(t, DefaultProfile().Validate())

	cases := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"gravity_floor", func(p *Profile) { p.GravityFloor = 0 }},
		{"landing_distance", func(p *Profile) { p.LandingDistance = -1 }},
		{"landing_drag_order", func(p *Profile) { p.LandingDragMin = 0.5 }},
		{"air_resistance", func(p *Profile) { p.AirResistance = 2 }},
		{"fuel", func(p *Profile) { p.ThrusterFuel = -1 }},
		{"no_fuel", func(p *Profile) { p.ThrusterFuel = 0 }},
		{"bounds", func(p *Profile) { p.OutOfBoundsLimit = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := DefaultProfile()
			c.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidProfile)
		})
	}
}

func TestFlightStateString(t *testing.T) {
	assert.Equal(t, "landed", StateLanded.String())
	assert.Equal(t, "free_flight", StateFreeFlight.String())
	assert.Equal(t, "unknown", FlightState(42).String())
}
