package prefabs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileNames(t *testing.T) {
	assert.Equal(t, []string{"classic", "final", "orbital"}, ProfileNames())
}

func TestLoadProfileFinalMatchesDefaults(t *testing.T) {
	p, err := LoadProfile("final")
	require.NoError(t, err)

	if diff := cmp.Diff(physics.DefaultProfile(), p); diff != "" {
		t.Fatalf("final profile drifted from defaults (-want +got):\n%s", diff)
	}

	p, err = LoadProfile("")
	require.NoError(t, err)
	assert.Equal(t, "final", p.Name)
}

func TestLoadProfileOverlaysDefaults(t *testing.T) {
	p, err := LoadProfile("orbital")
	require.NoError(t, err)

	want := physics.DefaultProfile()
	want.Name = "orbital"
	want.AirResistance = 0.02
	want.AirResistanceMin = 0.02
	want.AirResistanceRadius = 4
	want.LandingDragMin = 0.02
	want.LandingDragMax = 0.02
	want.LandingPull = 0
	want.MaxLandingVelocity = 5
	want.ThrustPower = 0.01

	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("orbital profile mismatch (-want +got):\n%s", diff)
	}

	classic, err := LoadProfile("classic")
	require.NoError(t, err)
	assert.Equal(t, 0.05, classic.DragModifier)
	assert.Equal(t, 200.0, classic.MaxDragDistance)
	assert.Equal(t, 10, classic.ThrusterFuel)
	assert.Equal(t, physics.DefaultProfile().CrashThreshold, classic.CrashThreshold)
}

func TestLoadProfileMissing(t *testing.T) {
	_, err := LoadProfile("no-such-profile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-profile")
}

func TestEveryProfileLaunchesOffThePad(t *testing.T) {
	home := physics.Attractor{ID: 1, Position: cp.Vector{X: 500, Y: 500}, Radius: 128}
	bodies := []physics.Attractor{home}
	pad := cp.Vector{X: 500, Y: 500 - home.Radius}

	for _, name := range ProfileNames() {
		t.Run(name, func(t *testing.T) {
			p, err := LoadProfile(name)
			require.NoError(t, err)

			// Straight up at a speed the profile would also accept for landing.
			drag := 0.9 * p.MaxLandingVelocity / p.DragModifier
			if p.MaxDragDistance > 0 && drag > p.MaxDragDistance {
				drag = p.MaxDragDistance
			}
			c := physics.Craft{
				Position:  pad,
				Velocity:  physics.LaunchVelocity(p, pad, pad.Add(cp.Vector{Y: drag})),
				Radius:    9.6,
				Launching: true,
				Fuel:      p.ThrusterFuel,
			}
			require.Less(t, c.Velocity.Y, 0.0)

			for frame := 0; frame < p.ThrusterFuel; frame++ {
				var state physics.FlightState
				c, state = physics.Resolve(p, c, physics.Gravity(p, c.Position, c.Radius, bodies), 1)
				require.Equal(t, physics.StateThrusting, state, "frame %d", frame)
			}

			f := physics.Gravity(p, c.Position, c.Radius, bodies)
			assert.False(t, c.Hidden)
			assert.Greater(t, f.SurfaceDistance, 0.0, "rocket should clear the surface")

			_, state := physics.Resolve(p, c, f, 1)
			assert.NotEqual(t, physics.StateLanded, state)
			assert.NotEqual(t, physics.StateCrashImpact, state)
		})
	}
}

func TestDecodeProfile(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"empty", "", nil},
		{"override", "crash_threshold: 7\n", nil},
		{"unknown_key", "crash_treshold: 7\n", nil},
		{"invalid", "gravity_floor: 0\n", physics.ErrInvalidProfile},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := DecodeProfile([]byte(c.yaml))
			switch {
			case c.name == "unknown_key":
				require.Error(t, err)
			case c.wantErr != nil:
				require.ErrorIs(t, err, c.wantErr)
			default:
				require.NoError(t, err)
				assert.Empty(t, p.Name)
			}
			if c.name == "override" {
				assert.Equal(t, 7.0, p.CrashThreshold)
				assert.Equal(t, physics.DefaultProfile().MaxLandingVelocity, p.MaxLandingVelocity)
			}
		})
	}
}

func TestProfileName(t *testing.T) {
	cases := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"prefabs/profiles/classic.yaml", "classic", true},
		{"/home/dev/lander/prefabs/profiles/orbital.yml", "orbital", true},
		{"profiles/final.yaml", "final", true},
		{"prefabs/rocket.yaml", "", false},
		{"prefabs/profiles/notes.txt", "", false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			got, ok := ProfileName(c.path)
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ChangeProfile, Classify("prefabs/profiles/final.yaml"))
	assert.Equal(t, ChangePrefab, Classify("prefabs/rocket.yaml"))
	assert.Equal(t, ChangeScript, Classify("prefabs/scripts/solar_system.tengo"))
	assert.Equal(t, ChangeUnknown, Classify("prefabs/README.md"))
	assert.Equal(t, "profile", ChangeProfile.String())
}

func TestLoadEntityBuildSpecs(t *testing.T) {
	for _, name := range []string{"primary", "moon", "asteroid", "rocket", "crash", "indicator", "speedometer", "session"} {
		t.Run(name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(name + ".yaml")
			require.NoError(t, err)
			assert.Equal(t, name, spec.Name)
			assert.NotEmpty(t, spec.Components)
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("rocket.yaml")
	require.NoError(t, err)

	sprite, err := DecodeComponentSpec[SpriteComponentSpec](spec.Components["sprite"])
	require.NoError(t, err)
	require.NotNil(t, sprite.AnchorX)
	assert.Equal(t, "rocket.png", sprite.Image)
	assert.Equal(t, 0.15, *sprite.AnchorX)
	assert.Nil(t, sprite.Alpha)

	audio, err := DecodeComponentSpec[AudioComponentSpec](spec.Components["audio"])
	require.NoError(t, err)
	want := []AudioClipSpec{
		{Name: "launch", File: "launch.wav", Volume: 0.6},
		{Name: "land", File: "land.wav", Volume: 0.6},
		{Name: "crash", File: "crash.wav", Volume: 0.8},
	}
	if diff := cmp.Diff(want, audio.Clips); diff != "" {
		t.Fatalf("audio clips mismatch (-want +got):\n%s", diff)
	}

	empty, err := DecodeComponentSpec[BodyComponentSpec](nil)
	require.NoError(t, err)
	assert.Equal(t, BodyComponentSpec{}, empty)
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"solar_system", "solar_system.tengo", "prefabs/scripts/solar_system.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "bodies")
	}
	assert.Equal(t, "scripts/a.tengo", cleanScriptPath("a"))
	assert.Equal(t, "", cleanScriptPath(""))
}
