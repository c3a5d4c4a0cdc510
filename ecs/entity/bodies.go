package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/assets"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
	"github.com/milk9111/lander/scenario"
)

const (
	primaryPrefab     = "primary.yaml"
	moonPrefab        = "moon.yaml"
	asteroidPrefab    = "asteroid.yaml"
	rocketPrefab      = "rocket.yaml"
	crashPrefab       = "crash.yaml"
	indicatorPrefab   = "indicator.yaml"
	speedometerPrefab = "speedometer.yaml"
	sessionPrefab     = "session.yaml"
)

// NewPrimary builds the planet every orbit is measured from.
func NewPrimary(w *ecs.World, layout scenario.Body) (ecs.Entity, error) {
	e, err := BuildEntity(w, primaryPrefab)
	if err != nil {
		return 0, err
	}
	if err := applyLayout(w, e, layout); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("primary: %w", err)
	}
	placeAt(w, e, cp.Vector{X: layout.X, Y: layout.Y})
	return e, nil
}

// NewMoon builds an orbiting attractor around primary.
func NewMoon(w *ecs.World, primary ecs.Entity, layout scenario.Body) (ecs.Entity, error) {
	return newOrbiter(w, moonPrefab, primary, layout)
}

// NewAsteroid builds an orbiting hazard around primary. Asteroids do not
// pull on the rocket.
func NewAsteroid(w *ecs.World, primary ecs.Entity, layout scenario.Body) (ecs.Entity, error) {
	return newOrbiter(w, asteroidPrefab, primary, layout)
}

func newOrbiter(w *ecs.World, prefab string, primary ecs.Entity, layout scenario.Body) (ecs.Entity, error) {
	center, ok := ecs.Get(w, primary, component.BodyComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("%s: primary %s has no body", prefab, primary)
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := applyLayout(w, e, layout); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: %w", prefab, err)
	}

	o, ok := ecs.Get(w, e, component.OrbitComponent.Kind())
	if !ok {
		o = &component.Orbit{}
		if err := ecs.Add(w, e, component.OrbitComponent.Kind(), o); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}
	o.Angle = layout.OrbitAngle
	if layout.OrbitDistance > 0 {
		o.Distance = layout.OrbitDistance
	}
	if layout.OrbitSpeed != 0 {
		o.Speed = layout.OrbitSpeed
	}

	placeAt(w, e, physics.OrbitPosition(center.Position, center.Rotation, o.Angle, o.Distance, o.Speed))
	return e, nil
}

// NewRocket builds the rocket standing on top of primary.
func NewRocket(w *ecs.World, primary ecs.Entity) (ecs.Entity, error) {
	home, ok := ecs.Get(w, primary, component.BodyComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("rocket: primary %s has no body", primary)
	}
	e, err := BuildEntity(w, rocketPrefab)
	if err != nil {
		return 0, err
	}

	pad := cp.Vector{X: home.Position.X, Y: home.Position.Y - home.Radius}
	placeAt(w, e, pad)

	r, _ := ecs.Get(w, e, component.RocketComponent.Kind())
	r.HomeBodyID = home.ID
	r.LandingAngle = physics.LandingAngle(physics.Attractor{
		ID:       home.ID,
		Position: home.Position,
		Radius:   home.Radius,
		Rotation: home.Rotation,
	}, pad)
	return e, nil
}

// NewCrash builds a crash effect at x, y. It matches system.CrashSpawner.
func NewCrash(w *ecs.World, x, y, duration float64, rocket bool) (ecs.Entity, error) {
	e, err := BuildEntity(w, crashPrefab)
	if err != nil {
		return 0, err
	}
	c, _ := ecs.Get(w, e, component.CrashComponent.Kind())
	c.Duration = duration
	c.Rocket = rocket
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
		t.ScaleX, t.ScaleY = c.Size, c.Size
	}
	return e, nil
}

// applyLayout lays scenario overrides over the prefab: texture, scale and
// spin. The body is resized when its look changed.
func applyLayout(w *ecs.World, e ecs.Entity, layout scenario.Body) error {
	resize := false
	if layout.Texture != "" {
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			return fmt.Errorf("texture %q on an entity without a sprite", layout.Texture)
		}
		if s.Texture != layout.Texture {
			anchorX, anchorY := 0.5, 0.5
			if iw, ih, err := assets.ImageSize(s.Texture); err == nil && iw > 0 && ih > 0 {
				anchorX, anchorY = s.OriginX/float64(iw), s.OriginY/float64(ih)
			}
			if err := setTexture(s, layout.Texture, anchorX, anchorY); err != nil {
				return err
			}
			resize = true
		}
	}
	if layout.Scale > 0 {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.ScaleX, t.ScaleY = layout.Scale, layout.Scale
			resize = true
		}
	}
	if p, ok := ecs.Get(w, e, component.PlanetComponent.Kind()); ok && layout.RotationSpeed != 0 {
		p.RotationSpeed = layout.RotationSpeed
	}
	if !resize {
		return nil
	}
	b, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return nil
	}
	radius, err := spriteRadius(w, e)
	if err != nil {
		return err
	}
	b.Radius = radius
	return nil
}

// placeAt moves a freshly built entity, body and transform together, and
// makes that its starting point.
func placeAt(w *ecs.World, e ecs.Entity, pos cp.Vector) {
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		b.Position = pos
		b.InitialPosition = pos
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = pos.X, pos.Y
	}
}
