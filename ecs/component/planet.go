package component

// Planet marks a spinning body. Moons and asteroids are planets too.
type Planet struct {
	RotationSpeed float64
}

var PlanetComponent = NewComponent[Planet]()
