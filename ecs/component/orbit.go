package component

// Orbit places a body on a circle around the primary. The phase follows the
// primary's rotation scaled by Speed.
type Orbit struct {
	Angle    float64
	Distance float64
	Speed    float64
}

var OrbitComponent = NewComponent[Orbit]()
