package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/common"
)

// OrbitPosition places an orbiting body on its circle. The phase is driven
// by the primary's own rotation, not by integrated gravity.
func OrbitPosition(primary cp.Vector, primaryRotation, orbitAngle, orbitDistance, angularRate float64) cp.Vector {
	return primary.Add(common.AngleToVector(primaryRotation*angularRate-orbitAngle, orbitDistance))
}

// Rotate advances a spinning body by one frame.
func Rotate(rotation, rotationSpeed, delta float64) float64 {
	return rotation + rotationSpeed*delta
}
