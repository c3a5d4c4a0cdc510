package component

import "github.com/milk9111/lander/physics"

// GravityField holds the gravity step's result for a moving body.
type GravityField struct {
	Field physics.Field
}

var GravityFieldComponent = NewComponent[GravityField]()
