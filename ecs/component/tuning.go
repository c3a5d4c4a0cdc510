package component

import "github.com/milk9111/lander/physics"

// Tuning is the active constant profile. Hot reload swaps it in place.
type Tuning struct {
	Profile physics.Profile
	Version int
}

var TuningComponent = NewComponent[Tuning]()
