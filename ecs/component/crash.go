package component

// Crash is an explosion effect. It grows and fades until Duration drops
// below zero. Rocket crashes reset the rocket when they expire.
type Crash struct {
	Duration float64
	Size     float64
	Alpha    float64
	Rocket   bool
}

var CrashComponent = NewComponent[Crash]()
