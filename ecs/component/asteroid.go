package component

type Asteroid struct {
	// CrashingDuration accumulates frames spent in contact with another
	// body.
	CrashingDuration float64
}

var AsteroidComponent = NewComponent[Asteroid]()
