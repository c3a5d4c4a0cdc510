package physics

// FlightState is the branch of the flight ladder taken in a frame. Values
// are ordered by precedence.
type FlightState int

const (
	StateCrashed FlightState = iota
	StateThrusting
	StateCrashImpact
	StateLanded
	StateLandingApproach
	StateAtmosphericDrag
	StateFreeFlight
)

var stateNames = [...]string{
	StateCrashed:         "crashed",
	StateThrusting:       "thrusting",
	StateCrashImpact:     "crash_impact",
	StateLanded:          "landed",
	StateLandingApproach: "landing_approach",
	StateAtmosphericDrag: "atmospheric_drag",
	StateFreeFlight:      "free_flight",
}

func (s FlightState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
