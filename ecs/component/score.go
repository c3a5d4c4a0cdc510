package component

type Score struct {
	Points   int
	Landings int
	Crashes  int
	Best     int
	// Home is the body of the last landing. Zero until the first one.
	Home uint64
}

var ScoreComponent = NewComponent[Score]()
