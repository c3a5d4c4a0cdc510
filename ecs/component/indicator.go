package component

// Indicator is the edge arrow shown while the rocket is off screen.
type Indicator struct {
	Margin      float64
	MinScale    float64
	MaxScale    float64
	MaxDistance float64
	Visible     bool
}

var IndicatorComponent = NewComponent[Indicator]()
