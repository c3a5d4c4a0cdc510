package component

type Speedometer struct {
	MaxSpeed    float64
	MinAngle    float64
	MaxAngle    float64
	NeedleAngle float64
	NeedleLen   float64
	Readout     string
}

var SpeedometerComponent = NewComponent[Speedometer]()
