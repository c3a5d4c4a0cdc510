package component

type Clock struct {
	// Delta is the frame step in ticks.
	Delta float64
	Frame uint64
}

var ClockComponent = NewComponent[Clock]()
