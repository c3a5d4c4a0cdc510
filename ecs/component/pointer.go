package component

// Pointer is the per-frame mouse/touch state in screen coordinates.
type Pointer struct {
	X            float64
	Y            float64
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

var PointerComponent = NewComponent[Pointer]()
