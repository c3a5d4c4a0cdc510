package component

// Viewport stores the screen size the play area is measured against.
type Viewport struct {
	Width  float64
	Height float64
}

var ViewportComponent = NewComponent[Viewport]()
