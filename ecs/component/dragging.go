package component

import "github.com/jakecoffman/cp"

// Dragging tracks an in-progress launch gesture. A new press replaces Start.
type Dragging struct {
	Dragging bool
	Start    cp.Vector
	HasStart bool
	Current  cp.Vector
}

var DraggingComponent = NewComponent[Dragging]()
