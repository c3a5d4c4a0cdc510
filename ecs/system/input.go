package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
)

// PointerSource reports the primary pointer for the current tick.
type PointerSource interface {
	Pointer() component.Pointer
}

// EbitenPointer merges the left mouse button with the first active touch.
type EbitenPointer struct {
	touch    ebiten.TouchID
	touching bool
	lastX    int
	lastY    int
}

func (p *EbitenPointer) Pointer() component.Pointer {
	var out component.Pointer

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 && !p.touching {
		p.touch = ids[0]
		p.touching = true
		out.JustPressed = true
	}
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.touching = false
			out.JustReleased = true
			out.X, out.Y = float64(p.lastX), float64(p.lastY)
			return out
		}
		p.lastX, p.lastY = ebiten.TouchPosition(p.touch)
		out.X, out.Y = float64(p.lastX), float64(p.lastY)
		out.Pressed = true
		return out
	}

	x, y := ebiten.CursorPosition()
	out.X, out.Y = float64(x), float64(y)
	out.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	out.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	out.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return out
}

type InputSystem struct {
	source PointerSource
}

// NewInputSystem reads from source, or from ebiten when source is nil.
func NewInputSystem(source PointerSource) *InputSystem {
	if source == nil {
		source = &EbitenPointer{}
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	state := i.source.Pointer()
	ecs.ForEach(w, component.PointerComponent.Kind(), func(_ ecs.Entity, p *component.Pointer) {
		*p = state
	})
}
