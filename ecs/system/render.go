package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	needleColor     = color.RGBA{R: 0xff, G: 0x55, B: 0x33, A: 0xff}
	hudColor        = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

type RenderSystem struct {
	face  text.Face
	debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{face: text.NewGoXFace(basicfont.Face7x13), debug: debug}
}

// Update is a no-op; the scheduler calls Draw once per rendered frame.
func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Image == nil || s.Hidden || s.Alpha <= 0 {
			continue
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleAlpha(float32(math.Min(s.Alpha, 1)))
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(s.Image, op)
	}

	ecs.ForEach(w, component.LineRenderComponent.Kind(), func(_ ecs.Entity, line *component.LineRender) {
		if !line.Visible {
			return
		}
		clr := line.Color
		if clr == nil {
			clr = hudColor
		}
		vector.StrokeLine(screen,
			float32(line.StartX), float32(line.StartY),
			float32(line.EndX), float32(line.EndY),
			max(line.Width, 1), clr, line.AntiAlias,
		)
	})

	ecs.ForEach2(w, component.SpeedometerComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, gauge *component.Speedometer, t *component.Transform) {
		tipX := t.X + math.Cos(gauge.NeedleAngle)*gauge.NeedleLen
		tipY := t.Y + math.Sin(gauge.NeedleAngle)*gauge.NeedleLen
		vector.StrokeLine(screen, float32(t.X), float32(t.Y), float32(tipX), float32(tipY), 3, needleColor, true)

		op := &text.DrawOptions{}
		op.GeoM.Translate(t.X-gauge.NeedleLen, t.Y+gauge.NeedleLen*0.5)
		op.ColorScale.ScaleWithColor(hudColor)
		op.LineSpacing = 16
		text.Draw(screen, gauge.Readout, r.face, op)
	})

	if r.debug {
		DrawPhysicsDebug(w, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %.1f  FPS: %.1f  entities: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), len(ecs.Entities(w))), 10, 170)
	}
}
