package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/physics"
)

const (
	debugCircleSegments = 32
	// debugGravityScale stretches the per-frame pull so it is visible.
	debugGravityScale = 60
)

var (
	debugBodyColor    = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	debugLandingColor = cp.FColor{R: 1, G: 0.8, B: 0.2, A: 0.7}
	debugAirColor     = cp.FColor{R: 0.3, G: 0.6, B: 1, A: 0.5}
	debugGravityColor = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
)

// DrawPhysicsDebug outlines every body, the landing and atmosphere bands of
// the body the rocket is closest to, and the pull on the rocket.
func DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	d := &physicsDebugDrawer{screen: screen}

	ecs.ForEach(w, component.BodyComponent.Kind(), func(_ ecs.Entity, b *component.Body) {
		if b.Hidden {
			return
		}
		d.drawCircle(b.Position, b.Radius, debugBodyColor)
		spoke := b.Position.Add(cp.ForAngle(b.Rotation).Mult(b.Radius))
		d.drawLine(b.Position, spoke, debugBodyColor)
	})

	e, body, r, ok := rocket(w)
	if !ok {
		return
	}
	g, ok := ecs.Get(w, e, component.GravityFieldComponent.Kind())
	if !ok {
		return
	}

	f := g.Field
	if f.HasClosest {
		landing, air := debugBands(profile(w), f.Closest, body.Radius)
		d.drawCircle(f.Closest.Position, landing, debugLandingColor)
		d.drawCircle(f.Closest.Position, air, debugAirColor)
	}
	d.drawLine(body.Position, body.Position.Add(f.Gravity.Mult(debugGravityScale)), debugGravityColor)

	vp := viewport(w)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("state: %s\nsurface: %.1f\ncentre: %.1f\nvelocity: %.2f, %.2f",
		r.State, f.SurfaceDistance, f.CenterDistance, body.Velocity.X, body.Velocity.Y), int(vp.Width)-200, 10)
}

// debugBands returns the centre distances at which the rocket enters the
// landing band and the atmosphere of a.
func debugBands(p physics.Profile, a physics.Attractor, craftRadius float64) (landing, air float64) {
	landing = a.Radius + craftRadius + p.LandingDistance
	air = a.Radius + craftRadius + a.Radius*p.AirResistanceRadius
	return landing, air
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, toNRGBA(c), true)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
