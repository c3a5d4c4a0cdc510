package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/lander/assets"
	"github.com/milk9111/lander/ecs"
	"github.com/milk9111/lander/ecs/component"
	"github.com/milk9111/lander/ecs/render"
	"github.com/milk9111/lander/physics"
	"github.com/milk9111/lander/prefabs"
)

// TextureLoader turns an asset name into a GPU image. Tests swap it for a
// loader that never touches the GPU.
var TextureLoader = render.Texture

// AudioLoader creates a player for a clip file.
var AudioLoader = assets.LoadAudioPlayer

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"session":       addSessionTag,
	"primary":       addPrimaryTag,
	"attractor":     addAttractorTag,
	"transform":     addTransform,
	"sprite":        addSprite,
	"render_layer":  addRenderLayer,
	"line_render":   addLineRender,
	"audio":         addAudio,
	"body":          addBody,
	"planet":        addPlanet,
	"orbit":         addOrbit,
	"asteroid":      addAsteroid,
	"rocket":        addRocket,
	"crash":         addCrash,
	"indicator":     addIndicator,
	"speedometer":   addSpeedometer,
	"clock":         addClock,
	"viewport":      addViewport,
	"pointer":       addPointer,
	"dragging":      addDragging,
	"score":         addScore,
	"gravity_field": addGravityField,
}

// Body sizing reads Transform and Sprite, and Rocket reads Body, so those
// go first.
var componentBuildOrder = []string{
	"session",
	"primary",
	"attractor",
	"transform",
	"sprite",
	"render_layer",
	"line_render",
	"audio",
	"body",
	"planet",
	"orbit",
	"asteroid",
	"rocket",
	"gravity_field",
	"crash",
	"indicator",
	"speedometer",
	"clock",
	"viewport",
	"pointer",
	"dragging",
	"score",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	rest := make([]string, 0, len(remaining))
	for name := range remaining {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	names = append(names, rest...)

	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// BodyRadius is half the smaller scaled side of a sprite.
func BodyRadius(imgW, imgH int, scaleX, scaleY float64) float64 {
	return min(float64(imgW)*scaleX, float64(imgH)*scaleY) / 2
}

// spriteRadius sizes a body from its sprite texture and transform scale.
func spriteRadius(w *ecs.World, e ecs.Entity) (float64, error) {
	s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok || s.Texture == "" {
		return 0, fmt.Errorf("body needs a sprite texture or an explicit radius")
	}
	iw, ih, err := assets.ImageSize(s.Texture)
	if err != nil {
		return 0, fmt.Errorf("size %q: %w", s.Texture, err)
	}
	sx, sy := 1.0, 1.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		sx, sy = t.ScaleX, t.ScaleY
	}
	return BodyRadius(iw, ih, sx, sy), nil
}

func tuning(w *ecs.World) physics.Profile {
	if e, ok := w.First(component.TuningComponent.Kind()); ok {
		if t, ok := ecs.Get(w, e, component.TuningComponent.Kind()); ok {
			return t.Profile
		}
	}
	return physics.DefaultProfile()
}

func addSessionTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SessionTagComponent.Kind(), &component.SessionTag{})
}

func addPrimaryTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PrimaryTagComponent.Kind(), &component.PrimaryTag{})
}

func addAttractorTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AttractorTagComponent.Kind(), &component.AttractorTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	sprite := component.Sprite{Alpha: 1}
	if spec.Alpha != nil {
		sprite.Alpha = *spec.Alpha
	}
	anchorX, anchorY := 0.5, 0.5
	if spec.AnchorX != nil {
		anchorX = *spec.AnchorX
	}
	if spec.AnchorY != nil {
		anchorY = *spec.AnchorY
	}
	if err := setTexture(&sprite, spec.Image, anchorX, anchorY); err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

// setTexture loads name into the sprite and places its origin at the anchor
// fraction of the image.
func setTexture(sprite *component.Sprite, name string, anchorX, anchorY float64) error {
	if name == "" {
		return nil
	}
	iw, ih, err := assets.ImageSize(name)
	if err != nil {
		return fmt.Errorf("size image %q: %w", name, err)
	}
	var img *ebiten.Image
	if TextureLoader != nil {
		img, err = TextureLoader(name)
		if err != nil {
			return fmt.Errorf("load image %q: %w", name, err)
		}
	}
	sprite.Texture = name
	sprite.Image = img
	sprite.OriginX = float64(iw) * anchorX
	sprite.OriginY = float64(ih) * anchorY
	return nil
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type lineRenderSpec = prefabs.LineRenderComponentSpec

func addLineRender(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[lineRenderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode line render spec: %w", err)
	}
	if spec.Width <= 0 {
		spec.Width = 1
	}
	c := color.Color(color.White)
	if spec.Color != "" {
		parsed, err := parseHexColor(spec.Color)
		if err != nil {
			return fmt.Errorf("parse line render color: %w", err)
		}
		c = parsed
	}
	return ecs.Add(w, e, component.LineRenderComponent.Kind(), &component.LineRender{
		Width:     spec.Width,
		Color:     c,
		AntiAlias: spec.AntiAlias,
	})
}

type audioSpec = prefabs.AudioComponentSpec
type audioClipSpec = prefabs.AudioClipSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	comp, err := buildAudioComponentFromSpec(spec.Clips)
	if err != nil {
		return err
	}
	if comp == nil {
		return nil
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

func buildAudioComponentFromSpec(clips []audioClipSpec) (*component.Audio, error) {
	n := len(clips)
	if n == 0 {
		return nil, nil
	}

	comp := &component.Audio{
		Names:   make([]string, 0, n),
		Players: make([]*audio.Player, 0, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}
	for i, clip := range clips {
		var player *audio.Player
		if AudioLoader != nil {
			p, err := AudioLoader(clip.File)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
			player = p
		}
		volume := clip.Volume
		if volume <= 0 {
			volume = 1
		}
		comp.Names = append(comp.Names, clip.Name)
		comp.Players = append(comp.Players, player)
		comp.Volume = append(comp.Volume, volume)
	}
	return comp, nil
}

type bodySpec = prefabs.BodyComponentSpec

func addBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[bodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode body spec: %w", err)
	}
	radius := spec.Radius
	if radius <= 0 {
		radius, err = spriteRadius(w, e)
		if err != nil {
			return err
		}
	}

	b := &component.Body{ID: uint64(e), Radius: radius, TerminalVelocity: spec.TerminalVelocity}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		b.Position.X, b.Position.Y = t.X, t.Y
		b.Rotation = t.Rotation
	}
	b.InitialPosition = b.Position
	return ecs.Add(w, e, component.BodyComponent.Kind(), b)
}

type planetSpec = prefabs.PlanetComponentSpec

func addPlanet(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[planetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode planet spec: %w", err)
	}
	return ecs.Add(w, e, component.PlanetComponent.Kind(), &component.Planet{RotationSpeed: spec.RotationSpeed})
}

type orbitSpec = prefabs.OrbitComponentSpec

func addOrbit(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[orbitSpec](raw)
	if err != nil {
		return fmt.Errorf("decode orbit spec: %w", err)
	}
	if spec.Distance < 0 {
		return fmt.Errorf("orbit distance %v is negative", spec.Distance)
	}
	return ecs.Add(w, e, component.OrbitComponent.Kind(), &component.Orbit{
		Angle:    spec.Angle,
		Distance: spec.Distance,
		Speed:    spec.Speed,
	})
}

func addAsteroid(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.AsteroidComponent.Kind(), &component.Asteroid{})
}

type rocketSpec = prefabs.RocketComponentSpec

func addRocket(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[rocketSpec](raw)
	if err != nil {
		return fmt.Errorf("decode rocket spec: %w", err)
	}
	if w.Count(component.RocketComponent.Kind()) > 0 {
		return fmt.Errorf("world already has a rocket")
	}
	rotation := tuning(w).DefaultRotation
	if spec.DefaultRotation != nil {
		rotation = *spec.DefaultRotation
	}
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		b.Rotation = rotation
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.Rotation = rotation
	}
	return ecs.Add(w, e, component.RocketComponent.Kind(), &component.Rocket{
		State:           physics.StateLanded,
		DefaultRotation: rotation,
	})
}

func addGravityField(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GravityFieldComponent.Kind(), &component.GravityField{})
}

func addCrash(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	p := tuning(w)
	return ecs.Add(w, e, component.CrashComponent.Kind(), &component.Crash{
		Duration: p.CrashDuration,
		Size:     p.CrashStartScale,
		Alpha:    1,
	})
}

type indicatorSpec = prefabs.IndicatorComponentSpec

func addIndicator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[indicatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode indicator spec: %w", err)
	}
	if spec.MaxScale == 0 {
		spec.MaxScale = 1
	}
	if spec.MinScale > spec.MaxScale {
		return fmt.Errorf("indicator min_scale %v exceeds max_scale %v", spec.MinScale, spec.MaxScale)
	}
	if spec.MaxDistance <= 0 {
		spec.MaxDistance = 1000
	}
	return ecs.Add(w, e, component.IndicatorComponent.Kind(), &component.Indicator{
		Margin:      spec.Margin,
		MinScale:    spec.MinScale,
		MaxScale:    spec.MaxScale,
		MaxDistance: spec.MaxDistance,
	})
}

type speedometerSpec = prefabs.SpeedometerComponentSpec

func addSpeedometer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[speedometerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode speedometer spec: %w", err)
	}
	if spec.MaxSpeed <= 0 {
		return fmt.Errorf("speedometer max_speed must be positive")
	}
	return ecs.Add(w, e, component.SpeedometerComponent.Kind(), &component.Speedometer{
		MaxSpeed:    spec.MaxSpeed,
		MinAngle:    spec.MinAngle,
		MaxAngle:    spec.MaxAngle,
		NeedleAngle: spec.MinAngle,
		NeedleLen:   spec.NeedleLen,
	})
}

type clockSpec = prefabs.ClockComponentSpec

func addClock(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[clockSpec](raw)
	if err != nil {
		return fmt.Errorf("decode clock spec: %w", err)
	}
	if spec.Delta <= 0 {
		spec.Delta = 1
	}
	return ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{Delta: spec.Delta})
}

type viewportSpec = prefabs.ViewportComponentSpec

func addViewport(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[viewportSpec](raw)
	if err != nil {
		return fmt.Errorf("decode viewport spec: %w", err)
	}
	return ecs.Add(w, e, component.ViewportComponent.Kind(), &component.Viewport{Width: spec.Width, Height: spec.Height})
}

func addPointer(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{})
}

func addDragging(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.DraggingComponent.Kind(), &component.Dragging{})
}

func addScore(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{})
}

func parseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return nil, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return nil, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return nil, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
