package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is an entity prefab: a name plus a map of component specs
// keyed by registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one loosely typed component entry into its
// spec struct.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// SpriteComponentSpec places the origin as a fraction of the image size.
type SpriteComponentSpec struct {
	Image   string   `yaml:"image"`
	AnchorX *float64 `yaml:"anchor_x"`
	AnchorY *float64 `yaml:"anchor_y"`
	Alpha   *float64 `yaml:"alpha"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type LineRenderComponentSpec struct {
	Width     float32 `yaml:"width"`
	Color     string  `yaml:"color"`
	AntiAlias bool    `yaml:"anti_alias"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips []AudioClipSpec `yaml:"clips"`
}

// BodyComponentSpec sizes a body. Radius overrides the size derived from
// the sprite.
type BodyComponentSpec struct {
	Radius           float64 `yaml:"radius"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
}

type PlanetComponentSpec struct {
	RotationSpeed float64 `yaml:"rotation_speed"`
}

type OrbitComponentSpec struct {
	Angle    float64 `yaml:"angle"`
	Distance float64 `yaml:"distance"`
	Speed    float64 `yaml:"speed"`
}

type RocketComponentSpec struct {
	DefaultRotation *float64 `yaml:"default_rotation"`
}

type IndicatorComponentSpec struct {
	Margin      float64 `yaml:"margin"`
	MinScale    float64 `yaml:"min_scale"`
	MaxScale    float64 `yaml:"max_scale"`
	MaxDistance float64 `yaml:"max_distance"`
}

type SpeedometerComponentSpec struct {
	MaxSpeed  float64 `yaml:"max_speed"`
	MinAngle  float64 `yaml:"min_angle"`
	MaxAngle  float64 `yaml:"max_angle"`
	NeedleLen float64 `yaml:"needle_len"`
}

type ClockComponentSpec struct {
	Delta float64 `yaml:"delta"`
}

type ViewportComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
