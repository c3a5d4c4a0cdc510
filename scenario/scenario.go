// Package scenario runs a layout script that decides where the bodies of a
// round start and how they spin and orbit.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/lander/prefabs"
)

const DefaultScript = "solar_system"

type Kind string

const (
	KindPrimary  Kind = "primary"
	KindMoon     Kind = "moon"
	KindAsteroid Kind = "asteroid"
)

var (
	ErrNoPrimary     = errors.New("scenario: exactly one primary body is required")
	ErrUnknownKind   = errors.New("scenario: unknown body kind")
	ErrMissingBodies = errors.New("scenario: script did not define bodies")
	ErrMalformedBody = errors.New("scenario: malformed body")
)

type Config struct {
	Script string
	Width  float64
	Height float64
	Seed   int64
}

// Body is one body the script asked for. Zero Scale and Texture leave the
// prefab's values in place.
type Body struct {
	Kind          Kind
	X             float64
	Y             float64
	Scale         float64
	RotationSpeed float64
	OrbitAngle    float64
	OrbitDistance float64
	OrbitSpeed    float64
	Texture       string
}

// Generate compiles and runs the layout script with width, height and seed
// bound, then reads back its bodies array.
func Generate(ctx context.Context, cfg Config) ([]Body, error) {
	name := cfg.Script
	if name == "" {
		name = DefaultScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", name, err)
	}
	return Run(ctx, src, cfg)
}

// Run executes script source directly.
func Run(ctx context.Context, src []byte, cfg Config) ([]Body, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("width", cfg.Width); err != nil {
		return nil, fmt.Errorf("scenario: bind width: %w", err)
	}
	if err := script.Add("height", cfg.Height); err != nil {
		return nil, fmt.Errorf("scenario: bind height: %w", err)
	}
	if err := script.Add("seed", cfg.Seed); err != nil {
		return nil, fmt.Errorf("scenario: bind seed: %w", err)
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("scenario: run: %w", err)
	}
	if !compiled.IsDefined("bodies") {
		return nil, ErrMissingBodies
	}

	raw := compiled.Get("bodies").Array()
	if raw == nil {
		return nil, fmt.Errorf("%w: bodies must be an array", ErrMalformedBody)
	}

	bodies := make([]Body, 0, len(raw))
	primaries := 0
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d is %T", ErrMalformedBody, i, item)
		}
		b, err := decodeBody(m)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		if b.Kind == KindPrimary {
			primaries++
		}
		bodies = append(bodies, b)
	}
	if primaries != 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrNoPrimary, primaries)
	}
	return bodies, nil
}

func decodeBody(m map[string]any) (Body, error) {
	kind, _ := m["kind"].(string)
	b := Body{Kind: Kind(strings.ToLower(strings.TrimSpace(kind)))}
	switch b.Kind {
	case KindPrimary, KindMoon, KindAsteroid:
	default:
		return Body{}, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}

	fields := []struct {
		key string
		dst *float64
	}{
		{"x", &b.X},
		{"y", &b.Y},
		{"scale", &b.Scale},
		{"rotation_speed", &b.RotationSpeed},
		{"orbit_angle", &b.OrbitAngle},
		{"orbit_distance", &b.OrbitDistance},
		{"orbit_speed", &b.OrbitSpeed},
	}
	for _, f := range fields {
		v, ok := m[f.key]
		if !ok {
			continue
		}
		n, ok := number(v)
		if !ok {
			return Body{}, fmt.Errorf("%w: %s is %T", ErrMalformedBody, f.key, v)
		}
		*f.dst = n
	}
	if tex, ok := m["texture"].(string); ok {
		b.Texture = tex
	}
	if b.Scale < 0 || b.OrbitDistance < 0 {
		return Body{}, fmt.Errorf("%w: negative scale or orbit distance", ErrMalformedBody)
	}
	return b, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
