package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/lander/assets"
)

// textures caches GPU images by asset name. Bodies that share a texture
// share one image.
var textures = map[string]*ebiten.Image{}

// Texture returns the image for name, loading it from the embedded assets or
// the working directory on first use.
func Texture(name string) (*ebiten.Image, error) {
	if name == "" {
		return nil, fmt.Errorf("render: empty texture name")
	}
	if img, ok := textures[name]; ok {
		return img, nil
	}
	img, err := loadTexture(name)
	if err != nil {
		return nil, err
	}
	textures[name] = img
	return img, nil
}

// ForgetTextures drops the cache so a rebuilt scenario picks up edited
// files.
func ForgetTextures() {
	clear(textures)
}

func loadTexture(name string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(name); err == nil {
		return img, nil
	}
	for _, p := range []string{name, filepath.Join("assets", name)} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("render: decode %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("render: texture %s not found", name)
}
