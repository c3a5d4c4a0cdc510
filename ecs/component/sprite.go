package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	// Texture is the asset name Image was loaded from.
	Texture string
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
	Alpha   float64
	Hidden  bool
}

var SpriteComponent = NewComponent[Sprite]()
