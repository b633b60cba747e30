package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sablewood/sablewood/assets"
	"github.com/sablewood/sablewood/assets/animations"
	"github.com/yohamta/donburi"
)

// SpriteData binds an entity to one spritesheet. Image stays nil until its
// load resolves; the renderer draws nothing for a nil sheet.
type SpriteData struct {
	Image *ebiten.Image
	Sheet animations.Sheet

	// Load is the in-flight sheet load, kept so teardown can cancel it
	// before the image is applied.
	Load *assets.LoadHandle

	// ForcedFrame, when >= 0, overrides the animation clock for the tick.
	ForcedFrame int

	FlipX bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
