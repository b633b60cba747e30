package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sablewood/sablewood/assets"
	"github.com/sablewood/sablewood/assets/animations"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	grassSheet = animations.Sheet{
		Columns:     cfg.Terrain.GrassColumns,
		Rows:        cfg.Terrain.GrassRows,
		FrameWidth:  cfg.C.TileSize,
		FrameHeight: cfg.C.TileSize,
	}
)

// DrawWorld renders the terrain grid. Only the tiles inside the viewport
// are touched; grass cells pick a hashed sub-variant so the meadow does not
// tile visibly.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	terrain, ok := GetTerrain(e)
	if !ok {
		return
	}
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	soil := assets.GetImage(cfg.Terrain.SoilSheet)
	grass := assets.GetImage(cfg.Terrain.GrassSheet)

	size := cfg.C.TileSize
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Visible tile range.
	x0 := int(-camX) / size
	y0 := int(-camY) / size
	x1 := (int(-camX)+width)/size + 1
	y1 := (int(-camY)+height)/size + 1
	x0 = clampTile(x0, terrain.Width)
	y0 = clampTile(y0, terrain.Height)
	x1 = clampTile(x1, terrain.Width)
	y1 = clampTile(y1, terrain.Height)

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			var img *ebiten.Image
			switch terrain.TileAt(tx, ty) {
			case 1:
				if grass == nil {
					continue
				}
				variant := gamemath.TileVariant(tx, ty, terrain.Seed, cfg.Terrain.GrassVariants)
				img = grass.SubImage(grassSheet.SrcRect(variant)).(*ebiten.Image)
			default:
				if soil == nil {
					continue
				}
				img = soil
			}
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(float64(tx*size)+camX, float64(ty*size)+camY)
			screen.DrawImage(img, drawOp)
		}
	}
}

type drawable struct {
	img   *ebiten.Image
	x, y  float64
	sortY float64
	flipX bool
	w     int
}

// DrawEntities renders every sprite in painter's order (lower feet drawn
// later). Composite characters contribute one drawable per part, all at the
// root's position and frame.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	var items []drawable
	add := func(d drawable) {
		// Viewport culling with a sprite-sized margin.
		pad := 128.0
		sx := d.x + camX
		sy := d.y + camY
		if sx < -pad || sx > float64(width)+pad || sy < -pad || sy > float64(height)+pad {
			return
		}
		items = append(items, d)
	}

	// Free-standing sprites: animals and props.
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Position) {
			return
		}
		sprite := components.Sprite.Get(entry)
		if sprite.Image == nil {
			return
		}
		pos := components.Position.Get(entry)
		frame := frameFor(entry, sprite)

		y := pos.Y
		if entry.HasComponent(components.Tween) {
			y += components.Tween.Get(entry).OffsetY
		}
		add(drawable{
			img:   sprite.Image.SubImage(sprite.Sheet.SrcRect(frame)).(*ebiten.Image),
			x:     pos.X,
			y:     y - float64(sprite.Sheet.FrameHeight-cfg.C.TileSize),
			sortY: pos.Y + float64(cfg.C.TileSize),
			flipX: sprite.FlipX,
			w:     sprite.Sheet.FrameWidth,
		})
	})

	// Composite characters: the root carries position, clock, and part list.
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		anim := components.Animation.Get(entry)
		if anim.Current == nil {
			return
		}
		frame := anim.Current.Frame()
		character := components.Character.Get(entry)
		for _, part := range character.Parts {
			sprite := components.Sprite.Get(part)
			if sprite.Image == nil {
				continue
			}
			f := frame
			if sprite.ForcedFrame >= 0 {
				f = sprite.ForcedFrame
			}
			add(drawable{
				img:   sprite.Image.SubImage(sprite.Sheet.SrcRect(f)).(*ebiten.Image),
				x:     pos.X - float64(sprite.Sheet.FrameWidth-cfg.C.TileSize)/2,
				y:     pos.Y - float64(sprite.Sheet.FrameHeight-cfg.C.TileSize),
				sortY: pos.Y + float64(cfg.C.TileSize),
				flipX: sprite.FlipX,
				w:     sprite.Sheet.FrameWidth,
			})
		}
	})

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].sortY < items[j].sortY
	})

	for _, d := range items {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		if d.flipX {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(d.w), 0)
		}
		drawOp.GeoM.Translate(d.x+camX, d.y+camY)
		screen.DrawImage(d.img, drawOp)
	}
}

// frameFor resolves the sheet frame an entity shows this tick.
func frameFor(entry *donburi.Entry, sprite *components.SpriteData) int {
	if sprite.ForcedFrame >= 0 {
		return sprite.ForcedFrame
	}
	if entry.HasComponent(components.Animation) {
		if anim := components.Animation.Get(entry); anim.Current != nil {
			return anim.Current.Frame()
		}
	}
	return 0
}

// cameraOffset maps world pixels to screen pixels: add it to a world
// coordinate to place it on screen.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

func clampTile(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}
