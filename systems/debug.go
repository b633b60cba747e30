package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sablewood/sablewood/components"
	"github.com/sablewood/sablewood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugObjects keeps the resolv hit-test objects glued to their
// entities so pointer picking stays accurate while things move.
func UpdateDebugObjects(e *ecs.ECS) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Position) {
			return
		}
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			return
		}
		pos := components.Position.Get(entry)
		obj.X = pos.X
		obj.Y = pos.Y
		obj.Update()
	})
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY
		if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	// Name the entity under the cursor.
	mx, my := ebiten.CursorPosition()
	if entry := PickEntity(e, float64(mx)-camX, float64(my)-camY); entry != nil {
		ent := components.Entity.Get(entry)
		pos := components.Position.Get(entry)
		tx, ty := pos.Tile()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%s) tile %d,%d", ent.ID, ent.Type, tx, ty), mx+12, my)
	}

	if player, ok := playerEntry(e); ok {
		pos := components.Position.Get(player)
		anim := components.Animation.Get(player)
		tx, ty := pos.Tile()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("tile %d,%d  pos %.1f,%.1f  state %v  tps %.0f", tx, ty, pos.X, pos.Y, anim.State, ebiten.ActualTPS()),
			8, height-18)
	}
}

// PickEntity returns the entity whose hit-test object contains the world
// point, or nil.
func PickEntity(e *ecs.ECS, wx, wy float64) *donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		if wx < obj.X || wx >= obj.X+obj.W || wy < obj.Y || wy >= obj.Y+obj.H {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok {
			return entry
		}
	}
	return nil
}
