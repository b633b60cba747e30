package components

import (
	"log"

	"github.com/yohamta/donburi"
)

// TerrainData is the singleton terrain grid for the displayed world.
type TerrainData struct {
	Width  int
	Height int
	Grid   [][]int
	Seed   int64
}

// TileAt returns the category of the cell at (x, y). Out-of-bounds access
// is logged and substituted with the default soil tile rather than failing
// the render.
func (t *TerrainData) TileAt(x, y int) int {
	if y < 0 || y >= len(t.Grid) || x < 0 || x >= len(t.Grid[y]) {
		log.Printf("[terrain] tile (%d, %d) out of bounds for %dx%d grid", x, y, t.Width, t.Height)
		return 0
	}
	return t.Grid[y][x]
}

var Terrain = donburi.NewComponentType[TerrainData]()
