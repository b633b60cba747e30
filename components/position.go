package components

import (
	"github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi"
)

// PositionData is an entity's world position in pixels plus its facing.
type PositionData struct {
	X, Y   float64
	Facing config.Direction
}

// Tile returns the tile coordinates the entity currently occupies.
func (p *PositionData) Tile() (int, int) {
	size := float64(config.C.TileSize)
	return int(p.X / size), int(p.Y / size)
}

var Position = donburi.NewComponentType[PositionData]()
