package factory

import (
	"github.com/sablewood/sablewood/archetypes"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the resolv space used for pointer hit-testing, sized
// to the world in pixels with one cell per tile.
func CreateSpace(e *ecs.ECS, widthTiles, heightTiles int) *donburi.Entry {
	space := archetypes.Space.Spawn(e)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(widthTiles*cfg.C.TileSize, heightTiles*cfg.C.TileSize, cfg.C.TileSize, cfg.C.TileSize),
	})
	return space
}
