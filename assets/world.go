package assets

import (
	"fmt"
	"log"

	"github.com/lafriks/go-tiled"
	"github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/gamemath"
)

// World is the terrain grid plus the entities standing on it. Grid cell 0
// is soil, 1 is grass (sub-variant hashed per cell at render time).
type World struct {
	Width  int
	Height int
	Grid   [][]int
	Spawns []EntitySpawn
}

// EntitySpawn places one catalog entity on the grid.
type EntitySpawn struct {
	ID    string
	Type  string
	TileX int
	TileY int
}

// LoadWorld reads an offline world from a Tiled TMX map. The "ground" tile
// layer becomes the terrain grid; objects in the "Entities" group become
// spawns, with the object class naming the catalog type.
func LoadWorld(path string) (*World, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}

	w := &World{
		Width:  m.Width,
		Height: m.Height,
		Grid:   make([][]int, m.Height),
	}
	for y := range w.Grid {
		w.Grid[y] = make([]int, m.Width)
	}

	found := false
	for _, layer := range m.Layers {
		if layer.Name != "ground" {
			continue
		}
		found = true
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				tile := layer.Tiles[y*m.Width+x]
				if tile.IsNil() || tile.ID == 0 {
					w.Grid[y][x] = 0
				} else {
					w.Grid[y][x] = 1
				}
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("map %s has no ground layer", path)
	}

	tileW := m.TileWidth
	tileH := m.TileHeight
	for _, og := range m.ObjectGroups {
		if og.Name != "Entities" {
			continue
		}
		for _, o := range og.Objects {
			typ := o.Type
			if _, ok := config.Entities[typ]; !ok {
				log.Printf("[world] map object %q has unknown entity type %q", o.Name, typ)
				continue
			}
			w.Spawns = append(w.Spawns, EntitySpawn{
				ID:    fmt.Sprintf("map-%d", o.ID),
				Type:  typ,
				TileX: int(o.X) / tileW,
				TileY: int(o.Y) / tileH,
			})
		}
	}

	return w, nil
}

// GenerateWorld builds the fallback meadow used when no TMX map is
// available and when a generate_world command arrives offline. The layout
// is fully determined by the seed.
func GenerateWorld(width, height int, seed int64) *World {
	w := &World{
		Width:  width,
		Height: height,
		Grid:   make([][]int, height),
	}
	for y := 0; y < height; y++ {
		w.Grid[y] = make([]int, width)
		for x := 0; x < width; x++ {
			// Mostly grass with hashed soil patches.
			if gamemath.TileVariant(x, y, seed, 5) == 0 {
				w.Grid[y][x] = 0
			} else {
				w.Grid[y][x] = 1
			}
		}
	}

	spawn := func(typ string, x, y int) {
		w.Spawns = append(w.Spawns, EntitySpawn{
			ID:    fmt.Sprintf("gen-%s-%d-%d", typ, x, y),
			Type:  typ,
			TileX: x,
			TileY: y,
		})
	}
	for i := 0; i < 4; i++ {
		spawn("hen", 4+gamemath.TileVariant(i, 0, seed, width-8), 4+gamemath.TileVariant(0, i, seed, height-8))
		spawn("flower", 2+gamemath.TileVariant(i, 7, seed, width-4), 2+gamemath.TileVariant(7, i, seed, height-4))
	}
	spawn("sheep", width/3, height/3)
	spawn("oak", width/2, height/4)
	spawn("butterfly", width/2, height/2)
	spawn("rock", 2*width/3, 2*height/3)

	return w
}
