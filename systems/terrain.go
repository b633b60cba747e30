package systems

import (
	"log"

	"github.com/sablewood/sablewood/archetypes"
	"github.com/sablewood/sablewood/assets"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/systems/factory"
	"github.com/sablewood/sablewood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func GetTerrain(e *ecs.ECS) (*components.TerrainData, bool) {
	entry, ok := components.Terrain.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Terrain.Get(entry), true
}

// BuildWorld replaces the terrain singleton and entity population with the
// contents of a loaded world.
func BuildWorld(e *ecs.ECS, w *assets.World) {
	terrain := getOrCreateTerrain(e)
	terrain.Width = w.Width
	terrain.Height = w.Height
	terrain.Grid = w.Grid
	terrain.Seed = cfg.World.Seed

	clearWorldEntities(e)
	for _, spawn := range w.Spawns {
		factory.CreateEntity(e, spawn.ID, spawn.Type, spawn.TileX, spawn.TileY)
	}
	log.Printf("[terrain] world built: %dx%d, %d entities", w.Width, w.Height, len(w.Spawns))
}

// ApplyMapUpdate merges a map payload from the server: the tile grid is
// replaced wholesale and the entity set is reconciled against it.
func ApplyMapUpdate(e *ecs.ECS, upd messages.MapUpdate) {
	if upd.Map.Width > 0 && upd.Map.Height > 0 {
		terrain := getOrCreateTerrain(e)
		terrain.Width = upd.Map.Width
		terrain.Height = upd.Map.Height
		terrain.Grid = upd.Map.Grid
	}
	reconcileEntities(e, upd.Entities)
}

func getOrCreateTerrain(e *ecs.ECS) *components.TerrainData {
	if terrain, ok := GetTerrain(e); ok {
		return terrain
	}
	entry := archetypes.Terrain.Spawn(e)
	return components.Terrain.Get(entry)
}

func clearWorldEntities(e *ecs.ECS) {
	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	}
	tags.NPC.Each(e.World, collect)
	tags.Prop.Each(e.World, collect)
	for _, entry := range doomed {
		removeEntity(e, entry)
	}
}

// removeEntity cancels any in-flight sheet load and detaches the hit-test
// object before the entry is destroyed, so a late Flush cannot write into
// recycled storage and the space never outlines a dead entry.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Sprite) {
		if sprite := components.Sprite.Get(entry); sprite.Load != nil {
			sprite.Load.Cancel()
		}
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry).Object; obj != nil {
			if spaceEntry, ok := components.Space.First(e.World); ok {
				components.Space.Get(spaceEntry).Remove(obj)
			}
		}
	}
	e.World.Remove(entry.Entity())
}

// reconcileEntities updates, spawns, and removes world entities so the
// population matches the incoming state list.
func reconcileEntities(e *ecs.ECS, states []messages.EntityState) {
	seen := make(map[string]bool, len(states))
	existing := make(map[string]*donburi.Entry)
	index := func(entry *donburi.Entry) {
		if entry.HasComponent(components.Entity) {
			existing[components.Entity.Get(entry).ID] = entry
		}
	}
	tags.NPC.Each(e.World, index)
	tags.Prop.Each(e.World, index)

	size := float64(cfg.C.TileSize)
	for _, state := range states {
		seen[state.ID] = true
		entry, ok := existing[state.ID]
		if !ok {
			entry = factory.CreateEntity(e, state.ID, state.Type, state.TileX, state.TileY)
			if entry == nil {
				continue
			}
		}
		ent := components.Entity.Get(entry)
		ent.State = state.State
		ent.Variant = state.Variant

		pos := components.Position.Get(entry)
		tx, ty := pos.Tile()
		if tx != state.TileX || ty != state.TileY {
			target := dmath.Vec2{X: float64(state.TileX) * size, Y: float64(state.TileY) * size}
			StartPath(entry, []dmath.Vec2{target}, false)
		}
	}

	var doomed []*donburi.Entry
	for id, entry := range existing {
		if !seen[id] {
			doomed = append(doomed, entry)
			log.Printf("[terrain] entity %q left the map", id)
		}
	}
	for _, entry := range doomed {
		removeEntity(e, entry)
	}
}
