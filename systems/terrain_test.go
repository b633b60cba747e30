package systems

import (
	"testing"

	"github.com/sablewood/sablewood/archetypes"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/systems/factory"
	"github.com/sablewood/sablewood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spawnHitTestNPC builds an NPC with a hit-test object wired into the
// space, the same shape the entity factory produces.
func spawnHitTestNPC(e *ecs.ECS, id string, tileX, tileY int) *donburi.Entry {
	entry := archetypes.NPC.Spawn(e)
	size := float64(cfg.C.TileSize)
	x := float64(tileX) * size
	y := float64(tileY) * size

	components.Entity.SetValue(entry, components.EntityData{ID: id, Type: "hen"})
	components.Position.SetValue(entry, components.PositionData{X: x, Y: y, Facing: cfg.DirDown})
	components.Sprite.SetValue(entry, components.SpriteData{ForcedFrame: -1})

	obj := resolv.NewObject(x, y, size, size)
	obj.AddTags(tags.ResolvEntity)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}

func countNPCs(e *ecs.ECS) int {
	n := 0
	tags.NPC.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestReconcileRemovesHitTestObjectWithEntity(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, 8, 8)
	space := components.Space.Get(spaceEntry)

	spawnHitTestNPC(e, "hen-1", 2, 2)
	if len(space.Objects()) != 1 {
		t.Fatalf("setup: space has %d objects, want 1", len(space.Objects()))
	}

	// Server drops the entity: the entry and its object must both go.
	ApplyMapUpdate(e, messages.MapUpdate{})

	if got := countNPCs(e); got != 0 {
		t.Errorf("%d NPC entries survive, want 0", got)
	}
	if got := len(space.Objects()); got != 0 {
		t.Errorf("space holds %d objects after removal, want 0", got)
	}
}

func TestReconcileKeepsSurvivingEntityObject(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, 8, 8)
	space := components.Space.Get(spaceEntry)

	entry := spawnHitTestNPC(e, "hen-1", 2, 2)

	ApplyMapUpdate(e, messages.MapUpdate{Entities: []messages.EntityState{
		{ID: "hen-1", Type: "hen", TileX: 2, TileY: 2},
	}})

	if got := len(space.Objects()); got != 1 {
		t.Fatalf("space holds %d objects, want 1", got)
	}
	if space.Objects()[0].Data != entry {
		t.Error("surviving object no longer points at its entry")
	}
}

func TestClearWorldEntitiesEmptiesSpace(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	spaceEntry := factory.CreateSpace(e, 8, 8)
	space := components.Space.Get(spaceEntry)

	spawnHitTestNPC(e, "hen-1", 1, 1)
	spawnHitTestNPC(e, "hen-2", 3, 3)

	clearWorldEntities(e)

	if got := countNPCs(e); got != 0 {
		t.Errorf("%d NPC entries survive, want 0", got)
	}
	if got := len(space.Objects()); got != 0 {
		t.Errorf("space holds %d objects after clear, want 0", got)
	}
}
