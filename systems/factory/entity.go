package factory

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sablewood/sablewood/archetypes"
	"github.com/sablewood/sablewood/assets"
	"github.com/sablewood/sablewood/assets/animations"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEntity spawns a catalog entity at a tile. Animals get a mover and a
// hit-test object; props are static sprites, optionally bobbing on a tween.
// Unknown types are logged and skipped.
func CreateEntity(e *ecs.ECS, id, typ string, tileX, tileY int) *donburi.Entry {
	def, ok := cfg.Entities[typ]
	if !ok {
		log.Printf("[factory] unknown entity type %q", typ)
		return nil
	}

	var entry *donburi.Entry
	if isCreature(def) {
		entry = archetypes.NPC.Spawn(e)
	} else {
		entry = archetypes.Prop.Spawn(e)
	}

	size := float64(cfg.C.TileSize)
	x := float64(tileX) * size
	y := float64(tileY) * size

	components.Entity.SetValue(entry, components.EntityData{
		ID:   id,
		Type: typ,
	})
	components.Position.SetValue(entry, components.PositionData{
		X:      x,
		Y:      y,
		Facing: cfg.DirDown,
	})

	anim := components.Animation.Get(entry)
	anim.Table = components.BuildTable(def.Animations)
	anim.SetState(def.Default)

	components.Sprite.SetValue(entry, components.SpriteData{
		Sheet: animations.Sheet{
			Columns:     def.Columns,
			Rows:        def.Rows,
			FrameWidth:  def.FrameWidth,
			FrameHeight: def.FrameHeight,
		},
		ForcedFrame: -1,
	})
	sprite := components.Sprite.Get(entry)
	sprite.Load = assets.GetImageAsync(def.Sheet, func(img *ebiten.Image) {
		sprite.Image = img
		sprite.Load = nil
	})

	if isCreature(def) {
		obj := resolv.NewObject(x, y, float64(def.FrameWidth), float64(def.FrameHeight))
		obj.AddTags(tags.ResolvEntity)
		obj.Data = entry
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
		addToSpace(e, obj)
	}

	if def.Bob {
		seq := gween.NewSequence(
			gween.New(0, -4, 0.9, ease.InOutSine),
			gween.New(-4, 0, 0.9, ease.InOutSine),
		)
		components.Tween.SetValue(entry, components.TweenData{Sequence: seq})
	}
	return entry
}

// isCreature reports whether the catalog entry is a moving animal rather
// than a static prop: creatures carry directional walk animations.
func isCreature(def cfg.EntityConfig) bool {
	for state := range def.Animations {
		switch state {
		case cfg.WalkUp, cfg.WalkDown, cfg.WalkLeft, cfg.WalkRight:
			return true
		}
	}
	return false
}
