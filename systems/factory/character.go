package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sablewood/sablewood/archetypes"
	"github.com/sablewood/sablewood/assets"
	"github.com/sablewood/sablewood/assets/animations"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterSheet is the common slicing for every character part sheet.
var CharacterSheet = animations.Sheet{
	Columns:     cfg.CharacterColumns,
	Rows:        cfg.CharacterRows,
	FrameWidth:  cfg.CharacterFrameWidth,
	FrameHeight: cfg.CharacterFrameHeight,
}

// CreatePlayer assembles the composite player at the given tile: one root
// entity holding the single animation clock, plus one sprite entity per
// part in draw order. Part sheets load asynchronously; a part renders
// nothing until its sheet resolves.
func CreatePlayer(e *ecs.ECS, name string, tileX, tileY int, variants map[cfg.PartKind]int) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	size := float64(cfg.C.TileSize)
	components.Entity.SetValue(player, components.EntityData{
		ID:   "player",
		Type: "character",
	})
	components.Position.SetValue(player, components.PositionData{
		X:      float64(tileX) * size,
		Y:      float64(tileY) * size,
		Facing: cfg.DirDown,
	})

	anim := components.Animation.Get(player)
	anim.Table = components.BuildTable(cfg.CharacterAnimations)
	anim.SetState(cfg.Idle(cfg.DirDown))

	obj := resolv.NewObject(float64(tileX)*size, float64(tileY)*size, size, size)
	obj.AddTags(tags.ResolvEntity, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(e, obj)

	character := components.Character.Get(player)
	character.Name = name
	for _, kind := range cfg.PartOrder {
		character.Parts = append(character.Parts, createPart(e, player, kind, variants[kind]))
	}
	return player
}

func createPart(e *ecs.ECS, owner *donburi.Entry, kind cfg.PartKind, variant int) *donburi.Entry {
	part := archetypes.BodyPart.Spawn(e)
	components.Part.SetValue(part, components.PartData{
		Kind:  kind,
		Owner: owner,
	})
	components.Sprite.SetValue(part, components.SpriteData{
		Sheet:       CharacterSheet,
		ForcedFrame: -1,
	})
	sprite := components.Sprite.Get(part)
	sprite.Load = assets.GetImageAsync(cfg.PartSheetPath(kind, variant), func(img *ebiten.Image) {
		sprite.Image = img
		sprite.Load = nil
	})
	return part
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	if entry, ok := components.Space.First(e.World); ok {
		components.Space.Get(entry).Add(obj)
	}
}
