package archetypes

import (
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Entity,
		components.Position,
		components.Move,
		components.Animation,
		components.Object,
	)
	BodyPart = newArchetype(
		tags.BodyPart,
		components.Part,
		components.Sprite,
	)
	NPC = newArchetype(
		tags.NPC,
		components.Entity,
		components.Position,
		components.Move,
		components.Animation,
		components.Sprite,
		components.Object,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Entity,
		components.Position,
		components.Animation,
		components.Sprite,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Position,
		components.Sprite,
	)
	Terrain = newArchetype(
		components.Terrain,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
