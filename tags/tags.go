package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	NPC      = donburi.NewTag().SetName("NPC")
	Prop     = donburi.NewTag().SetName("Prop")
	Tile     = donburi.NewTag().SetName("Tile")
	BodyPart = donburi.NewTag().SetName("BodyPart")
)

// Resolv tags for debug hit-testing
const (
	ResolvEntity = "entity"
	ResolvPlayer = "player"
)
