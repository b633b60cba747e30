package components

import (
	"github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi"
)

// CharacterData marks the root entity of a composite character. Part
// entities are stored in draw order; each carries only a sprite and reads
// the root's animation clock.
type CharacterData struct {
	Name  string
	Parts []*donburi.Entry
}

var Character = donburi.NewComponentType[CharacterData]()

// PartData ties a body-part sprite back to its character root.
type PartData struct {
	Kind  config.PartKind
	Owner *donburi.Entry
}

var Part = donburi.NewComponentType[PartData]()
