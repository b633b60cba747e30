package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives decorative motion (bobbing props) from a gween sequence.
// Offset is applied at draw time only; the entity's logical position never
// moves.
type TweenData struct {
	Sequence *gween.Sequence
	OffsetY  float64
}

var Tween = donburi.NewComponentType[TweenData]()
