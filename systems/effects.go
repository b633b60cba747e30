package systems

import (
	"github.com/sablewood/sablewood/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances decorative tweens. Bobbing sequences restart when
// they finish so props drift forever.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(TickDeltaMS() / 1000)
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tween := components.Tween.Get(entry)
		if tween.Sequence == nil {
			return
		}
		value, _, done := tween.Sequence.Update(dt)
		tween.OffsetY = float64(value)
		if done {
			tween.Sequence.Reset()
		}
	})
}
