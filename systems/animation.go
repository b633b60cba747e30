package systems

import (
	"github.com/sablewood/sablewood/assets"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every animation clock by one tick and settles
// finished one-shot states (jumps) back to idle. It also applies any image
// loads that resolved since the last tick, so sprite mutation stays on the
// update loop.
func UpdateAnimations(e *ecs.ECS) {
	assets.FlushLoads()

	dt := TickDeltaMS()
	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.Current == nil || anim.Frozen {
			return
		}
		completed := anim.Current.Update(dt)
		if !completed {
			return
		}
		// One-shot states settle back to idle, keeping the facing the
		// jump was performed in.
		if entry.HasComponent(components.Position) {
			pos := components.Position.Get(entry)
			anim.SetState(cfg.Idle(pos.Facing))
		}
	})
}
