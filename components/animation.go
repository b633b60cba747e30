package components

import (
	"log"

	"github.com/sablewood/sablewood/assets/animations"
	"github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi"
)

// AnimationData owns an entity's animation clock. For composite characters
// this lives on the character entity; the part sprites read it instead of
// carrying their own clock, so body parts can never drift out of lockstep.
type AnimationData struct {
	Current *animations.Animation
	State   config.StateID
	Table   map[config.StateID]*animations.Animation

	// Frozen stops the clock while the state has no table entry, so the
	// sprite holds its last frame instead of playing the old animation.
	Frozen bool
}

// SetState switches the active animation, rewinding the clock on a real
// change. A state with no table entry is logged once per request and the
// sprite simply holds its last frame.
func (a *AnimationData) SetState(state config.StateID) {
	if a.State == state && (a.Current != nil || a.Frozen) {
		return
	}
	anim, ok := a.Table[state]
	if !ok {
		log.Printf("[anim] no animation for state %v", state)
		a.State = state
		a.Frozen = true
		return
	}
	a.Current = anim
	a.State = state
	a.Frozen = false
	a.Current.Restart()
}

// BuildTable instantiates animation clocks from a config table.
func BuildTable(defs map[config.StateID]config.AnimationDef) map[config.StateID]*animations.Animation {
	table := make(map[config.StateID]*animations.Animation, len(defs))
	for state, def := range defs {
		table[state] = animations.New(def.Frames, def.Timing, def.Loop)
	}
	return table
}

var Animation = donburi.NewComponentType[AnimationData]()
