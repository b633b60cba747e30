package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw input and updates the InputData singleton.
// Must run before any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(ent, components.InputData{})
	}
	ent, _ := components.Input.First(e.World)
	return components.Input.Get(ent)
}
