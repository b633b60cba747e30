package systems

import (
	"log"

	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Dispatcher turns wire commands into animation and movement state on the
// player entity. Map-level commands are delegated to the scene through the
// two callbacks.
type Dispatcher struct {
	ecs       *ecs.ECS
	coalescer *MoveCoalescer

	applyMap func(messages.MapUpdate)
	generate func()
}

func NewDispatcher(e *ecs.ECS, applyMap func(messages.MapUpdate), generate func()) *Dispatcher {
	d := &Dispatcher{
		ecs:      e,
		applyMap: applyMap,
		generate: generate,
	}
	d.coalescer = NewMoveCoalescer(func(dir cfg.Direction, steps int, running bool) {
		if player, ok := playerEntry(e); ok {
			StartStep(player, dir, steps, running)
		}
	})
	return d
}

// Tick drives the coalescer window. Call once per update.
func (d *Dispatcher) Tick() {
	d.coalescer.Tick()
}

// Apply executes one command. The switch is exhaustive over the closed
// command set; unknown names were already dropped at parse.
func (d *Dispatcher) Apply(cmd messages.Command) {
	kind := cmd.Kind()
	switch kind {
	case cfg.CmdUnknown:
		// Logged at the parse boundary.

	case cfg.CmdMove:
		// A direct move skips coalescing: it is already a full-size step.
		if player, ok := playerEntry(d.ecs); ok {
			StartStep(player, cmd.Direction(), cmd.StepCount(), cmd.Params.IsRunning)
		}

	case cfg.CmdMoveStep:
		d.coalescer.Add(cmd.Direction(), cmd.StepCount(), cmd.Params.IsRunning)

	case cfg.CmdWalk:
		if player, ok := playerEntry(d.ecs); ok {
			StartStep(player, cmd.Direction(), cmd.StepCount(), false)
		}

	case cfg.CmdRun:
		if player, ok := playerEntry(d.ecs); ok {
			StartStep(player, cmd.Direction(), cmd.StepCount(), true)
		}

	case cfg.CmdJump:
		d.poseCommand(cmd, cfg.Jump)

	case cfg.CmdPush:
		d.poseCommand(cmd, cfg.Push)

	case cfg.CmdPull:
		d.poseCommand(cmd, cfg.Pull)

	case cfg.CmdUpdateMap:
		log.Printf("[command] update_map requested")
		// Payload arrives as its own message; the scene rebuilds there.

	case cfg.CmdGenerateWorld:
		if d.generate != nil {
			d.generate()
		}
	}
}

// ApplyMapUpdate rebuilds the displayed world from a map payload.
func (d *Dispatcher) ApplyMapUpdate(upd messages.MapUpdate) {
	if d.applyMap != nil {
		d.applyMap(upd)
	}
}

// poseCommand faces the given direction (if any) and plays the state for
// that facing. Any in-flight move is abandoned where it stands.
func (d *Dispatcher) poseCommand(cmd messages.Command, state func(cfg.Direction) cfg.StateID) {
	player, ok := playerEntry(d.ecs)
	if !ok {
		return
	}
	pos := components.Position.Get(player)
	if dir := cmd.Direction(); dir != cfg.DirNone {
		pos.Facing = dir
	}
	mv := components.Move.Get(player)
	mv.Clear()
	anim := components.Animation.Get(player)
	anim.SetState(state(pos.Facing))
}

func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}
