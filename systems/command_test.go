package systems

import (
	"testing"

	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newDispatcherWorld() (*ecs.ECS, *donburi.Entry, *Dispatcher) {
	e := ecs.NewECS(donburi.NewWorld())
	player := e.World.Entry(e.World.Create(
		tags.Player, components.Position, components.Move, components.Animation,
	))
	components.Position.SetValue(player, components.PositionData{Facing: cfg.DirDown})
	components.Animation.SetValue(player, components.AnimationData{
		State: cfg.StateNone,
		Table: components.BuildTable(cfg.CharacterAnimations),
	})
	d := NewDispatcher(e, nil, nil)
	return e, player, d
}

func TestDispatchMoveArmsStepImmediately(t *testing.T) {
	_, player, d := newDispatcherWorld()

	d.Apply(messages.Command{Name: "move", Params: messages.CommandParams{Direction: "right", Steps: 2}})

	mv := components.Move.Get(player)
	if !mv.Active {
		t.Fatal("move command did not arm the mover")
	}
	size := float64(cfg.C.TileSize)
	if mv.End.X != 2*size {
		t.Errorf("end X = %v, want %v", mv.End.X, 2*size)
	}
}

func TestDispatchMoveStepGoesThroughCoalescer(t *testing.T) {
	_, player, d := newDispatcherWorld()

	d.Apply(messages.Command{Name: "move_step", Params: messages.CommandParams{Direction: "left"}})

	// Buffering: nothing on the player yet until the window closes.
	mv := components.Move.Get(player)
	if mv.Active {
		t.Fatal("move_step armed the mover before the coalescing window closed")
	}

	d.coalescer.Flush()
	if !mv.Active {
		t.Fatal("flush did not arm the coalesced move")
	}
	size := float64(cfg.C.TileSize)
	if mv.End.X != -size {
		t.Errorf("end X = %v, want %v", mv.End.X, -size)
	}
}

func TestDispatchWalkAndRunForceSpeedMode(t *testing.T) {
	_, player, d := newDispatcherWorld()
	mv := components.Move.Get(player)

	// walk ignores is_running on the wire.
	d.Apply(messages.Command{Name: "walk", Params: messages.CommandParams{Direction: "down", IsRunning: true}})
	if !mv.Active || mv.Running {
		t.Errorf("walk produced Active=%v Running=%v, want active walk", mv.Active, mv.Running)
	}

	d.Apply(messages.Command{Name: "run", Params: messages.CommandParams{Direction: "down"}})
	if !mv.Active || !mv.Running {
		t.Errorf("run produced Active=%v Running=%v, want active run", mv.Active, mv.Running)
	}
}

func TestDispatchJumpFacesAndPoses(t *testing.T) {
	_, player, d := newDispatcherWorld()

	d.Apply(messages.Command{Name: "jump", Params: messages.CommandParams{Direction: "up"}})

	pos := components.Position.Get(player)
	if pos.Facing != cfg.DirUp {
		t.Errorf("facing = %v, want DirUp", pos.Facing)
	}
	anim := components.Animation.Get(player)
	if anim.State != cfg.Jump(cfg.DirUp) {
		t.Errorf("state = %v, want %v", anim.State, cfg.Jump(cfg.DirUp))
	}
}

func TestDispatchPoseCancelsActiveMove(t *testing.T) {
	_, player, d := newDispatcherWorld()

	d.Apply(messages.Command{Name: "move", Params: messages.CommandParams{Direction: "right"}})
	mv := components.Move.Get(player)
	if !mv.Active {
		t.Fatal("setup: mover not armed")
	}

	d.Apply(messages.Command{Name: "push", Params: messages.CommandParams{}})
	if mv.Active {
		t.Error("pose command left the mover active")
	}
	// No direction given: the pose plays toward the current facing.
	pos := components.Position.Get(player)
	anim := components.Animation.Get(player)
	if anim.State != cfg.Push(pos.Facing) {
		t.Errorf("state = %v, want %v", anim.State, cfg.Push(pos.Facing))
	}
}

func TestDispatchGenerateWorldInvokesCallback(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	called := 0
	d := NewDispatcher(e, nil, func() { called++ })

	d.Apply(messages.Command{Name: "generate_world"})
	if called != 1 {
		t.Errorf("generate callback ran %d times, want 1", called)
	}
}

func TestDispatchUnknownCommandIsDropped(t *testing.T) {
	_, player, d := newDispatcherWorld()

	d.Apply(messages.Command{Name: "teleport", Params: messages.CommandParams{Direction: "up"}})

	if components.Move.Get(player).Active {
		t.Error("unknown command armed the mover")
	}
	if components.Position.Get(player).Facing != cfg.DirDown {
		t.Error("unknown command changed facing")
	}
}

func TestDispatchMapUpdateDelegatesToScene(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	var got *messages.MapUpdate
	d := NewDispatcher(e, func(upd messages.MapUpdate) { got = &upd }, nil)

	d.ApplyMapUpdate(messages.MapUpdate{Map: messages.MapData{Width: 4, Height: 3}})
	if got == nil || got.Map.Width != 4 || got.Map.Height != 3 {
		t.Errorf("map update not delegated: %+v", got)
	}
}
