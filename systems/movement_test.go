package systems

import (
	"testing"

	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newMover(x, y float64) (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := e.World.Entry(e.World.Create(components.Position, components.Move, components.Animation))
	components.Position.SetValue(entry, components.PositionData{X: x, Y: y, Facing: cfg.DirDown})
	components.Animation.SetValue(entry, components.AnimationData{
		State: cfg.StateNone,
		Table: components.BuildTable(cfg.CharacterAnimations),
	})
	return e, entry
}

func runUntilIdle(t *testing.T, e *ecs.ECS, entry *donburi.Entry) {
	t.Helper()
	mv := components.Move.Get(entry)
	for i := 0; i < 1000; i++ {
		if !mv.Active {
			return
		}
		UpdateMovement(e)
	}
	t.Fatalf("mover still active after 1000 ticks: %+v", *mv)
}

func TestStepSnapsExactlyOntoTargetTile(t *testing.T) {
	size := float64(cfg.C.TileSize)
	e, entry := newMover(2*size, 2*size)

	StartStep(entry, cfg.DirRight, 1, false)
	runUntilIdle(t, e, entry)

	pos := components.Position.Get(entry)
	if pos.X != 3*size || pos.Y != 2*size {
		t.Errorf("final position = (%v, %v), want (%v, %v)", pos.X, pos.Y, 3*size, 2*size)
	}
	if pos.Facing != cfg.DirRight {
		t.Errorf("facing = %v, want DirRight", pos.Facing)
	}
	anim := components.Animation.Get(entry)
	if anim.State != cfg.Idle(cfg.DirRight) {
		t.Errorf("final state = %v, want %v", anim.State, cfg.Idle(cfg.DirRight))
	}
}

func TestStepMultipleTilesScalesDuration(t *testing.T) {
	size := float64(cfg.C.TileSize)
	e, entry := newMover(0, 0)

	StartStep(entry, cfg.DirDown, 3, false)
	mv := components.Move.Get(entry)
	if want := 3 * cfg.Movement.StepDuration; mv.Duration != want {
		t.Errorf("duration = %v, want %v", mv.Duration, want)
	}

	runUntilIdle(t, e, entry)
	pos := components.Position.Get(entry)
	if pos.X != 0 || pos.Y != 3*size {
		t.Errorf("final position = (%v, %v), want (0, %v)", pos.X, pos.Y, 3*size)
	}
}

func TestRunningUsesRunDurationAndState(t *testing.T) {
	e, entry := newMover(0, 0)

	StartStep(entry, cfg.DirLeft, 1, true)
	mv := components.Move.Get(entry)
	if mv.Duration != cfg.Movement.RunStepDuration {
		t.Errorf("duration = %v, want %v", mv.Duration, cfg.Movement.RunStepDuration)
	}

	UpdateMovement(e)
	anim := components.Animation.Get(entry)
	if anim.State != cfg.Run(cfg.DirLeft) {
		t.Errorf("state while running = %v, want %v", anim.State, cfg.Run(cfg.DirLeft))
	}
}

func TestFacingFollowsDominantAxis(t *testing.T) {
	size := float64(cfg.C.TileSize)
	e, entry := newMover(0, 0)

	// Mostly horizontal: dx is a full tile, dy a fraction of one.
	StartPath(entry, []dmath.Vec2{{X: size, Y: size / 4}}, false)
	UpdateMovement(e)

	pos := components.Position.Get(entry)
	if pos.Facing != cfg.DirRight {
		t.Errorf("facing = %v, want DirRight for dominant horizontal motion", pos.Facing)
	}

	// Mostly vertical, moving up.
	e2, entry2 := newMover(0, 2*size)
	StartPath(entry2, []dmath.Vec2{{X: size / 4, Y: 0}}, false)
	UpdateMovement(e2)

	pos2 := components.Position.Get(entry2)
	if pos2.Facing != cfg.DirUp {
		t.Errorf("facing = %v, want DirUp for dominant vertical motion", pos2.Facing)
	}
}

func TestPathWalksAllWaypointsInOrder(t *testing.T) {
	size := float64(cfg.C.TileSize)
	e, entry := newMover(0, 0)

	StartPath(entry, []dmath.Vec2{
		{X: 2 * size, Y: 0},
		{X: 2 * size, Y: 2 * size},
	}, false)
	runUntilIdle(t, e, entry)

	pos := components.Position.Get(entry)
	if pos.X != 2*size || pos.Y != 2*size {
		t.Errorf("final position = (%v, %v), want (%v, %v)", pos.X, pos.Y, 2*size, 2*size)
	}
	// Last segment went down, so the mover should settle facing down.
	if pos.Facing != cfg.DirDown {
		t.Errorf("facing = %v, want DirDown", pos.Facing)
	}
}

func TestPathSkipsWaypointsWithinEpsilon(t *testing.T) {
	size := float64(cfg.C.TileSize)
	e, entry := newMover(0, 0)

	// The middle waypoint sits within the arrival threshold of the first,
	// so it must be consumed without arming a degenerate segment.
	StartPath(entry, []dmath.Vec2{
		{X: size, Y: 0},
		{X: size + cfg.Movement.WaypointEpsilon/2, Y: 0},
		{X: size, Y: size},
	}, false)
	runUntilIdle(t, e, entry)

	pos := components.Position.Get(entry)
	if pos.X != size || pos.Y != size {
		t.Errorf("final position = (%v, %v), want (%v, %v)", pos.X, pos.Y, size, size)
	}
}

func TestStartStepRejectsEmptyMoves(t *testing.T) {
	_, entry := newMover(0, 0)

	StartStep(entry, cfg.DirNone, 1, false)
	if components.Move.Get(entry).Active {
		t.Error("DirNone armed a move")
	}

	StartStep(entry, cfg.DirRight, 0, false)
	if components.Move.Get(entry).Active {
		t.Error("zero steps armed a move")
	}
}

func TestNewStepOverwritesActiveMove(t *testing.T) {
	size := float64(cfg.C.TileSize)
	e, entry := newMover(0, 0)

	StartStep(entry, cfg.DirRight, 1, false)
	UpdateMovement(e)
	UpdateMovement(e)

	// Redirect mid-flight: the new segment starts from the current
	// interpolated position, not the original origin.
	pos := components.Position.Get(entry)
	midX := pos.X
	StartStep(entry, cfg.DirDown, 1, false)
	mv := components.Move.Get(entry)
	if mv.Start.X != midX {
		t.Errorf("new segment starts at X=%v, want current X=%v", mv.Start.X, midX)
	}

	runUntilIdle(t, e, entry)
	if pos.X != midX || pos.Y != size {
		t.Errorf("final position = (%v, %v), want (%v, %v)", pos.X, pos.Y, midX, size)
	}
}
