package systems

import (
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateMovement advances every active mover: lerp the position, keep the
// facing on the dominant movement axis, and on arrival either re-arm toward
// the next waypoint or finalize into the idle animation.
func UpdateMovement(e *ecs.ECS) {
	dt := TickDeltaMS()
	components.Move.Each(e.World, func(entry *donburi.Entry) {
		mv := components.Move.Get(entry)
		if !mv.Active {
			return
		}
		pos := components.Position.Get(entry)
		anim := components.Animation.Get(entry)

		mv.Elapsed += dt
		t := 1.0
		if mv.Duration > 0 {
			t = gamemath.Clamp01(mv.Elapsed / mv.Duration)
		}
		pos.X = gamemath.Lerp(mv.Start.X, mv.End.X, t)
		pos.Y = gamemath.Lerp(mv.Start.Y, mv.End.Y, t)

		// Facing follows the dominant axis, recomputed every tick. A facing
		// change switches the directional animation, which rewinds its clock.
		facing := facingFor(mv.End.X-mv.Start.X, mv.End.Y-mv.Start.Y, pos.Facing)
		pos.Facing = facing
		if mv.Running {
			anim.SetState(cfg.Run(facing))
		} else {
			anim.SetState(cfg.Walk(facing))
		}

		if t < 1 {
			return
		}

		// Arrived: snap exactly onto the target, no residual drift.
		pos.X = mv.End.X
		pos.Y = mv.End.Y

		if next, ok := nextWaypoint(mv, pos); ok {
			dist := gamemath.Distance(pos.X, pos.Y, next.X, next.Y)
			mv.Arm(dmath.Vec2{X: pos.X, Y: pos.Y}, next, segmentDuration(dist, mv.Running), mv.Running)
			return
		}

		mv.Clear()
		anim.SetState(cfg.Idle(pos.Facing))
	})
}

// nextWaypoint pops path entries until one lies beyond the arrival
// threshold. ok is false when the path is exhausted.
func nextWaypoint(mv *components.MoveData, pos *components.PositionData) (dmath.Vec2, bool) {
	for mv.PathIdx < len(mv.Path) {
		wp := mv.Path[mv.PathIdx]
		mv.PathIdx++
		if gamemath.Distance(pos.X, pos.Y, wp.X, wp.Y) > cfg.Movement.WaypointEpsilon {
			return wp, true
		}
	}
	return dmath.Vec2{}, false
}

func segmentDuration(distPx float64, running bool) float64 {
	per := cfg.Movement.StepDuration
	if running {
		per = cfg.Movement.RunStepDuration
	}
	return distPx / float64(cfg.C.TileSize) * per
}

func facingFor(dx, dy float64, current cfg.Direction) cfg.Direction {
	switch gamemath.DominantAxis(dx, dy) {
	case gamemath.AxisHorizontal:
		if dx < 0 {
			return cfg.DirLeft
		}
		return cfg.DirRight
	case gamemath.AxisVertical:
		if dy < 0 {
			return cfg.DirUp
		}
		return cfg.DirDown
	}
	return current
}

// StartStep arms a straight move of the given number of tiles. An active
// move is cancelled by being overwritten.
func StartStep(entry *donburi.Entry, dir cfg.Direction, steps int, running bool) {
	if dir == cfg.DirNone || steps <= 0 {
		return
	}
	pos := components.Position.Get(entry)
	mv := components.Move.Get(entry)

	dx, dy := dir.Delta()
	size := float64(cfg.C.TileSize)
	end := dmath.Vec2{
		X: pos.X + float64(dx*steps)*size,
		Y: pos.Y + float64(dy*steps)*size,
	}
	dist := gamemath.Distance(pos.X, pos.Y, end.X, end.Y)
	mv.Path = nil
	mv.PathIdx = 0
	mv.Arm(dmath.Vec2{X: pos.X, Y: pos.Y}, end, segmentDuration(dist, running), running)
}

// StartPath arms a waypoint walk. The first waypoint becomes the initial
// segment target; the rest are consumed on arrival.
func StartPath(entry *donburi.Entry, waypoints []dmath.Vec2, running bool) {
	if len(waypoints) == 0 {
		return
	}
	pos := components.Position.Get(entry)
	mv := components.Move.Get(entry)

	first := waypoints[0]
	dist := gamemath.Distance(pos.X, pos.Y, first.X, first.Y)
	mv.Path = waypoints
	mv.PathIdx = 1
	mv.Arm(dmath.Vec2{X: pos.X, Y: pos.Y}, first, segmentDuration(dist, running), running)
}
