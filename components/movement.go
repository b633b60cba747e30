package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MoveData is a one-shot interpolation from Start to End over Duration ms.
// Path holds the remaining waypoints after End; when End is reached the
// mover re-arms toward the next waypoint or finalizes and goes idle.
type MoveData struct {
	Active   bool
	Start    math.Vec2
	End      math.Vec2
	Duration float64 // ms
	Elapsed  float64 // ms
	Running  bool

	Path    []math.Vec2
	PathIdx int
}

// Arm points the mover at a new segment.
func (m *MoveData) Arm(start, end math.Vec2, duration float64, running bool) {
	m.Active = true
	m.Start = start
	m.End = end
	m.Duration = duration
	m.Elapsed = 0
	m.Running = running
}

// Clear resets the mover to idle. One-shot: a cleared mover mutates nothing
// until re-armed.
func (m *MoveData) Clear() {
	*m = MoveData{}
}

var Move = donburi.NewComponentType[MoveData]()
