package config

// StateID identifies a character/entity state for animation selection.
type StateID int

const (
	StateNone StateID = -1

	// Character states, one per facing
	IdleDown StateID = iota
	IdleLeft
	IdleRight
	IdleUp
	WalkDown
	WalkLeft
	WalkRight
	WalkUp
	RunDown
	RunLeft
	RunRight
	RunUp
	JumpDown
	JumpLeft
	JumpRight
	JumpUp
	PushDown
	PushLeft
	PushRight
	PushUp
	PullDown
	PullLeft
	PullRight
	PullUp

	// Generic looped state for props and simple entities
	StateLoop
)

var stateNames = map[StateID]string{
	StateNone: "none",
	IdleDown:  "idle_down",
	IdleLeft:  "idle_left",
	IdleRight: "idle_right",
	IdleUp:    "idle_up",
	WalkDown:  "walk_down",
	WalkLeft:  "walk_left",
	WalkRight: "walk_right",
	WalkUp:    "walk_up",
	RunDown:   "run_down",
	RunLeft:   "run_left",
	RunRight:  "run_right",
	RunUp:     "run_up",
	JumpDown:  "jump_down",
	JumpLeft:  "jump_left",
	JumpRight: "jump_right",
	JumpUp:    "jump_up",
	PushDown:  "push_down",
	PushLeft:  "push_left",
	PushRight: "push_right",
	PushUp:    "push_up",
	PullDown:  "pull_down",
	PullLeft:  "pull_left",
	PullRight: "pull_right",
	PullUp:    "pull_up",
	StateLoop: "loop",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Idle returns the idle state matching dir.
func Idle(dir Direction) StateID { return directional(dir, IdleDown, IdleLeft, IdleRight, IdleUp) }

// Walk returns the walk state matching dir.
func Walk(dir Direction) StateID { return directional(dir, WalkDown, WalkLeft, WalkRight, WalkUp) }

// Run returns the run state matching dir.
func Run(dir Direction) StateID { return directional(dir, RunDown, RunLeft, RunRight, RunUp) }

// Jump returns the jump state matching dir.
func Jump(dir Direction) StateID { return directional(dir, JumpDown, JumpLeft, JumpRight, JumpUp) }

// Push returns the push state matching dir.
func Push(dir Direction) StateID { return directional(dir, PushDown, PushLeft, PushRight, PushUp) }

// Pull returns the pull state matching dir.
func Pull(dir Direction) StateID { return directional(dir, PullDown, PullLeft, PullRight, PullUp) }

func directional(dir Direction, down, left, right, up StateID) StateID {
	switch dir {
	case DirLeft:
		return left
	case DirRight:
		return right
	case DirUp:
		return up
	}
	return down
}
