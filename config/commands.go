package config

import "log"

// Direction is a cardinal movement direction on the tile grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Delta returns the tile-grid step for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// ParseDirection maps the wire spelling of a direction to its Direction.
func ParseDirection(s string) Direction {
	switch s {
	case "up":
		return DirUp
	case "down":
		return DirDown
	case "left":
		return DirLeft
	case "right":
		return DirRight
	}
	return DirNone
}

// CommandKind is the closed set of commands the client understands. String
// command names coming off the wire are parsed into a CommandKind exactly
// once, at the transport boundary; everything past that point switches
// exhaustively over the enum.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdMove
	CmdMoveStep
	CmdWalk
	CmdRun
	CmdJump
	CmdPush
	CmdPull
	CmdUpdateMap
	CmdGenerateWorld
)

var commandNames = map[string]CommandKind{
	"move":           CmdMove,
	"move_step":      CmdMoveStep,
	"walk":           CmdWalk,
	"run":            CmdRun,
	"jump":           CmdJump,
	"push":           CmdPush,
	"pull":           CmdPull,
	"update_map":     CmdUpdateMap,
	"generate_world": CmdGenerateWorld,
}

func (k CommandKind) String() string {
	for name, kind := range commandNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// ParseCommandKind resolves a wire command name. Unknown names are logged
// and mapped to CmdUnknown, which every dispatcher treats as a no-op.
func ParseCommandKind(name string) CommandKind {
	if k, ok := commandNames[name]; ok {
		return k
	}
	log.Printf("[command] unknown command %q ignored", name)
	return CmdUnknown
}
