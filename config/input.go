package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionRun
	ActionJump
	ActionPush
	ActionPull
	ActionToggleChat
	ActionToggleDebug
	ActionRecord
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp:      {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			ActionMoveDown:    {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionRun:         {Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
			ActionJump:        {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionPush:        {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionPull:        {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionToggleChat:  {Keys: []ebiten.Key{ebiten.KeyTab}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionRecord:      {Keys: []ebiten.Key{ebiten.KeyV}},
			ActionMenuUp:      {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			ActionMenuDown:    {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionMenuSelect:  {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}},
			ActionMenuBack:    {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}

// DirectionFor maps a movement action to its grid direction.
func DirectionFor(a ActionID) Direction {
	switch a {
	case ActionMoveUp:
		return DirUp
	case ActionMoveDown:
		return DirDown
	case ActionMoveLeft:
		return DirLeft
	case ActionMoveRight:
		return DirRight
	}
	return DirNone
}
