package messages

import "github.com/sablewood/sablewood/config"

// CommandParams is the free-form parameter object attached to a command.
// Unused fields keep their zero value.
type CommandParams struct {
	Direction  string
	Steps      int
	Continuous bool
	IsRunning  bool
}

// Command is a named instruction for the client's presentation layer,
// e.g. {"move_step", {direction: "left", steps: 2}}.
type Command struct {
	Name   string
	Params CommandParams
}

// Kind resolves the wire name to the closed command enum.
func (c Command) Kind() config.CommandKind {
	return config.ParseCommandKind(c.Name)
}

// Direction resolves the direction parameter.
func (c Command) Direction() config.Direction {
	return config.ParseDirection(c.Params.Direction)
}

// StepCount returns the step parameter, defaulting to a single step.
func (c Command) StepCount() int {
	if c.Params.Steps <= 0 {
		return 1
	}
	return c.Params.Steps
}
