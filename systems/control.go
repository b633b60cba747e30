package systems

import (
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateControl turns local input into commands on the dispatcher, the
// same path remote commands take. send, when non-nil, mirrors each command
// to the server; onVoice receives the blob when a recording stops.
func NewUpdateControl(d *Dispatcher, send func(messages.Command), onVoice func([]byte)) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		chat := GetOrCreateChat(e)

		if input.JustPressed(cfg.ActionToggleChat) {
			chat.Open = !chat.Open
		}
		if input.JustPressed(cfg.ActionToggleDebug) {
			settings := GetOrCreateSettings(e)
			settings.Debug = !settings.Debug
		}
		if input.JustPressed(cfg.ActionRecord) {
			if chat.Recording {
				if blob, ok := StopRecording(e); ok && onVoice != nil {
					onVoice(blob)
				}
			} else {
				StartRecording(e)
			}
		}

		// The coalescer window keeps running even while chat has the
		// keyboard: remote and already-buffered steps must still flush.
		d.Tick()

		// Chat captures the keyboard while open.
		if chat.Open {
			return
		}

		issue := func(cmd messages.Command) {
			d.Apply(cmd)
			if send != nil {
				send(cmd)
			}
		}

		running := input.Pressed(cfg.ActionRun)
		for _, action := range []cfg.ActionID{
			cfg.ActionMoveUp, cfg.ActionMoveDown, cfg.ActionMoveLeft, cfg.ActionMoveRight,
		} {
			if !input.Pressed(action) {
				continue
			}
			if player, ok := playerEntry(e); ok && components.Move.Get(player).Active {
				break
			}
			issue(messages.Command{
				Name: cfg.CmdMoveStep.String(),
				Params: messages.CommandParams{
					Direction: cfg.DirectionFor(action).String(),
					Steps:     1,
					IsRunning: running,
				},
			})
			break
		}

		if input.JustPressed(cfg.ActionJump) {
			issue(messages.Command{Name: cfg.CmdJump.String()})
		}
		if input.JustPressed(cfg.ActionPush) {
			issue(messages.Command{Name: cfg.CmdPush.String()})
		}
		if input.JustPressed(cfg.ActionPull) {
			issue(messages.Command{Name: cfg.CmdPull.String()})
		}
	}
}
