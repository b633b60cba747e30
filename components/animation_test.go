package components

import (
	"testing"

	"github.com/sablewood/sablewood/config"
)

func newTestAnimation() AnimationData {
	return AnimationData{
		State: config.StateNone,
		Table: BuildTable(map[config.StateID]config.AnimationDef{
			config.IdleDown: {Frames: []int{0, 1}, Timing: []float64{100, 100}, Loop: true},
			config.WalkDown: {Frames: []int{8, 9, 10}, Timing: []float64{100, 100, 100}, Loop: true},
		}),
	}
}

func TestSetStateUnmappedFreezesOnLastFrame(t *testing.T) {
	a := newTestAnimation()
	a.SetState(config.WalkDown)
	a.Current.Update(150) // mid-animation, second frame
	frame := a.Current.Frame()

	a.SetState(config.JumpDown) // not in the table
	if !a.Frozen {
		t.Fatal("unmapped state did not freeze the clock")
	}
	if a.State != config.JumpDown {
		t.Errorf("state = %v, want JumpDown recorded", a.State)
	}
	if a.Current == nil || a.Current.Frame() != frame {
		t.Errorf("frozen frame changed: got %v, want %v", a.Current.Frame(), frame)
	}
}

func TestSetStateMappedUnfreezesAndRestarts(t *testing.T) {
	a := newTestAnimation()
	a.SetState(config.WalkDown)
	a.Current.Update(150)

	a.SetState(config.JumpDown)
	if !a.Frozen {
		t.Fatal("setup: clock not frozen")
	}

	a.SetState(config.IdleDown)
	if a.Frozen {
		t.Error("mapped state left the clock frozen")
	}
	if got := a.Current.Frame(); got != 0 {
		t.Errorf("frame = %d, want restart at 0", got)
	}
}

func TestSetStateFrozenRepeatIsIdempotent(t *testing.T) {
	a := newTestAnimation()
	a.SetState(config.WalkDown)
	a.SetState(config.JumpDown)
	cur := a.Current

	// Re-requesting the same unmapped state must not thrash or log again.
	a.SetState(config.JumpDown)
	if !a.Frozen || a.Current != cur {
		t.Errorf("repeat unmapped request changed state: frozen=%v", a.Frozen)
	}
}
