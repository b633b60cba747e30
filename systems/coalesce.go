package systems

import (
	"time"

	cfg "github.com/sablewood/sablewood/config"
)

// moveKey groups coalescable step commands: same direction, same speed mode.
type moveKey struct {
	Dir     cfg.Direction
	Running bool
}

type coalesceState int

const (
	coalesceIdle coalesceState = iota
	coalesceBuffering
)

// MoveCoalescer merges rapid same-direction step commands into one larger
// move so the walk animation is not restarted per step. Steps accumulate
// per (direction, speed) key; the buffer flushes when the window elapses or
// immediately when a different key arrives. The clock is injected so tests
// control time.
type MoveCoalescer struct {
	window time.Duration
	now    func() time.Time
	flush  func(dir cfg.Direction, steps int, running bool)

	state    coalesceState
	key      moveKey
	steps    int
	deadline time.Time
}

func NewMoveCoalescer(flush func(dir cfg.Direction, steps int, running bool)) *MoveCoalescer {
	return &MoveCoalescer{
		window: time.Duration(cfg.Movement.CoalesceWindow) * time.Millisecond,
		now:    time.Now,
		flush:  flush,
	}
}

// NewMoveCoalescerWithClock is NewMoveCoalescer with an explicit clock and
// window, for tests.
func NewMoveCoalescerWithClock(window time.Duration, now func() time.Time, flush func(dir cfg.Direction, steps int, running bool)) *MoveCoalescer {
	return &MoveCoalescer{window: window, now: now, flush: flush}
}

// Add buffers one step command.
func (c *MoveCoalescer) Add(dir cfg.Direction, steps int, running bool) {
	if dir == cfg.DirNone || steps <= 0 {
		return
	}
	key := moveKey{Dir: dir, Running: running}

	if c.state == coalesceBuffering && c.key != key {
		c.Flush()
	}
	if c.state == coalesceIdle {
		c.state = coalesceBuffering
		c.key = key
		c.steps = 0
		c.deadline = c.now().Add(c.window)
	}
	c.steps += steps
}

// Tick flushes the buffer once the window has elapsed. Call once per update.
func (c *MoveCoalescer) Tick() {
	if c.state == coalesceBuffering && !c.now().Before(c.deadline) {
		c.Flush()
	}
}

// Flush invokes the downstream move exactly once with the summed steps.
func (c *MoveCoalescer) Flush() {
	if c.state != coalesceBuffering {
		return
	}
	key, steps := c.key, c.steps
	c.state = coalesceIdle
	c.steps = 0
	c.flush(key.Dir, steps, key.Running)
}
