package animations

import "math"

// Animation advances through spritesheet cells on a millisecond clock.
// Frames holds the ordered sheet indices of the animation; FrameTiming is
// the parallel per-frame display duration in ms. The clock is rewound
// whenever the owning entity switches animations.
type Animation struct {
	Frames      []int
	FrameTiming []float64
	Loop        bool

	acc   float64
	total float64
	done  bool
}

func New(frames []int, timing []float64, loop bool) *Animation {
	a := &Animation{
		Frames:      frames,
		FrameTiming: timing,
		Loop:        loop,
	}
	for _, d := range timing {
		a.total += d
	}
	return a
}

// Update adds the tick's delta time in milliseconds. For a non-looping
// animation it returns true exactly once, on the tick the clock first runs
// past the animation's total duration; after that the final frame is held
// and further updates are no-ops.
func (a *Animation) Update(deltaMS float64) bool {
	if a.done {
		return false
	}
	a.acc += deltaMS
	if !a.Loop && a.acc > a.total {
		a.done = true
		return true
	}
	return false
}

// Frame returns the sheet index to display for the current clock.
func (a *Animation) Frame() int {
	if len(a.Frames) == 0 {
		return 0
	}
	// Single-frame animations skip the timing walk entirely.
	if len(a.Frames) == 1 {
		return a.Frames[0]
	}

	normalized := a.acc
	if a.Loop {
		if a.total > 0 {
			normalized = math.Mod(a.acc, a.total)
		}
	} else if a.acc > a.total {
		return a.Frames[len(a.Frames)-1]
	}

	cum := 0.0
	for i, d := range a.FrameTiming {
		cum += d
		if normalized < cum {
			return a.Frames[i]
		}
	}
	return a.Frames[len(a.Frames)-1]
}

// Done reports whether a non-looping animation has reached its terminal frame.
func (a *Animation) Done() bool {
	return a.done
}

// Restart rewinds the clock to the first frame.
func (a *Animation) Restart() {
	a.acc = 0
	a.done = false
}
