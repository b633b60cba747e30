package animations

import "testing"

func walkDown() *Animation {
	// 6 frames, 135ms each, 810ms total, looping
	return New(
		[]int{32, 33, 34, 35, 36, 37},
		[]float64{135, 135, 135, 135, 135, 135},
		true,
	)
}

func jumpDown() *Animation {
	// 850ms total, non-looping, final frame repeats the first cell
	return New(
		[]int{5, 6, 7, 5},
		[]float64{300, 150, 100, 300},
		false,
	)
}

func TestLoopWrapsAtPeriod(t *testing.T) {
	a := walkDown()
	// 900 mod 810 = 90, inside the first 135ms bucket
	a.Update(900)
	if got := a.Frame(); got != 32 {
		t.Errorf("frame after 900ms = %d, want 32", got)
	}
}

func TestLoopIsPeriodic(t *testing.T) {
	a := walkDown()
	b := walkDown()
	a.Update(200)
	b.Update(200 + 810)
	if a.Frame() != b.Frame() {
		t.Errorf("frames diverge across one period: %d vs %d", a.Frame(), b.Frame())
	}
	b.Update(810)
	if a.Frame() != b.Frame() {
		t.Errorf("frames diverge across two periods: %d vs %d", a.Frame(), b.Frame())
	}
}

func TestLoopFrameProgression(t *testing.T) {
	a := walkDown()
	want := []int{32, 33, 34, 35, 36, 37, 32}
	for i, w := range want {
		if got := a.Frame(); got != w {
			t.Fatalf("tick %d: frame = %d, want %d", i, got, w)
		}
		a.Update(135)
	}
}

func TestNonLoopFreezesAndCompletesOnce(t *testing.T) {
	a := jumpDown()
	completions := 0
	for ms := 0.0; ms < 1200; ms += 50 {
		if a.Update(50) {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("completion fired %d times, want exactly once", completions)
	}
	if got := a.Frame(); got != 5 {
		t.Errorf("terminal frame = %d, want 5", got)
	}
	if !a.Done() {
		t.Error("Done() = false after terminal state")
	}
	// Frozen: further time must not move the frame or re-fire
	if a.Update(5000) {
		t.Error("completion fired again after terminal state")
	}
	if got := a.Frame(); got != 5 {
		t.Errorf("frame moved after terminal state: %d", got)
	}
}

func TestNonLoopFrameIsNonDecreasingPosition(t *testing.T) {
	// Walk positions in Frames, not sheet indices (the last cell repeats 5).
	want := []int{5, 6, 7, 5}
	cum := []float64{0, 300, 450, 550}
	for i := range want {
		b := jumpDown()
		b.Update(cum[i] + 1)
		if got := b.Frame(); got != want[i] {
			t.Errorf("at %vms: frame = %d, want %d", cum[i]+1, got, want[i])
		}
	}
}

func TestNonLoopTerminalAt900(t *testing.T) {
	a := jumpDown()
	fired := a.Update(900)
	if !fired {
		t.Error("completion did not fire at 900ms (total 850ms)")
	}
	if got := a.Frame(); got != 5 {
		t.Errorf("frame at 900ms = %d, want frames[3] = 5", got)
	}
}

func TestSingleFrameShortCircuit(t *testing.T) {
	a := New([]int{42}, []float64{100}, true)
	for i := 0; i < 10; i++ {
		if got := a.Frame(); got != 42 {
			t.Fatalf("single-frame animation returned %d, want 42", got)
		}
		a.Update(1000)
	}
}

func TestRestartRewindsClock(t *testing.T) {
	a := jumpDown()
	a.Update(900)
	a.Restart()
	if a.Done() {
		t.Error("Done() = true after Restart")
	}
	if got := a.Frame(); got != 5 {
		t.Errorf("frame after Restart = %d, want 5", got)
	}
	if fired := a.Update(900); !fired {
		t.Error("completion did not fire again after Restart")
	}
}
