package config

// AnimationDef describes one animation: the ordered spritesheet cells it
// plays and how long each cell stays on screen. Frames and Timing are
// parallel; Timing is in milliseconds.
type AnimationDef struct {
	Frames []int
	Timing []float64
	Loop   bool
}

// uniform builds a looping run of consecutive sheet cells with one shared
// per-frame duration.
func uniform(first, last int, ms float64) AnimationDef {
	n := last - first + 1
	def := AnimationDef{
		Frames: make([]int, n),
		Timing: make([]float64, n),
		Loop:   true,
	}
	for i := 0; i < n; i++ {
		def.Frames[i] = first + i
		def.Timing[i] = ms
	}
	return def
}

// Character spritesheet geometry. Every body part (body, outfit, cloak,
// face, hair, hat) uses the same cell layout so one animation clock can
// drive all parts of a composite character.
const (
	CharacterColumns     = 8
	CharacterRows        = 10
	CharacterFrameWidth  = 64
	CharacterFrameHeight = 64
)

// CharacterAnimations is the shared state → animation table for character
// sheets. Never mutated after init.
var CharacterAnimations = map[StateID]AnimationDef{
	IdleDown:  uniform(0, 1, 400),
	IdleLeft:  uniform(8, 9, 400),
	IdleRight: uniform(16, 17, 400),
	IdleUp:    uniform(24, 25, 400),

	WalkDown:  uniform(32, 37, 135),
	WalkLeft:  uniform(40, 45, 135),
	WalkRight: uniform(48, 53, 135),
	WalkUp:    uniform(56, 61, 135),

	RunDown:  uniform(32, 37, 90),
	RunLeft:  uniform(40, 45, 90),
	RunRight: uniform(48, 53, 90),
	RunUp:    uniform(56, 61, 90),

	// Jumps reuse idle-row cells for the crouch/stretch poses and do not
	// loop; the character settles back to idle when the animation reports
	// completion.
	JumpDown:  {Frames: []int{5, 6, 7, 5}, Timing: []float64{300, 150, 100, 300}},
	JumpLeft:  {Frames: []int{13, 14, 15, 13}, Timing: []float64{300, 150, 100, 300}},
	JumpRight: {Frames: []int{21, 22, 23, 21}, Timing: []float64{300, 150, 100, 300}},
	JumpUp:    {Frames: []int{29, 30, 31, 29}, Timing: []float64{300, 150, 100, 300}},

	PushDown:  uniform(64, 65, 250),
	PushLeft:  uniform(66, 67, 250),
	PushRight: uniform(68, 69, 250),
	PushUp:    uniform(70, 71, 250),

	PullDown:  uniform(72, 73, 250),
	PullLeft:  uniform(74, 75, 250),
	PullRight: uniform(76, 77, 250),
	PullUp:    uniform(78, 79, 250),
}
