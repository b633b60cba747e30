package voice

import "errors"

// Source produces raw audio chunks while a recording is active. The default
// implementation is the test tone in tone.go; a platform recorder satisfies
// the same interface.
type Source interface {
	// Chunk returns the next captured chunk, or io.EOF semantics via done.
	Chunk() (b []byte, done bool)
}

// Capture accumulates chunks from a Source between Start and Stop. Stop
// concatenates everything captured into one blob; the transport sends the
// blob followed by the end sentinel.
type Capture struct {
	chunks [][]byte
	active bool
}

var ErrNotRecording = errors.New("voice: not recording")

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Recording() bool {
	return c.active
}

// Start begins a new recording, discarding any previous unfinished one.
func (c *Capture) Start() {
	c.chunks = c.chunks[:0]
	c.active = true
}

// Append adds one captured chunk.
func (c *Capture) Append(b []byte) {
	if !c.active || len(b) == 0 {
		return
	}
	chunk := make([]byte, len(b))
	copy(chunk, b)
	c.chunks = append(c.chunks, chunk)
}

// Stop ends the recording and returns the concatenated blob.
func (c *Capture) Stop() ([]byte, error) {
	if !c.active {
		return nil, ErrNotRecording
	}
	c.active = false
	total := 0
	for _, ch := range c.chunks {
		total += len(ch)
	}
	blob := make([]byte, 0, total)
	for _, ch := range c.chunks {
		blob = append(blob, ch...)
	}
	c.chunks = c.chunks[:0]
	if total == 0 {
		return nil, errors.New("voice: empty recording")
	}
	return blob, nil
}
