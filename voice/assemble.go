package voice

import (
	"bytes"
	"encoding/json"
)

// Clip is one fully reassembled voice message ready for playback.
type Clip struct {
	Data   []byte
	Format Format
}

// Control frame kinds carried as JSON on the transport.
const (
	ControlAudioStart = "audio_start"
	ControlAudioEnd   = "audio_end"
	ControlError      = "error"
)

type controlFrame struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// ParseControl decodes a JSON control frame. ok is false for anything that
// is not a control frame (i.e. raw audio bytes).
func ParseControl(b []byte) (kind, content string, ok bool) {
	if len(b) == 0 || b[0] != '{' {
		return "", "", false
	}
	var f controlFrame
	if err := json.Unmarshal(b, &f); err != nil || f.Type == "" {
		return "", "", false
	}
	return f.Type, f.Content, true
}

// Assembler buffers incoming binary chunks between start and end markers
// and produces a Clip when a stream closes. End is signalled either by an
// explicit control frame or by the Sentinel appearing in the chunk stream.
type Assembler struct {
	buf    bytes.Buffer
	active bool
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Active reports whether a clip is currently being received.
func (a *Assembler) Active() bool {
	return a.active
}

// Start opens a new clip, discarding any half-received one.
func (a *Assembler) Start() {
	a.buf.Reset()
	a.active = true
}

// Chunk appends one binary chunk. If the chunk carries the end sentinel the
// finished clip is returned; otherwise nil.
func (a *Assembler) Chunk(b []byte) *Clip {
	if !a.active {
		// Tolerate streams with no explicit start marker.
		a.Start()
	}
	if bytes.HasSuffix(b, []byte(Sentinel)) {
		a.buf.Write(b[:len(b)-len(Sentinel)])
		return a.End()
	}
	a.buf.Write(b)
	return nil
}

// End closes the stream and returns the assembled clip, or nil when no
// audio bytes arrived.
func (a *Assembler) End() *Clip {
	if !a.active {
		return nil
	}
	a.active = false
	if a.buf.Len() == 0 {
		return nil
	}
	data := make([]byte, a.buf.Len())
	copy(data, a.buf.Bytes())
	a.buf.Reset()
	return &Clip{Data: data, Format: Sniff(data)}
}
