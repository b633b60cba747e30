package voice

import (
	"encoding/binary"
	"math"
)

// ToneSource is a stand-in microphone: it emits a short sine tone as a
// valid WAV stream, chunked the way a real recorder would deliver it.
// Useful offline and in tests.
type ToneSource struct {
	data []byte
	pos  int
}

const toneChunkSize = 4096

// NewToneSource builds a sine tone of the given frequency and duration.
func NewToneSource(freq float64, seconds float64, sampleRate int) *ToneSource {
	return &ToneSource{data: WAVTone(freq, seconds, sampleRate)}
}

// Reset rewinds the tone so the next recording starts from the top.
func (t *ToneSource) Reset() {
	t.pos = 0
}

func (t *ToneSource) Chunk() ([]byte, bool) {
	if t.pos >= len(t.data) {
		return nil, true
	}
	end := t.pos + toneChunkSize
	if end > len(t.data) {
		end = len(t.data)
	}
	b := t.data[t.pos:end]
	t.pos = end
	return b, end == len(t.data)
}

// WAVTone renders a mono 16-bit PCM sine tone with a RIFF header.
func WAVTone(freq float64, seconds float64, sampleRate int) []byte {
	n := int(float64(sampleRate) * seconds)
	dataLen := n * 2

	buf := make([]byte, 0, 44+dataLen)
	le := binary.LittleEndian

	u32 := func(v uint32) []byte {
		b := make([]byte, 4)
		le.PutUint32(b, v)
		return b
	}
	u16 := func(v uint16) []byte {
		b := make([]byte, 2)
		le.PutUint16(b, v)
		return b
	}

	buf = append(buf, []byte("RIFF")...)
	buf = append(buf, u32(uint32(36+dataLen))...)
	buf = append(buf, []byte("WAVE")...)
	buf = append(buf, []byte("fmt ")...)
	buf = append(buf, u32(16)...)                    // PCM chunk size
	buf = append(buf, u16(1)...)                     // PCM format
	buf = append(buf, u16(1)...)                     // mono
	buf = append(buf, u32(uint32(sampleRate))...)    // sample rate
	buf = append(buf, u32(uint32(sampleRate*2))...)  // byte rate
	buf = append(buf, u16(2)...)                     // block align
	buf = append(buf, u16(16)...)                    // bits per sample
	buf = append(buf, []byte("data")...)
	buf = append(buf, u32(uint32(dataLen))...)

	for i := 0; i < n; i++ {
		sample := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		// Fade the edges to avoid clicks.
		env := 1.0
		fade := sampleRate / 50
		if i < fade {
			env = float64(i) / float64(fade)
		} else if n-i < fade {
			env = float64(n-i) / float64(fade)
		}
		v := int16(sample * env * 0.4 * math.MaxInt16)
		buf = append(buf, byte(v), byte(v>>8))
	}
	return buf
}
