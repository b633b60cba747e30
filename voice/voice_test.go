package voice

import (
	"bytes"
	"testing"
)

func TestSniff(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Format
	}{
		{"id3 tag", []byte{0x49, 0x44, 0x33, 0x04, 0x00}, FormatMP3},
		{"mpeg sync", []byte{0xFF, 0xFB, 0x90, 0x00}, FormatMP3},
		{"mpeg sync e0", []byte{0xFF, 0xE0, 0x00, 0x00}, FormatMP3},
		{"riff wav", []byte{0x52, 0x49, 0x46, 0x46, 0x24, 0x08}, FormatWAV},
		{"oggs", []byte{0x4F, 0x67, 0x67, 0x53, 0x00}, FormatOgg},
		{"garbage defaults to mp3", []byte{0x00, 0x01, 0x02, 0x03}, FormatMP3},
		{"short defaults to mp3", []byte{0x52}, FormatMP3},
		{"empty defaults to mp3", nil, FormatMP3},
	}
	for _, c := range cases {
		if got := Sniff(c.data); got != c.want {
			t.Errorf("%s: Sniff = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAssemblerControlFramed(t *testing.T) {
	a := NewAssembler()
	a.Start()
	a.Chunk([]byte("RIFF"))
	a.Chunk([]byte("rest-of-wav"))
	clip := a.End()
	if clip == nil {
		t.Fatal("End returned no clip")
	}
	if clip.Format != FormatWAV {
		t.Errorf("format = %v, want WAV", clip.Format)
	}
	if !bytes.Equal(clip.Data, []byte("RIFFrest-of-wav")) {
		t.Errorf("data = %q", clip.Data)
	}
	if a.Active() {
		t.Error("assembler still active after End")
	}
}

func TestAssemblerSentinel(t *testing.T) {
	a := NewAssembler()
	a.Start()
	if clip := a.Chunk([]byte("OggS-part1")); clip != nil {
		t.Fatal("clip finished early")
	}
	clip := a.Chunk(append([]byte("part2"), []byte(Sentinel)...))
	if clip == nil {
		t.Fatal("sentinel did not finish the clip")
	}
	if !bytes.Equal(clip.Data, []byte("OggS-part1part2")) {
		t.Errorf("data = %q", clip.Data)
	}
	if clip.Format != FormatOgg {
		t.Errorf("format = %v, want Ogg", clip.Format)
	}
}

func TestAssemblerBareSentinelChunk(t *testing.T) {
	a := NewAssembler()
	a.Start()
	a.Chunk([]byte{0xFF, 0xFB, 0x01})
	clip := a.Chunk([]byte(Sentinel))
	if clip == nil {
		t.Fatal("bare sentinel chunk did not finish the clip")
	}
	if !bytes.Equal(clip.Data, []byte{0xFF, 0xFB, 0x01}) {
		t.Errorf("data = %v", clip.Data)
	}
}

func TestAssemblerImplicitStart(t *testing.T) {
	a := NewAssembler()
	clip := a.Chunk(append([]byte("RIFFx"), []byte(Sentinel)...))
	if clip == nil || clip.Format != FormatWAV {
		t.Fatalf("implicit start failed: %+v", clip)
	}
}

func TestAssemblerEmptyStream(t *testing.T) {
	a := NewAssembler()
	a.Start()
	if clip := a.End(); clip != nil {
		t.Errorf("empty stream produced clip %+v", clip)
	}
	if clip := a.End(); clip != nil {
		t.Errorf("double End produced clip %+v", clip)
	}
}

func TestParseControl(t *testing.T) {
	kind, _, ok := ParseControl([]byte(`{"type":"audio_start"}`))
	if !ok || kind != ControlAudioStart {
		t.Errorf("audio_start parse: kind=%q ok=%v", kind, ok)
	}
	kind, content, ok := ParseControl([]byte(`{"type":"error","content":"mic busy"}`))
	if !ok || kind != ControlError || content != "mic busy" {
		t.Errorf("error parse: kind=%q content=%q ok=%v", kind, content, ok)
	}
	if _, _, ok := ParseControl([]byte{0xFF, 0xFB}); ok {
		t.Error("binary data misread as control frame")
	}
	if _, _, ok := ParseControl([]byte(`{"no_type":1}`)); ok {
		t.Error("frame without type misread as control")
	}
}

func TestCaptureRoundTrip(t *testing.T) {
	c := NewCapture()
	c.Start()
	src := NewToneSource(440, 0.1, 8000)
	for {
		b, done := src.Chunk()
		c.Append(b)
		if done {
			break
		}
	}
	blob, err := c.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if Sniff(blob) != FormatWAV {
		t.Errorf("tone blob did not sniff as WAV")
	}
	// 44 byte header + 0.1s of 16-bit mono at 8kHz
	if want := 44 + 1600; len(blob) != want {
		t.Errorf("blob length = %d, want %d", len(blob), want)
	}
	if _, err := c.Stop(); err == nil {
		t.Error("second Stop should fail")
	}
}

func TestCaptureIgnoresWhenIdle(t *testing.T) {
	c := NewCapture()
	c.Append([]byte("stray"))
	c.Start()
	blob, err := c.Stop()
	if err == nil {
		t.Errorf("empty recording returned blob of %d bytes", len(blob))
	}
}
