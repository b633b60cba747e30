package network

import (
	"bytes"
	"testing"

	"github.com/sablewood/sablewood/voice"
)

func TestDrainAudioHandlesJSONControlFrames(t *testing.T) {
	c := NewClient()
	c.audioCh <- audioEvent{Data: []byte(`{"type":"audio_start"}`)}
	c.audioCh <- audioEvent{Data: []byte("RIFFsamples")}
	c.audioCh <- audioEvent{Data: []byte(`{"type":"audio_end"}`)}

	clips := c.DrainAudio(voice.NewAssembler())
	if len(clips) != 1 {
		t.Fatalf("got %d clips, want 1", len(clips))
	}
	if !bytes.Equal(clips[0].Data, []byte("RIFFsamples")) {
		t.Errorf("clip data = %q", clips[0].Data)
	}
	if clips[0].Format != voice.FormatWAV {
		t.Errorf("format = %v, want WAV", clips[0].Format)
	}
}

func TestDrainAudioControlErrorSurfacesToErrors(t *testing.T) {
	c := NewClient()
	c.audioCh <- audioEvent{Data: []byte(`{"type":"error","content":"mic busy"}`)}

	if clips := c.DrainAudio(voice.NewAssembler()); len(clips) != 0 {
		t.Fatalf("error frame produced %d clips", len(clips))
	}
	errs := c.DrainErrors()
	if len(errs) != 1 || errs[0].Content != "mic busy" {
		t.Errorf("errors = %+v, want one with content %q", errs, "mic busy")
	}
}

func TestDrainAudioNonControlBracePayloadIsAudio(t *testing.T) {
	c := NewClient()
	asm := voice.NewAssembler()

	// Starts with '{' but is not a control frame: must be buffered as audio.
	c.audioCh <- audioEvent{Start: true}
	c.audioCh <- audioEvent{Data: []byte("{not json")}
	c.audioCh <- audioEvent{End: true}

	clips := c.DrainAudio(asm)
	if len(clips) != 1 {
		t.Fatalf("got %d clips, want 1", len(clips))
	}
	if !bytes.Equal(clips[0].Data, []byte("{not json")) {
		t.Errorf("clip data = %q", clips[0].Data)
	}
}

func TestDrainAudioTypedMessagesStillAssemble(t *testing.T) {
	c := NewClient()
	c.audioCh <- audioEvent{Start: true}
	c.audioCh <- audioEvent{Data: []byte("OggSbytes")}
	c.audioCh <- audioEvent{Data: []byte(voice.Sentinel)}

	clips := c.DrainAudio(voice.NewAssembler())
	if len(clips) != 1 {
		t.Fatalf("got %d clips, want 1", len(clips))
	}
	if clips[0].Format != voice.FormatOgg {
		t.Errorf("format = %v, want Ogg", clips[0].Format)
	}
}
