package systems

import (
	"log"

	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/shared/messages"
	"github.com/sablewood/sablewood/voice"
	"github.com/yohamta/donburi/ecs"
)

// micSource supplies capture chunks while recording. There is no real
// microphone backend, so the default is a generated tone; tests and future
// capture backends swap it via SetMicSource.
var micSource voice.Source = voice.NewToneSource(440, 2, cfg.Audio.SampleRate)

func SetMicSource(src voice.Source) {
	micSource = src
}

// GetOrCreateChat returns the singleton chat state, creating it if needed.
func GetOrCreateChat(e *ecs.ECS) *components.ChatData {
	entry, ok := components.Chat.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Chat))
	}
	return components.Chat.Get(entry)
}

// ApplyChatMessage appends an incoming chat line.
func ApplyChatMessage(e *ecs.ECS, msg messages.ChatMessage) {
	chat := GetOrCreateChat(e)
	chat.Append(components.ChatLine{
		From: msg.From,
		Text: msg.Text,
	}, cfg.Chat.MaxMessages)
}

// AppendSystemChat adds a status or error line to the panel.
func AppendSystemChat(e *ecs.ECS, text string) {
	chat := GetOrCreateChat(e)
	chat.Append(components.ChatLine{Text: text, System: true}, cfg.Chat.MaxMessages)
}

// StartRecording begins buffering voice capture.
func StartRecording(e *ecs.ECS) {
	vc := GetOrCreateVoice(e)
	if vc.Capture.Recording() {
		return
	}
	// Rewindable sources (the stand-in tone) start over each recording;
	// otherwise the second recording would capture nothing.
	if r, ok := micSource.(interface{ Reset() }); ok {
		r.Reset()
	}
	vc.Capture.Start()
	GetOrCreateChat(e).Recording = true
	log.Printf("[chat] recording started")
}

// StopRecording finalizes capture and returns the recorded blob. The second
// return is false when nothing was being recorded.
func StopRecording(e *ecs.ECS) ([]byte, bool) {
	vc := GetOrCreateVoice(e)
	GetOrCreateChat(e).Recording = false
	blob, err := vc.Capture.Stop()
	if err != nil {
		log.Printf("[chat] stop recording: %v", err)
		return nil, false
	}
	log.Printf("[chat] recording stopped, %d bytes", len(blob))
	return blob, true
}

// UpdateRecording pulls microphone chunks into the capture buffer while a
// recording is active.
func UpdateRecording(e *ecs.ECS) {
	vc := GetOrCreateVoice(e)
	if !vc.Capture.Recording() || micSource == nil {
		return
	}
	// done only means the source is drained; the chunk alongside it still
	// carries audio. Recording ends on the user's stop, not on done.
	if chunk, _ := micSource.Chunk(); len(chunk) > 0 {
		vc.Capture.Append(chunk)
	}
}
