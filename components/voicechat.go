package components

import (
	"github.com/sablewood/sablewood/voice"
	"github.com/yohamta/donburi"
)

// VoiceData is the singleton voice chat state: the local capture buffer,
// the assembler for incoming streams, and clips waiting for the playback
// system.
type VoiceData struct {
	Capture   *voice.Capture
	Assembler *voice.Assembler
	Pending   []*voice.Clip
}

var Voice = donburi.NewComponentType[VoiceData]()
