package systems

import (
	"bytes"
	"fmt"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/sablewood/sablewood/voice"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once

	// One player at a time: a new voice message replaces the previous one
	// instead of stacking over it.
	voicePlayer *audio.Player

	retryClip  *voice.Clip
	retryCount int
	retryWait  int
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// GetOrCreateVoice returns the singleton voice state, creating it if needed.
func GetOrCreateVoice(e *ecs.ECS) *components.VoiceData {
	entry, ok := components.Voice.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Voice))
		components.Voice.SetValue(entry, components.VoiceData{
			Capture:   voice.NewCapture(),
			Assembler: voice.NewAssembler(),
		})
	}
	return components.Voice.Get(entry)
}

// UpdateVoice drains assembled clips into playback. A clip that fails to
// start is retried a bounded number of times with a growing tick delay;
// when retries run out the clip is dropped and the chat shows an error.
func UpdateVoice(e *ecs.ECS) {
	initGlobalAudio()
	vc := GetOrCreateVoice(e)

	if retryClip != nil {
		if retryWait > 0 {
			retryWait--
			return
		}
		clip := retryClip
		retryClip = nil
		playClip(e, clip)
		return
	}

	if len(vc.Pending) == 0 {
		return
	}
	clip := vc.Pending[0]
	vc.Pending = vc.Pending[1:]
	retryCount = 0
	playClip(e, clip)
}

func playClip(e *ecs.ECS, clip *voice.Clip) {
	settingsEntry, ok := components.Settings.First(e.World)
	if ok && components.Settings.Get(settingsEntry).Muted {
		return
	}

	if err := startPlayback(clip); err != nil {
		retryCount++
		if retryCount > cfg.Audio.PlaybackRetries {
			log.Printf("[audio] voice playback gave up after %d attempts: %v", retryCount, err)
			chat := GetOrCreateChat(e)
			chat.Append(components.ChatLine{
				Text:   "voice message could not be played",
				System: true,
			}, cfg.Chat.MaxMessages)
			return
		}
		log.Printf("[audio] voice playback attempt %d failed: %v", retryCount, err)
		retryClip = clip
		retryWait = retryCount * cfg.Audio.RetryBackoffTick
	}
}

func startPlayback(clip *voice.Clip) error {
	stream, err := decodeClip(clip)
	if err != nil {
		return err
	}

	if voicePlayer != nil {
		_ = voicePlayer.Close()
		voicePlayer = nil
	}

	player, err := globalAudioContext.NewPlayer(stream)
	if err != nil {
		return fmt.Errorf("create voice player: %w", err)
	}

	volume := cfg.Audio.DefaultVoiceVol
	player.SetVolume(volume)
	player.Play()
	voicePlayer = player
	return nil
}

func decodeClip(clip *voice.Clip) (audioStream, error) {
	r := bytes.NewReader(clip.Data)
	rate := globalAudioContext.SampleRate()

	switch clip.Format {
	case voice.FormatWAV:
		stream, err := wav.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, fmt.Errorf("decode wav voice clip: %w", err)
		}
		return stream, nil
	case voice.FormatOgg:
		stream, err := vorbis.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, fmt.Errorf("decode ogg voice clip: %w", err)
		}
		return stream, nil
	default:
		stream, err := mp3.DecodeWithSampleRate(rate, r)
		if err != nil {
			return nil, fmt.Errorf("decode mp3 voice clip: %w", err)
		}
		return stream, nil
	}
}

type audioStream interface {
	Read(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
}

// SetVoiceVolume changes the voice playback volume (0.0 - 1.0).
func SetVoiceVolume(volume float64) {
	cfg.Audio.DefaultVoiceVol = volume
	if voicePlayer != nil {
		voicePlayer.SetVolume(volume)
	}
}
