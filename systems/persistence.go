package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/sablewood/sablewood/components"
	cfg "github.com/sablewood/sablewood/config"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PlayerName  string  `json:"playerName"`
	VoiceVolume float64 `json:"voiceVolume"`
	Muted       bool    `json:"muted"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// loadedSettings seeds the settings singleton of whichever scene builds
// its world first.
var loadedSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sablewood",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	loadedSettings = &settings
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live settings component to disk.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		PlayerName:  s.PlayerName,
		VoiceVolume: s.VoiceVolume,
		Muted:       s.Muted,
	})
}

// ApplySavedSettings applies loaded settings to the game systems
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	settings := GetOrCreateSettings(e)
	if saved.PlayerName != "" {
		settings.PlayerName = saved.PlayerName
	}
	settings.VoiceVolume = saved.VoiceVolume
	settings.Muted = saved.Muted

	if saved.VoiceVolume > 0 {
		SetVoiceVolume(saved.VoiceVolume)
	}
}

// GetOrCreateSettings returns the singleton settings state, creating it
// with defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			PlayerName:  cfg.Chat.DefaultName,
			VoiceVolume: cfg.Audio.DefaultVoiceVol,
			Debug:       cfg.Debug.Overlay,
		})
		ApplySavedSettings(e, loadedSettings)
	}
	return components.Settings.Get(entry)
}
